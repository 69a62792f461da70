package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/diary/internal/config"
	"github.com/faizmokh/diary/internal/script"
)

func newRunCommand(ctx context.Context, cfg *config.Config, ownerFlag *string) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a YAML script of diary actions.",
		Long: `run executes unlock, lock, add, entries, and stats steps from a YAML file
against a fresh in-memory diary and prints what each step produced. Use "-" to
read the script from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := script.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer file.Close()
				r = file
			}

			s, err := script.Parse(r)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			owner := resolveOwner(*ownerFlag, s.Owner, cfg)
			return runScript(ctx, cmd, cfg, s, owner, format)
		},
	}

	addFormatFlag(cmd, &formatFlag)

	return cmd
}

func newDemoCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through unlocking, writing, and stats with a sample diary.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := script.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			s := script.Demo()
			return runScript(ctx, cmd, cfg, s, s.Owner, format)
		},
	}

	addFormatFlag(cmd, &formatFlag)

	return cmd
}
