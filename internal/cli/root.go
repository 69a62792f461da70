package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/faizmokh/diary/internal/config"
	"github.com/faizmokh/diary/internal/diary"
	"github.com/faizmokh/diary/internal/logging"
	"github.com/faizmokh/diary/internal/session"
	"github.com/faizmokh/diary/internal/ui"
	"github.com/faizmokh/diary/internal/version"
)

// errNotTerminal is returned when the TUI is requested without a terminal.
var errNotTerminal = errors.New("interactive mode needs a terminal; try `diary demo` or `diary run <script>`")

// isTerminal reports whether both stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return isATTY(os.Stdin.Fd()) && isATTY(os.Stdout.Fd())
}

func isATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, cfg *config.Config) *cobra.Command {
	var ownerFlag string

	cmd := &cobra.Command{
		Use:     "diary",
		Short:   "Keep a password-gated mood diary in your terminal.",
		Long:    "diary opens an interactive, in-memory journal. Unlock it with <owner>123, write mood-tagged entries, and review stats. Nothing is saved when you quit.",
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotTerminal
			}

			logger, closeLog, err := logging.Open(cfg.LogFile, nil, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			owner := resolveOwner(ownerFlag, "", cfg)
			sess := session.New(diary.New(owner), logger)
			logger.Info("session started", "owner", owner)

			m := ui.NewModel(ctx, sess, cfg.DefaultMood)
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&ownerFlag, "owner", "", "Diary owner (default: $DIARY_OWNER or "+config.DefaultOwner+")")

	cmd.AddCommand(
		newRunCommand(ctx, cfg, &ownerFlag),
		newDemoCommand(ctx, cfg),
		newMoodsCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, cfg)
	return cmd.Execute()
}

// Main is a helper used by cmd/diary/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
