package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/diary/internal/config"
	"github.com/faizmokh/diary/internal/diary"
	"github.com/faizmokh/diary/internal/logging"
	"github.com/faizmokh/diary/internal/script"
	"github.com/faizmokh/diary/internal/session"
)

// resolveOwner picks the owner by precedence: flag, script, configuration.
func resolveOwner(flagValue, scriptValue string, cfg *config.Config) string {
	for _, candidate := range []string{flagValue, scriptValue} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return cfg.Owner
}

// runScript replays s against a fresh diary and writes the transcript.
func runScript(ctx context.Context, cmd *cobra.Command, cfg *config.Config, s *script.Script, owner string, format script.Format) error {
	logger, closeLog, err := logging.Open(cfg.LogFile, cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	sess := session.New(diary.New(owner), logger)
	transcript, err := script.Run(ctx, sess, s, cfg.DefaultMood)
	if err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	logger.Debug("script finished", "steps", len(transcript.Steps))

	return script.Write(cmd.OutOrStdout(), transcript, format)
}

func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "format", string(script.FormatText), "Output format: text, json, or yaml")
}
