package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/diary/internal/diary"
)

func newMoodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the available moods and decorations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Moods:")
			for _, mood := range diary.Moods() {
				fmt.Fprintf(out, "  %s %s\n", mood.Emoji(), mood)
			}
			fmt.Fprintln(out, "\nDecorations:")
			for _, d := range diary.Decorations() {
				fmt.Fprintf(out, "  %s %s\n", d.Symbol, d.Name)
			}
			return nil
		},
	}
}
