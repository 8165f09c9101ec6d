package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/domain"
	m "github.com/mouse-blink/transpyle/internal/model"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-translate a snippet every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}

			ctx, stop := signal.NotifyContext(parent, os.Interrupt)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				TranslateArgs: domain.TranslateArgs{
					Path:    m.Path(args[0]),
					Targets: targetIDs(),
					Strict:  cfg.Strict,
				},
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newWatchCmd())
}
