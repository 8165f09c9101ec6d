package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/domain"
	m "github.com/mouse-blink/transpyle/internal/model"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated reports",
		Long:  "View previously generated translation reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.Reports)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
