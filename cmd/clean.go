package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/domain"
	m "github.com/mouse-blink/transpyle/internal/model"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [snippet paths...]",
		Short: "Delete stored reports",
		Long:  "Delete the reports of the given snippet paths, or every report when no path is given.",
		RunE: func(_ *cobra.Command, args []string) error {
			var paths []m.Path
			for _, arg := range args {
				paths = append(paths, m.Path(arg))
			}

			return workflow.Clean(domain.CleanArgs{Reports: m.Path(cfg.Reports), Paths: paths})
		},
	}
}

func init() {
	rootCmd.AddCommand(newCleanCmd())
}
