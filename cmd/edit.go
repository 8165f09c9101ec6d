package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/domain"
	m "github.com/mouse-blink/transpyle/internal/model"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a snippet with a live translation preview",
		Long: `Edit opens an interactive editor next to a live translation. Tab cycles
the previewed target, ctrl+s saves back to the file and esc quits without
saving. Requires a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var path m.Path
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.Edit(domain.EditArgs{
				Path:    path,
				Targets: targetIDs(),
				Strict:  cfg.Strict,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newEditCmd())
}
