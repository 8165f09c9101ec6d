package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Show what the analyzer learned about a snippet",
		Long: `Analyze prints the variables and their inferred kinds, the declared
functions, the detected libraries with their per-target equivalents and the
data structure hints of a snippet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Analyze(domain.AnalyzeArgs{
				Path:    snippetPath(args),
				Targets: targetIDs(),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newAnalyzeCmd())
}
