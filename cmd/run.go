package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/domain"
	m "github.com/mouse-blink/transpyle/internal/model"
)

var runShardFlag string
var runForceFlag bool

const runLongDescription = `Translate every snippet under the given paths and store one YAML report
per snippet plus an _index.yaml in the reports directory. Snippets whose
content and targets did not change since the last run are skipped unless
--force is set.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Translate a source tree and store reports",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(runShardFlag)

			return workflow.Run(domain.RunArgs{
				Paths:           parsePaths(args),
				Include:         cfg.Include,
				Exclude:         cfg.Exclude,
				Targets:         targetIDs(),
				Reports:         m.Path(cfg.Reports),
				Parallel:        cfg.Parallel,
				Force:           runForceFlag,
				Strict:          cfg.Strict,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().IntP("parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringVarP(&runShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayP("include", "i", nil, "include files matching glob (can be repeated, default **.py)")
	cmd.Flags().StringArrayP("exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().BoolVarP(&runForceFlag, "force", "f", false, "translate every snippet even when its report is current")

	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
