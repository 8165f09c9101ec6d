// Package cmd provides the root command and CLI setup for transpyle.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/transpyle/internal/adapter"
	"github.com/mouse-blink/transpyle/internal/config"
	"github.com/mouse-blink/transpyle/internal/controller"
	"github.com/mouse-blink/transpyle/internal/domain"
	"github.com/mouse-blink/transpyle/internal/logging"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// workflow is built lazily from the loaded configuration; tests replace it.
var workflow domain.Workflow

var cfg config.Config

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpyle [file|-]",
		Short: "Translate Python-like snippets to Go, PHP, JavaScript and C#",
		Long: `Transpyle rewrites small Python-like snippets into Go, PHP, JavaScript
and C# using ordered rewrite rules, then scores every translation with a
confidence value derived from the warnings of a per-language validator.

Reads from standard input when no file is given or the file is "-".

A comment line "# transpyle:ignore [targets]" opts a snippet out of the
listed targets, or of every target when none are listed.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Translate(domain.TranslateArgs{
				Path:    snippetPath(args),
				Targets: targetIDs(),
				Strict:  cfg.Strict,
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "config file (default .transpyle.yaml in the working directory)")
	flags.StringSliceP("targets", "t", nil, "targets to translate to: go, php, javascript, csharp (default all)")
	flags.StringP("reports", "r", config.DefaultReports, "reports directory")
	flags.Bool("strict", false, "parse the Go translation and warn on syntax errors")
	flags.String("ui", "auto", "output surface: auto, plain or interactive")
	flags.Int("cache-size", config.DefaultCacheSize, "number of translations kept in memory, 0 disables the cache")
	flags.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("log-output", "stderr", "log output: stderr, stdout or a file path")

	return cmd
}

// setup loads the configuration and builds the workflow unless one is
// already set.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag, cmd.Flags())
	if err != nil {
		return err
	}

	cfg = loaded

	if workflow != nil {
		return nil
	}

	wf, err := newWorkflow(cmd, cfg)
	if err != nil {
		return err
	}

	workflow = wf

	return nil
}

func newWorkflow(cmd *cobra.Command, cfg config.Config) (domain.Workflow, error) {
	logger := logging.New(cfg.Log, cmd.ErrOrStderr())

	ids, err := cfg.TargetIDs()
	if err != nil {
		return nil, err
	}

	mode, err := controller.ParseMode(cfg.UI)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	engine, err := domain.NewEngine(
		domain.WithTargets(ids...),
		domain.WithCacheSize(cfg.CacheSize),
		domain.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(cmd.InOrStdin()),
		adapter.NewReportStore(),
		adapter.NewFSWatcher(adapter.DefaultDebounce),
		adapter.NewLocalGoSyntaxAdapter(),
		controller.NewUI(cmd, mode),
		engine,
		logger,
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func snippetPath(args []string) m.Path {
	if len(args) == 0 {
		return m.StdinPath
	}

	return m.Path(args[0])
}

// targetIDs returns the validated configured targets.
func targetIDs() []m.Target {
	ids, _ := cfg.TargetIDs()
	return ids
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
