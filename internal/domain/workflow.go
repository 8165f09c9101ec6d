package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/transpyle/internal/adapter"
	"github.com/mouse-blink/transpyle/internal/controller"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// TranslateArgs selects one snippet and the targets to translate it to.
type TranslateArgs struct {
	Path    m.Path
	Targets []m.Target
	// Strict parses the Go translation and reports syntax errors as warnings.
	Strict bool
}

// AnalyzeArgs selects the snippet to analyze.
type AnalyzeArgs struct {
	Path    m.Path
	Targets []m.Target
}

// RunArgs configures a batch run over a source tree.
type RunArgs struct {
	Paths           []m.Path
	Include         []string
	Exclude         []string
	Targets         []m.Target
	Reports         m.Path
	Parallel        int
	Force           bool
	Strict          bool
	ShardIndex      int
	TotalShardCount int
}

// ViewArgs selects the reports directory to display.
type ViewArgs struct {
	Reports m.Path
}

// CleanArgs selects stored reports to delete. Empty Paths deletes all.
type CleanArgs struct {
	Reports m.Path
	Paths   []m.Path
}

// WatchArgs selects the snippet to re-translate on every save.
type WatchArgs struct {
	TranslateArgs
}

// EditArgs configures the live editor. A non-empty Path seeds the editor and
// receives the saved source.
type EditArgs struct {
	Path    m.Path
	Targets []m.Target
	Strict  bool
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Translate(args TranslateArgs) error
	Analyze(args AnalyzeArgs) error
	Run(args RunArgs) error
	View(args ViewArgs) error
	Clean(args CleanArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	Edit(args EditArgs) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	store   adapter.ReportStore
	watcher adapter.Watcher
	syntax  adapter.GoSyntaxAdapter
	ui      controller.UI
	engine  Engine
	log     logrus.FieldLogger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	store adapter.ReportStore,
	watcher adapter.Watcher,
	syntax adapter.GoSyntaxAdapter,
	ui controller.UI,
	engine Engine,
	logger logrus.FieldLogger,
) Workflow {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &workflow{
		fs:      fs,
		store:   store,
		watcher: watcher,
		syntax:  syntax,
		ui:      ui,
		engine:  engine,
		log:     logger,
	}
}

func (w *workflow) Translate(args TranslateArgs) error {
	source, err := w.read(args.Path)
	if err != nil {
		return err
	}

	ids := w.targets(args.Targets)
	active := activeTargets(source, ids)
	result := w.translate(source, active, args.Strict)

	w.log.WithFields(logrus.Fields{
		"path":    args.Path,
		"targets": active,
	}).Debug("snippet translated")

	return w.ui.DisplayTranslation(result, active)
}

func (w *workflow) Analyze(args AnalyzeArgs) error {
	source, err := w.read(args.Path)
	if err != nil {
		return err
	}

	report := BuildAnalysisReport(w.engine.Analyze(source), w.targets(args.Targets))

	return w.ui.DisplayAnalysis(report)
}

func (w *workflow) Run(args RunArgs) error {
	ids := w.targets(args.Targets)

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	snippets, err := w.fs.Get(args.Paths, args.Include, args.Exclude)
	if err != nil {
		return fmt.Errorf("failed to collect snippets: %w", err)
	}

	snippets = shardSnippets(snippets, args.ShardIndex, args.TotalShardCount)
	total := len(snippets)

	if !args.Force {
		snippets, err = w.store.CheckUpdates(args.Reports, snippets, ids)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}
	}

	w.ui.DisplayRunInfo(controller.RunInfo{
		Snippets:   total,
		Changed:    len(snippets),
		Parallel:   parallel,
		ShardIndex: args.ShardIndex,
		ShardCount: args.TotalShardCount,
	})

	reports := make([]m.Report, len(snippets))

	var g errgroup.Group

	g.SetLimit(parallel)

	for i, snippet := range snippets {
		i, snippet := i, snippet

		g.Go(func() error {
			active := activeTargets(snippet.Content, ids)
			result := w.translate(snippet.Content, active, args.Strict)
			reports[i] = BuildReport(snippet, result, active)

			w.log.WithFields(logrus.Fields{
				"path":    snippet.Path,
				"targets": len(active),
			}).Debug("snippet translated")

			return nil
		})
	}

	_ = g.Wait()

	if err := w.store.SaveReports(args.Reports, reports); err != nil {
		return fmt.Errorf("failed to save reports: %w", err)
	}

	if err := w.store.RegenerateIndex(args.Reports); err != nil {
		return fmt.Errorf("failed to regenerate index: %w", err)
	}

	w.log.WithFields(logrus.Fields{
		"translated": len(reports),
		"unchanged":  total - len(reports),
		"reports":    args.Reports,
	}).Info("run finished")

	stored, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	return w.ui.DisplayReports(stored)
}

func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	return w.ui.DisplayReports(reports)
}

func (w *workflow) Clean(args CleanArgs) error {
	if err := w.store.CleanReports(args.Reports, args.Paths); err != nil {
		return fmt.Errorf("failed to clean reports: %w", err)
	}

	w.log.WithField("reports", args.Reports).Info("reports cleaned")

	return nil
}

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if args.Path == m.StdinPath {
		return errors.New("failed to watch: standard input cannot be watched")
	}

	if err := w.Translate(args.TranslateArgs); err != nil {
		return err
	}

	return w.watcher.Watch(ctx, args.Path, func() {
		if err := w.Translate(args.TranslateArgs); err != nil {
			w.log.WithError(err).WithField("path", args.Path).Warn("re-translation failed")
		}
	})
}

func (w *workflow) Edit(args EditArgs) error {
	initial := ""

	if args.Path != "" {
		source, err := w.read(args.Path)
		if err != nil {
			return err
		}

		initial = source
	}

	ids := w.targets(args.Targets)

	edited, err := w.ui.Edit(initial, func(source string) m.Result {
		return w.translate(source, activeTargets(source, ids), args.Strict)
	})
	if errors.Is(err, controller.ErrEditAborted) {
		w.log.Debug("edit aborted")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to edit: %w", err)
	}

	if args.Path == "" || args.Path == m.StdinPath || edited == initial {
		return nil
	}

	if err := w.fs.WriteFile(args.Path, []byte(edited)); err != nil {
		return fmt.Errorf("failed to save %s: %w", args.Path, err)
	}

	w.log.WithField("path", args.Path).Info("snippet saved")

	return nil
}

func (w *workflow) read(path m.Path) (string, error) {
	content, err := w.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(content), nil
}

// targets falls back to every engine target when ids is empty.
func (w *workflow) targets(ids []m.Target) []m.Target {
	if len(ids) == 0 {
		return w.engine.Targets()
	}

	return ids
}

// translate runs the engine for ids only. An empty ids yields an empty
// result rather than every target.
func (w *workflow) translate(source string, ids []m.Target, strict bool) m.Result {
	if len(ids) == 0 {
		return m.Result{
			Source:       source,
			Context:      w.engine.Analyze(source),
			Translations: map[m.Target]string{},
			Warnings:     map[m.Target][]m.Warning{},
		}
	}

	result := w.engine.Translate(source, ids...)

	if strict && w.syntax != nil {
		if text, ok := result.Translations[m.TargetGo]; ok {
			if err := w.syntax.Check(text); err != nil {
				result.Warnings[m.TargetGo] = append(result.Warnings[m.TargetGo], m.Warning(err.Error()))
			}
		}
	}

	return result
}

// shardSnippets keeps the snippets assigned to shard index out of total,
// distributing them round robin over the path order.
func shardSnippets(snippets []m.Snippet, index, total int) []m.Snippet {
	if total <= 1 {
		return snippets
	}

	sorted := append([]m.Snippet(nil), snippets...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	out := make([]m.Snippet, 0, len(sorted)/total+1)

	for i, snippet := range sorted {
		if i%total == index {
			out = append(out, snippet)
		}
	}

	return out
}
