package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/transpyle/internal/domain/targets"
	m "github.com/mouse-blink/transpyle/internal/model"
)

// DefaultCacheSize is the number of translated snippets kept in memory.
const DefaultCacheSize = 128

// Engine runs analysis once per snippet and the target pipelines over the
// shared, read-only Context.
type Engine interface {
	Analyze(source string) m.Context
	// Translate runs the pipelines of ids, or of every configured target when
	// ids is empty.
	Translate(source string, ids ...m.Target) m.Result
	Report(ctx m.Context) m.AnalysisReport
	LibraryEquivalent(lib m.Library, target m.Target) string
	Targets() []m.Target
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	targets   []m.Target
	cacheSize int
	logger    logrus.FieldLogger
}

// WithTargets restricts the engine to the given targets.
func WithTargets(ids ...m.Target) EngineOption {
	return func(o *engineOptions) {
		o.targets = ids
	}
}

// WithCacheSize sets the number of memoized results. Zero disables the cache.
func WithCacheSize(size int) EngineOption {
	return func(o *engineOptions) {
		o.cacheSize = size
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logrus.FieldLogger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

type engine struct {
	analyzer  Analyzer
	pipelines []targets.Target
	cache     *lru.Cache[string, m.Result]
	log       logrus.FieldLogger
}

// NewEngine creates a new Engine. It fails on an unknown target id or a
// negative cache size.
func NewEngine(opts ...EngineOption) (Engine, error) {
	o := engineOptions{targets: m.Targets, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logrus.StandardLogger()
	}

	if len(o.targets) == 0 {
		o.targets = m.Targets
	}

	e := &engine{analyzer: NewAnalyzer(), log: o.logger}

	for _, id := range o.targets {
		t := targets.ByID(id)
		if t == nil {
			return nil, fmt.Errorf("failed to create engine: unknown target %q", id)
		}

		e.pipelines = append(e.pipelines, t)
	}

	if o.cacheSize < 0 {
		return nil, fmt.Errorf("failed to create engine: negative cache size %d", o.cacheSize)
	}

	if o.cacheSize > 0 {
		cache, err := lru.New[string, m.Result](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}

		e.cache = cache
	}

	return e, nil
}

func (e *engine) Analyze(source string) m.Context {
	return e.analyzer.Analyze(source)
}

func (e *engine) Targets() []m.Target {
	ids := make([]m.Target, 0, len(e.pipelines))
	for _, p := range e.pipelines {
		ids = append(ids, p.ID())
	}

	return ids
}

func (e *engine) Translate(source string, ids ...m.Target) m.Result {
	pipelines := e.selectPipelines(ids)
	key := cacheKey(source, pipelines)

	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			e.log.WithField("key", key[:12]).Debug("translation cache hit")
			return cloneResult(cached)
		}
	}

	ctx := e.analyzer.Analyze(source)
	e.log.WithFields(logrus.Fields{
		"variables": len(ctx.Variables),
		"functions": len(ctx.Functions),
		"libraries": ctx.LibraryNames(),
	}).Debug("snippet analyzed")

	translations := make([]string, len(pipelines))
	warnings := make([][]m.Warning, len(pipelines))

	// Pipelines are total and only read ctx, so the group never fails.
	var g errgroup.Group

	for i, p := range pipelines {
		i, p := i, p

		g.Go(func() error {
			translations[i] = p.Translate(source, ctx)
			warnings[i] = p.Validate(translations[i])

			return nil
		})
	}

	_ = g.Wait()

	result := m.Result{
		Source:       source,
		Context:      ctx,
		Translations: make(map[m.Target]string, len(pipelines)),
		Warnings:     make(map[m.Target][]m.Warning, len(pipelines)),
	}

	for i, p := range pipelines {
		result.Translations[p.ID()] = translations[i]
		result.Warnings[p.ID()] = warnings[i]

		e.log.WithFields(logrus.Fields{
			"target":     p.ID(),
			"warnings":   len(warnings[i]),
			"confidence": result.Confidence(p.ID()),
		}).Debug("target translated")
	}

	if e.cache != nil {
		e.cache.Add(key, cloneResult(result))
	}

	return result
}

func (e *engine) Report(ctx m.Context) m.AnalysisReport {
	return BuildAnalysisReport(ctx, e.Targets())
}

func (e *engine) LibraryEquivalent(lib m.Library, target m.Target) string {
	return targets.LibraryEquivalent(lib, target)
}

func (e *engine) selectPipelines(ids []m.Target) []targets.Target {
	if len(ids) == 0 {
		return e.pipelines
	}

	selected := make([]targets.Target, 0, len(ids))

	for _, p := range e.pipelines {
		for _, id := range ids {
			if p.ID() == id {
				selected = append(selected, p)
				break
			}
		}
	}

	return selected
}

func cacheKey(source string, pipelines []targets.Target) string {
	h := sha256.New()
	for _, p := range pipelines {
		h.Write([]byte(p.ID()))
		h.Write([]byte{0})
	}

	h.Write([]byte(source))

	return hex.EncodeToString(h.Sum(nil))
}

// cloneResult copies the maps of r so cached results cannot be modified
// through a returned value. Context is shared, it is never written after
// analysis.
func cloneResult(r m.Result) m.Result {
	out := r
	out.Translations = make(map[m.Target]string, len(r.Translations))
	out.Warnings = make(map[m.Target][]m.Warning, len(r.Warnings))

	for id, text := range r.Translations {
		out.Translations[id] = text
	}

	for id, warnings := range r.Warnings {
		out.Warnings[id] = append([]m.Warning{}, warnings...)
	}

	return out
}
