package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/transpyle/internal/model"
)

const (
	indexFileName  = "_index.yaml"
	reportFileExt  = ".yaml"
	reportHashSize = 16
)

// ErrEmptyReportsPath is returned when no reports directory was given.
var ErrEmptyReportsPath = errors.New("reports path is empty")

// ReportStore persists and retrieves translation reports.
type ReportStore interface {
	// SaveReports writes one file per report, named after the snippet path.
	SaveReports(dir m.Path, reports []m.Report) error
	// LoadReports reads every stored report sorted by snippet path.
	LoadReports(dir m.Path) ([]m.Report, error)
	// RegenerateIndex rewrites _index.yaml from the stored reports.
	RegenerateIndex(dir m.Path) error
	// CheckUpdates returns the snippets whose stored report is missing, was
	// produced from different content or for a different target set.
	CheckUpdates(dir m.Path, snippets []m.Snippet, ids []m.Target) ([]m.Snippet, error)
	// CleanReports deletes the reports of paths, or every report when paths
	// is empty, and regenerates the index.
	CleanReports(dir m.Path, paths []m.Path) error
}

// LocalReportStore stores reports as YAML files on the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type indexEntry struct {
	File       string           `yaml:"file"`
	Path       m.Path           `yaml:"path"`
	Hash       string           `yaml:"hash"`
	Confidence map[m.Target]int `yaml:"confidence"`
}

type indexYAML struct {
	Reports []indexEntry `yaml:"reports"`
}

func (rs *LocalReportStore) SaveReports(dir m.Path, reports []m.Report) error {
	if dir == "" {
		return ErrEmptyReportsPath
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("failed to create reports directory %s: %w", dir, err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", report.Source.Path, err)
		}

		path := filepath.Join(string(dir), rs.reportFileName(report.Source.Path))
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("failed to write report %s: %w", path, err)
		}
	}

	return nil
}

func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	if dir == "" {
		return nil, ErrEmptyReportsPath
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read reports directory %s: %w", dir, err)
	}

	reports := []m.Report{}

	for _, entry := range entries {
		if !isReportFile(entry) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Source.Path < reports[j].Source.Path
	})

	return reports, nil
}

func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	reports, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(string(dir), indexFileName)

	if len(reports) == 0 {
		if err := os.Remove(indexPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove index %s: %w", indexPath, err)
		}

		return nil
	}

	index := indexYAML{Reports: make([]indexEntry, 0, len(reports))}

	for _, report := range reports {
		entry := indexEntry{
			File:       rs.reportFileName(report.Source.Path),
			Path:       report.Source.Path,
			Hash:       report.Source.Hash,
			Confidence: make(map[m.Target]int, len(report.Targets)),
		}

		for _, target := range report.Targets {
			entry.Confidence[target.Target] = target.Confidence
		}

		index.Reports = append(index.Reports, entry)
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write index %s: %w", indexPath, err)
	}

	return nil
}

func (rs *LocalReportStore) CheckUpdates(dir m.Path, snippets []m.Snippet, ids []m.Target) ([]m.Snippet, error) {
	if dir == "" {
		return nil, ErrEmptyReportsPath
	}

	info, err := os.Stat(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return snippets, nil
		}

		return nil, fmt.Errorf("failed to stat reports directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("reports path %s is not a directory", dir)
	}

	reports, err := rs.LoadReports(dir)
	if err != nil {
		return nil, err
	}

	stored := make(map[m.Path]m.Report, len(reports))
	for _, report := range reports {
		stored[report.Source.Path] = report
	}

	var changed []m.Snippet

	for _, snippet := range snippets {
		report, ok := stored[snippet.Path]
		if !ok || report.Source.Hash != snippet.Hash || !sameTargets(report, ids) {
			changed = append(changed, snippet)
		}
	}

	return changed, nil
}

func (rs *LocalReportStore) CleanReports(dir m.Path, paths []m.Path) error {
	if dir == "" {
		return ErrEmptyReportsPath
	}

	if _, err := os.Stat(string(dir)); os.IsNotExist(err) {
		return nil
	}

	if len(paths) == 0 {
		reports, err := rs.LoadReports(dir)
		if err != nil {
			return err
		}

		for _, report := range reports {
			paths = append(paths, report.Source.Path)
		}
	}

	for _, path := range paths {
		file := filepath.Join(string(dir), rs.reportFileName(path))
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove report %s: %w", file, err)
		}
	}

	return rs.RegenerateIndex(dir)
}

// reportFileName derives a stable file name from the snippet path so a new
// run overwrites the previous report of the same snippet.
func (rs *LocalReportStore) reportFileName(path m.Path) string {
	sum := sha256.Sum256([]byte(path))

	return hex.EncodeToString(sum[:])[:reportHashSize] + reportFileExt
}

func isReportFile(entry os.DirEntry) bool {
	name := entry.Name()

	return !entry.IsDir() && name != indexFileName && strings.HasSuffix(name, reportFileExt)
}

func sameTargets(report m.Report, ids []m.Target) bool {
	if len(report.Targets) != len(ids) {
		return false
	}

	want := make(map[m.Target]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	for _, target := range report.Targets {
		if _, ok := want[target.Target]; !ok {
			return false
		}
	}

	return true
}
