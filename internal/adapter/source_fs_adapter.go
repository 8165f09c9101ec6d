// Package adapter contains the infrastructure adapters of the transpyle CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	m "github.com/mouse-blink/transpyle/internal/model"
)

// DefaultInclude matches snippet files at any depth.
var DefaultInclude = []string{"**.py"}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when discovering snippets. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects snippets under roots. A root ending in /... is scanned
	// recursively. include holds glob patterns matched against the slash
	// separated path relative to the root; exclude holds regexes matched
	// against the same path.
	Get(roots []m.Path, include, exclude []string) ([]m.Snippet, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents. StdinPath
	// reads standard input instead.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the contents of path.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete implementation backed by the local disk.
type LocalSourceFSAdapter struct {
	stdin io.Reader
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter reading StdinPath
// from stdin.
func NewLocalSourceFSAdapter(stdin io.Reader) *LocalSourceFSAdapter {
	if stdin == nil {
		stdin = os.Stdin
	}

	return &LocalSourceFSAdapter{stdin: stdin}
}

type pathFilter struct {
	include []glob.Glob
	exclude []*regexp.Regexp
}

func newPathFilter(include, exclude []string) (pathFilter, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}

	var f pathFilter

	for _, pattern := range include {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return pathFilter{}, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}

		f.include = append(f.include, g)
	}

	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return pathFilter{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		f.exclude = append(f.exclude, re)
	}

	return f, nil
}

// match reports whether rel, a slash separated path, is a snippet.
func (f pathFilter) match(rel string) bool {
	for _, re := range f.exclude {
		if re.MatchString(rel) {
			return false
		}
	}

	for _, g := range f.include {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// Get collects snippet files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, include, exclude []string) ([]m.Snippet, error) {
	if len(roots) == 0 {
		return []m.Snippet{}, nil
	}

	filter, err := newPathFilter(include, exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var snippets []m.Snippet

	add := func(path string) error {
		if _, exists := seen[path]; exists {
			return nil
		}

		snippet, err := a.load(m.Path(path))
		if err != nil {
			return err
		}

		seen[path] = struct{}{}
		snippets = append(snippets, snippet)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		// An explicitly named file is taken as is, whatever the filters say.
		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(rootPath, path)
			if err != nil {
				return err
			}

			if !filter.match(filepath.ToSlash(rel)) {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return snippets, nil
}

func (a *LocalSourceFSAdapter) load(path m.Path) (m.Snippet, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return m.Snippet{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return m.Snippet{Path: path, Hash: HashContent(content), Content: string(content)}, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk, or from stdin for StdinPath.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	if path == m.StdinPath {
		return io.ReadAll(a.stdin)
	}

	return os.ReadFile(string(path))
}

// WriteFile writes content to path, keeping the mode of an existing file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	if path == m.StdinPath {
		return fmt.Errorf("failed to write %s: cannot write to stdin", path)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(string(path), content, mode)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// HashContent returns the SHA-256 hash of content in the format HashFile uses.
func HashContent(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
