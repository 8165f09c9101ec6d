// Package model defines the data structures shared by the analyzer, the
// target translators and the outer adapters.
package model

// Path represents a file system path.
type Path string

// StdinPath is the pseudo path used when a snippet is read from standard input.
const StdinPath Path = "-"

// Snippet is a single source snippet together with where it came from.
type Snippet struct {
	Path    Path   `yaml:"path"`
	Hash    string `yaml:"hash"`
	Content string `yaml:"content"`
}
