package adapter

import (
	"fmt"
	"go/parser"
	"go/token"
)

// GoSyntaxAdapter parses generated Go output so strict runs can flag
// translations that would not compile at all.
type GoSyntaxAdapter interface {
	// Check returns the first syntax error found in src, or nil.
	Check(src string) error
}

// LocalGoSyntaxAdapter provides a GoSyntaxAdapter backed by go/parser.
type LocalGoSyntaxAdapter struct{}

// NewLocalGoSyntaxAdapter constructs a LocalGoSyntaxAdapter.
func NewLocalGoSyntaxAdapter() *LocalGoSyntaxAdapter {
	return &LocalGoSyntaxAdapter{}
}

// Check parses src as a complete Go file.
func (a *LocalGoSyntaxAdapter) Check(src string) error {
	fileSet := token.NewFileSet()

	if _, err := parser.ParseFile(fileSet, "translation.go", src, parser.AllErrors); err != nil {
		return fmt.Errorf("failed to parse Go translation: %w", err)
	}

	return nil
}
