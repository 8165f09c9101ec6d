package model

import "sort"

// Context is the result of one analysis pass over a snippet. It is built
// once by the analyzer and only read afterwards.
type Context struct {
	Variables          map[string]ValueKind
	Functions          map[string]struct{}
	DetectedLibraries  map[Library]struct{}
	DataStructureHints map[string]ValueKind
	HasBasicOperations bool
}

// NewContext returns an empty Context with all maps allocated.
func NewContext() Context {
	return Context{
		Variables:          make(map[string]ValueKind),
		Functions:          make(map[string]struct{}),
		DetectedLibraries:  make(map[Library]struct{}),
		DataStructureHints: make(map[string]ValueKind),
	}
}

// KindOf returns the inferred kind of a variable and whether it is known.
func (c Context) KindOf(name string) (ValueKind, bool) {
	kind, ok := c.Variables[name]
	return kind, ok
}

// HasLibrary reports whether lib was detected.
func (c Context) HasLibrary(lib Library) bool {
	_, ok := c.DetectedLibraries[lib]
	return ok
}

// HasFunctions reports whether at least one function definition was found.
func (c Context) HasFunctions() bool {
	return len(c.Functions) > 0
}

// FunctionNames returns the detected function names sorted.
func (c Context) FunctionNames() []string {
	names := make([]string, 0, len(c.Functions))
	for name := range c.Functions {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// LibraryNames returns the detected libraries sorted.
func (c Context) LibraryNames() []Library {
	libs := make([]Library, 0, len(c.DetectedLibraries))
	for lib := range c.DetectedLibraries {
		libs = append(libs, lib)
	}

	sort.Slice(libs, func(i, j int) bool { return libs[i] < libs[j] })

	return libs
}
