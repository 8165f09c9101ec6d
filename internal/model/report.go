package model

// VariableEntry is one (name, kind) pair of the analysis report.
type VariableEntry struct {
	Name string    `yaml:"name"`
	Kind ValueKind `yaml:"kind"`
}

// HintEntry is one (idiom, kind) pair of the analysis report.
type HintEntry struct {
	Idiom string    `yaml:"idiom"`
	Kind  ValueKind `yaml:"kind"`
}

// AnalysisReport is the display ready flattening of a Context.
type AnalysisReport struct {
	Variables          []VariableEntry               `yaml:"variables"`
	Functions          []string                      `yaml:"functions"`
	DetectedLibraries  []Library                     `yaml:"detected_libraries"`
	DataStructureHints []HintEntry                   `yaml:"data_structure_hints"`
	HasBasicOperations bool                          `yaml:"has_basic_operations"`
	LibraryEquivalents map[Library]map[Target]string `yaml:"library_equivalents,omitempty"`
}

// TargetReport is the stored outcome of one target for one snippet.
type TargetReport struct {
	Target      Target    `yaml:"target"`
	Translation string    `yaml:"translation"`
	Warnings    []Warning `yaml:"warnings"`
	Confidence  int       `yaml:"confidence"`
}

// Report is the stored outcome of translating one snippet.
type Report struct {
	Source   Snippet        `yaml:"source"`
	Analysis AnalysisReport `yaml:"analysis"`
	Targets  []TargetReport `yaml:"targets"`
}
