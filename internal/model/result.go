package model

// Warning is an advisory diagnostic produced by a target validator.
type Warning string

// Result bundles everything derived from one snippet.
type Result struct {
	Source       string
	Context      Context
	Translations map[Target]string
	Warnings     map[Target][]Warning
}

// Confidence derives the score for target from its current warnings.
func (r Result) Confidence(target Target) int {
	return Score(r.Warnings[target])
}
