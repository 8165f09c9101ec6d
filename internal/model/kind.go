package model

// ValueKind is the abstract type tag the analyzer assigns to a variable.
type ValueKind string

const (
	KindInt     ValueKind = "int"
	KindFloat   ValueKind = "float"
	KindString  ValueKind = "string"
	KindList    ValueKind = "list"
	KindArray   ValueKind = "array"
	KindBool    ValueKind = "bool"
	KindUnknown ValueKind = "unknown"
)

// Kinds lists every value kind.
var Kinds = []ValueKind{KindInt, KindFloat, KindString, KindList, KindArray, KindBool, KindUnknown}

// Library identifies one entry of the closed library vocabulary.
type Library string

const (
	// LibraryNumpy is the numeric-array library.
	LibraryNumpy Library = "numpy"
	// LibrarySklearn is the preprocessing library.
	LibrarySklearn Library = "sklearn"
)

// Libraries lists the whole vocabulary in display order.
var Libraries = []Library{LibraryNumpy, LibrarySklearn}
