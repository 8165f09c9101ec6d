package targets

import m "github.com/mouse-blink/transpyle/internal/model"

// NotAvailable is returned by LibraryEquivalent when a library has no
// counterpart in a target.
const NotAvailable = "Not available"

var typeTable = map[m.Target]map[m.ValueKind]string{
	m.TargetGo: {
		m.KindInt:     "int",
		m.KindFloat:   "float64",
		m.KindString:  "string",
		m.KindList:    "[]float64",
		m.KindArray:   "[]float64",
		m.KindBool:    "bool",
		m.KindUnknown: "interface{}",
	},
	m.TargetPHP: {
		m.KindInt:     "int",
		m.KindFloat:   "float",
		m.KindString:  "string",
		m.KindList:    "array",
		m.KindArray:   "array",
		m.KindBool:    "bool",
		m.KindUnknown: "mixed",
	},
	m.TargetJavaScript: {
		m.KindInt:     "number",
		m.KindFloat:   "number",
		m.KindString:  "string",
		m.KindList:    "Array",
		m.KindArray:   "number[]",
		m.KindBool:    "boolean",
		m.KindUnknown: "any",
	},
	m.TargetCSharp: {
		m.KindInt:     "int",
		m.KindFloat:   "double",
		m.KindString:  "string",
		m.KindList:    "List<double>",
		m.KindArray:   "double[]",
		m.KindBool:    "bool",
		m.KindUnknown: "object",
	},
}

var libraryTable = map[m.Library]map[m.Target]string{
	m.LibraryNumpy: {
		m.TargetGo:         "gonum.org/v1/gonum/mat",
		m.TargetPHP:        "markrogoyski/math-php",
		m.TargetJavaScript: "numjs",
		m.TargetCSharp:     "MathNet.Numerics",
	},
	m.LibrarySklearn: {
		m.TargetGo:         "github.com/sjwhitworth/golearn",
		m.TargetPHP:        "php-ai/php-ml",
		m.TargetJavaScript: "ml-preprocess",
	},
}

// TypeName maps a value kind to the type name used by target. Unknown
// targets or kinds map to the target's unknown type, or "" for an unknown
// target.
func TypeName(target m.Target, kind m.ValueKind) string {
	types, ok := typeTable[target]
	if !ok {
		return ""
	}

	if name, ok := types[kind]; ok {
		return name
	}

	return types[m.KindUnknown]
}

// LibraryEquivalent returns the package a target uses in place of lib.
func LibraryEquivalent(lib m.Library, target m.Target) string {
	if name, ok := libraryTable[lib][target]; ok {
		return name
	}

	return NotAvailable
}
