package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/transpyle/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		text   string
		want   m.Warning
	}{
		{
			name:   "go missing fmt",
			target: NewGo(),
			text:   "package main\n\nfunc main() {\n\tfmt.Println(1)\n}",
			want:   `missing import "fmt" for fmt calls`,
		},
		{
			name:   "go missing gonum stat",
			target: NewGo(),
			text:   "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc main() {\n\tfmt.Println(stat.Mean(xs, nil))\n}",
			want:   `missing import "gonum.org/v1/gonum/stat" for stat calls`,
		},
		{
			name:   "go function without error result",
			target: NewGo(),
			text:   "package main\n\nfunc half(v float64) float64 {\n\treturn v / 2\n}",
			want:   "function body present without an error result type",
		},
		{
			name:   "def residue",
			target: NewGo(),
			text:   "def f(x):\n    return x",
			want:   "untranslated function definition (def) left in output",
		},
		{
			name:   "block header residue",
			target: NewJavaScript(),
			text:   "try:\n    x = 1;",
			want:   "untranslated block header ending with ':'",
		},
		{
			name:   "print residue",
			target: NewCSharp(),
			text:   "using System;\nprint(x);",
			want:   "untranslated print() call left in output",
		},
		{
			name:   "php missing opening tag",
			target: NewPHP(),
			text:   "echo $x, PHP_EOL;",
			want:   "output call present without the <?php opening tag",
		},
		{
			name:   "php missing sigil",
			target: NewPHP(),
			text:   "<?php\n\nx = 1;",
			want:   "variable assigned without the $ sigil",
		},
		{
			name:   "php mathphp without autoload",
			target: NewPHP(),
			text:   "<?php\n\n$m = \\MathPHP\\Statistics\\Average::mean($xs);",
			want:   "MathPHP is used without the Composer autoload require",
		},
		{
			name:   "javascript loose equality",
			target: NewJavaScript(),
			text:   "if (a == b) {\n}",
			want:   "loose equality (==) used, prefer ===",
		},
		{
			name:   "javascript numjs without require",
			target: NewJavaScript(),
			text:   "let z = nj.zeros(3);",
			want:   "numjs is used without require('numjs')",
		},
		{
			name:   "csharp console without using",
			target: NewCSharp(),
			text:   "Console.WriteLine(1);",
			want:   "Console is used without 'using System;'",
		},
		{
			name:   "csharp list without generic using",
			target: NewCSharp(),
			text:   "using System;\nvar a = new List<double>();",
			want:   "missing 'using System.Collections.Generic;' for List usage",
		},
		{
			name:   "csharp linq without using",
			target: NewCSharp(),
			text:   "using System;\nvar b = a.Skip(1).ToList();",
			want:   "missing 'using System.Linq;' for Skip usage",
		},
		{
			name:   "csharp method outside class",
			target: NewCSharp(),
			text:   "using System;\n\nstatic void f() {\n}",
			want:   "method declared outside of a class",
		},
		{
			name:   "placeholders counted",
			target: NewPHP(),
			text:   "<?php\n// untranslated (a): x\n// untranslated (b): y",
			want:   "2 statements have no direct equivalent and were left as comments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.target.Validate(tt.text), tt.want)
		})
	}
}

func TestValidateClean(t *testing.T) {
	tests := []struct {
		target Target
		text   string
	}{
		{NewGo(), "package main\n\nimport (\n\t\"fmt\"\n)\n\nfunc main() {\n\tfmt.Println(1)\n}\n"},
		{NewPHP(), "<?php\n\n$x = 1;\necho $x, PHP_EOL;\n"},
		{NewJavaScript(), "'use strict';\n\nif (a === b) {\n    console.log(\"a == b\");\n}\n"},
		{NewCSharp(), "using System;\n\npublic static class Program\n{\n    public static void Main(string[] args)\n    {\n        Console.WriteLine(1);\n    }\n}\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target.ID()), func(t *testing.T) {
			warnings := tt.target.Validate(tt.text)
			assert.NotNil(t, warnings)
			assert.Empty(t, warnings)
		})
	}
}

func TestValidateCollectsEveryWarning(t *testing.T) {
	warnings := NewGo().Validate("def f(x):\n    print(np.mean(x))")

	assert.ElementsMatch(t, []m.Warning{
		"untranslated function definition (def) left in output",
		"untranslated block header ending with ':'",
		"untranslated print() call left in output",
		"numpy call left untranslated",
	}, warnings)
}
