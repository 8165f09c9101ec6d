package targets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/transpyle/internal/model"
)

const splitSource = `def split(prices, window_size):
    a, b = [], []
    for i in range(window_size):
        a.append(prices[i])
    b = prices[window_size:]
    return a, b`

func splitContext() m.Context {
	ctx := m.NewContext()
	ctx.Functions["split"] = struct{}{}
	ctx.Variables["b"] = m.KindUnknown

	return ctx
}

func numpyContext() m.Context {
	ctx := m.NewContext()
	ctx.Variables["values"] = m.KindArray
	ctx.Variables["avg"] = m.KindUnknown
	ctx.DetectedLibraries[m.LibraryNumpy] = struct{}{}
	ctx.DataStructureHints["np.array"] = m.KindArray

	return ctx
}

func TestOutputCallAppearsOncePerTarget(t *testing.T) {
	tokens := map[m.Target]string{
		m.TargetGo:         "fmt.Println",
		m.TargetPHP:        "echo",
		m.TargetJavaScript: "console.log",
		m.TargetCSharp:     "Console.WriteLine",
	}

	for _, target := range All() {
		t.Run(string(target.ID()), func(t *testing.T) {
			out := target.Translate(`print("hi")`, m.NewContext())

			assert.Equal(t, 1, strings.Count(out, tokens[target.ID()]), out)
			assert.Contains(t, out, `"hi"`)
			assert.NotContains(t, out, "print(")
			assert.Empty(t, target.Validate(out))
		})
	}
}

func TestDualEmptyCollectionInit(t *testing.T) {
	want := map[m.Target][2]string{
		m.TargetGo:         {"a := []float64{}", "b := []float64{}"},
		m.TargetPHP:        {"$a = [];", "$b = [];"},
		m.TargetJavaScript: {"let a = [];", "let b = [];"},
		m.TargetCSharp:     {"var a = new List<double>();", "var b = new List<double>();"},
	}

	for _, target := range All() {
		t.Run(string(target.ID()), func(t *testing.T) {
			out := target.Translate("a, b = [], []", m.NewContext())
			decls := want[target.ID()]

			first := strings.Index(out, decls[0])
			second := strings.Index(out, decls[1])

			require.NotEqual(t, -1, first, out)
			require.NotEqual(t, -1, second, out)
			assert.Less(t, first, second)
			assert.Empty(t, target.Validate(out))
		})
	}
}

func TestTranslateFunction(t *testing.T) {
	tests := []struct {
		target   Target
		want     string
		warnings []m.Warning
	}{
		{
			target: NewGo(),
			want: `package main

import (
	"fmt"
)

func split(prices []float64, window_size int) ([]float64, []float64, error) {
    a := []float64{}
    b := []float64{}
    for i := 0; i < window_size; i++ {
        a = append(a, prices[i])
    }
    b = prices[window_size:]
    return a, b, nil
}
`,
			warnings: []m.Warning{},
		},
		{
			target: NewPHP(),
			want: `<?php

function split(array $prices, int $window_size): array {
    $a = [];
    $b = [];
    for ($i = 0; $i < $window_size; $i++) {
        $a[] = $prices[$i];
    }
    $b = array_slice($prices, $window_size);
    return [$a, $b];
}
`,
			warnings: []m.Warning{},
		},
		{
			target: NewJavaScript(),
			want: `'use strict';

/**
 * @param {number[]} prices
 * @param {number} window_size
 * @returns {Array}
 */
function split(prices, window_size) {
    let a = [];
    let b = [];
    for (let i = 0; i < window_size; i++) {
        a.push(prices[i]);
    }
    b = prices.slice(window_size);
    return [a, b];
}
`,
			warnings: []m.Warning{},
		},
		{
			target: NewCSharp(),
			want: `using System;
using System.Collections.Generic;
using System.Linq;

static (List<double>, List<double>) split(double[] prices, int window_size) {
    var a = new List<double>();
    var b = new List<double>();
    for (int i = 0; i < window_size; i++) {
        a.Add(prices[i]);
    }
    b = prices.Skip(window_size).ToList();
    return (a, b);
}
`,
			warnings: []m.Warning{"method declared outside of a class"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.target.ID()), func(t *testing.T) {
			out := tt.target.Translate(splitSource, splitContext())

			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.warnings, tt.target.Validate(out))
		})
	}
}

func TestTranslateNumpyIdioms(t *testing.T) {
	source := "import numpy as np\nvalues = np.array([1.0, 2.5])\navg = np.mean(values)\nprint(avg)"

	tests := []struct {
		target Target
		want   []string
	}{
		{NewGo(), []string{`"gonum.org/v1/gonum/stat"`, "values := []float64{1.0, 2.5}", "avg := stat.Mean(values, nil)", "func main() {"}},
		{NewPHP(), []string{"require_once __DIR__ . '/vendor/autoload.php';", "$values = [1.0, 2.5];", `$avg = \MathPHP\Statistics\Average::mean($values);`, "main();"}},
		{NewJavaScript(), []string{"const nj = require('numjs');", "let values = nj.array([1.0, 2.5]);", "let avg = nj.array(values).mean();"}},
		{NewCSharp(), []string{"using MathNet.Numerics.Statistics;", "var values = new double[] { 1.0, 2.5 };", "var avg = Statistics.Mean(values);", "public static void Main(string[] args)"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.target.ID()), func(t *testing.T) {
			out := tt.target.Translate(source, numpyContext())

			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}

			assert.NotContains(t, out, "np.")
			assert.NotContains(t, out, "import numpy")
			assert.Empty(t, tt.target.Validate(out))
		})
	}
}

func TestNumpyIdiomsRequireDetection(t *testing.T) {
	out := NewGo().Translate("avg = np.mean(values)", m.NewContext())

	assert.Contains(t, out, "np.mean(values)")
	assert.Contains(t, NewGo().Validate(out), m.Warning("numpy call left untranslated"))
}

func TestTranslateSklearnPlaceholder(t *testing.T) {
	ctx := m.NewContext()
	ctx.Variables["scaler"] = m.KindUnknown
	ctx.DetectedLibraries[m.LibrarySklearn] = struct{}{}

	tests := []struct {
		target Target
		want   string
	}{
		{NewGo(), "// untranslated (sklearn has no direct Go equivalent, see github.com/sjwhitworth/golearn): scaler := MinMaxScaler()"},
		{NewPHP(), "// untranslated (sklearn has no direct PHP equivalent, see php-ai/php-ml): scaler = MinMaxScaler()"},
		{NewJavaScript(), "// untranslated (sklearn has no direct JavaScript equivalent, see ml-preprocess): let scaler = MinMaxScaler()"},
		{NewCSharp(), "// untranslated (sklearn has no direct C# equivalent, see Not available): var scaler = MinMaxScaler()"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target.ID()), func(t *testing.T) {
			out := tt.target.Translate("scaler = MinMaxScaler()", ctx)

			assert.Contains(t, out, tt.want)
			assert.Contains(t, tt.target.Validate(out),
				m.Warning("1 statement has no direct equivalent and was left as a comment"))
		})
	}
}

func TestTranslateConditionals(t *testing.T) {
	source := "x = 3\ndone = False\nif x > 1 and not done:\n    y = 1\nelif x == 0:\n    y = 2\nelse:\n    y = None\nwhile y < 10:\n    y = y + 1"

	want := map[m.Target][]string{
		m.TargetGo:         {"if x > 1 && !done {", "} else if x == 0 {", "} else {", "y = nil", "for y < 10 {"},
		m.TargetPHP:        {"if ($x > 1 && !$done) {", "} elseif ($x == 0) {", "} else {", "$y = null;", "while ($y < 10) {"},
		m.TargetJavaScript: {"if (x > 1 && !done) {", "} else if (x == 0) {", "} else {", "y = null;", "while (y < 10) {"},
		m.TargetCSharp:     {"if (x > 1 && !done) {", "} else if (x == 0) {", "} else {", "y = null;", "while (y < 10) {"},
	}

	for _, target := range All() {
		t.Run(string(target.ID()), func(t *testing.T) {
			out := target.Translate(source, m.NewContext())

			for _, w := range want[target.ID()] {
				assert.Contains(t, out, w)
			}

			assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"), out)
		})
	}
}

func TestBraceBalanceAfterRepair(t *testing.T) {
	sources := []string{
		splitSource,
		"for i in range(3):\n    for j in range(1, 4):\n        print(i, j)",
		"items = [1, 2, 3]\nfor item in items:\n    if item > 1:\n        print(item)",
		"def f(data):\n    if data:\n        return data[1:]\n",
		"while True:\n\tx = 1",
	}

	for _, target := range All() {
		for i, source := range sources {
			out := target.Translate(source, m.NewContext())
			assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"),
				"target %s source %d:\n%s", target.ID(), i, out)
		}
	}
}

func TestTranslateIsDeterministic(t *testing.T) {
	for _, target := range All() {
		t.Run(string(target.ID()), func(t *testing.T) {
			first := target.Translate(splitSource, splitContext())

			for i := 0; i < 5; i++ {
				assert.Equal(t, first, target.Translate(splitSource, splitContext()))
			}
		})
	}
}

func TestTranslateIsTotal(t *testing.T) {
	inputs := []string{
		"def broken(:\n  ]]]\n",
		"print(",
		"\"unterminated",
		"x = = = 1",
		"}}}{{{",
	}

	for _, target := range All() {
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				_ = target.Validate(target.Translate(in, m.NewContext()))
			})
		}
	}
}

func TestByID(t *testing.T) {
	for _, id := range m.Targets {
		target := ByID(id)
		require.NotNil(t, target)
		assert.Equal(t, id, target.ID())
	}

	assert.Nil(t, ByID(m.Target("cobol")))
}

func TestTranslateSliceBoundsFromEnd(t *testing.T) {
	sources := []string{"y = x[-2:]", "y = x[1:-1]", "y = x[:-1]", "y = x[-3:5]"}

	want := map[m.Target][]string{
		m.TargetGo: {"x[len(x)-2:]", "x[1:len(x)-1]", "x[:len(x)-1]", "x[len(x)-3:5]"},
		m.TargetPHP: {
			"array_slice($x, -2)",
			"array_slice($x, 1, -1)",
			"array_slice($x, 0, -1)",
			"array_slice($x, max(0, count($x) - 3), max(0, 5 - max(0, count($x) - 3)))",
		},
		m.TargetJavaScript: {"x.slice(-2)", "x.slice(1, -1)", "x.slice(0, -1)", "x.slice(-3, 5)"},
		m.TargetCSharp: {
			"x.TakeLast(2).ToList()",
			"x.Skip(1).SkipLast(1).ToList()",
			"x.SkipLast(1).ToList()",
			"x.Take(5).Skip(x.Count() - 3).ToList()",
		},
	}

	ctx := m.NewContext()
	ctx.Variables["x"] = m.KindArray
	ctx.Variables["y"] = m.KindUnknown

	for _, target := range All() {
		for i, source := range sources {
			t.Run(string(target.ID())+" "+source, func(t *testing.T) {
				out := target.Translate(source, ctx)

				assert.Contains(t, out, want[target.ID()][i])
				assert.NotContains(t, out, "Skip(-")
				assert.NotContains(t, out, "Take(-")
			})
		}
	}
}
