package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextAccessors(t *testing.T) {
	ctx := NewContext()
	assert.False(t, ctx.HasFunctions())
	assert.Empty(t, ctx.FunctionNames())

	ctx.Functions["zeta"] = struct{}{}
	ctx.Functions["alpha"] = struct{}{}
	ctx.DetectedLibraries[LibrarySklearn] = struct{}{}
	ctx.DetectedLibraries[LibraryNumpy] = struct{}{}
	ctx.Variables["x"] = KindInt

	assert.True(t, ctx.HasFunctions())
	assert.Equal(t, []string{"alpha", "zeta"}, ctx.FunctionNames())
	assert.Equal(t, []Library{LibraryNumpy, LibrarySklearn}, ctx.LibraryNames())
	assert.True(t, ctx.HasLibrary(LibraryNumpy))

	kind, ok := ctx.KindOf("x")
	assert.True(t, ok)
	assert.Equal(t, KindInt, kind)

	_, ok = ctx.KindOf("y")
	assert.False(t, ok)
}
