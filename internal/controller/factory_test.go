package controller

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeAuto},
		{"auto", ModeAuto},
		{" Plain ", ModePlain},
		{"INTERACTIVE", ModeInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMode("fancy")
	assert.ErrorContains(t, err, `unknown ui mode "fancy"`)
}

func TestNewUI(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetIn(strings.NewReader("x = 1\n"))

		return cmd
	}

	t.Run("interactive", func(t *testing.T) {
		assert.IsType(t, &TUI{}, NewUI(newCmd(), ModeInteractive))
	})

	t.Run("plain", func(t *testing.T) {
		assert.IsType(t, &SimpleUI{}, NewUI(newCmd(), ModePlain))
	})

	t.Run("auto falls back to plain off a terminal", func(t *testing.T) {
		assert.IsType(t, &SimpleUI{}, NewUI(newCmd(), ModeAuto))
	})
}

func TestIsTTY(t *testing.T) {
	regular, err := os.CreateTemp(t.TempDir(), "snippet-*.py")
	require.NoError(t, err)
	t.Cleanup(func() { regular.Close() })

	assert.False(t, IsTTY(regular), "regular file")
	assert.False(t, IsTTY(&bytes.Buffer{}), "buffer")
	assert.False(t, IsTTY(strings.NewReader("")), "reader")

	closed, err := os.CreateTemp(t.TempDir(), "closed-*.py")
	require.NoError(t, err)
	require.NoError(t, closed.Close())
	assert.False(t, IsTTY(closed), "closed file")

	null, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("%s not available", os.DevNull)
	}
	defer null.Close()

	assert.True(t, IsTTY(null), "null device is a character device")
}
