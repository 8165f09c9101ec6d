package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGoSyntaxAdapter_Check(t *testing.T) {
	t.Parallel()

	adapter := NewLocalGoSyntaxAdapter()

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "valid program",
			src:  "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tx := 5\n\tfmt.Println(x)\n}\n",
		},
		{
			name:    "untranslated python",
			src:     "package main\n\nfunc main() {\n\tdef f(a):\n}\n",
			wantErr: true,
		},
		{
			name:    "missing package clause",
			src:     "x := 5\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adapter.Check(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to parse Go translation")

				return
			}

			assert.NoError(t, err)
		})
	}
}
