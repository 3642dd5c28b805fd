package launcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_Select(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "first line", command: "head -n 1", want: "Editor (0x1)"},
		{name: "trims output", command: "sed -n 2p; echo '   '", want: "Music (0x2)"},
		{name: "dismissed", command: "cat >/dev/null; exit 1", want: ""},
		{name: "empty output", command: "cat >/dev/null", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewShell(tt.command).Select(context.Background(), []string{"Editor (0x1)", "Music (0x2)"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShell_Select_NoCommand(t *testing.T) {
	_, err := NewShell("  ").Select(context.Background(), []string{"a"})
	assert.Error(t, err)
}
