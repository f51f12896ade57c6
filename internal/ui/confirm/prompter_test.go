package confirm

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_Answers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", false},
		{"  y  \n", true},
		{"y", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			ok, err := p.Confirm(context.Background(), "Continue?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.True(t, strings.HasPrefix(out.String(), "Continue? [y/N]: "))
		})
	}
}

func TestLinePrompter_ReadsOneLinePerQuestion(t *testing.T) {
	t.Parallel()
	p := NewLinePrompter(strings.NewReader("y\nn\ny\n"), &bytes.Buffer{})

	var got []bool
	for i := 0; i < 3; i++ {
		ok, err := p.Confirm(context.Background(), "q")
		require.NoError(t, err)
		got = append(got, ok)
	}
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestLinePrompter_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLinePrompter(strings.NewReader("y\n"), &bytes.Buffer{}).Confirm(ctx, "q")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewPrompter_NonTerminal(t *testing.T) {
	t.Parallel()
	f, err := os.Create(filepath.Join(t.TempDir(), "answers"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.IsType(t, &LinePrompter{}, NewPrompter(f, &bytes.Buffer{}))
	assert.IsType(t, &LinePrompter{}, NewPrompter(nil, &bytes.Buffer{}))
}
