package gitsource

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogOutput(t *testing.T) {
	out := strings.Join([]string{
		"abc123\x1fFix rounding in invoices\x1fAlice\x1f2025-06-01T10:30:00+02:00",
		"def456\x1fAdd search endpoint\x1fBob\x1f2025-05-30T08:00:00Z",
	}, "\n")

	commits, err := parseLogOutput(out)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, "abc123", commits[0].Hash)
	assert.Equal(t, "Fix rounding in invoices", commits[0].Subject)
	assert.Equal(t, "Alice", commits[0].Author)
	assert.Equal(t, 2025, commits[0].CommittedAt.Year())

	want, _ := time.Parse(time.RFC3339, "2025-05-30T08:00:00Z")
	assert.True(t, commits[1].CommittedAt.Equal(want))
}

func TestParseLogOutput_EmptyAndMalformed(t *testing.T) {
	commits, err := parseLogOutput("")
	require.NoError(t, err)
	assert.Empty(t, commits)

	_, err = parseLogOutput("not a log line")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected git log line")

	_, err = parseLogOutput("abc\x1fsubject\x1fauthor\x1fnot-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected commit date")
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a.go", "b.go"}, splitLines("a.go\n\n  b.go  \n"))
	assert.Empty(t, splitLines("\n\n"))
}

func TestTruncate(t *testing.T) {
	t.Run("below limit untouched", func(t *testing.T) {
		out, truncated := truncate("short diff", 100)
		assert.Equal(t, "short diff", out)
		assert.False(t, truncated)
	})

	t.Run("cut backs up to previous newline", func(t *testing.T) {
		s := "line one\nline two\nline three"
		out, truncated := truncate(s, len("line one\nline tw"))
		assert.Equal(t, "line one", out)
		assert.True(t, truncated)
	})

	t.Run("no newline before limit cuts mid-line", func(t *testing.T) {
		out, truncated := truncate("abcdefghij", 5)
		assert.Equal(t, "abcde", out)
		assert.True(t, truncated)
	})

	t.Run("zero limit disables truncation", func(t *testing.T) {
		out, truncated := truncate("anything", 0)
		assert.Equal(t, "anything", out)
		assert.False(t, truncated)
	})
}
