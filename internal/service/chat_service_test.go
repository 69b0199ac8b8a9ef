package service

import (
	"strings"
	"sync"
	"testing"

	"collegeplan-be/internal/constant"
	"collegeplan-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveSessionTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short message kept as-is",
			content: "Help with essays",
			want:    "Help with essays",
		},
		{
			name:    "whitespace trimmed",
			content: "  Help with essays  ",
			want:    "Help with essays",
		},
		{
			name:    "empty falls back to default",
			content: "   ",
			want:    constant.DefaultSessionTitle,
		},
		{
			name:    "long message truncated with ellipsis",
			content: "I would like some detailed advice about choosing between liberal arts colleges",
			want:    "I would like some detailed adv...",
		},
		{
			name:    "exactly thirty runes not truncated",
			content: strings.Repeat("a", 30),
			want:    strings.Repeat("a", 30),
		},
		{
			name:    "multibyte runes counted as runes",
			content: strings.Repeat("学", 40),
			want:    strings.Repeat("学", 30) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSessionTitle(tt.content))
		})
	}
}

func TestNormalizeMessageContent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "clean message untouched",
			raw:  "Help with essays",
			want: "Help with essays",
		},
		{
			name: "truncation artifact stripped",
			raw:  "My Essay Question...",
			want: "My Essay Question",
		},
		{
			name: "artifact with trailing whitespace stripped",
			raw:  "My Essay Question...  ",
			want: "My Essay Question",
		},
		{
			name: "message that is only the artifact kept as sent",
			raw:  "...",
			want: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMessageContent(tt.raw))
		})
	}

	// The title of a fresh session comes from the cleaned content, so a
	// client truncation artifact never gets frozen into it.
	assert.Equal(t, "My Essay Question",
		DeriveSessionTitle(NormalizeMessageContent("My Essay Question...")))
}

func TestSessionLockLifecycle(t *testing.T) {
	s := &chatService{sessionLocks: make(map[uuid.UUID]*sync.Mutex)}
	id := uuid.New()

	// Same session yields the same mutex, distinct sessions get their own.
	first := s.lockSession(id)
	assert.Same(t, first, s.lockSession(id))
	assert.NotSame(t, first, s.lockSession(uuid.New()))

	// Deleting a session releases its lock entry instead of leaking it.
	s.releaseSessionLock(id)
	assert.NotContains(t, s.sessionLocks, id)
	assert.NotSame(t, first, s.lockSession(id))

	// Releasing an unknown session is a no-op.
	s.releaseSessionLock(uuid.New())
}

func TestAppendSources(t *testing.T) {
	t.Run("no citations leaves text untouched", func(t *testing.T) {
		assert.Equal(t, "answer", AppendSources("answer", nil))
	})

	t.Run("citations rendered as numbered markdown list", func(t *testing.T) {
		out := AppendSources("answer", []llm.Citation{
			{Title: "MIT Admissions", URL: "https://mitadmissions.org"},
			{Title: "", URL: "https://example.com/stats", Snippet: "Acceptance rates over time."},
		})

		assert.Contains(t, out, "answer\n\n**Sources:**\n")
		assert.Contains(t, out, "1. [MIT Admissions](https://mitadmissions.org)")
		// Title falls back to the URL when missing.
		assert.Contains(t, out, "2. [https://example.com/stats](https://example.com/stats)")
		assert.Contains(t, out, "   Acceptance rates over time.")
	})
}
