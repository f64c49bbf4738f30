package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	got, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, got, 16)
	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerate_DefaultsLength(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)

	got, err = Generate(-5)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		got := MustGenerate(DefaultLength)
		assert.False(t, seen[got], "duplicate ID generated: %s", got)
		seen[got] = true
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixComment, 8)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "cm_"))
	assert.Len(t, got, len("cm_")+8)
}

func TestParsePrefixedID(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
		wantShort  string
		wantErr    bool
	}{
		{name: "valid", input: "cm_abc123", wantPrefix: "cm", wantShort: "abc123"},
		{name: "underscore in short id", input: "at_ab_cd", wantPrefix: "at", wantShort: "ab_cd"},
		{name: "no separator", input: "abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, shortID, err := ParsePrefixedID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantShort, shortID)
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("ev_xyz", PrefixAuditEvent))
	assert.Error(t, ValidatePrefix("cm_xyz", PrefixAuditEvent))
	assert.Error(t, ValidatePrefix("malformed", PrefixAuditEvent))
}

func TestEntityIDConstructors(t *testing.T) {
	commentID, err := NewCommentID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(commentID, "cm_"))

	attachmentID, err := NewAttachmentID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(attachmentID, "at_"))

	eventID, err := NewAuditEventID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(eventID, "ev_"))

	assert.True(t, strings.HasPrefix(NewRequestID(), "req_"))
}
