package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessKeyCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateAccessKeyCode()
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`, code)
		for _, ambiguous := range []string{"0", "O", "1", "I"} {
			assert.NotContains(t, code, ambiguous)
		}
		assert.False(t, seen[code], "duplicate key in 100 draws: %s", code)
		seen[code] = true
	}
}

func TestNormalizeAccessKeyCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABCD-EFGH-JKLM", "ABCD-EFGH-JKLM"},
		{"abcdefghjklm", "ABCD-EFGH-JKLM"},
		{"  abcd efgh jklm ", "ABCD-EFGH-JKLM"},
		{"abcd_efgh.jklm", "ABCD-EFGH-JKLM"},
		{"too-short", ""},
		{"", ""},
		{strings.Repeat("A", 13), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAccessKeyCode(tt.in), "input %q", tt.in)
	}
}

func TestIsValidAccessKeyFormat(t *testing.T) {
	assert.True(t, IsValidAccessKeyFormat("ABCDEFGHJKLM"))
	assert.True(t, IsValidAccessKeyFormat("ABCD-EFGH-JKLM"))
	assert.True(t, IsValidAccessKeyFormat("abcd-efgh-jklm"))
	assert.False(t, IsValidAccessKeyFormat(""))
	assert.False(t, IsValidAccessKeyFormat("ABCD-EFGH"))
	assert.False(t, IsValidAccessKeyFormat("ABCD EFGH JKLM"))
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"grace@example.com", "g***e@e******.com"},
		{"ab@example.com", "a*@e******.com"},
		{"a@example.com", "a@e******.com"},
		{"not-an-email", "not-an-email"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), "input %q", tt.in)
	}
}
