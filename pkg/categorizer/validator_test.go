package categorizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	testCases := []struct {
		name           string
		candidate      string
		preventNumeric bool
		want           bool
	}{
		{"simple upper-case name", "BILLING", true, true},
		{"two-word name", "USER MANAGEMENT", true, true},
		{"minimum length", "CI", true, true},
		{"empty string", "", true, false},
		{"whitespace only", "   ", true, false},
		{"single character", "A", true, false},
		{"too long", strings.Repeat("A", 51), true, false},
		{"exactly fifty runes", strings.Repeat("A", 50), true, true},
		{"no letters at all", "---", true, false},
		{"starts with digit", "2FA", true, false},
		{"starts with punctuation", "#BILLING", true, false},
		{"version number", "2.58.0", true, false},
		{"two-part version", "1.2", true, false},
		{"issue number", "1234", true, false},
		{"hash-prefixed issue number", "#1234", true, false},
		{"mostly digits", "A1234567", true, false},
		{"letters outnumber digits", "RELEASE2024A", true, true},
		{"surrounding whitespace trimmed", "  BILLING  ", true, true},
		{"unicode letters", "FACTURACIÓN", true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidCategory(tc.candidate, tc.preventNumeric))
		})
	}
}

func TestValidCategory_NumericPolicyDisabled(t *testing.T) {
	// With the policy off, digit-heavy names pass as long as they start
	// with a letter and contain at least one letter.
	assert.True(t, ValidCategory("A1234567", false))
	assert.False(t, ValidCategory("2.58.0", false), "still rejected: starts with a digit")
	assert.False(t, ValidCategory("#1234", false), "still rejected: no leading letter")
}
