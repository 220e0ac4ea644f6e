package categorizer

import (
	"regexp"
	"strings"
	"unicode"
)

// versionPattern matches version-number shapes like 1.2 or 2.58.0.
var versionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// issueNumberPattern matches bare or hash-prefixed issue numbers like 1234 or #1234.
var issueNumberPattern = regexp.MustCompile(`^#?\d+$`)

// ValidCategory decides whether a candidate category name is acceptable.
// LLMs routinely hallucinate issue numbers, version tags or years as
// categories; when preventNumeric is on (the default policy) those shapes
// are rejected so they never pollute the category taxonomy.
func ValidCategory(candidate string, preventNumeric bool) bool {
	name := strings.TrimSpace(candidate)
	if name == "" {
		return false
	}
	runes := []rune(name)
	if len(runes) < 2 || len(runes) > 50 {
		return false
	}

	hasLetter := false
	digits := 0
	for _, r := range runes {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if !hasLetter {
		return false
	}
	if !unicode.IsLetter(runes[0]) {
		return false
	}

	if preventNumeric {
		if versionPattern.MatchString(name) || issueNumberPattern.MatchString(name) {
			return false
		}
		if digits*2 >= len(runes) {
			return false
		}
	}
	return true
}
