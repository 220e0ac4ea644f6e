package categorizer

import (
	"fmt"
	"strings"
)

const (
	notAvailableSentinel = "(not available)"
	noCategoriesSentinel = "(none yet - you can create the first one)"
	truncatedAnnotation  = "[TRUNCATED TO 10KB]"
)

// BuildPrompt renders the commit context and the known categories into a
// provider-agnostic instruction prompt. The response-format block at the end
// is a contract with ParseResponse and must not be reworded.
func BuildPrompt(commit CommitContext, existingCategories []string) string {
	var b strings.Builder

	b.WriteString("Analyze this git commit and assign a business-domain category.\n\n")
	fmt.Fprintf(&b, "Commit: %s\n", commit.Hash)
	fmt.Fprintf(&b, "Subject: %s\n\n", commit.Subject)

	b.WriteString("Files changed:\n")
	if len(commit.Files) == 0 {
		b.WriteString(notAvailableSentinel + "\n")
	} else {
		for _, f := range commit.Files {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	b.WriteString("\nDiff:\n")
	if commit.Diff == "" {
		b.WriteString(notAvailableSentinel + "\n")
	} else {
		if commit.DiffTruncated {
			b.WriteString(truncatedAnnotation + "\n")
		}
		b.WriteString(commit.Diff)
		if !strings.HasSuffix(commit.Diff, "\n") {
			b.WriteString("\n")
		}
	}

	b.WriteString("\nExisting categories: ")
	if len(existingCategories) == 0 {
		b.WriteString(noCategoriesSentinel)
	} else {
		b.WriteString(strings.Join(existingCategories, ", "))
	}
	b.WriteString("\n\n")

	b.WriteString(`Instructions:
1. Prefer one of the existing categories when it fits this commit.
2. If none fits, create a new category: short, UPPER CASE, business-focused (e.g. BILLING, SECURITY).
3. Categories must start with a letter. Never use version numbers, issue numbers or years as categories.
4. CONFIDENCE is an integer between 0 and 100.
5. BUSINESS_IMPACT is an integer between 0 and 100: 0-30 for configuration and chores, 31-60 for refactoring and maintenance, 61-100 for features, bug fixes and security work. Default to 100 when unsure.
6. DESCRIPTION is a 2-4 sentence summary of what the commit changes and why it matters.

Respond EXACTLY in this format:
CATEGORY: <category name>
CONFIDENCE: <0-100>
BUSINESS_IMPACT: <0-100>
REASON: <one line explanation>
DESCRIPTION: <2-4 sentence summary>
`)

	return b.String()
}
