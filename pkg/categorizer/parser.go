package categorizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/neurosnap/sentences"
)

const (
	defaultConfidence     = 50
	defaultBusinessImpact = 100
	defaultReason         = "No reason provided"
	maxDescriptionSents   = 4
)

// Label matching is case-insensitive. The category pattern deliberately
// accepts leading digits, '#' and punctuation so that rejection is the
// validator's job, not the regex's.
var (
	categoryRe       = regexp.MustCompile(`(?i)CATEGORY\s*:\s*([^\n]+)`)
	confidenceRe     = regexp.MustCompile(`(?i)CONFIDENCE\s*:\s*(\d+)`)
	businessImpactRe = regexp.MustCompile(`(?i)BUSINESS_IMPACT\s*:\s*(\d+)`)
	reasonRe         = regexp.MustCompile(`(?i)REASON\s*:\s*(.+)`)
	descriptionRe    = regexp.MustCompile(`(?is)DESCRIPTION\s*:\s*(.+?)(?:\n\s*\n|$)`)
)

// ParseResponse extracts a structured Result from the raw model response.
// All five fields are extracted independently; only the category is
// mandatory. The returned error is always a *ParseError.
func ParseResponse(raw string, preventNumeric bool) (Result, error) {
	m := categoryRe.FindStringSubmatch(raw)
	if m == nil {
		return Result{}, &ParseError{Msg: "could not extract category from response"}
	}
	category := strings.ToUpper(strings.TrimSpace(m[1]))
	if !ValidCategory(category, preventNumeric) {
		return Result{}, &ParseError{
			Msg: fmt.Sprintf("invalid category generated by LLM: %q (failed validation)", category),
		}
	}

	res := Result{
		Category:       category,
		Confidence:     extractScore(confidenceRe, raw, defaultConfidence),
		BusinessImpact: extractScore(businessImpactRe, raw, defaultBusinessImpact),
		Reason:         defaultReason,
	}

	if m := reasonRe.FindStringSubmatch(raw); m != nil {
		reason := m[1]
		// The reason runs to the end of the line, or to an inlined
		// DESCRIPTION label when the model crams both onto one line.
		if idx := strings.Index(strings.ToUpper(reason), "DESCRIPTION:"); idx >= 0 {
			reason = reason[:idx]
		}
		if reason = strings.TrimSpace(reason); reason != "" {
			res.Reason = reason
		}
	}

	if m := descriptionRe.FindStringSubmatch(raw); m != nil {
		res.Description = clampSentences(strings.TrimSpace(m[1]), maxDescriptionSents)
	}

	return res, nil
}

func extractScore(re *regexp.Regexp, raw string, fallback int) int {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return clampScore(n)
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// clampSentences keeps at most max sentences of text. Models asked for a
// 2-4 sentence description occasionally ramble on; everything past the
// fourth sentence is dropped.
func clampSentences(text string, max int) string {
	if text == "" {
		return ""
	}
	tokenizer := sentences.NewSentenceTokenizer(nil)
	if tokenizer == nil {
		return text
	}
	sents := tokenizer.Tokenize(text)
	if len(sents) <= max {
		return text
	}
	var kept []string
	for _, s := range sents[:max] {
		kept = append(kept, strings.TrimSpace(s.Text))
	}
	return strings.Join(kept, " ")
}
