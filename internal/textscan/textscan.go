// Package textscan scores posting text against known scam phrasings.
// Analysis is pure and deterministic: no I/O, no error conditions.
package textscan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/jobshield/internal/types"
)

// scamPattern pairs a compiled expression with a short human-readable label.
// The label, not the raw regex, appears in evidence strings.
type scamPattern struct {
	re    *regexp.Regexp
	label string
}

// Ordered list of scam-indicative phrasings. Order is part of the contract:
// evidence strings identify patterns by index.
var scamPatterns = []scamPattern{
	{regexp.MustCompile(`work\s*from\s*home.{0,40}\$\s*\d{3,}[\s,./-]*(per\s*week|/\s*week|weekly|a\s*week)`), "work-from-home with high weekly pay"},
	{regexp.MustCompile(`(urgent(ly)?|immediate)\s*(start|hiring|opening)`), "urgent or immediate start"},
	{regexp.MustCompile(`(pay|send|transfer).{0,30}(training|starter|registration|application)\s*(fee|kit|cost)`), "upfront training fee"},
	{regexp.MustCompile(`(wire\s*transfer|western\s*union|moneygram|money\s*order)`), "wire-transfer payment method"},
	{regexp.MustCompile(`(package|parcel)\s*(forwarding|reshipping|processing)`), "package-forwarding scheme"},
	{regexp.MustCompile(`(mystery|secret)\s*shopper`), "mystery-shopper scheme"},
	{regexp.MustCompile(`no\s*(experience|skills?)\s*(needed|necessary|required)`), "no experience required"},
	{regexp.MustCompile(`(earn|make)\s*\$\s*\d{3,}.{0,20}(per\s*(day|week)|daily|weekly)`), "unrealistic earnings claim"},
}

// urgencyWords are counted individually; more than two occurrences is
// treated as artificial pressure.
var urgencyWords = []string{"urgent", "immediate", "asap", "today only", "limited time"}

// grammarErrors are common misspellings and usage errors that correlate with
// low-effort scam postings.
var grammarErrors = []string{"recieve", "seperate", "definately", "oppurtunity", "your hired", "alot of", "payed"}

const (
	patternIncrement = 0.3
	urgencyIncrement = 0.2
	grammarIncrement = 0.15

	urgencyThreshold = 2
	grammarThreshold = 3
)

// Analyze scores the posting's title and description against the known scam
// indicators and returns the clamped sub-signal with its evidence trail.
func Analyze(title, description string) types.TextSignal {
	text := strings.ToLower(title + " " + description)

	score := 0.0
	var matched []string

	for i, p := range scamPatterns {
		if p.re.MatchString(text) {
			score += patternIncrement
			matched = append(matched, fmt.Sprintf("scam pattern %d: %s", i+1, p.label))
		}
	}

	urgencyCount := 0
	for _, word := range urgencyWords {
		urgencyCount += strings.Count(text, word)
	}
	if urgencyCount > urgencyThreshold {
		score += urgencyIncrement
		matched = append(matched, "excessive artificial urgency")
	}

	grammarCount := 0
	for _, phrase := range grammarErrors {
		grammarCount += strings.Count(text, phrase)
	}
	if grammarCount > grammarThreshold {
		score += grammarIncrement
		matched = append(matched, "multiple grammar issues")
	}

	return types.TextSignal{
		Score:           clamp01(score),
		Confidence:      0.8,
		MatchedPatterns: matched,
	}
}

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
