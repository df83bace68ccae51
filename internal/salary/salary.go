// Package salary checks whether a stated salary is plausible for the
// seniority tier inferred from the job title. Analysis is pure: identical
// inputs always yield identical signals.
package salary

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/jobshield/internal/types"
)

// Tier is the inferred seniority level of a posting.
type Tier string

// Seniority tiers, each with a fixed plausible annual salary range.
const (
	TierEntry     Tier = "entry"
	TierMid       Tier = "mid"
	TierSenior    Tier = "senior"
	TierExecutive Tier = "executive"
)

// annualRange is the plausible annual salary band for a tier.
type annualRange struct {
	min, max float64
}

var tierRanges = map[Tier]annualRange{
	TierEntry:     {25_000, 45_000},
	TierMid:       {45_000, 85_000},
	TierSenior:    {75_000, 150_000},
	TierExecutive: {120_000, 300_000},
}

var (
	seniorKeywords    = []string{"senior", "lead", "principal", "director", "manager"}
	entryKeywords     = []string{"junior", "entry", "intern", "assistant"}
	executiveKeywords = []string{"executive", "vp", "president", "ceo", "cto", "cfo"}
	hourlyKeywords    = []string{"hour", "hr", "/h"}
)

// numberPattern extracts numeric substrings, tolerating thousands separators.
var numberPattern = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)

// maxPlausibleHourly is the hourly rate above which an entry-level posting
// is considered implausible.
const maxPlausibleHourly = 100

// Analyze infers the posting's tier from its title and compares the stated
// salary against the tier's plausible range. A missing salary is not treated
// as evidence of fraud.
func Analyze(salaryText, title string) types.SalarySignal {
	if strings.TrimSpace(salaryText) == "" {
		return types.SalarySignal{Realistic: true, Confidence: 0.5}
	}

	figure, found := maxFigure(salaryText)
	if !found {
		return types.SalarySignal{Realistic: true, Confidence: 0.3}
	}

	tier := InferTier(title)
	bounds := tierRanges[tier]

	if isHourly(salaryText) {
		if figure > maxPlausibleHourly && tier == TierEntry {
			return types.SalarySignal{
				Realistic:  false,
				Confidence: 0.9,
				Reason:     "implausible hourly rate for an entry-level role",
			}
		}
		return types.SalarySignal{Realistic: true, Confidence: 0.7}
	}

	if figure > bounds.max*2 {
		return types.SalarySignal{
			Realistic:  false,
			Confidence: 0.8,
			Reason:     "excessive annual salary for the inferred seniority",
		}
	}

	return types.SalarySignal{Realistic: true, Confidence: 0.7}
}

// InferTier maps a job title to a seniority tier using keyword sets.
// Titles matching no set default to mid-level.
func InferTier(title string) Tier {
	t := strings.ToLower(title)

	for _, kw := range executiveKeywords {
		if strings.Contains(t, kw) {
			return TierExecutive
		}
	}
	for _, kw := range seniorKeywords {
		if strings.Contains(t, kw) {
			return TierSenior
		}
	}
	for _, kw := range entryKeywords {
		if strings.Contains(t, kw) {
			return TierEntry
		}
	}
	return TierMid
}

// maxFigure returns the largest numeric value found in the salary text.
func maxFigure(text string) (float64, bool) {
	matches := numberPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := 0.0
	for _, m := range matches {
		m = strings.ReplaceAll(m, ",", "")
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best, true
}

// isHourly reports whether the salary text uses hourly-rate phrasing.
func isHourly(text string) bool {
	t := strings.ToLower(text)
	for _, kw := range hourlyKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
