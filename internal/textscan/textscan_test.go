package textscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		validate    func(*testing.T, float64, []string)
	}{
		{
			name:        "Clean posting scores zero",
			title:       "Senior Software Engineer",
			description: "We are looking for an engineer with Go experience to join our platform team.",
			validate: func(t *testing.T, score float64, matched []string) {
				assert.Zero(t, score)
				assert.Empty(t, matched)
			},
		},
		{
			name:        "Work-from-home weekly pay pattern",
			title:       "Work From Home - Earn $3000/week, no experience needed!",
			description: "Flexible hours.",
			validate: func(t *testing.T, score float64, matched []string) {
				assert.GreaterOrEqual(t, score, 0.3)
				require.NotEmpty(t, matched)
				assert.Contains(t, matched[0], "scam pattern")
			},
		},
		{
			name:        "Urgency pattern and urgency vocabulary",
			title:       "Urgent hiring",
			description: "Urgent! Apply asap, this is urgent and the offer is limited time only.",
			validate: func(t *testing.T, score float64, matched []string) {
				assert.GreaterOrEqual(t, score, 0.5)
				assert.Contains(t, matched, "excessive artificial urgency")
			},
		},
		{
			name:        "Wire transfer and training fee",
			title:       "Payment Agent",
			description: "You will pay a small training fee and handle wire transfer payments for clients.",
			validate: func(t *testing.T, score float64, matched []string) {
				assert.GreaterOrEqual(t, score, 0.6)
				assert.Len(t, matched, 2)
			},
		},
		{
			name:        "Grammar issues above threshold",
			title:       "Data Processor",
			description: "You will recieve payments, keep records seperate, recieve bonuses and recieve rewards. Definately apply.",
			validate: func(t *testing.T, score float64, matched []string) {
				assert.Contains(t, matched, "multiple grammar issues")
			},
		},
		{
			name:        "Grammar issues at threshold are not flagged",
			title:       "Clerk",
			description: "recieve seperate definately",
			validate: func(t *testing.T, _ float64, matched []string) {
				assert.NotContains(t, matched, "multiple grammar issues")
			},
		},
		{
			name:        "Score clamps to one",
			title:       "Urgent Mystery Shopper - Work From Home Earn $5000 per week no experience needed",
			description: "Immediate start. Pay the training fee by wire transfer. Package forwarding role. urgent urgent asap recieve seperate definately oppurtunity your hired",
			validate: func(t *testing.T, score float64, _ []string) {
				assert.Equal(t, 1.0, score)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := Analyze(tt.title, tt.description)

			assert.GreaterOrEqual(t, signal.Score, 0.0)
			assert.LessOrEqual(t, signal.Score, 1.0)
			tt.validate(t, signal.Score, signal.MatchedPatterns)
		})
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	title := "Work From Home - Earn $3000/week, no experience needed!"
	description := "urgent, immediate start"

	first := Analyze(title, description)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze(title, description))
	}
}

func TestEvidenceIdentifiesPatternsByIndex(t *testing.T) {
	signal := Analyze("Mystery shopper wanted", "Visit stores as a secret shopper.")

	require.NotEmpty(t, signal.MatchedPatterns)
	for _, evidence := range signal.MatchedPatterns {
		// Evidence names the pattern, never the raw regex.
		assert.False(t, strings.ContainsAny(evidence, `\(){}`), "evidence leaked regex syntax: %s", evidence)
	}
}

func TestAnalyzeCaseFolds(t *testing.T) {
	lower := Analyze("mystery shopper", "")
	upper := Analyze("MYSTERY SHOPPER", "")

	assert.Equal(t, lower.Score, upper.Score)
}
