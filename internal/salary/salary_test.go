package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferTier(t *testing.T) {
	tests := []struct {
		title string
		want  Tier
	}{
		{"Senior Software Engineer", TierSenior},
		{"Lead Designer", TierSenior},
		{"Engineering Manager", TierSenior},
		{"Junior Developer", TierEntry},
		{"Data Entry Clerk", TierEntry},
		{"Marketing Intern", TierEntry},
		{"Executive Assistant", TierExecutive},
		{"VP of Sales", TierExecutive},
		{"CTO", TierExecutive},
		{"Software Engineer", TierMid},
		{"Accountant", TierMid},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, InferTier(tt.title))
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		salaryText string
		title      string
		validate   func(*testing.T, bool, float64, string)
	}{
		{
			name:       "Missing salary is not evidence of fraud",
			salaryText: "",
			title:      "Software Engineer",
			validate: func(t *testing.T, realistic bool, confidence float64, _ string) {
				assert.True(t, realistic)
				assert.Equal(t, 0.5, confidence)
			},
		},
		{
			name:       "No numbers in salary text",
			salaryText: "competitive pay",
			title:      "Software Engineer",
			validate: func(t *testing.T, realistic bool, confidence float64, _ string) {
				assert.True(t, realistic)
				assert.Equal(t, 0.3, confidence)
			},
		},
		{
			name:       "Implausible hourly rate for entry-level role",
			salaryText: "$500/hour",
			title:      "Data Entry Clerk",
			validate: func(t *testing.T, realistic bool, confidence float64, reason string) {
				assert.False(t, realistic)
				assert.Equal(t, 0.9, confidence)
				assert.Contains(t, reason, "hourly rate")
			},
		},
		{
			name:       "High hourly rate is plausible for mid-level",
			salaryText: "$50/hour",
			title:      "Software Engineer",
			validate: func(t *testing.T, realistic bool, confidence float64, _ string) {
				assert.True(t, realistic)
				assert.Equal(t, 0.7, confidence)
			},
		},
		{
			name:       "Plausible senior annual salary",
			salaryText: "$130,000/year",
			title:      "Senior Software Engineer",
			validate: func(t *testing.T, realistic bool, confidence float64, _ string) {
				assert.True(t, realistic)
				assert.Equal(t, 0.7, confidence)
			},
		},
		{
			name:       "Excessive annual salary for entry tier",
			salaryText: "$250,000 per year",
			title:      "Junior Developer",
			validate: func(t *testing.T, realistic bool, confidence float64, reason string) {
				assert.False(t, realistic)
				assert.Equal(t, 0.8, confidence)
				assert.Contains(t, reason, "annual salary")
			},
		},
		{
			name:       "Annual salary at twice the maximum is still allowed",
			salaryText: "$90,000",
			title:      "Junior Developer",
			validate: func(t *testing.T, realistic bool, _ float64, _ string) {
				assert.True(t, realistic)
			},
		},
		{
			name:       "Salary range takes the maximum figure",
			salaryText: "$40,000 - $400,000 per year",
			title:      "Accountant",
			validate: func(t *testing.T, realistic bool, _ float64, _ string) {
				assert.False(t, realistic)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := Analyze(tt.salaryText, tt.title)

			assert.GreaterOrEqual(t, signal.Confidence, 0.0)
			assert.LessOrEqual(t, signal.Confidence, 1.0)
			tt.validate(t, signal.Realistic, signal.Confidence, signal.Reason)
		})
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first := Analyze("$500/hour", "Data Entry Clerk")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Analyze("$500/hour", "Data Entry Clerk"))
	}
}
