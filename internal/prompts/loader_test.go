package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ClearCache()

	prompt, err := Get("classify.json", "classify-posting")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Title}}")
	assert.Contains(t, prompt, "{{.Description}}")
	assert.Contains(t, prompt, "risk_score")
}

func TestGetMissingKey(t *testing.T) {
	ClearCache()

	_, err := Get("classify.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent-key")
}

func TestGetMissingFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "classify-posting")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("classify.json", "nonexistent-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Title: {{.Title}}, Company: {{.Company}}"
	result := Format(template, map[string]string{
		"Title":   "Engineer",
		"Company": "Acme",
	})

	assert.Equal(t, "Title: Engineer, Company: Acme", result)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}

func TestFormatClassifyPrompt(t *testing.T) {
	ClearCache()

	template := MustGet("classify.json", "classify-posting")
	result := Format(template, map[string]string{
		"Title":       "Software Engineer",
		"Company":     "Acme Inc.",
		"Location":    "Austin, TX",
		"Salary":      "$120,000/year",
		"Description": "Build backend services.",
	})

	assert.False(t, strings.Contains(result, "{{."), "all placeholders must be filled")
	assert.Contains(t, result, "Software Engineer")
	assert.Contains(t, result, "Acme Inc.")
}
