// Package classifier adapts an external text-classification model into one
// bounded sub-signal of the analysis pipeline. Every failure mode of the
// external call is converted into a degraded signal at this boundary and
// never propagated to the orchestrator.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/jobshield/internal/llm"
	"github.com/jonathan/jobshield/internal/prompts"
	"github.com/jonathan/jobshield/internal/schemas"
	"github.com/jonathan/jobshield/internal/types"
)

// DefaultTimeout bounds a single classification call. Overruns degrade like
// any other failure.
const DefaultTimeout = 20 * time.Second

// responseSchema constrains the model's payload before it is trusted.
const responseSchema = `{
	"type": "object",
	"required": ["risk_score", "confidence", "reasoning"],
	"properties": {
		"risk_score": {"type": "number", "minimum": 0, "maximum": 1},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1},
		"reasoning": {"type": "string"}
	}
}`

// response is the typed payload the model must return.
type response struct {
	RiskScore  float64 `json:"risk_score"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Classifier calls the external model and parses its bounded response.
type Classifier struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a Classifier with the default timeout.
func New(client llm.Client) *Classifier {
	return &Classifier{client: client, timeout: DefaultTimeout}
}

// NewWithTimeout creates a Classifier with a custom timeout. Used by tests
// and deployments with tighter latency budgets.
func NewWithTimeout(client llm.Client, timeout time.Duration) *Classifier {
	return &Classifier{client: client, timeout: timeout}
}

// Classify rates the posting's realism, employer legitimacy, and internal
// consistency. It always returns a well-formed signal: on any failure the
// signal carries zero score, zero confidence, and the cause.
func (c *Classifier) Classify(ctx context.Context, posting *types.JobPosting) types.ExternalSignal {
	if c.client == nil {
		return degraded(fmt.Errorf("no classifier client configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := buildPrompt(posting)

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return degraded(fmt.Errorf("classification request failed: %w", err))
	}

	if err := schemas.ValidateJSONString(responseSchema, raw); err != nil {
		return degraded(fmt.Errorf("classification response rejected: %w", err))
	}

	var resp response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return degraded(fmt.Errorf("failed to parse classification response: %w", err))
	}

	return types.ExternalSignal{
		RiskScore:  clamp01(resp.RiskScore),
		Confidence: clamp01(resp.Confidence),
		Reasoning:  resp.Reasoning,
		Model:      c.client.GetModel(llm.TierLite),
	}
}

// buildPrompt fills the classification template with the posting's fields.
func buildPrompt(posting *types.JobPosting) string {
	template := prompts.MustGet("classify.json", "classify-posting")
	return prompts.Format(template, map[string]string{
		"Title":       posting.Title,
		"Company":     posting.Company,
		"Location":    posting.Location,
		"Salary":      posting.SalaryText,
		"Description": posting.Description,
	})
}

// degraded is the standard fallback signal for any classifier failure.
func degraded(cause error) types.ExternalSignal {
	return types.ExternalSignal{
		RiskScore:  0,
		Confidence: 0,
		Reasoning:  "classification unavailable",
		Error:      cause.Error(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
