package classifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobshield/internal/llm"
	"github.com/jonathan/jobshield/internal/types"
)

// fakeClient returns canned responses in place of the Gemini API.
type fakeClient struct {
	response string
	err      error
	delay    time.Duration
	prompt   string
}

func (c *fakeClient) GenerateJSON(ctx context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (c *fakeClient) Close() error                  { return nil }

func samplePosting() *types.JobPosting {
	return &types.JobPosting{
		Title:       "Software Engineer",
		Company:     "Acme Inc.",
		Location:    "Austin, TX",
		Description: "Build and operate backend services.",
		SalaryText:  "$120,000/year",
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		client   *fakeClient
		validate func(*testing.T, types.ExternalSignal)
	}{
		{
			name:   "Valid response",
			client: &fakeClient{response: `{"risk_score": 0.82, "confidence": 0.9, "reasoning": "pay far above market for the role"}`},
			validate: func(t *testing.T, signal types.ExternalSignal) {
				assert.Equal(t, 0.82, signal.RiskScore)
				assert.Equal(t, 0.9, signal.Confidence)
				assert.Equal(t, "pay far above market for the role", signal.Reasoning)
				assert.Equal(t, "fake-model", signal.Model)
				assert.Empty(t, signal.Error)
			},
		},
		{
			name:   "Transport error degrades",
			client: &fakeClient{err: errors.New("connection refused")},
			validate: func(t *testing.T, signal types.ExternalSignal) {
				assert.Zero(t, signal.RiskScore)
				assert.Zero(t, signal.Confidence)
				assert.Equal(t, "classification unavailable", signal.Reasoning)
				assert.Contains(t, signal.Error, "connection refused")
			},
		},
		{
			name:   "Malformed JSON degrades",
			client: &fakeClient{response: `i think this job is a scam`},
			validate: func(t *testing.T, signal types.ExternalSignal) {
				assert.Zero(t, signal.RiskScore)
				assert.NotEmpty(t, signal.Error)
			},
		},
		{
			name:   "Out-of-range score is rejected by the schema",
			client: &fakeClient{response: `{"risk_score": 7.5, "confidence": 0.9, "reasoning": "x"}`},
			validate: func(t *testing.T, signal types.ExternalSignal) {
				assert.Zero(t, signal.RiskScore)
				assert.Contains(t, signal.Error, "rejected")
			},
		},
		{
			name:   "Missing required field is rejected by the schema",
			client: &fakeClient{response: `{"risk_score": 0.4}`},
			validate: func(t *testing.T, signal types.ExternalSignal) {
				assert.Zero(t, signal.RiskScore)
				assert.NotEmpty(t, signal.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.client)
			signal := c.Classify(context.Background(), samplePosting())

			assert.GreaterOrEqual(t, signal.RiskScore, 0.0)
			assert.LessOrEqual(t, signal.RiskScore, 1.0)
			assert.GreaterOrEqual(t, signal.Confidence, 0.0)
			assert.LessOrEqual(t, signal.Confidence, 1.0)
			tt.validate(t, signal)
		})
	}
}

func TestClassifyTimeout(t *testing.T) {
	client := &fakeClient{
		response: `{"risk_score": 0.5, "confidence": 0.5, "reasoning": "x"}`,
		delay:    time.Second,
	}
	c := NewWithTimeout(client, 10*time.Millisecond)

	signal := c.Classify(context.Background(), samplePosting())

	assert.Zero(t, signal.RiskScore)
	assert.Zero(t, signal.Confidence)
	assert.Equal(t, "classification unavailable", signal.Reasoning)
	assert.NotEmpty(t, signal.Error)
}

func TestClassifyWithoutClient(t *testing.T) {
	c := New(nil)

	signal := c.Classify(context.Background(), samplePosting())

	assert.Zero(t, signal.RiskScore)
	assert.Contains(t, signal.Error, "no classifier client")
}

func TestBuildPrompt(t *testing.T) {
	client := &fakeClient{response: `{"risk_score": 0.1, "confidence": 0.8, "reasoning": "x"}`}
	c := New(client)

	posting := samplePosting()
	_ = c.Classify(context.Background(), posting)

	require.NotEmpty(t, client.prompt)
	assert.Contains(t, client.prompt, posting.Title)
	assert.Contains(t, client.prompt, posting.Company)
	assert.Contains(t, client.prompt, posting.Description)
	assert.Contains(t, client.prompt, "risk_score", "prompt must name the required fields")
	assert.Contains(t, client.prompt, "ONLY valid JSON")
}
