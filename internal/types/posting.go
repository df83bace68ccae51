// Package types defines the shared data model for the scam analysis pipeline.
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobPosting is the immutable input to the analysis pipeline. Instances are
// supplied by callers (the extension's scraping layer, the CLI, or the API)
// and are never mutated by analyzers.
type JobPosting struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	SalaryText  string `json:"salary,omitempty"`
	URL         string `json:"url,omitempty"`
	Site        string `json:"site,omitempty"`
}

// Fingerprint returns a deterministic identifier for the posting: the
// supplied ID if present, otherwise a stable hash of title+company.
func (p *JobPosting) Fingerprint() string {
	if p.ID != "" {
		return p.ID
	}
	sum := sha256.Sum256([]byte(strings.ToLower(p.Title) + "|" + strings.ToLower(p.Company)))
	return hex.EncodeToString(sum[:16])
}

// AnalyzeRequest represents the inbound request to analyze a job posting.
type AnalyzeRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" validate:"required,min=1"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description" validate:"required,min=1"`
	SalaryText  string `json:"salary,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Site        string `json:"site,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Posting converts the request into an immutable JobPosting.
func (r *AnalyzeRequest) Posting() *JobPosting {
	return &JobPosting{
		ID:          r.ID,
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		SalaryText:  r.SalaryText,
		URL:         r.URL,
		Site:        r.Site,
	}
}

// ReportRequest represents a user report about a previously analyzed posting.
// Reports are informational counters and never feed back into scoring.
type ReportRequest struct {
	Fingerprint string `json:"fingerprint" validate:"required,min=1"`
	Kind        string `json:"kind" validate:"required,oneof=scam false_positive"`
}

// Validate validates the ReportRequest using the validator.
func (r *ReportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
