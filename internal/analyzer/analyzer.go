// Package analyzer orchestrates the four fraud sub-analyses and combines
// them into one composite risk verdict.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobshield/internal/salary"
	"github.com/jonathan/jobshield/internal/textscan"
	"github.com/jonathan/jobshield/internal/types"
)

// Composite score weights. Text and external-classifier signals are
// continuous and already risk-proportional, so they are used directly.
// Company and salary are pass/fail checks, so a flat penalty applies when
// they fail instead of a continuous scale.
const (
	weightText     = 0.30
	weightCompany  = 0.25
	weightSalary   = 0.20
	weightExternal = 0.25

	companyPenalty = 0.4
	salaryPenalty  = 0.6

	// defaultConfidence is used when the external classifier produced no
	// usable answer.
	defaultConfidence = 0.8
)

// CompanyVerifier is the employer-identity sub-analysis.
type CompanyVerifier interface {
	Verify(ctx context.Context, company string) types.CompanySignal
}

// ExternalClassifier is the external-model sub-analysis. Implementations
// must degrade internally and always return a well-formed signal.
type ExternalClassifier interface {
	Classify(ctx context.Context, posting *types.JobPosting) types.ExternalSignal
}

// Orchestrator fans the sub-analyses out concurrently and scores the join.
type Orchestrator struct {
	verifier   CompanyVerifier
	classifier ExternalClassifier
}

// NewOrchestrator creates an Orchestrator over the given collaborators.
func NewOrchestrator(verifier CompanyVerifier, classifier ExternalClassifier) *Orchestrator {
	return &Orchestrator{verifier: verifier, classifier: classifier}
}

// Analyze runs the four sub-analyses concurrently and returns the composite
// verdict. Each sub-analysis is failure-isolated by its own contract, so the
// join cannot fail; an unexpected defect in the pipeline itself is caught
// here and converted into the fail-safe zero-risk result with the
// AnalysisFailed sentinel set.
func (o *Orchestrator) Analyze(ctx context.Context, posting *types.JobPosting) (result *types.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = failSafe(posting, fmt.Errorf("analysis panicked: %v", r))
		}
	}()

	var (
		text      types.TextSignal
		company   types.CompanySignal
		salarySig types.SalarySignal
		external  types.ExternalSignal
	)

	// The four analyses are independent and share no mutable state. There is
	// no ordering requirement between them; scoring only needs all four done.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text = textscan.Analyze(posting.Title, posting.Description)
		return nil
	})
	g.Go(func() error {
		company = o.verifier.Verify(gCtx, posting.Company)
		return nil
	})
	g.Go(func() error {
		salarySig = salary.Analyze(posting.SalaryText, posting.Title)
		return nil
	})
	g.Go(func() error {
		external = o.classifier.Classify(gCtx, posting)
		return nil
	})
	_ = g.Wait() // sub-analyses never return errors

	return score(posting, text, company, salarySig, external)
}

// score combines the four sub-signals into the composite result.
func score(posting *types.JobPosting, text types.TextSignal, company types.CompanySignal, salarySig types.SalarySignal, external types.ExternalSignal) *types.AnalysisResult {
	risk := text.Score * weightText
	if !company.Verified {
		risk += companyPenalty * weightCompany
	}
	if !salarySig.Realistic {
		risk += salaryPenalty * weightSalary
	}
	risk += external.RiskScore * weightExternal

	confidence := defaultConfidence
	if external.Error == "" {
		confidence = external.Confidence
	}

	// Flags follow analyzer execution order: text, company, salary, external.
	flags := make([]string, 0, len(text.MatchedPatterns)+4)
	flags = append(flags, text.MatchedPatterns...)
	if company.IsGeneric {
		flags = append(flags, "generic/suspicious company name")
	}
	if !company.Verified {
		flags = append(flags, "employer not verified")
	}
	if !salarySig.Realistic {
		flags = append(flags, "implausible salary: "+salarySig.Reason)
	}
	if external.Error == "" && external.Reasoning != "" {
		flags = append(flags, "external model: "+external.Reasoning)
	}

	return &types.AnalysisResult{
		Risk:       clamp01(risk),
		Confidence: clamp01(confidence),
		Flags:      flags,
		SubScores: types.SubScores{
			Text:     text,
			Company:  company,
			Salary:   salarySig,
			External: external,
		},
		JobTitle:  posting.Title,
		Company:   posting.Company,
		Location:  posting.Location,
		Salary:    posting.SalaryText,
		Timestamp: time.Now().UTC(),
	}
}

// failSafe is the result for a pipeline defect. It never blocks the caller
// but necessarily under-reports risk, so it carries an explicit sentinel to
// keep it distinguishable from a genuine low-risk verdict.
func failSafe(posting *types.JobPosting, cause error) *types.AnalysisResult {
	return &types.AnalysisResult{
		Risk:           0,
		Confidence:     0,
		Flags:          []string{"analysis error"},
		JobTitle:       posting.Title,
		Company:        posting.Company,
		Timestamp:      time.Now().UTC(),
		AnalysisFailed: true,
		Error:          cause.Error(),
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
