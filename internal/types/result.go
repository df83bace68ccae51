package types

import "time"

// TextSignal is the pattern analyzer's sub-signal: a clamped score plus the
// evidence strings for each matched pattern.
type TextSignal struct {
	Score           float64  `json:"score"`
	Confidence      float64  `json:"confidence"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
}

// CompanySignal is the employer verification verdict.
type CompanySignal struct {
	Verified   bool    `json:"verified"`
	Confidence float64 `json:"confidence"`
	IsGeneric  bool    `json:"is_generic"`
}

// SalarySignal is the salary plausibility verdict.
type SalarySignal struct {
	Realistic  bool    `json:"realistic"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

// ExternalSignal is the external classifier's bounded response. A degraded
// response carries zero score and confidence plus the failure cause in Error.
type ExternalSignal struct {
	RiskScore  float64 `json:"risk_score"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
	Model      string  `json:"model,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// SubScores preserves each analyzer's raw signal for audit and debugging.
type SubScores struct {
	Text     TextSignal     `json:"text"`
	Company  CompanySignal  `json:"company"`
	Salary   SalarySignal   `json:"salary"`
	External ExternalSignal `json:"external"`
}

// AnalysisResult is the composite verdict for one posting. It is immutable
// once produced and persisted as-is.
//
// AnalysisFailed distinguishes the fail-safe zero-risk result produced by a
// pipeline defect from a genuine low-risk verdict; callers monitoring for
// fraud must not treat the two as equivalent.
type AnalysisResult struct {
	Risk           float64   `json:"risk"`
	Confidence     float64   `json:"confidence"`
	Flags          []string  `json:"flags"`
	SubScores      SubScores `json:"sub_scores"`
	JobTitle       string    `json:"job_title"`
	Company        string    `json:"company,omitempty"`
	Location       string    `json:"location,omitempty"`
	Salary         string    `json:"salary,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	AnalysisFailed bool      `json:"analysis_failed,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// ReportCounts holds the informational report counters for one fingerprint.
type ReportCounts struct {
	Fingerprint    string `json:"fingerprint"`
	ScamReports    int    `json:"scam_reports"`
	FalsePositives int    `json:"false_positives"`
}
