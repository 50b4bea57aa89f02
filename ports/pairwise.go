package ports

import (
	"golinreg/domain/core"
	"golinreg/domain/regression"
)

// Column is one named numeric variable of a data set
type Column struct {
	Name   string
	Values []float64
}

// PairOutcome is the analysis of one (independent, dependent) pair in a batch.
// Exactly one of Result and Error is set.
type PairOutcome struct {
	Dependent string                     `json:"dependent"`
	Result    *regression.AnalysisResult `json:"result,omitempty"`
	Error     string                     `json:"error,omitempty"`
	Code      string                     `json:"code,omitempty"`
}

// PairwiseSummary collects a batch ordered by |r|, strongest first, failures last
type PairwiseSummary struct {
	BatchID     core.AnalysisID `json:"batch_id"`
	Independent string          `json:"independent"`
	Alpha       float64         `json:"alpha"`
	Outcomes    []PairOutcome   `json:"outcomes"`
	Succeeded   int             `json:"succeeded"`
	Failed      int             `json:"failed"`
	RuntimeMs   int64           `json:"runtime_ms"`
}
