package ports

import (
	"golinreg/domain/regression"
)

// AnalyzerPort runs the correlation, regression and hypothesis-test pipeline
// on one sample pair. Implementations must be pure: identical inputs yield
// identical results and the pair is never mutated.
type AnalyzerPort interface {
	Analyze(pair regression.SamplePair, alpha float64) (regression.AnalysisResult, error)
}

// SampleReaderPort loads labelled samples from an external data source
type SampleReaderPort interface {
	// ReadPair loads two named columns as (independent, dependent)
	ReadPair(xCol, yCol string) (regression.SamplePair, error)
}
