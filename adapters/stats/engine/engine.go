package engine

import (
	"golinreg/domain/regression"
)

// StatsEngine runs simple linear regression analyses.
// It holds no state between calls and is safe for concurrent use.
type StatsEngine struct{}

// NewStatsEngine creates a new statistical engine
func NewStatsEngine() *StatsEngine {
	return &StatsEngine{}
}

// Analyze runs the full pipeline on one sample pair. See the package-level Analyze.
func (e *StatsEngine) Analyze(pair regression.SamplePair, alpha float64) (regression.AnalysisResult, error) {
	return Analyze(pair, alpha)
}

// Analyze sequences correlation, regression, determination and the β/ρ tests
// over one sample pair. Any guard violation aborts the whole computation and
// the zero AnalysisResult is returned with the error.
func Analyze(pair regression.SamplePair, alpha float64) (regression.AnalysisResult, error) {
	if err := validateInput(pair, alpha); err != nil {
		return regression.AnalysisResult{}, err
	}
	if err := checkSpread(pair); err != nil {
		return regression.AnalysisResult{}, err
	}

	independent, dependent := labelsOf(pair)

	sums := ComputeSums(pair.X, pair.Y)

	corr, err := Correlate(sums, independent, dependent)
	if err != nil {
		return regression.AnalysisResult{}, err
	}

	reg := Regress(sums)
	det := Determine(corr.R, reg.Syy, sums.N)

	return regression.AnalysisResult{
		N:                sums.N,
		Alpha:            alpha,
		IndependentLabel: independent,
		DependentLabel:   dependent,
		Correlation:      corr,
		Regression:       reg,
		Determination:    det,
		BetaTest:         BetaTest(reg, det, sums.N, alpha, independent, dependent),
		RhoTest:          RhoTest(corr.R, sums.N, alpha, independent, dependent),
	}, nil
}

func labelsOf(pair regression.SamplePair) (string, string) {
	independent, dependent := pair.IndependentLabel, pair.DependentLabel
	if independent == "" {
		independent = "X"
	}
	if dependent == "" {
		dependent = "Y"
	}
	return independent, dependent
}
