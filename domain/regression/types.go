package regression

import (
	"golinreg/domain/core"
)

// DefaultAlpha is the significance level used when the caller supplies none
const DefaultAlpha = 0.05

// LargeSampleThreshold is the sample size from which critical values come from
// the standard normal instead of Student's t
const LargeSampleThreshold = 30

// SamplePair is the immutable input of an analysis.
// INVARIANTS (checked by the engine, not here):
// - len(X) == len(Y) >= 2
// - every value finite
type SamplePair struct {
	X                []float64 `json:"x"`
	Y                []float64 `json:"y"`
	IndependentLabel string    `json:"independent_label"`
	DependentLabel   string    `json:"dependent_label"`
}

// NewSamplePair builds a pair, substituting neutral labels for blank ones
func NewSamplePair(x, y []float64, independent, dependent string) SamplePair {
	if independent == "" {
		independent = "X"
	}
	if dependent == "" {
		dependent = "Y"
	}
	return SamplePair{X: x, Y: y, IndependentLabel: independent, DependentLabel: dependent}
}

// Len returns the number of observations in X
func (p SamplePair) Len() int {
	return len(p.X)
}

// Fingerprint identifies the pair by content
func (p SamplePair) Fingerprint() core.SampleFingerprint {
	return core.ComputeSampleFingerprint(p.X, p.Y)
}

// Sums holds the raw sums every later step derives from
type Sums struct {
	N     int     `json:"n"`
	SumX  float64 `json:"sum_x"`
	SumY  float64 `json:"sum_y"`
	SumXY float64 `json:"sum_xy"`
	SumX2 float64 `json:"sum_x2"`
	SumY2 float64 `json:"sum_y2"`

	// Centred sums of squares and cross products, accumulated on
	// mean-shifted values so large offsets do not cancel out
	Sxx float64 `json:"-"`
	Syy float64 `json:"-"`
	Sxy float64 `json:"-"`
}

// Correlation is the output of the correlation step
type Correlation struct {
	R          float64 `json:"r"`
	Band       Band    `json:"band"`
	Conclusion string  `json:"conclusion"`
}

// Regression holds the least-squares fit and the quantities it came from.
// B is 0 when Sxx == 0.
type Regression struct {
	SumX  float64 `json:"sum_x"`
	SumY  float64 `json:"sum_y"`
	SumXY float64 `json:"sum_xy"`
	SumX2 float64 `json:"sum_x2"`
	SumY2 float64 `json:"sum_y2"`
	MeanX float64 `json:"mean_x"`
	MeanY float64 `json:"mean_y"`
	Sxx   float64 `json:"sxx"`
	Syy   float64 `json:"syy"`
	Sxy   float64 `json:"sxy"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
}

// Predict evaluates the fitted line at x
func (r Regression) Predict(x float64) float64 {
	return r.A + r.B*x
}

// Determination holds r², the variance decomposition and adjusted r².
// CME and RSquaredAdj stay 0 when n <= 2.
type Determination struct {
	RSquared    float64 `json:"r_squared"`
	SCE         float64 `json:"sce"`
	CMT         float64 `json:"cmt"`
	CME         float64 `json:"cme"`
	RSquaredAdj float64 `json:"r_squared_adj"`
}

// Parameter names the population quantity a hypothesis test is about
type Parameter string

const (
	ParameterBeta Parameter = "β"
	ParameterRho  Parameter = "ρ"
)

// HypothesisTest is one two-tailed test of H0: parameter = 0.
// When Performed is false every numeric field is 0 and SkipReason says why.
type HypothesisTest struct {
	Parameter     Parameter    `json:"parameter"`
	Performed     bool         `json:"performed"`
	StandardError float64      `json:"standard_error"`
	Statistic     float64      `json:"test_statistic"`
	CriticalValue float64      `json:"critical_value"`
	Distribution  Distribution `json:"distribution_used"`
	RejectNull    bool         `json:"reject_null"`
	Conclusion    string       `json:"conclusion"`
	SkipReason    string       `json:"skip_reason,omitempty"`
}

// AnalysisResult is the complete, immutable output of one analysis
type AnalysisResult struct {
	N                int            `json:"n"`
	Alpha            float64        `json:"alpha"`
	IndependentLabel string         `json:"independent_label"`
	DependentLabel   string         `json:"dependent_label"`
	Correlation      Correlation    `json:"correlation"`
	Regression       Regression     `json:"regression"`
	Determination    Determination  `json:"determination"`
	BetaTest         HypothesisTest `json:"beta_test"`
	RhoTest          HypothesisTest `json:"rho_test"`
}

// DegreesOfFreedom returns n-2, the residual degrees of freedom (never negative)
func (r AnalysisResult) DegreesOfFreedom() int {
	if r.N < 2 {
		return 0
	}
	return r.N - 2
}

// HasTests reports whether the sample was large enough for hypothesis tests
func (r AnalysisResult) HasTests() bool {
	return r.N > 2
}
