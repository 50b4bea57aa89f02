package engine

import (
	stderrors "errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal/errors"
	"golinreg/internal/testkit"
)

const tolerance = 1e-9

// TestAnalyze_TextbookScenario runs the 12-point sample end to end
func TestAnalyze_TextbookScenario(t *testing.T) {
	pair := testkit.TextbookPair()

	res, err := Analyze(pair, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 12, res.N)
	assert.Equal(t, 0.05, res.Alpha)
	assert.Greater(t, res.Correlation.R, 0.9)
	assert.Equal(t, regression.BandStrongPositive, res.Correlation.Band)
	assert.InDelta(t, 0.901454222239615, res.Correlation.R, tolerance)

	reg := res.Regression
	assert.Equal(t, 96.0, reg.SumX)
	assert.InDelta(t, 88.8, reg.SumY, tolerance)
	assert.Equal(t, 950.0, reg.SumX2)
	assert.Equal(t, 8.0, reg.MeanX)
	assert.InDelta(t, 182.0, reg.Sxx, tolerance)
	assert.InDelta(t, 51.06, reg.Syy, 1e-9)
	assert.InDelta(t, 86.9, reg.Sxy, 1e-9)
	assert.Greater(t, reg.B, 0.0)
	assert.InDelta(t, 0.477472527472528, reg.B, tolerance)
	assert.InDelta(t, 3.5802197802197755, reg.A, tolerance)

	det := res.Determination
	assert.InDelta(t, 9.567637362637322, det.SCE, 1e-8)
	assert.InDelta(t, 4.641818181818198, det.CMT, 1e-9)
	assert.InDelta(t, 0.9567637362637322, det.CME, 1e-9)
	assert.InDelta(t, 0.7938816862729922, det.RSquaredAdj, 1e-9)

	beta := res.BetaTest
	require.True(t, beta.Performed)
	assert.Equal(t, regression.ParameterBeta, beta.Parameter)
	assert.Equal(t, regression.DistributionStudentT, beta.Distribution)
	assert.InDelta(t, 2.2281388519649385, beta.CriticalValue, 1e-6)
	assert.InDelta(t, 0.07250478333078916, beta.StandardError, 1e-9)
	assert.InDelta(t, 6.585393480788036, beta.Statistic, 1e-6)
	assert.True(t, beta.RejectNull, "slope should be significant")
	assert.Contains(t, beta.Conclusion, "H₀ is rejected")
	assert.Contains(t, beta.Conclusion, "A linear relationship exists between advertising and sales.")

	rho := res.RhoTest
	require.True(t, rho.Performed)
	assert.Equal(t, regression.DistributionStudentT, rho.Distribution)
	assert.InDelta(t, 0.13688691873454187, rho.StandardError, 1e-9)
	assert.InDelta(t, 6.585393480788046, rho.Statistic, 1e-6)
	assert.True(t, rho.RejectNull)
	assert.Contains(t, rho.Conclusion, "A linear correlation exists")
}

// TestAnalyze_TemperatureScenario exercises the large-sample normal branch
func TestAnalyze_TemperatureScenario(t *testing.T) {
	res, err := Analyze(testkit.TemperaturePair(), 0.05)
	require.NoError(t, err)

	assert.Equal(t, 30, res.N)
	assert.InDelta(t, -0.1224943147423923, res.Correlation.R, tolerance)
	assert.Equal(t, regression.BandWeakNegative, res.Correlation.Band)
	assert.InDelta(t, -0.03283851111100504, res.Regression.B, tolerance)
	assert.InDelta(t, -0.02017354081492706, res.Determination.RSquaredAdj, 1e-9)

	for _, test := range []regression.HypothesisTest{res.BetaTest, res.RhoTest} {
		assert.True(t, test.Performed)
		assert.Equal(t, regression.DistributionNormal, test.Distribution)
		assert.InDelta(t, 1.959963984540054, test.CriticalValue, 1e-9)
		assert.InDelta(t, -0.6530973231361137, test.Statistic, 1e-6)
		assert.False(t, test.RejectNull)
		assert.Contains(t, test.Conclusion, "is not rejected")
		assert.Contains(t, test.Conclusion, "does not exist")
	}
}

// TestAnalyze_MatchesGonumOracle cross-checks r, a and b against gonum/stat
func TestAnalyze_MatchesGonumOracle(t *testing.T) {
	pairs := []regression.SamplePair{
		testkit.TextbookPair(),
		testkit.TemperaturePair(),
		testkit.LinearPair(testkit.LinearConfig{N: 200, Slope: -1.5, Intercept: 40, Noise: 5, Seed: 3}),
		testkit.LinearPair(testkit.LinearConfig{N: 7, Slope: 0.2, Intercept: -3, Noise: 2, Seed: 11}),
	}

	for _, pair := range pairs {
		res, err := Analyze(pair, 0.05)
		require.NoError(t, err)

		wantR := stat.Correlation(pair.X, pair.Y, nil)
		wantA, wantB := stat.LinearRegression(pair.X, pair.Y, nil, false)

		assert.InDelta(t, wantR, res.Correlation.R, tolerance)
		assert.InDelta(t, wantA, res.Regression.A, 1e-8)
		assert.InDelta(t, wantB, res.Regression.B, tolerance)
	}
}

// TestAnalyze_Identities checks the definitional identities on several samples
func TestAnalyze_Identities(t *testing.T) {
	pairs := []regression.SamplePair{
		testkit.TextbookPair(),
		testkit.TemperaturePair(),
		testkit.LinearPair(testkit.LinearConfig{N: 40, Slope: 3, Intercept: 1, Noise: 10, Seed: 5}),
		testkit.SequencePair(6, func(x float64) float64 { return x*x - 4*x }),
	}

	for _, pair := range pairs {
		res, err := Analyze(pair, 0.05)
		require.NoError(t, err)

		reg := res.Regression
		direct := reg.Sxy / math.Sqrt(reg.Sxx*reg.Syy)
		assert.InDelta(t, direct, res.Correlation.R, tolerance, "r must equal Sxy/sqrt(Sxx*Syy)")

		r := res.Correlation.R
		assert.Equal(t, r*r, res.Determination.RSquared, "r² is r*r exactly")

		assert.InDelta(t, reg.Syy, res.Determination.SCE+reg.Syy*res.Determination.RSquared, tolerance)

		assert.GreaterOrEqual(t, r, -1.0)
		assert.LessOrEqual(t, r, 1.0)
	}
}

// TestAnalyze_DistributionThreshold pins the t/z switch at exactly n = 30
func TestAnalyze_DistributionThreshold(t *testing.T) {
	tests := []struct {
		n        int
		dist     regression.Distribution
		critical float64
	}{
		{3, regression.DistributionStudentT, 12.706204736174698},
		{29, regression.DistributionStudentT, 2.0518305164802833},
		{30, regression.DistributionNormal, 1.959963984540054},
		{31, regression.DistributionNormal, 1.959963984540054},
	}

	for _, tt := range tests {
		pair := testkit.LinearPair(testkit.LinearConfig{N: tt.n, Slope: 1, Intercept: 0, Noise: 1, Seed: 42})
		res, err := Analyze(pair, 0.05)
		require.NoError(t, err, "n=%d", tt.n)

		assert.Equal(t, tt.dist, res.BetaTest.Distribution, "n=%d", tt.n)
		assert.Equal(t, tt.dist, res.RhoTest.Distribution, "n=%d", tt.n)
		assert.InDelta(t, tt.critical, res.RhoTest.CriticalValue, 1e-6, "n=%d", tt.n)
	}
}

// TestAnalyze_TwoObservations leaves every df-dependent field at its default
func TestAnalyze_TwoObservations(t *testing.T) {
	pair := regression.NewSamplePair([]float64{1, 2}, []float64{3, 5}, "x", "y")

	res, err := Analyze(pair, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Correlation.R)
	assert.Equal(t, 2.0, res.Regression.B)
	assert.Equal(t, 1.0, res.Regression.A)
	assert.Equal(t, 0.0, res.Determination.CME)
	assert.Equal(t, 0.0, res.Determination.RSquaredAdj)

	for _, test := range []regression.HypothesisTest{res.BetaTest, res.RhoTest} {
		assert.False(t, test.Performed)
		assert.Equal(t, 0.0, test.StandardError)
		assert.Equal(t, 0.0, test.Statistic)
		assert.Equal(t, 0.0, test.CriticalValue)
		assert.Equal(t, regression.DistributionNone, test.Distribution)
		assert.False(t, test.RejectNull)
		assert.Empty(t, test.Conclusion)
		assert.Contains(t, test.SkipReason, core.ErrInsufficientDegreesOfFreedom.Error())
	}
}

// TestAnalyze_PerfectLine skips both tests rather than dividing by a zero standard error
func TestAnalyze_PerfectLine(t *testing.T) {
	pair := testkit.SequencePair(5, func(x float64) float64 { return 2*x + 1 })

	res, err := Analyze(pair, 0.05)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Correlation.R)
	assert.Equal(t, 0.0, res.Determination.SCE)
	assert.False(t, res.BetaTest.Performed)
	assert.False(t, res.RhoTest.Performed)
	assert.NotEmpty(t, res.BetaTest.SkipReason)
	assert.NotEmpty(t, res.RhoTest.SkipReason)
	// The critical value depends only on n and alpha and is still reported
	assert.InDelta(t, 3.182446305284263, res.BetaTest.CriticalValue, 1e-6)
}

func TestAnalyze_StrongNegative(t *testing.T) {
	pair := testkit.LinearPair(testkit.LinearConfig{N: 20, Slope: -2, Intercept: 50, Noise: 1, Seed: 9})

	res, err := Analyze(pair, 0.05)
	require.NoError(t, err)

	assert.Equal(t, regression.BandStrongNegative, res.Correlation.Band)
	assert.Less(t, res.Regression.B, 0.0)
	assert.True(t, res.BetaTest.RejectNull)
	assert.Less(t, res.BetaTest.Statistic, -res.BetaTest.CriticalValue)
	assert.Contains(t, res.BetaTest.Conclusion, "(true) or")
	assert.Contains(t, res.Regression.Equation(3), " - ")
}

func TestAnalyze_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		x, y     []float64
		alpha    float64
		sentinel error
	}{
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, 0.05, core.ErrLengthMismatch},
		{"empty samples", nil, nil, 0.05, core.ErrSampleTooShort},
		{"single observation", []float64{1}, []float64{2}, 0.05, core.ErrSampleTooShort},
		{"NaN in x", []float64{1, math.NaN(), 3}, []float64{1, 2, 3}, 0.05, core.ErrNonNumeric},
		{"Inf in y", []float64{1, 2, 3}, []float64{1, math.Inf(-1), 3}, 0.05, core.ErrNonNumeric},
		{"alpha zero", []float64{1, 2, 3}, []float64{1, 3, 2}, 0, core.ErrAlphaOutOfRange},
		{"alpha one", []float64{1, 2, 3}, []float64{1, 3, 2}, 1, core.ErrAlphaOutOfRange},
		{"alpha negative", []float64{1, 2, 3}, []float64{1, 3, 2}, -0.05, core.ErrAlphaOutOfRange},
		{"alpha NaN", []float64{1, 2, 3}, []float64{1, 3, 2}, math.NaN(), core.ErrAlphaOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(regression.NewSamplePair(tt.x, tt.y, "", ""), tt.alpha)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.sentinel), "got %v", err)
			assert.True(t, core.IsInvalidInput(err))
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
			assert.Equal(t, regression.AnalysisResult{}, res, "no partial result")
		})
	}
}

func TestAnalyze_UndefinedCorrelation(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"constant x", []float64{4, 4, 4, 4}, []float64{1, 2, 3, 5}},
		{"constant y", []float64{1, 2, 3, 5}, []float64{7, 7, 7, 7}},
		{"constant fractional x", []float64{0.1, 0.1, 0.1}, []float64{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(regression.NewSamplePair(tt.x, tt.y, "", ""), 0.05)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, core.ErrUndefinedCorrelation))
			assert.Equal(t, errors.CodeUndefinedCorrelation, errors.GetCode(err))
		})
	}
}

func TestAnalyze_IsIdempotent(t *testing.T) {
	pair := testkit.TemperaturePair()

	first, err := Analyze(pair, 0.05)
	require.NoError(t, err)
	second, err := Analyze(pair, 0.05)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, math.Float64bits(first.BetaTest.Statistic), math.Float64bits(second.BetaTest.Statistic))
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	pair := testkit.TextbookPair()
	x := append([]float64(nil), pair.X...)
	y := append([]float64(nil), pair.Y...)

	_, err := Analyze(pair, 0.05)
	require.NoError(t, err)

	assert.Equal(t, x, pair.X)
	assert.Equal(t, y, pair.Y)
}

func TestAnalyze_ConcurrentCallsAgree(t *testing.T) {
	pair := testkit.LinearPair(testkit.LinearConfig{N: 100, Slope: 0.3, Intercept: 2, Noise: 3, Seed: 1})
	want, err := Analyze(pair, 0.01)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]regression.AnalysisResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Analyze(pair, 0.01)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestStatsEngine_DelegatesToAnalyze(t *testing.T) {
	pair := testkit.TextbookPair()
	want, err := Analyze(pair, 0.1)
	require.NoError(t, err)

	got, err := NewStatsEngine().Analyze(pair, 0.1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalyze_DefaultsBlankLabels(t *testing.T) {
	pair := regression.SamplePair{X: testkit.TextbookX, Y: testkit.TextbookY}

	res, err := Analyze(pair, 0.05)
	require.NoError(t, err)
	assert.Equal(t, "X", res.IndependentLabel)
	assert.Equal(t, "Y", res.DependentLabel)
	assert.Contains(t, res.Correlation.Conclusion, "between Y and X")
}

// TestAnalyze_LargeOffset keeps full precision when x sits far from zero,
// as with Unix timestamps
func TestAnalyze_LargeOffset(t *testing.T) {
	for _, offset := range []float64{1e6, 1.7e9} {
		pair := testkit.TextbookPair()
		for i := range pair.X {
			pair.X[i] += offset
		}

		res, err := Analyze(pair, 0.05)
		require.NoError(t, err, "offset %g", offset)

		wantR := stat.Correlation(pair.X, pair.Y, nil)
		_, wantB := stat.LinearRegression(pair.X, pair.Y, nil, false)

		assert.InDelta(t, wantR, res.Correlation.R, 1e-10, "offset %g", offset)
		assert.InDelta(t, 0.901454222239615, res.Correlation.R, tolerance)
		assert.InDelta(t, wantB, res.Regression.B, 1e-10, "offset %g", offset)
		assert.InDelta(t, 182.0, res.Regression.Sxx, 1e-6)
		assert.InDelta(t, 86.9, res.Regression.Sxy, 1e-6)
	}
}
