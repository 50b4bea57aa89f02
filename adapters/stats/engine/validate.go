package engine

import (
	"math"

	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal/errors"
)

// validateInput enforces the hard preconditions of an analysis
func validateInput(pair regression.SamplePair, alpha float64) error {
	if len(pair.X) != len(pair.Y) {
		return errors.Newf(errors.CodeInvalidInput, core.ErrLengthMismatch,
			"x has %d values but y has %d", len(pair.X), len(pair.Y))
	}
	if len(pair.X) < 2 {
		return errors.Newf(errors.CodeInvalidInput, core.ErrSampleTooShort,
			"need at least 2 observations, got %d", len(pair.X))
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return errors.Newf(errors.CodeInvalidInput, core.ErrAlphaOutOfRange,
			"significance level %v", alpha)
	}
	if i, ok := firstNonFinite(pair.X); ok {
		return errors.Newf(errors.CodeInvalidInput, core.ErrNonNumeric,
			"x[%d] = %v", i, pair.X[i])
	}
	if i, ok := firstNonFinite(pair.Y); ok {
		return errors.Newf(errors.CodeInvalidInput, core.ErrNonNumeric,
			"y[%d] = %v", i, pair.Y[i])
	}
	return nil
}

func firstNonFinite(values []float64) (int, bool) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, true
		}
	}
	return 0, false
}

// checkSpread rejects constant samples before any division happens.
// Sum-based spreads of a constant sample can round to a tiny positive number,
// so the raw values are compared instead.
func checkSpread(pair regression.SamplePair) error {
	if isConstant(pair.X) {
		return errors.Newf(errors.CodeUndefinedCorrelation, core.ErrUndefinedCorrelation,
			"%s is constant", nameOr(pair.IndependentLabel, "x"))
	}
	if isConstant(pair.Y) {
		return errors.Newf(errors.CodeUndefinedCorrelation, core.ErrUndefinedCorrelation,
			"%s is constant", nameOr(pair.DependentLabel, "y"))
	}
	return nil
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func nameOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
