package engine

import (
	"math"

	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal/errors"
)

// rangeTolerance absorbs rounding when |r| lands a few ulps past 1
const rangeTolerance = 1e-12

// Correlate computes Pearson's r = Sxy/√(Sxx·Syy) and classifies it.
// Zero spread in either sample is fatal, as is an r outside [-1, 1].
func Correlate(s regression.Sums, independent, dependent string) (regression.Correlation, error) {
	if s.Sxx <= 0 || s.Syy <= 0 {
		return regression.Correlation{}, errors.Newf(errors.CodeUndefinedCorrelation,
			core.ErrUndefinedCorrelation, "Sxx is %g, Syy is %g", s.Sxx, s.Syy)
	}

	r := clampUnit(s.Sxy / math.Sqrt(s.Sxx*s.Syy))

	band := ClassifyCorrelation(r)
	if band == regression.BandOutOfRange {
		return regression.Correlation{}, errors.Newf(errors.CodeCorrelationOutOfRange,
			core.ErrCorrelationOutOfRange, "r = %v", r)
	}

	return regression.Correlation{
		R:          r,
		Band:       band,
		Conclusion: DescribeCorrelation(band, independent, dependent),
	}, nil
}

func clampUnit(r float64) float64 {
	if r > 1 && r-1 <= rangeTolerance {
		return 1
	}
	if r < -1 && -1-r <= rangeTolerance {
		return -1
	}
	return r
}
