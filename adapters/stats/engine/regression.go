package engine

import (
	"golinreg/domain/regression"
)

// Regress derives means and the least-squares line from the sums. A zero Sxx yields a flat line through mean_y instead of dividing by zero.
func Regress(s regression.Sums) regression.Regression {
	n := float64(s.N)
	meanX := s.SumX / n
	meanY := s.SumY / n

	sxx, syy, sxy := s.Sxx, s.Syy, s.Sxy

	b := 0.0
	if sxx != 0 {
		b = sxy / sxx
	}

	return regression.Regression{
		SumX:  s.SumX,
		SumY:  s.SumY,
		SumXY: s.SumXY,
		SumX2: s.SumX2,
		SumY2: s.SumY2,
		MeanX: meanX,
		MeanY: meanY,
		Sxx:   sxx,
		Syy:   syy,
		Sxy:   sxy,
		A:     meanY - b*meanX,
		B:     b,
	}
}
