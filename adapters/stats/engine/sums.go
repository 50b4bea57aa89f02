package engine

import (
	"golinreg/domain/regression"
)

// ComputeSums accumulates Σx, Σy, Σxy, Σx² and Σy², then a second pass over
// the mean-shifted values yields Sxx, Syy and Sxy. x and y must have equal length.
func ComputeSums(x, y []float64) regression.Sums {
	s := regression.Sums{N: len(x)}
	for i := 0; i < len(x); i++ {
		s.SumX += x[i]
		s.SumY += y[i]
		s.SumXY += x[i] * y[i]
		s.SumX2 += x[i] * x[i]
		s.SumY2 += y[i] * y[i]
	}
	if s.N == 0 {
		return s
	}

	meanX := s.SumX / float64(s.N)
	meanY := s.SumY / float64(s.N)
	for i := 0; i < len(x); i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		s.Sxx += dx * dx
		s.Syy += dy * dy
		s.Sxy += dx * dy
	}
	return s
}
