package engine

import (
	"golinreg/domain/regression"
)

// Determine decomposes the variance of y given r.
// CME and the adjusted r² need n > 2 and stay 0 otherwise; a 0 there means
// "no residual degrees of freedom", not a fitted value.
func Determine(r, syy float64, n int) regression.Determination {
	rSquared := r * r
	det := regression.Determination{
		RSquared: rSquared,
		SCE:      syy * (1 - rSquared),
	}

	if n > 1 {
		det.CMT = syy / float64(n-1)
	}
	if n > 2 {
		det.CME = det.SCE / float64(n-2)
		if det.CMT != 0 {
			det.RSquaredAdj = 1 - det.CME/det.CMT
		}
	}
	return det
}
