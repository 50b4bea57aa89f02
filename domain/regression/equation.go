package regression

import (
	"fmt"
	"math"
)

// Equation renders the fitted line as "ŷ = a + bx", or "ŷ = a - |b|x" for a
// negative slope, with prec decimals.
func (r Regression) Equation(prec int) string {
	if prec < 0 {
		prec = 0
	}
	if r.B >= 0 {
		return fmt.Sprintf("ŷ = %.*f + %.*fx", prec, r.A, prec, r.B)
	}
	return fmt.Sprintf("ŷ = %.*f - %.*fx", prec, r.A, prec, math.Abs(r.B))
}

// DefaultTitle is the scatter diagram title used when none is given
func DefaultTitle(independent, dependent string) string {
	return fmt.Sprintf("Scatter diagram of %s vs %s", independent, dependent)
}
