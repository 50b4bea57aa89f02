package engine

import (
	"gonum.org/v1/gonum/stat/distuv"

	"golinreg/domain/regression"
)

// CriticalValue returns the two-tailed critical value at significance alpha
// for a sample of size n under distribution d: the 1 - alpha/2 quantile of
// Student's t with n-2 degrees of freedom, or of the unit normal.
// DistributionNone (n <= 2) has no critical value and yields 0.
func CriticalValue(d regression.Distribution, alpha float64, n int) float64 {
	p := 1 - alpha/2

	switch d {
	case regression.DistributionStudentT:
		if n <= 2 {
			return 0
		}
		tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		return tDist.Quantile(p)
	case regression.DistributionNormal:
		return distuv.UnitNormal.Quantile(p)
	default:
		return 0
	}
}

// rejects reports whether stat lies outside [-critical, +critical]
func rejects(stat, critical float64) bool {
	lower := stat < -critical
	upper := stat > critical
	return lower || upper
}
