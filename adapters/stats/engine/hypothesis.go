package engine

import (
	"fmt"
	"math"
	"strings"

	"golinreg/domain/core"
	"golinreg/domain/regression"
)

// Skip reasons recorded on tests that could not be performed
var (
	skipNoDegrees   = core.ErrInsufficientDegreesOfFreedom.Error() + ": n must exceed 2"
	skipPerfectFit  = "perfect fit: the residual sum of squares is zero"
	skipPerfectCorr = "perfect correlation: the standard error of r is zero"
)

// BetaTest tests H0: β = 0 using se(b) = sqrt(CME / Sxx).
// It needs n > 2 and a positive SCE.
func BetaTest(reg regression.Regression, det regression.Determination, n int, alpha float64, independent, dependent string) regression.HypothesisTest {
	test := newTest(regression.ParameterBeta, n, alpha)
	if n <= 2 {
		test.SkipReason = skipNoDegrees
		return test
	}
	if det.SCE <= 0 || reg.Sxx <= 0 {
		test.SkipReason = skipPerfectFit
		return test
	}

	se := math.Sqrt(det.CME / reg.Sxx)
	return finishTest(test, se, reg.B/se, independent, dependent)
}

// RhoTest tests H0: ρ = 0 using se(r) = sqrt((1 - r²) / (n - 2)).
// It needs n > 2; |r| = 1 leaves the statistic unbounded and the test is skipped.
func RhoTest(r float64, n int, alpha float64, independent, dependent string) regression.HypothesisTest {
	test := newTest(regression.ParameterRho, n, alpha)
	if n <= 2 {
		test.SkipReason = skipNoDegrees
		return test
	}

	se := math.Sqrt((1 - r*r) / float64(n-2))
	if se == 0 {
		test.SkipReason = skipPerfectCorr
		return test
	}
	return finishTest(test, se, r/se, independent, dependent)
}

// newTest fills the fields that depend only on n and alpha
func newTest(param regression.Parameter, n int, alpha float64) regression.HypothesisTest {
	test := regression.HypothesisTest{Parameter: param}
	if n <= 2 {
		return test
	}
	test.Distribution = regression.SelectDistribution(n)
	test.CriticalValue = CriticalValue(test.Distribution, alpha, n)
	return test
}

func finishTest(test regression.HypothesisTest, se, stat float64, independent, dependent string) regression.HypothesisTest {
	test.Performed = true
	test.StandardError = se
	test.Statistic = stat
	test.RejectNull = rejects(stat, test.CriticalValue)
	test.Conclusion = concludeTest(test, independent, dependent)
	return test
}

// concludeTest states both evaluated comparisons, the branch taken and what it means
func concludeTest(test regression.HypothesisTest, independent, dependent string) string {
	sym := test.Distribution.String()
	stat, crit := test.Statistic, test.CriticalValue

	var b strings.Builder
	b.WriteString("Two-tailed test: ")
	if test.Distribution == regression.DistributionStudentT {
		fmt.Fprintf(&b, "%s < -%s(α/2, n-2) or %s > %s(α/2, n-2)\n", sym, sym, sym, sym)
	} else {
		fmt.Fprintf(&b, "%s < -%s(α/2) or %s > %s(α/2)\n", sym, sym, sym, sym)
	}
	fmt.Fprintf(&b, "Evaluated: %.4f < -%.4f (%t) or %.4f > %.4f (%t)\n\n",
		stat, crit, stat < -crit, stat, crit, stat > crit)

	relation := "linear relationship"
	if test.Parameter == regression.ParameterRho {
		relation = "linear correlation"
	}

	if test.RejectNull {
		b.WriteString("The statistic falls in the rejection region, so H₀ is rejected.\n")
		fmt.Fprintf(&b, "There is sufficient evidence to reject %s = 0.\n", test.Parameter)
		fmt.Fprintf(&b, "A %s exists between %s and %s.", relation, independent, dependent)
	} else {
		b.WriteString("The statistic does not fall in the rejection region, so H₀ is not rejected.\n")
		fmt.Fprintf(&b, "There is not sufficient evidence to reject %s = 0.\n", test.Parameter)
		fmt.Fprintf(&b, "A %s does not exist between %s and %s.", relation, independent, dependent)
	}
	return b.String()
}
