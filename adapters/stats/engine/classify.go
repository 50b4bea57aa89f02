package engine

import (
	"fmt"

	"golinreg/domain/regression"
)

// bandRule pairs a predicate on r with the band it selects
type bandRule struct {
	band      regression.Band
	condition string // range shown in the conclusion
	matches   func(r float64) bool
}

// bandRules is evaluated top to bottom, first match wins
var bandRules = []bandRule{
	{regression.BandNone, "r = 0", func(r float64) bool { return r == 0 }},
	{regression.BandWeakPositive, "0 < r < 0.5", func(r float64) bool { return r > 0 && r < 0.5 }},
	{regression.BandModeratePositive, "r = 0.5", func(r float64) bool { return r == 0.5 }},
	{regression.BandStrongPositive, "0.5 < r ≤ 1", func(r float64) bool { return r > 0.5 && r <= 1 }},
	{regression.BandWeakNegative, "-0.5 < r < 0", func(r float64) bool { return r < 0 && r > -0.5 }},
	{regression.BandModerateNegative, "r = -0.5", func(r float64) bool { return r == -0.5 }},
	{regression.BandStrongNegative, "-1 ≤ r < -0.5", func(r float64) bool { return r < -0.5 && r >= -1 }},
}

// ClassifyCorrelation maps r to its band. NaN and values outside [-1, 1]
// fall through every rule and yield BandOutOfRange.
func ClassifyCorrelation(r float64) regression.Band {
	if rule, ok := matchRule(r); ok {
		return rule.band
	}
	return regression.BandOutOfRange
}

func matchRule(r float64) (bandRule, bool) {
	for _, rule := range bandRules {
		if rule.matches(r) {
			return rule, true
		}
	}
	return bandRule{}, false
}

// DescribeCorrelation phrases the band as a sentence about the two variables
func DescribeCorrelation(band regression.Band, independent, dependent string) string {
	switch band {
	case regression.BandNone:
		return fmt.Sprintf("Since r = 0, there is no correlation between %s and %s.", dependent, independent)
	case regression.BandOutOfRange:
		return "The value of r is outside the expected range [-1, 1]."
	}

	condition := ""
	for _, rule := range bandRules {
		if rule.band == band {
			condition = rule.condition
			break
		}
	}
	return fmt.Sprintf("Since %s, the correlation between %s and %s is considered %s and %s.",
		condition, dependent, independent, band.Strength(), band.Direction())
}
