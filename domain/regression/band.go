package regression

// Band is the qualitative strength and direction of a correlation coefficient
type Band string

const (
	BandNone             Band = "none"
	BandWeakPositive     Band = "weak_positive"
	BandModeratePositive Band = "moderate_positive"
	BandStrongPositive   Band = "strong_positive"
	BandWeakNegative     Band = "weak_negative"
	BandModerateNegative Band = "moderate_negative"
	BandStrongNegative   Band = "strong_negative"
	BandOutOfRange       Band = "out_of_range"
)

// Strength returns the adjective for the band ("weak", "moderate", "strong")
func (b Band) Strength() string {
	switch b {
	case BandWeakPositive, BandWeakNegative:
		return "weak"
	case BandModeratePositive, BandModerateNegative:
		return "moderate"
	case BandStrongPositive, BandStrongNegative:
		return "strong"
	default:
		return ""
	}
}

// Direction returns "positive", "negative" or "" for bands without a sign
func (b Band) Direction() string {
	switch b {
	case BandWeakPositive, BandModeratePositive, BandStrongPositive:
		return "positive"
	case BandWeakNegative, BandModerateNegative, BandStrongNegative:
		return "negative"
	default:
		return ""
	}
}

// Distribution is the reference distribution a critical value was taken from
type Distribution string

const (
	DistributionNone     Distribution = ""
	DistributionStudentT Distribution = "t"
	DistributionNormal   Distribution = "z"
)

// String returns the label used in reports ("t" or "z")
func (d Distribution) String() string {
	return string(d)
}

// SelectDistribution picks the reference distribution for a sample of size n:
// none for n <= 2, Student's t below LargeSampleThreshold, the normal from there on
func SelectDistribution(n int) Distribution {
	switch {
	case n <= 2:
		return DistributionNone
	case n < LargeSampleThreshold:
		return DistributionStudentT
	default:
		return DistributionNormal
	}
}
