package profiling

import (
	"math"

	"github.com/montanaflynn/stats"
)

// SampleProfile summarises one sample for the descriptive section of a report
type SampleProfile struct {
	Label    string  `json:"label"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"` // sample standard deviation (n-1)
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Outliers int     `json:"outliers"` // points beyond 1.5 IQR from the quartiles
}

// DistributionAnalyzer handles descriptive summaries of numeric samples
type DistributionAnalyzer struct{}

// NewDistributionAnalyzer creates a new distribution analyzer
func NewDistributionAnalyzer() *DistributionAnalyzer {
	return &DistributionAnalyzer{}
}

// Profile computes the descriptive summary of data
func (da *DistributionAnalyzer) Profile(label string, data []float64) (SampleProfile, error) {
	profile := SampleProfile{Label: label, Count: len(data)}

	mean, err := stats.Mean(data)
	if err != nil {
		return profile, err
	}

	stdDev := 0.0
	if len(data) > 1 {
		stdDev, err = stats.StandardDeviationSample(data)
		if err != nil {
			return profile, err
		}
	}

	min, err := stats.Min(data)
	if err != nil {
		return profile, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return profile, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return profile, err
	}

	// A single value is its own quartiles; Quartile would split it into empty halves
	quartiles := stats.Quartiles{Q1: median, Q2: median, Q3: median}
	if len(data) > 1 {
		quartiles, err = stats.Quartile(data)
		if err != nil {
			return profile, err
		}
	}

	profile.Mean = mean
	profile.StdDev = stdDev
	profile.Min = min
	profile.Max = max
	profile.Median = median
	profile.Q25 = quartiles.Q1
	profile.Q75 = quartiles.Q3
	profile.Skewness = calculateSkewness(data, mean, stdDev)
	profile.Outliers = detectOutliers(data, quartiles.Q1, quartiles.Q3)

	return profile, nil
}

// ProfilePair profiles both samples of an x/y pair
func (da *DistributionAnalyzer) ProfilePair(xLabel string, x []float64, yLabel string, y []float64) ([2]SampleProfile, error) {
	var out [2]SampleProfile
	var err error
	if out[0], err = da.Profile(xLabel, x); err != nil {
		return out, err
	}
	if out[1], err = da.Profile(yLabel, y); err != nil {
		return out, err
	}
	return out, nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0

	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	// stdDev is already the n-1 estimate, so this is G1 directly
	return n / ((n - 1) * (n - 2)) * sumCubedDeviations
}

// detectOutliers identifies outliers using IQR method
func detectOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}

	return outlierCount
}

// isSymmetric reports whether the skewness is small enough to call the sample symmetric
func isSymmetric(skewness float64) bool {
	return math.Abs(skewness) < 0.5
}

// Shape describes the skew of the profile in one word
func (p SampleProfile) Shape() string {
	switch {
	case isSymmetric(p.Skewness):
		return "symmetric"
	case p.Skewness > 0:
		return "right-skewed"
	default:
		return "left-skewed"
	}
}
