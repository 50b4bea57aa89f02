package testkit

import (
	"math/rand"

	"golinreg/domain/regression"
)

// Textbook sample: 12 observations with a strong positive linear relationship
var (
	TextbookX = []float64{2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14}
	TextbookY = []float64{3, 5, 5.5, 6, 8, 6.8, 8.8, 9, 8.9, 9.8, 8, 10}
)

// Temperature sample: 30 days of deviation from optimal room temperature
// against daily energy consumption. Weak negative, not significant.
var (
	TemperatureDeviation = []float64{
		21.4, 10.5, 21.5, 15.6, 26.0, 20.3, 17.4, 11.3, 29.5, 19.2,
		18.2, 18.1, 28.8, 15.1, 12.0, 13.6, 22.9, 25.5, 16.6, 16.0,
		23.4, 18.1, 10.0, 28.3, 24.7, 22.5, 20.0, 25.8, 14.7, 26.3,
	}
	EnergyConsumption = []float64{
		0.8, 5.0, 1.0, 2.0, 3.1, 0.0, 1.0, 4.5, 4.5, 0.3,
		1.4, 1.2, 4.1, 2.4, 4.0, 3.4, 1.3, 2.7, 1.7, 2.0,
		1.5, 1.0, 5.2, 4.1, 2.0, 1.0, 0.0, 2.8, 2.8, 3.1,
	}
)

const (
	TemperatureLabel = "the deviation of room temperature from the optimal temperature"
	EnergyLabel      = "the daily energy consumption"
)

// TextbookPair returns the 12-point sample as a labelled pair
func TextbookPair() regression.SamplePair {
	return regression.NewSamplePair(clone(TextbookX), clone(TextbookY), "advertising", "sales")
}

// TemperaturePair returns the 30-day temperature/energy sample
func TemperaturePair() regression.SamplePair {
	return regression.NewSamplePair(clone(TemperatureDeviation), clone(EnergyConsumption), TemperatureLabel, EnergyLabel)
}

// LinearConfig describes a synthetic y = intercept + slope*x + noise sample
type LinearConfig struct {
	N         int
	Slope     float64
	Intercept float64
	Noise     float64 // standard deviation of the Gaussian noise
	Seed      int64
}

// LinearPair generates a deterministic noisy linear sample with x = 0..N-1
func LinearPair(cfg LinearConfig) regression.SamplePair {
	rng := rand.New(rand.NewSource(cfg.Seed))
	x := make([]float64, cfg.N)
	y := make([]float64, cfg.N)
	for i := 0; i < cfg.N; i++ {
		x[i] = float64(i)
		y[i] = cfg.Intercept + cfg.Slope*x[i] + rng.NormFloat64()*cfg.Noise
	}
	return regression.NewSamplePair(x, y, "x", "y")
}

// SequencePair returns x = 1..n paired with y = f(x)
func SequencePair(n int, f func(x float64) float64) regression.SamplePair {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i + 1)
		y[i] = f(x[i])
	}
	return regression.NewSamplePair(x, y, "x", "y")
}

func clone(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}
