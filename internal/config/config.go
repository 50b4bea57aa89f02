package config

import (
	"math"
	"os"
	"strconv"

	"golinreg/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Plot     PlotConfig
	Server   ServerConfig
	Batch    BatchConfig
}

// AnalysisConfig holds defaults for the regression engine and report output
type AnalysisConfig struct {
	Alpha     float64
	OutputDir string
}

// PlotConfig holds scatter diagram settings
type PlotConfig struct {
	File        string
	WidthCm     float64
	HeightCm    float64
	ASCII       bool // skip the PNG renderer and draw in the terminal
	ASCIIWidth  int
	ASCIIHeight int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// BatchConfig holds pairwise batch settings
type BatchConfig struct {
	Concurrency int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Analysis: *loadAnalysisConfig(),
		Plot:     *loadPlotConfig(),
		Server:   *loadServerConfig(),
		Batch:    *loadBatchConfig(),
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{Alpha: 0.05, OutputDir: "."},
		Plot: PlotConfig{
			File:        "diagrama_dispersion.png",
			WidthCm:     25,
			HeightCm:    12.5,
			ASCIIWidth:  60,
			ASCIIHeight: 20,
		},
		Server: ServerConfig{Port: "8080", GinMode: "release"},
		Batch:  BatchConfig{Concurrency: 4},
	}
}

func loadAnalysisConfig() *AnalysisConfig {
	def := Default().Analysis
	return &AnalysisConfig{
		Alpha:     getEnvFloatOrDefault("REGRESSION_ALPHA", def.Alpha),
		OutputDir: getEnvOrDefault("REGRESSION_OUTPUT_DIR", def.OutputDir),
	}
}

func loadPlotConfig() *PlotConfig {
	def := Default().Plot
	return &PlotConfig{
		File:        getEnvOrDefault("PLOT_FILE", def.File),
		WidthCm:     getEnvFloatOrDefault("PLOT_WIDTH_CM", def.WidthCm),
		HeightCm:    getEnvFloatOrDefault("PLOT_HEIGHT_CM", def.HeightCm),
		ASCII:       getEnvBoolOrDefault("PLOT_ASCII", def.ASCII),
		ASCIIWidth:  getEnvIntOrDefault("ASCII_WIDTH", def.ASCIIWidth),
		ASCIIHeight: getEnvIntOrDefault("ASCII_HEIGHT", def.ASCIIHeight),
	}
}

func loadServerConfig() *ServerConfig {
	def := Default().Server
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", def.Port),
		GinMode: getEnvOrDefault("GIN_MODE", def.GinMode),
	}
}

func loadBatchConfig() *BatchConfig {
	return &BatchConfig{
		Concurrency: getEnvIntOrDefault("BATCH_CONCURRENCY", Default().Batch.Concurrency),
	}
}

// Validate checks the ranges every consumer relies on
func Validate(config *Config) error {
	if math.IsNaN(config.Analysis.Alpha) || config.Analysis.Alpha <= 0 || config.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("REGRESSION_ALPHA must lie strictly between 0 and 1")
	}
	if config.Plot.WidthCm <= 0 || config.Plot.HeightCm <= 0 {
		return errors.ConfigInvalid("plot dimensions must be positive")
	}
	if config.Plot.ASCIIWidth < 10 || config.Plot.ASCIIHeight < 5 {
		return errors.ConfigInvalid("ASCII plot needs at least 10 columns and 5 rows")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Batch.Concurrency < 1 {
		return errors.ConfigInvalid("BATCH_CONCURRENCY must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
