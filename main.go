package main

import (
	"log"

	"github.com/joho/godotenv"

	"golinreg/adapters/scatter"
	"golinreg/adapters/stats/engine"
	"golinreg/app"
	"golinreg/internal/api"
	"golinreg/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	analyzer := engine.NewStatsEngine()
	plotter := scatter.NewFallbackRenderer(
		scatter.NewPNGRenderer(),
		scatter.NewASCIIRenderer(appConfig.Plot.ASCIIWidth, appConfig.Plot.ASCIIHeight),
	)

	server := api.NewServer(appConfig,
		app.NewAnalysisService(analyzer, plotter, appConfig.Analysis.Alpha),
		app.NewPairwiseService(analyzer, appConfig.Batch.Concurrency),
	)

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
