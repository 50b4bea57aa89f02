package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"golinreg/internal/config"
	"golinreg/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError prefixes application errors with their code
func formatError(err error) string {
	if errors.IsAppError(err) {
		return fmt.Sprintf("Error [%s]: %v", errors.GetCode(err), err)
	}
	return fmt.Sprintf("Error: %v", err)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "golinreg",
		Short:         "Simple linear regression with correlation and significance tests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newPairsCmd(),
		newDemoCmd(),
	)
	return rootCmd
}

// loadConfig reads .env when present, then the environment
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return config.Load()
}
