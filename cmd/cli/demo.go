package main

import (
	"github.com/spf13/cobra"

	"golinreg/internal/testkit"
)

func newDemoCmd() *cobra.Command {
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Analyze the built-in 30-day temperature and energy sample",
		Long: `Run the complete analysis on 30 days of room temperature deviation
against daily energy consumption. With n = 30 the tests use the normal
distribution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts.resolve(cmd, cfg)
			return runAnalysis(cmd.Context(), cmd.OutOrStdout(), cfg, testkit.TemperaturePair(), opts)
		},
	}
	opts.register(cmd)

	return cmd
}
