package main

import (
	"io"

	"github.com/spf13/cobra"

	"golinreg/adapters/excel"
	"golinreg/adapters/report"
	"golinreg/adapters/stats/engine"
	"golinreg/app"
	"golinreg/internal/errors"
	"golinreg/ports"
)

func newPairsCmd() *cobra.Command {
	var file, sheet, xCol, format, out string
	var alpha float64
	var concurrency int

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Analyze one column against every other numeric column of a file",
		Long: `Run the full analysis of --x-col against each remaining numeric column
concurrently and print a summary ordered by |r|. Columns that cannot be
analyzed (for example a constant column) are listed with their error.

Example: golinreg pairs --file measurements.csv --x-col temperature --concurrency 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("alpha") {
				alpha = cfg.Analysis.Alpha
			}
			if !cmd.Flags().Changed("concurrency") {
				concurrency = cfg.Batch.Concurrency
			}

			readerCfg := excel.DefaultExcelConfig(file)
			readerCfg.Sheet = sheet
			independent, candidates, err := loadColumns(excel.NewDataReader(readerCfg), xCol)
			if err != nil {
				return err
			}

			svc := app.NewPairwiseService(engine.NewStatsEngine(), concurrency)
			summary, err := svc.Run(cmd.Context(), independent, candidates, alpha)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return report.RenderPairwise(w, summary, format)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read columns from an .xlsx or .csv file")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	cmd.Flags().StringVar(&xCol, "x-col", "", "Independent column name")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "Significance level (default REGRESSION_ALPHA)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Analyses run at once (default BATCH_CONCURRENCY)")
	cmd.Flags().StringVar(&format, "format", report.FormatText, "Summary format: text, markdown or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the summary to this file instead of stdout")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("x-col")

	return cmd
}

// loadColumns reads every numeric column; the independent one must be among them
func loadColumns(reader *excel.DataReader, xCol string) (ports.Column, []ports.Column, error) {
	data, err := reader.ReadData()
	if err != nil {
		return ports.Column{}, nil, err
	}
	if !data.HasColumn(xCol) {
		return ports.Column{}, nil, errors.ColumnNotFound(xCol)
	}

	var independent ports.Column
	var candidates []ports.Column
	for _, name := range reader.NumericColumns(data) {
		values, err := reader.NumericColumn(data, name)
		if err != nil {
			return ports.Column{}, nil, err
		}
		col := ports.Column{Name: name, Values: values}
		if name == xCol {
			independent = col
		}
		candidates = append(candidates, col)
	}

	if independent.Name == "" {
		_, err := reader.NumericColumn(data, xCol)
		return ports.Column{}, nil, err
	}
	return independent, candidates, nil
}
