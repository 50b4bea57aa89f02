package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"golinreg/adapters/datareadiness/coercer"
	"golinreg/adapters/excel"
	"golinreg/adapters/report"
	"golinreg/adapters/scatter"
	"golinreg/adapters/stats/engine"
	"golinreg/app"
	"golinreg/domain/regression"
	"golinreg/internal/config"
	"golinreg/internal/errors"
	"golinreg/ports"
)

// outputOptions are the flags shared by every command that writes a report
type outputOptions struct {
	alpha  float64
	title  string
	format string
	out    string
	plot   string
	noPlot bool
	ascii  bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.alpha, "alpha", regression.DefaultAlpha, "Significance level for the β and ρ tests (default REGRESSION_ALPHA)")
	cmd.Flags().StringVar(&o.title, "title", "", "Scatter diagram title")
	cmd.Flags().StringVar(&o.format, "format", report.FormatText, "Report format: "+strings.Join(report.Formats, ", "))
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(&o.plot, "plot", "", "Scatter diagram path (default REGRESSION_OUTPUT_DIR/PLOT_FILE)")
	cmd.Flags().BoolVar(&o.noPlot, "no-plot", false, "Skip the scatter diagram")
	cmd.Flags().BoolVar(&o.ascii, "ascii", false, "Draw the scatter diagram as text instead of PNG")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(report.Formats, cobra.ShellCompDirectiveNoFileComp))
}

// resolve fills unset flags from configuration
func (o *outputOptions) resolve(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("alpha") {
		o.alpha = cfg.Analysis.Alpha
	}
	if o.plot == "" {
		o.plot = filepath.Join(cfg.Analysis.OutputDir, cfg.Plot.File)
	}
	if cfg.Plot.ASCII {
		o.ascii = true
	}
}

func newAnalyzeCmd() *cobra.Command {
	var xList, yList string
	var file, sheet, xCol, yCol string
	var xLabel, yLabel string
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one independent/dependent sample pair",
		Long: `Compute Pearson's r, the least-squares line, r², adjusted r² and the
two-tailed β and ρ significance tests for one pair of samples.

Samples come either from comma-separated lists or from two columns of an
.xlsx or .csv file.

Examples:
  golinreg analyze --x "2,3,4,5" --y "3,5,5.5,6" --x-label advertising --y-label sales
  golinreg analyze --file data.xlsx --x-col advertising --y-col sales --format markdown -o report.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts.resolve(cmd, cfg)

			pair, err := sampleReader(xList, yList, file, sheet).ReadPair(xCol, yCol)
			if err != nil {
				return err
			}
			if xLabel != "" {
				pair.IndependentLabel = xLabel
			}
			if yLabel != "" {
				pair.DependentLabel = yLabel
			}

			return runAnalysis(cmd.Context(), cmd.OutOrStdout(), cfg, pair, opts)
		},
	}

	cmd.Flags().StringVar(&xList, "x", "", "Independent sample as a list, e.g. \"1,2,3\" (use ; with decimal commas)")
	cmd.Flags().StringVar(&yList, "y", "", "Dependent sample as a list")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read samples from an .xlsx or .csv file")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	cmd.Flags().StringVar(&xCol, "x-col", "", "Independent column name in --file")
	cmd.Flags().StringVar(&yCol, "y-col", "", "Dependent column name in --file")
	cmd.Flags().StringVar(&xLabel, "x-label", "", "Name of the independent variable")
	cmd.Flags().StringVar(&yLabel, "y-label", "", "Name of the dependent variable")
	opts.register(cmd)

	cmd.MarkFlagsMutuallyExclusive("x", "file")
	cmd.MarkFlagsMutuallyExclusive("y", "file")
	cmd.MarkFlagsRequiredTogether("x", "y")
	cmd.MarkFlagsRequiredTogether("file", "x-col", "y-col")
	cmd.MarkFlagsOneRequired("x", "file")

	return cmd
}

// sampleReader picks the data file when one is given, otherwise the typed lists
func sampleReader(xList, yList, file, sheet string) ports.SampleReaderPort {
	if file != "" {
		cfg := excel.DefaultExcelConfig(file)
		cfg.Sheet = sheet
		return excel.NewDataReader(cfg)
	}
	return &listReader{
		x:      xList,
		y:      yList,
		parser: coercer.NewNumericCoercer(coercer.DefaultCoercionConfig()),
	}
}

// listReader serves a pair typed on the command line as separated lists
type listReader struct {
	x, y   string
	parser *coercer.NumericCoercer
}

// ReadPair implements ports.SampleReaderPort. The column names become the
// labels; blank ones fall back to the neutral defaults.
func (r *listReader) ReadPair(xCol, yCol string) (regression.SamplePair, error) {
	x, err := r.parser.ParseList("x", r.x)
	if err != nil {
		return regression.SamplePair{}, err
	}
	y, err := r.parser.ParseList("y", r.y)
	if err != nil {
		return regression.SamplePair{}, err
	}
	return regression.NewSamplePair(x, y, xCol, yCol), nil
}

// newPlotter picks the scatter renderer for the run
func newPlotter(cfg *config.Config, ascii bool) ports.PlotRendererPort {
	text := scatter.NewASCIIRenderer(cfg.Plot.ASCIIWidth, cfg.Plot.ASCIIHeight)
	if ascii {
		return text
	}
	return scatter.NewFallbackRenderer(scatter.NewPNGRenderer(), text)
}

// runAnalysis analyzes pair, saves the plot and writes the report
func runAnalysis(ctx context.Context, stdout io.Writer, cfg *config.Config, pair regression.SamplePair, opts outputOptions) error {
	renderer, err := report.New(opts.format)
	if err != nil {
		return err
	}

	svc := app.NewAnalysisService(engine.NewStatsEngine(), newPlotter(cfg, opts.ascii), cfg.Analysis.Alpha)
	rep, err := svc.Analyze(ctx, app.AnalysisRequest{Pair: pair, Alpha: &opts.alpha, Title: opts.title})
	if err != nil {
		return err
	}

	if !opts.noPlot {
		if err := svc.SavePlot(ctx, rep, pair, app.PlotOptions{
			Path:     opts.plot,
			WidthCm:  cfg.Plot.WidthCm,
			HeightCm: cfg.Plot.HeightCm,
		}); err != nil {
			return err
		}
	}

	return writeOutput(stdout, opts.out, func(w io.Writer) error {
		return renderer.Render(w, *rep)
	})
}

// writeOutput sends rendered output to path, or to stdout when path is empty
func writeOutput(stdout io.Writer, path string, render func(io.Writer) error) error {
	if path == "" {
		return render(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
