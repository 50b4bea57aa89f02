package report

import (
	"fmt"
	"strings"

	"golinreg/domain/regression"
	"golinreg/ports"
)

// section is one titled block of a report; renderers decide how it looks
type section struct {
	Title   string
	Headers []string
	Rows    [][]string
	Notes   []string
}

const prec = 4

func num(v float64) string {
	return fmt.Sprintf("%.*f", prec, v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// buildSections lays out a report in reading order
func buildSections(rep ports.Report) []section {
	res := rep.Result
	sections := []section{declarationSection(res)}
	if len(rep.Profiles) > 0 {
		sections = append(sections, profileSection(rep))
	}
	if rep.Plot != nil {
		sections = append(sections, plotSection(rep))
	}
	sections = append(sections,
		correlationSection(res),
		sumsSection(res),
		estimatorSection(res),
		determinationSection(res),
		adjustedSection(res),
		testSection(res, res.BetaTest),
		testSection(res, res.RhoTest),
	)
	return sections
}

func declarationSection(res regression.AnalysisResult) section {
	return section{
		Title:   "Variables",
		Headers: []string{"Role", "Variable"},
		Rows: [][]string{
			{"Independent (x)", res.IndependentLabel},
			{"Dependent (y)", res.DependentLabel},
			{"Observations (n)", fmt.Sprintf("%d", res.N)},
			{"Significance (α)", fmt.Sprintf("%g", res.Alpha)},
		},
	}
}

func profileSection(rep ports.Report) section {
	s := section{
		Title:   "Descriptive statistics",
		Headers: []string{"Variable", "n", "Mean", "Std dev", "Min", "Q1", "Median", "Q3", "Max", "Shape"},
	}
	for _, p := range rep.Profiles {
		s.Rows = append(s.Rows, []string{
			p.Label, fmt.Sprintf("%d", p.Count), num(p.Mean), num(p.StdDev),
			num(p.Min), num(p.Q25), num(p.Median), num(p.Q75), num(p.Max), p.Shape(),
		})
	}
	return s
}

func plotSection(rep ports.Report) section {
	s := section{Title: "Scatter diagram"}
	switch {
	case rep.Plot.Path != "":
		s.Notes = append(s.Notes, fmt.Sprintf("%s saved to %s", rep.Title, rep.Plot.Path))
	case rep.Plot.Kind == "ascii":
		s.Notes = append(s.Notes, rep.Title+" drawn as text")
	}
	if rep.Plot.Error != "" {
		s.Notes = append(s.Notes, "PNG unavailable: "+rep.Plot.Error)
	}
	return s
}

func correlationSection(res regression.AnalysisResult) section {
	c := res.Correlation
	return section{
		Title:   "Correlation",
		Headers: []string{"Coefficient", "Value", "Band"},
		Rows:    [][]string{{"r", num(c.R), bandLabel(c.Band)}},
		Notes:   []string{c.Conclusion},
	}
}

func bandLabel(b regression.Band) string {
	if b.Strength() == "" {
		return string(b)
	}
	return b.Strength() + " " + b.Direction()
}

func sumsSection(res regression.AnalysisResult) section {
	reg := res.Regression
	return section{
		Title:   "Sums of squares",
		Headers: []string{"Quantity", "Value"},
		Rows: [][]string{
			{"Σx", num(reg.SumX)},
			{"Σy", num(reg.SumY)},
			{"Σxy", num(reg.SumXY)},
			{"Σx²", num(reg.SumX2)},
			{"Σy²", num(reg.SumY2)},
			{"x̄", num(reg.MeanX)},
			{"ȳ", num(reg.MeanY)},
			{"Sxx", num(reg.Sxx)},
			{"Syy", num(reg.Syy)},
			{"Sxy", num(reg.Sxy)},
		},
	}
}

func estimatorSection(res regression.AnalysisResult) section {
	reg := res.Regression
	return section{
		Title:   "Least-squares estimators",
		Headers: []string{"Estimator", "Value"},
		Rows: [][]string{
			{"a (intercept)", num(reg.A)},
			{"b (slope)", num(reg.B)},
		},
		Notes: []string{"Fitted line: " + reg.Equation(prec)},
	}
}

func determinationSection(res regression.AnalysisResult) section {
	det := res.Determination
	return section{
		Title:   "Coefficient of determination",
		Headers: []string{"Quantity", "Value"},
		Rows: [][]string{
			{"r²", fmt.Sprintf("%s (%s)", num(det.RSquared), percent(det.RSquared))},
			{"SCE", num(det.SCE)},
			{"CMT", num(det.CMT)},
		},
		Notes: []string{fmt.Sprintf("%s of the variation in %s is explained by %s.",
			percent(det.RSquared), res.DependentLabel, res.IndependentLabel)},
	}
}

func adjustedSection(res regression.AnalysisResult) section {
	det := res.Determination
	s := section{
		Title:   "Adjusted coefficient of determination",
		Headers: []string{"Quantity", "Value"},
		Rows: [][]string{
			{"CME", num(det.CME)},
			{"r²adj", fmt.Sprintf("%s (%s)", num(det.RSquaredAdj), percent(det.RSquaredAdj))},
		},
	}
	if !res.HasTests() {
		s.Notes = []string{"Not defined with fewer than three observations."}
	}
	return s
}

func testSection(res regression.AnalysisResult, test regression.HypothesisTest) section {
	s := section{
		Title:   fmt.Sprintf("Hypothesis test for %s (H₀: %s = 0)", test.Parameter, test.Parameter),
		Headers: []string{"Quantity", "Value"},
	}
	if !test.Performed {
		if test.CriticalValue != 0 {
			s.Rows = [][]string{{"Critical value", num(test.CriticalValue)}}
		}
		s.Notes = []string{"Skipped: " + test.SkipReason}
		return s
	}

	d := test.Distribution.String()
	s.Rows = [][]string{
		{"Standard error", num(test.StandardError)},
		{"Statistic (" + d + ")", num(test.Statistic)},
		{criticalLabel(res, test.Distribution), num(test.CriticalValue)},
		{"Distribution", d},
		{"Reject H₀", yesNo(test.RejectNull)},
	}
	s.Notes = strings.Split(test.Conclusion, "\n")
	return s
}

func criticalLabel(res regression.AnalysisResult, d regression.Distribution) string {
	if d == regression.DistributionNormal {
		return fmt.Sprintf("Critical value z(%g/2)", res.Alpha)
	}
	return fmt.Sprintf("Critical value t(%g/2, %d)", res.Alpha, res.DegreesOfFreedom())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
