package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golinreg/internal/errors"
	"golinreg/ports"
)

// RenderPairwise writes a batch summary as a table, one row per dependent column.
// html is not offered for batches.
func RenderPairwise(w io.Writer, summary *ports.PairwiseSummary, format string) error {
	var out []byte
	switch strings.ToLower(format) {
	case FormatText, "":
		out = []byte(pairwiseText(summary))
	case FormatMarkdown, "md":
		var b bytes.Buffer
		fmt.Fprintf(&b, "# %s against every numeric column\n\n", escapeMarkdown(summary.Independent))
		writeMarkdownTable(&b, pairwiseSection(summary))
		out = b.Bytes()
	case FormatJSON:
		var err error
		if out, err = json.MarshalIndent(summary, "", "  "); err != nil {
			return errors.RenderFailed(FormatJSON, err)
		}
		out = append(out, '\n')
	default:
		return errors.UnsupportedFormat(format)
	}

	if _, err := w.Write(out); err != nil {
		return errors.RenderFailed(format, err)
	}
	return nil
}

func pairwiseText(summary *ports.PairwiseSummary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(summary.Independent+" against every numeric column") + "\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("batch %s  α=%g  %d analyzed, %d failed, %dms",
		summary.BatchID, summary.Alpha, summary.Succeeded, summary.Failed, summary.RuntimeMs)) + "\n")
	b.WriteString(renderTable(pairwiseSection(summary)) + "\n")
	return b.String()
}

func pairwiseSection(summary *ports.PairwiseSummary) section {
	s := section{Headers: []string{"Dependent", "n", "r", "Band", "r²", "Equation", "β test", "ρ test"}}
	for _, o := range summary.Outcomes {
		if o.Result == nil {
			s.Rows = append(s.Rows, []string{o.Dependent, "", "", o.Code, "", o.Error, "", ""})
			continue
		}
		res := o.Result
		s.Rows = append(s.Rows, []string{
			o.Dependent,
			fmt.Sprintf("%d", res.N),
			num(res.Correlation.R),
			bandLabel(res.Correlation.Band),
			percent(res.Determination.RSquared),
			res.Regression.Equation(prec),
			verdict(res.BetaTest.Performed, res.BetaTest.RejectNull),
			verdict(res.RhoTest.Performed, res.RhoTest.RejectNull),
		})
	}
	return s
}

func verdict(performed, reject bool) string {
	switch {
	case !performed:
		return "skipped"
	case reject:
		return "reject H₀"
	default:
		return "keep H₀"
	}
}
