package coercer

import (
	"math"
	"strconv"
	"strings"

	"golinreg/domain/core"
	"golinreg/internal/errors"
)

// NumericCoercer turns raw spreadsheet or command-line text into float64 samples
type NumericCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines which notations the coercer accepts
type CoercionConfig struct {
	NumericThreshold float64 `json:"numeric_threshold"` // share of cells that must parse for a column to count as numeric
	AllowCurrency    bool    `json:"allow_currency"`    // strip $, €, £, ¥ and ISO codes
	AllowPercent     bool    `json:"allow_percent"`     // strip a trailing % without rescaling
	AllowParentheses bool    `json:"allow_parentheses"` // (123) -> -123
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		NumericThreshold: 1.0,
		AllowCurrency:    true,
		AllowPercent:     true,
		AllowParentheses: true,
	}
}

// NewNumericCoercer creates a coercer with the given config
func NewNumericCoercer(config CoercionConfig) *NumericCoercer {
	return &NumericCoercer{config: config}
}

// Parse attempts to read one value. Infinite and NaN results are rejected.
// Handles international formats: parentheses for negatives, European decimals, currency symbols
func (c *NumericCoercer) Parse(raw string) (float64, bool) {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return 0, false
	}

	isNegative := false
	if c.config.AllowParentheses && strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	if c.config.AllowCurrency {
		for _, symbol := range []string{"$", "€", "£", "¥", "USD", "EUR", "GBP", "JPY"} {
			cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
		}
		cleanVal = strings.TrimSpace(cleanVal)
	}

	if c.config.AllowPercent {
		cleanVal = strings.TrimSuffix(cleanVal, "%")
	}

	cleanVal = normalizeSeparators(cleanVal)
	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// normalizeSeparators rewrites thousands and decimal separators into Go float syntax
func normalizeSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasPeriod := strings.Contains(s, ".")
	hasSpace := strings.Contains(s, " ")

	switch {
	case hasComma && (hasPeriod || hasSpace):
		// 1.234,56 or 1 234,56 when the comma comes last with at most 3 digits after it
		commaIdx := strings.LastIndex(s, ",")
		afterComma := s[commaIdx+1:]
		if commaIdx > strings.LastIndex(s, ".") && len(afterComma) <= 3 && isDigits(afterComma) {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, " ", "")
			return strings.ReplaceAll(s, ",", ".")
		}
		s = strings.ReplaceAll(s, " ", "")
		return strings.ReplaceAll(s, ",", "")
	case hasComma:
		// A lone comma is read as the decimal separator
		return strings.ReplaceAll(s, ",", ".")
	default:
		return strings.ReplaceAll(s, " ", "")
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CoerceColumn parses every cell of a column or fails on the first bad one
func (c *NumericCoercer) CoerceColumn(label string, raw []string) ([]float64, error) {
	values := make([]float64, len(raw))
	for i, cell := range raw {
		v, ok := c.Parse(cell)
		if !ok {
			return nil, errors.Newf(errors.CodeInvalidInput, core.ErrNonNumeric,
				"column %q row %d: %q is not a number", label, i+1, cell)
		}
		values[i] = v
	}
	return values, nil
}

// ParseList splits a comma- or semicolon-separated list such as "1, 2, 3.5".
// Semicolons take precedence so "1,5;2,5" reads as decimal commas.
func (c *NumericCoercer) ParseList(label, list string) ([]float64, error) {
	sep := ","
	if strings.Contains(list, ";") {
		sep = ";"
	}
	var cells []string
	for _, cell := range strings.Split(list, sep) {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return c.CoerceColumn(label, cells)
}

// Analyze reports how many cells of a column parse as numbers
func (c *NumericCoercer) Analyze(raw []string) TypeAnalysis {
	analysis := TypeAnalysis{TotalCount: len(raw)}
	for _, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		analysis.ValidCount++
		if _, ok := c.Parse(cell); ok {
			analysis.NumericCount++
		}
	}
	if analysis.ValidCount > 0 {
		analysis.NumericRatio = float64(analysis.NumericCount) / float64(analysis.ValidCount)
	}
	analysis.Numeric = analysis.ValidCount > 0 &&
		analysis.ValidCount == analysis.TotalCount &&
		analysis.NumericRatio >= c.config.NumericThreshold
	return analysis
}

// TypeAnalysis contains the results of a column scan
type TypeAnalysis struct {
	TotalCount   int     `json:"total_count"`
	ValidCount   int     `json:"valid_count"`
	NumericCount int     `json:"numeric_count"`
	NumericRatio float64 `json:"numeric_ratio"`
	Numeric      bool    `json:"numeric"`
}
