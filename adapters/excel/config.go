package excel

import (
	"golinreg/adapters/datareadiness/coercer"
)

// ExcelConfig holds configuration for a spreadsheet or CSV data source
type ExcelConfig struct {
	FilePath       string                 `json:"file_path"`
	Sheet          string                 `json:"sheet"` // empty selects the first sheet
	CoercionConfig coercer.CoercionConfig `json:"coercion_config"`
}

// DefaultExcelConfig returns sensible defaults for Excel processing
func DefaultExcelConfig(filePath string) ExcelConfig {
	return ExcelConfig{
		FilePath:       filePath,
		CoercionConfig: coercer.DefaultCoercionConfig(),
	}
}
