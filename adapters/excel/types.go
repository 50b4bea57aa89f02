package excel

// RawRowData represents a row of raw Excel data as string key-value pairs
type RawRowData map[string]string

// ExcelData represents the complete Excel dataset
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// Column returns the raw cells of one column in row order; missing cells are empty
func (d *ExcelData) Column(name string) ([]string, bool) {
	if !d.HasColumn(name) {
		return nil, false
	}
	cells := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		cells[i] = row[name]
	}
	return cells, true
}

// HasColumn reports whether the header row names the column
func (d *ExcelData) HasColumn(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}
