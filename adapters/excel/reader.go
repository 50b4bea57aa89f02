package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golinreg/adapters/datareadiness/coercer"
	"golinreg/domain/regression"
	"golinreg/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	coercer  *coercer.NumericCoercer
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(config ExcelConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	fileType := strings.TrimPrefix(ext, ".")
	if fileType == "xlsm" {
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: config.FilePath,
		fileType: fileType,
		sheet:    config.Sheet,
		coercer:  coercer.NewNumericCoercer(config.CoercionConfig),
	}
}

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*ExcelData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); err != nil {
		return nil, errors.DataSourceError(r.filePath, err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, errors.UnsupportedFormat(r.fileType)
	}
}

// readExcelData reads the configured sheet, or the first one, into structured format
func (r *DataReader) readExcelData() (*ExcelData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DataSourceError(r.filePath, err)
	}
	defer f.Close()
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.DataSourceError(r.filePath, fmt.Errorf("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.DataSourceError(r.filePath, fmt.Errorf("failed to read %s: %w", sheet, err))
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*ExcelData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.DataSourceError(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DataSourceError(r.filePath, err)
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// processRows converts raw string rows into ExcelData format, skipping blank rows
func (r *DataReader) processRows(rows [][]string) (*ExcelData, error) {
	if len(rows) < 2 {
		return nil, errors.DataSourceError(r.filePath,
			fmt.Errorf("file must have at least a header row and one data row"))
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRowData
	for i := 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}
		rowData := make(RawRowData)
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &ExcelData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// NumericColumn coerces one named column to floats
func (r *DataReader) NumericColumn(data *ExcelData, name string) ([]float64, error) {
	cells, ok := data.Column(name)
	if !ok {
		return nil, errors.ColumnNotFound(name)
	}
	return r.coercer.CoerceColumn(name, cells)
}

// NumericColumns lists, in header order, the columns whose every cell is a number
func (r *DataReader) NumericColumns(data *ExcelData) []string {
	var numeric []string
	for _, header := range data.Headers {
		if header == "" {
			continue
		}
		cells, _ := data.Column(header)
		if r.coercer.Analyze(cells).Numeric {
			numeric = append(numeric, header)
		}
	}
	return numeric
}

// ReadPair loads two named columns as a labelled sample pair
func (r *DataReader) ReadPair(xCol, yCol string) (regression.SamplePair, error) {
	data, err := r.ReadData()
	if err != nil {
		return regression.SamplePair{}, err
	}
	return r.PairFrom(data, xCol, yCol)
}

// PairFrom builds a sample pair from already loaded data
func (r *DataReader) PairFrom(data *ExcelData, xCol, yCol string) (regression.SamplePair, error) {
	x, err := r.NumericColumn(data, xCol)
	if err != nil {
		return regression.SamplePair{}, err
	}
	y, err := r.NumericColumn(data, yCol)
	if err != nil {
		return regression.SamplePair{}, err
	}
	return regression.NewSamplePair(x, y, xCol, yCol), nil
}
