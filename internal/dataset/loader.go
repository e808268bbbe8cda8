package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "vgsales/internal/errors"
)

// RawTable holds the untyped rows of a loaded dataset file. The header row
// supplies the field names; data rows stay as strings until the cleaner
// coerces them.
type RawTable struct {
	Header  []string
	Rows    [][]string
	columns map[string]int
}

// Column returns the index of a header column, or -1 if absent
func (r *RawTable) Column(name string) int {
	if idx, ok := r.columns[name]; ok {
		return idx
	}
	return -1
}

// Field returns the trimmed value of the named column in the given row.
// Rows shorter than the header yield "" for the missing positions.
func (r *RawTable) Field(row []string, name string) string {
	idx := r.Column(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Load reads the sales dataset file into a raw table. A missing file is the
// single fatal error kind of the whole pipeline and is reported as NOT_FOUND
// before any output is produced. Both CSV and Excel inputs are accepted,
// selected by file extension.
func Load(path string) (*RawTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NewNotFoundError("dataset file", err).WithContext("path", path)
	}

	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		records, err = readExcel(path)
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, apperrors.NewParsingError("dataset file has no header row", nil).WithContext("path", path)
	}

	header := make([]string, len(records[0]))
	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
		columns[header[i]] = i
	}

	for _, col := range RequiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("dataset header is missing required column %q", col), nil,
			).WithContext("path", path)
		}
	}

	table := &RawTable{
		Header:  header,
		Rows:    records[1:],
		columns: columns,
	}

	slog.Info("Loaded dataset",
		slog.String("path", path),
		slog.Int("columns", len(header)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}

// readCSV parses a CSV file, tolerating a UTF-8 BOM and ragged rows.
// Short or long rows are kept raw; the cleaner decides their fate.
func readCSV(path string) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read dataset file", err).WithContext("path", path)
	}

	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to parse dataset CSV", err).WithContext("path", path)
	}

	return records, nil
}

// readExcel parses the first sheet of an Excel workbook
func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open Excel workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("Excel workbook has no sheets", nil).WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read Excel sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}

	return rows, nil
}
