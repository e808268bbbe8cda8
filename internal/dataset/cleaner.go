package dataset

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Cleaner coerces raw rows into typed sales records, dropping anything that
// does not satisfy the cleaned-table invariant. Malformed data is filtered
// silently; only counts are logged.
type Cleaner struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewCleaner creates a new cleaner
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		logger:   logger,
		validate: validator.New(),
	}
}

// Clean converts a raw table into a typed table. A row is dropped when any
// critical field is missing, when Year or a sales column fails numeric
// coercion, or when the coerced record fails struct validation.
func (c *Cleaner) Clean(raw *RawTable) *Table {
	records := make([]SalesRecord, 0, len(raw.Rows))
	dropped := 0

	for _, row := range raw.Rows {
		rec, ok := c.coerceRow(raw, row)
		if !ok {
			dropped++
			continue
		}
		if err := c.validate.Struct(rec); err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	c.logger.Info("Cleaned dataset",
		slog.Int("source_rows", len(raw.Rows)),
		slog.Int("kept", len(records)),
		slog.Int("dropped", dropped))

	return &Table{Records: records, SourceRows: len(raw.Rows)}
}

// CleanRecords re-validates already-typed records. Cleaning is idempotent:
// running this over a cleaned table returns an equal table.
func (c *Cleaner) CleanRecords(records []SalesRecord) []SalesRecord {
	kept := make([]SalesRecord, 0, len(records))
	for _, rec := range records {
		if err := c.validate.Struct(rec); err != nil {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// coerceRow builds a typed record from one raw row
func (c *Cleaner) coerceRow(raw *RawTable, row []string) (SalesRecord, bool) {
	var rec SalesRecord

	rec.Name = raw.Field(row, ColName)
	rec.Platform = raw.Field(row, ColPlatform)
	rec.Genre = raw.Field(row, ColGenre)
	rec.Publisher = raw.Field(row, ColPublisher)
	for _, field := range []string{rec.Name, rec.Platform, rec.Genre, rec.Publisher} {
		if isMissing(field) {
			return SalesRecord{}, false
		}
	}

	year, ok := parseYear(raw.Field(row, ColYear))
	if !ok {
		return SalesRecord{}, false
	}
	rec.Year = year

	sales := [...]struct {
		col string
		dst *float64
	}{
		{ColNASales, &rec.NASales},
		{ColEUSales, &rec.EUSales},
		{ColJPSales, &rec.JPSales},
		{ColOtherSales, &rec.OtherSales},
		{ColGlobalSales, &rec.GlobalSales},
	}
	for _, s := range sales {
		v, ok := parseSales(raw.Field(row, s.col))
		if !ok {
			return SalesRecord{}, false
		}
		*s.dst = v
	}

	return rec, true
}

// isMissing reports whether a value counts as an absent field
func isMissing(value string) bool {
	switch strings.ToUpper(value) {
	case "", "N/A", "NA", "NULL":
		return true
	}
	return false
}

// parseYear coerces a year string to an integer. Values like "2006.0" show
// up when the dataset passed through a spreadsheet, so a float form is
// accepted and truncated.
func parseYear(value string) (int, bool) {
	if isMissing(value) {
		return 0, false
	}
	if year, err := strconv.Atoi(value); err == nil {
		return year, true
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// parseSales coerces a sales figure, treating non-numeric values as missing
func parseSales(value string) (float64, bool) {
	if isMissing(value) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
