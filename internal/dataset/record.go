package dataset

// Column names as they appear in the dataset header
const (
	ColName        = "Name"
	ColPlatform    = "Platform"
	ColYear        = "Year"
	ColGenre       = "Genre"
	ColPublisher   = "Publisher"
	ColNASales     = "NA_Sales"
	ColEUSales     = "EU_Sales"
	ColJPSales     = "JP_Sales"
	ColOtherSales  = "Other_Sales"
	ColGlobalSales = "Global_Sales"
)

// RequiredColumns are the header columns the loader insists on.
// A file missing any of these cannot produce valid records.
var RequiredColumns = []string{
	ColName, ColPlatform, ColYear, ColGenre, ColPublisher,
	ColNASales, ColEUSales, ColJPSales, ColOtherSales, ColGlobalSales,
}

// SalesColumns are the numeric sales columns, in canonical order
var SalesColumns = []string{
	ColNASales, ColEUSales, ColJPSales, ColOtherSales, ColGlobalSales,
}

// SalesRecord represents one game release with its regional sales figures.
// Sales values are in millions of units. Validate tags encode the cleaned
// table invariant: all critical fields present, sales numeric and
// non-negative, year a positive integer.
type SalesRecord struct {
	Name        string  `json:"name" validate:"required"`
	Platform    string  `json:"platform" validate:"required"`
	Year        int     `json:"year" validate:"gt=0"`
	Genre       string  `json:"genre" validate:"required"`
	Publisher   string  `json:"publisher" validate:"required"`
	NASales     float64 `json:"na_sales" validate:"gte=0"`
	EUSales     float64 `json:"eu_sales" validate:"gte=0"`
	JPSales     float64 `json:"jp_sales" validate:"gte=0"`
	OtherSales  float64 `json:"other_sales" validate:"gte=0"`
	GlobalSales float64 `json:"global_sales" validate:"gte=0"`
}

// Table is the cleaned, typed dataset. Immutable after cleaning.
type Table struct {
	Records    []SalesRecord
	SourceRows int // data rows in the input file before cleaning
}

// Len returns the number of cleaned records
func (t *Table) Len() int {
	return len(t.Records)
}

// Head returns the first n records (fewer if the table is shorter)
func (t *Table) Head(n int) []SalesRecord {
	if n > len(t.Records) {
		n = len(t.Records)
	}
	return t.Records[:n]
}
