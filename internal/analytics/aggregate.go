package analytics

import (
	"sort"

	"vgsales/internal/dataset"
)

// KeyFunc selects the grouping key of a record
type KeyFunc func(dataset.SalesRecord) string

// Grouping keys for the standard report dimensions
var (
	ByGenre     KeyFunc = func(r dataset.SalesRecord) string { return r.Genre }
	ByPlatform  KeyFunc = func(r dataset.SalesRecord) string { return r.Platform }
	ByPublisher KeyFunc = func(r dataset.SalesRecord) string { return r.Publisher }
)

// CategoryTotal is one grouped sum
type CategoryTotal struct {
	Category string
	Total    float64
}

// YearTotal is the summed global sales for one year
type YearTotal struct {
	Year  int
	Total float64
}

// RegionTotals holds the summed sales per region across all records
type RegionTotals struct {
	NA    float64
	EU    float64
	JP    float64
	Other float64
}

// SumBy sums Global_Sales per grouping key
func SumBy(records []dataset.SalesRecord, key KeyFunc) map[string]float64 {
	totals := make(map[string]float64)
	for _, rec := range records {
		totals[key(rec)] += rec.GlobalSales
	}
	return totals
}

// TopN ranks grouped totals descending and keeps the first n. Ties break by
// the lexicographically smaller category so output is reproducible.
func TopN(totals map[string]float64, n int) []CategoryTotal {
	ranked := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		ranked = append(ranked, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// TopCategory returns the category with the largest total, applying the same
// tie break as TopN. Empty input yields "".
func TopCategory(totals map[string]float64) string {
	top := TopN(totals, 1)
	if len(top) == 0 {
		return ""
	}
	return top[0].Category
}

// YearlyTotals sums Global_Sales per year, sorted by year ascending
func YearlyTotals(records []dataset.SalesRecord) []YearTotal {
	byYear := make(map[int]float64)
	for _, rec := range records {
		byYear[rec.Year] += rec.GlobalSales
	}

	totals := make([]YearTotal, 0, len(byYear))
	for year, total := range byYear {
		totals = append(totals, YearTotal{Year: year, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Year < totals[j].Year })

	return totals
}

// PeakYear finds the year with the maximum sales. On a tie the earliest year
// wins. The second return is false for an empty input.
func PeakYear(yearly []YearTotal) (YearTotal, bool) {
	if len(yearly) == 0 {
		return YearTotal{}, false
	}

	peak := yearly[0]
	for _, yt := range yearly[1:] {
		if yt.Total > peak.Total {
			peak = yt
		}
	}
	return peak, true
}

// TopRecords returns the n best-selling individual records, descending by
// Global_Sales. The sort is stable so equal sellers keep dataset order.
func TopRecords(records []dataset.SalesRecord, n int) []dataset.SalesRecord {
	ranked := make([]dataset.SalesRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].GlobalSales > ranked[j].GlobalSales
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Regions sums the four regional columns across all records
func Regions(records []dataset.SalesRecord) RegionTotals {
	var totals RegionTotals
	for _, rec := range records {
		totals.NA += rec.NASales
		totals.EU += rec.EUSales
		totals.JP += rec.JPSales
		totals.Other += rec.OtherSales
	}
	return totals
}

// Sum returns the combined total of the four regions
func (r RegionTotals) Sum() float64 {
	return r.NA + r.EU + r.JP + r.Other
}
