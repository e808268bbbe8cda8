package analytics

import (
	"sort"

	"vgsales/internal/dataset"
)

// Pivot is a year-by-category grid of summed Global_Sales. Missing cells are
// zero, matching a grouped sum that was reshaped and zero-filled.
type Pivot struct {
	Years []int // ascending
	cells map[int]map[string]float64
}

// PivotByYear builds the year-by-category grid for the given grouping key
func PivotByYear(records []dataset.SalesRecord, key KeyFunc) *Pivot {
	cells := make(map[int]map[string]float64)
	for _, rec := range records {
		row, ok := cells[rec.Year]
		if !ok {
			row = make(map[string]float64)
			cells[rec.Year] = row
		}
		row[key(rec)] += rec.GlobalSales
	}

	years := make([]int, 0, len(cells))
	for year := range cells {
		years = append(years, year)
	}
	sort.Ints(years)

	return &Pivot{Years: years, cells: cells}
}

// Value returns the summed sales for one year and category, zero if absent
func (p *Pivot) Value(year int, category string) float64 {
	return p.cells[year][category]
}

// Series returns the category's totals aligned to p.Years
func (p *Pivot) Series(category string) []float64 {
	series := make([]float64, len(p.Years))
	for i, year := range p.Years {
		series[i] = p.cells[year][category]
	}
	return series
}

// Totals sums each category across all years
func (p *Pivot) Totals() map[string]float64 {
	totals := make(map[string]float64)
	for _, row := range p.cells {
		for category, value := range row {
			totals[category] += value
		}
	}
	return totals
}

// TopCategories returns the n categories with the largest overall totals,
// descending, with the TopN tie break.
func (p *Pivot) TopCategories(n int) []string {
	ranked := TopN(p.Totals(), n)
	categories := make([]string, len(ranked))
	for i, ct := range ranked {
		categories[i] = ct.Category
	}
	return categories
}
