package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/internal/dataset"
)

// rec is shorthand for building a test record
func rec(name, platform string, year int, genre, publisher string, na, eu, jp, other, global float64) dataset.SalesRecord {
	return dataset.SalesRecord{
		Name: name, Platform: platform, Year: year, Genre: genre, Publisher: publisher,
		NASales: na, EUSales: eu, JPSales: jp, OtherSales: other, GlobalSales: global,
	}
}

// twoRowSample is the canonical two-row dataset from the report contract
func twoRowSample() []dataset.SalesRecord {
	return []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1, 1, 0, 0, 2),
		rec("B", "X", 2001, "Sports", "P1", 2, 0, 0, 0, 2),
	}
}

func TestSumBy_Genre(t *testing.T) {
	totals := SumBy(twoRowSample(), ByGenre)

	assert.Equal(t, map[string]float64{"Action": 2, "Sports": 2}, totals)
}

func TestSumBy_Platform(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "Wii", 2006, "Sports", "Nintendo", 1, 1, 0, 0, 2),
		rec("B", "Wii", 2007, "Sports", "Nintendo", 3, 1, 0, 0, 4),
		rec("C", "PS3", 2007, "Action", "Sony", 1, 2, 0, 0, 3),
	}

	totals := SumBy(records, ByPlatform)

	assert.InDelta(t, 6, totals["Wii"], 1e-9)
	assert.InDelta(t, 3, totals["PS3"], 1e-9)
}

func TestTopN(t *testing.T) {
	totals := map[string]float64{
		"Action": 10, "Sports": 30, "Puzzle": 20, "Racing": 5, "Misc": 30,
	}

	top := TopN(totals, 3)

	require.Len(t, top, 3)
	// tie between Sports and Misc resolves lexicographically
	assert.Equal(t, CategoryTotal{"Misc", 30}, top[0])
	assert.Equal(t, CategoryTotal{"Sports", 30}, top[1])
	assert.Equal(t, CategoryTotal{"Puzzle", 20}, top[2])
}

func TestTopN_ShorterThanN(t *testing.T) {
	top := TopN(map[string]float64{"Action": 1}, 10)

	assert.Len(t, top, 1)
}

func TestTopCategory(t *testing.T) {
	assert.Equal(t, "Sports", TopCategory(map[string]float64{"Action": 1, "Sports": 2}))
	assert.Equal(t, "", TopCategory(nil))
}

func TestYearlyTotals(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "X", 2001, "Action", "P1", 0, 0, 0, 0, 3),
		rec("B", "X", 2000, "Action", "P1", 0, 0, 0, 0, 1),
		rec("C", "X", 2001, "Action", "P1", 0, 0, 0, 0, 2),
	}

	yearly := YearlyTotals(records)

	require.Len(t, yearly, 2)
	assert.Equal(t, YearTotal{2000, 1}, yearly[0])
	assert.Equal(t, YearTotal{2001, 5}, yearly[1])
}

func TestPeakYear(t *testing.T) {
	yearly := []YearTotal{{2000, 1}, {2001, 5}, {2002, 3}}

	peak, ok := PeakYear(yearly)
	require.True(t, ok)
	assert.Equal(t, YearTotal{2001, 5}, peak)
}

func TestPeakYear_TieTakesEarliest(t *testing.T) {
	yearly := YearlyTotals(twoRowSample())

	peak, ok := PeakYear(yearly)
	require.True(t, ok)
	assert.Equal(t, 2000, peak.Year)
	assert.InDelta(t, 2, peak.Total, 1e-9)
}

func TestPeakYear_Empty(t *testing.T) {
	_, ok := PeakYear(nil)
	assert.False(t, ok)
}

func TestTopRecords(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("Low", "X", 2000, "Action", "P1", 0, 0, 0, 0, 1),
		rec("High", "X", 2000, "Action", "P1", 0, 0, 0, 0, 9),
		rec("MidA", "X", 2000, "Action", "P1", 0, 0, 0, 0, 5),
		rec("MidB", "X", 2000, "Action", "P1", 0, 0, 0, 0, 5),
	}

	top := TopRecords(records, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "High", top[0].Name)
	// stable sort keeps dataset order for the tied pair
	assert.Equal(t, "MidA", top[1].Name)
	assert.Equal(t, "MidB", top[2].Name)

	// descending invariant
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].GlobalSales, top[i].GlobalSales)
	}

	// input untouched
	assert.Equal(t, "Low", records[0].Name)
}

func TestTopRecords_FewerThanN(t *testing.T) {
	top := TopRecords(twoRowSample(), 10)
	assert.Len(t, top, 2)
}

func TestRegions(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1.5, 2.5, 0.5, 0.5, 5),
		rec("B", "X", 2001, "Sports", "P1", 0.5, 0.5, 1.5, 0.5, 3),
	}

	totals := Regions(records)

	assert.InDelta(t, 2.0, totals.NA, 1e-9)
	assert.InDelta(t, 3.0, totals.EU, 1e-9)
	assert.InDelta(t, 2.0, totals.JP, 1e-9)
	assert.InDelta(t, 1.0, totals.Other, 1e-9)
}

func TestRegions_SumApproxMatchesGlobal(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1.02, 0.51, 0.24, 0.23, 2.01),
		rec("B", "X", 2001, "Sports", "P1", 2.41, 1.12, 0.05, 0.42, 3.99),
	}

	var global float64
	for _, r := range records {
		global += r.GlobalSales
	}

	// source data rounds each region to hundredths, so allow a small gap
	assert.InDelta(t, global, Regions(records).Sum(), 0.05)
}
