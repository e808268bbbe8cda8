package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/internal/dataset"
)

func pivotSample() []dataset.SalesRecord {
	return []dataset.SalesRecord{
		rec("A", "Wii", 2006, "Sports", "P1", 0, 0, 0, 0, 10),
		rec("B", "Wii", 2006, "Action", "P1", 0, 0, 0, 0, 4),
		rec("C", "Wii", 2007, "Sports", "P1", 0, 0, 0, 0, 6),
		rec("D", "DS", 2007, "Puzzle", "P1", 0, 0, 0, 0, 2),
		rec("E", "DS", 2008, "Puzzle", "P1", 0, 0, 0, 0, 3),
	}
}

func TestPivotByYear(t *testing.T) {
	p := PivotByYear(pivotSample(), ByGenre)

	assert.Equal(t, []int{2006, 2007, 2008}, p.Years)
	assert.InDelta(t, 10, p.Value(2006, "Sports"), 1e-9)
	assert.InDelta(t, 6, p.Value(2007, "Sports"), 1e-9)
	// missing cell is zero-filled
	assert.Zero(t, p.Value(2008, "Sports"))
	assert.Zero(t, p.Value(2006, "Puzzle"))
}

func TestPivot_Series(t *testing.T) {
	p := PivotByYear(pivotSample(), ByGenre)

	series := p.Series("Sports")
	require.Len(t, series, 3)
	assert.Equal(t, []float64{10, 6, 0}, series)
}

func TestPivot_Totals(t *testing.T) {
	p := PivotByYear(pivotSample(), ByGenre)

	totals := p.Totals()
	assert.InDelta(t, 16, totals["Sports"], 1e-9)
	assert.InDelta(t, 4, totals["Action"], 1e-9)
	assert.InDelta(t, 5, totals["Puzzle"], 1e-9)
}

func TestPivot_TopCategories(t *testing.T) {
	p := PivotByYear(pivotSample(), ByGenre)

	assert.Equal(t, []string{"Sports", "Puzzle"}, p.TopCategories(2))
	assert.Equal(t, []string{"Sports", "Puzzle", "Action"}, p.TopCategories(5))
}

func TestPivot_ByPlatform(t *testing.T) {
	p := PivotByYear(pivotSample(), ByPlatform)

	assert.InDelta(t, 14, p.Value(2006, "Wii"), 1e-9)
	assert.Equal(t, []string{"Wii", "DS"}, p.TopCategories(2))
}
