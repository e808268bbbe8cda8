package analytics

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgsales/internal/dataset"
)

func TestCorrelations_Identity(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1, 2, 3, 0, 6),
		rec("B", "X", 2001, "Action", "P1", 2, 1, 2, 0, 5),
		rec("C", "X", 2002, "Action", "P1", 4, 5, 1, 0, 10),
	}

	m := Correlations(records)

	require.Equal(t, []string{"NA_Sales", "EU_Sales", "JP_Sales", "Global_Sales"}, m.Labels)
	require.Len(t, m.Values, 4)

	// diagonal is exactly 1, matrix is symmetric
	for i := range m.Labels {
		assert.InDelta(t, 1.0, m.Values[i][i], 1e-9)
		for j := range m.Labels {
			assert.InDelta(t, m.Values[i][j], m.Values[j][i], 1e-9)
			assert.LessOrEqual(t, math.Abs(m.Values[i][j]), 1.0+1e-9)
		}
	}
}

func TestCorrelations_PerfectlyCorrelated(t *testing.T) {
	// global sales exactly 2x NA sales
	records := []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1, 0, 0, 0, 2),
		rec("B", "X", 2001, "Action", "P1", 2, 0, 0, 0, 4),
		rec("C", "X", 2002, "Action", "P1", 3, 0, 0, 0, 6),
	}

	m := Correlations(records)

	// NA vs Global
	assert.InDelta(t, 1.0, m.Values[0][3], 1e-9)
}

func TestCorrelations_ConstantColumnIsNaN(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1, 5, 0, 0, 6),
		rec("B", "X", 2001, "Action", "P1", 2, 5, 0, 0, 7),
	}

	m := Correlations(records)

	// EU column has zero variance
	assert.True(t, math.IsNaN(m.Values[1][0]))
}

func TestCorrelationMatrix_String(t *testing.T) {
	records := []dataset.SalesRecord{
		rec("A", "X", 2000, "Action", "P1", 1, 2, 3, 0, 6),
		rec("B", "X", 2001, "Action", "P1", 2, 4, 1, 0, 7),
		rec("C", "X", 2002, "Action", "P1", 3, 1, 2, 0, 8),
	}

	out := Correlations(records).String()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "NA_Sales")
	assert.Contains(t, lines[0], "Global_Sales")
	assert.True(t, strings.HasPrefix(lines[1], "NA_Sales"))
	assert.Contains(t, lines[1], "1.0000")
}
