package analytics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"vgsales/internal/dataset"
)

// CorrelationMatrix holds pairwise Pearson correlations between sales
// columns. Values[i][j] correlates Labels[i] with Labels[j].
type CorrelationMatrix struct {
	Labels []string
	Values [][]float64
}

// Correlations computes the pairwise linear correlation matrix over the
// NA, EU, JP, and Global sales columns. A constant column yields NaN
// entries, which are preserved as-is.
func Correlations(records []dataset.SalesRecord) CorrelationMatrix {
	labels := []string{dataset.ColNASales, dataset.ColEUSales, dataset.ColJPSales, dataset.ColGlobalSales}

	columns := make([][]float64, len(labels))
	for i := range columns {
		columns[i] = make([]float64, len(records))
	}
	for i, rec := range records {
		columns[0][i] = rec.NASales
		columns[1][i] = rec.EUSales
		columns[2][i] = rec.JPSales
		columns[3][i] = rec.GlobalSales
	}

	values := make([][]float64, len(labels))
	for i := range labels {
		values[i] = make([]float64, len(labels))
		for j := range labels {
			values[i][j] = stat.Correlation(columns[i], columns[j], nil)
		}
	}

	return CorrelationMatrix{Labels: labels, Values: values}
}

// String renders the matrix as an aligned text table for console output
func (m CorrelationMatrix) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-14s", ""))
	for _, label := range m.Labels {
		b.WriteString(fmt.Sprintf("%14s", label))
	}
	b.WriteString("\n")

	for i, label := range m.Labels {
		b.WriteString(fmt.Sprintf("%-14s", label))
		for j := range m.Labels {
			b.WriteString(fmt.Sprintf("%14.4f", m.Values[i][j]))
		}
		if i < len(m.Labels)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
