// Package report turns the cleaned sales table into the output artifacts:
// eight chart/CSV files under charts/ plus the console report text.
//
// The Reporter runs nine fixed steps, each an independent reduction over the
// same immutable table. Charts are rendered with go-chart for line and
// vertical bar output and with gonum/plot for the horizontal top-10 bars,
// which go-chart cannot draw with magnitude-scaled lengths.
package report
