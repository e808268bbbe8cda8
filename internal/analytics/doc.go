// Package analytics provides the aggregate statistics of the sales report.
// Every function is a pure reduction over a cleaned record slice: grouped
// sums, top-N rankings, year pivots, regional totals, and the sales
// correlation matrix. Nothing here mutates its input, so the report steps
// can run in any order over the same table.
package analytics
