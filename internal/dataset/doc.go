// Package dataset provides loading and cleaning for the video-game sales
// dataset. It handles the data lifecycle from file ingestion to a typed,
// validated in-memory table.
//
// The package is organized into two stages:
//
// 1. Loader: reads a delimited file (CSV or Excel) into an untyped raw table
// 2. Cleaner: coerces types, validates records, and drops incomplete rows
//
// Basic usage:
//
//	raw, err := dataset.Load("data/vgsales.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table := dataset.NewCleaner(logger).Clean(raw)
//
// The cleaned table is immutable by convention: every downstream aggregation
// is a pure read-only reduction over table.Records.
package dataset
