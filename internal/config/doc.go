// Package config is the single source of truth for file paths and ambient
// settings of the sales report generator.
//
// The report pipeline itself is deliberately not configurable: the dataset
// location, the output directory, and the artifact names are fixed constants
// so that every run of the tool produces the same set of files. Only logging
// behavior can be adjusted, via VGS_* environment variables:
//
//	VGS_LOGGING_LEVEL      debug | info | warn | error (default info)
//	VGS_LOGGING_OUTPUT     console | file | both (default both)
//	VGS_LOGGING_FILE_PATH  log file location (default logs/vgsales-report.log)
package config
