// Package cli implements the electricslide command-line interface.
//
// Commands cover the whole engine surface: generating tick data for catalog
// or custom scales (generate), browsing the preset library (catalog),
// reading values off a scale (inspect), working with complete slide rule
// definitions (rules), checking definitions for soundness (validate),
// serving the HTTP API (serve), and managing the generation cache (cache).
//
// All commands support --verbose (-v) for debug-level logging and --config
// for an explicit configuration file. Loggers are passed through
// context.Context.
package cli

// appName is the application name used for directories and display.
const appName = "electricslide"
