// Package logging builds the zerolog logger used by the CLI. Library packages
// never log; they return warnings and errors for the caller to report.
package logging
