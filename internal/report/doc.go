// Package report orchestrates the pipeline and assembles the output
// artifacts: the Markdown narrative document with its five rendered charts,
// and the companion Excel workbook carrying the underlying tables.
package report
