// Package dataset provides loading and inspection of the UNICEF CSV inputs.
//
// The package centers on Table, a generic in-memory table of string cells
// with an ordered header. LoadCSV reads any delimited file with a header
// row; LoadIndicator additionally validates the columns every indicator
// file must carry (country, alpha_3_code, obs_value). Inspect produces the
// per-column missing-value summary that opens the report.
//
// Tables are value-owned: every consumer that needs to modify a table works
// on its own copy, so a loaded table can be inspected, joined and charted
// without any step observing another's mutations.
package dataset
