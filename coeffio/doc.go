// SPDX-License-Identifier: MIT

// Package coeffio persists filter coefficients, lookup tables, and run
// manifests as CSV, so configurations can round-trip between runs and
// external tooling.
//
// What: the core abstraction is a column-oriented Table — named columns
// of string cells, read from CSV with a mandatory header row. Rows may
// be ragged: short rows read back with empty cells and long rows drop
// the extras. On top of the Table sit sheet codecs:
//
//   - Biquad sheets (columns bank, stage, num0..num2, den0..den2) load
//     into a biquad.Bank; den0 is converted to its shift count. Rows can
//     be filtered by match criteria and bank indices remapped on the way
//     in, so one sheet can hold several configurations.
//   - FIR sheets hold one "bank N" column per filter, one tap per row.
//   - Lookup-table sheets hold (row, in, out) tuples, with a "bank"
//     column for the per-bank form. Only listed entries are modified.
//   - Run manifests are two-column key/value sheets tagged with a
//     uuid-derived run identifier for export provenance.
//
// Numeric cells are written as signed decimal: unsigned wraparound
// samples are read and written through their signed interpretation, so a
// sheet says -122 rather than 65414.
//
// Errors: ReadTable returns ErrNoHeader for an empty stream and wraps
// csv parse errors; Column lookups return ErrColumnMissing. Cells that
// fail to parse as integers read as zero, matching the tolerance of the
// sheet formats (absent columns behave as all-zero).
package coeffio
