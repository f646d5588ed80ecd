// SPDX-License-Identifier: MIT

// Package lutmap implements stepwise monotonic lookup tables and their
// per-bank form.
//
// What: a Table maps an input value to the output of the first matching
// row, with no interpolation. LookupLE searches a descending table for
// the first row whose input is less than or equal to the argument;
// LookupGE searches an ascending table for the first row whose input is
// greater than or equal. Both scan every active row from last to first,
// latching the output on each match so the final latch is the
// first-index match; the scan always touches all active rows so the
// cost never depends on the data. No match yields zero.
//
// A Bank holds one table per bank. Whole-grid lookups blank the entire
// output and then map the active rectangle, every channel of a bank
// through that bank's table.
//
// Why: tables stand in for arbitrary monotonic transfer curves
// (threshold schedules, phase corrections) without multiplies or
// divides. The fixed-cost scan mirrors hardware that evaluates all rows
// in parallel.
//
// Complexity: one lookup is O(active rows); a whole-grid lookup is
// O(banks × chans) for the blanking plus O(active banks × active chans ×
// active rows).
//
// Errors: constructors return ErrBadRows for a non-positive row capacity
// and cellgrid.ErrBadExtents for bad grid extents. Lookups do not fail;
// out-of-range rows and banks make accessors no-ops (or zero reads).
package lutmap
