// SPDX-License-Identifier: MIT

package coeffio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoHeader indicates a CSV stream with no header row.
	ErrNoHeader = errors.New("coeffio: missing header row")

	// ErrColumnMissing indicates a lookup of a column the table does not
	// have.
	ErrColumnMissing = errors.New("coeffio: no such column")
)

// Table is a column-oriented string table: named columns in a stable
// order, each a vector of cells. Columns may have different lengths;
// row-level reads pad missing cells with the empty string.
type Table struct {
	colNames []string
	cols     map[string][]string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string][]string)}
}

// ReadTable parses a CSV stream. The first record is the header naming
// the columns; later records are data rows. Rows shorter than the header
// pad with empty cells, longer rows drop the extras.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("coeffio: reading table: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	tb := NewTable()
	for _, name := range records[0] {
		tb.AddColumn(name, nil)
	}

	for _, row := range records[1:] {
		for colIdx, name := range tb.colNames {
			cell := ""
			if colIdx < len(row) {
				cell = row[colIdx]
			}

			tb.cols[name] = append(tb.cols[name], cell)
		}
	}

	return tb, nil
}

// ColumnNames returns the column names in table order.
func (tb *Table) ColumnNames() []string { return tb.colNames }

// HasColumn reports whether the table holds the named column.
func (tb *Table) HasColumn(name string) bool {
	_, ok := tb.cols[name]

	return ok
}

// Column returns the named column's cells. Returns ErrColumnMissing when
// the table has no such column.
func (tb *Table) Column(name string) ([]string, error) {
	cells, ok := tb.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnMissing, name)
	}

	return cells, nil
}

// AddColumn stores a column, replacing any column of the same name while
// keeping its position in the order.
func (tb *Table) AddColumn(name string, cells []string) {
	if _, ok := tb.cols[name]; !ok {
		tb.colNames = append(tb.colNames, name)
	}

	tb.cols[name] = cells
}

// AppendCell appends one cell to the named column, creating the column
// if necessary.
func (tb *Table) AppendCell(name, cell string) {
	if _, ok := tb.cols[name]; !ok {
		tb.AddColumn(name, nil)
	}

	tb.cols[name] = append(tb.cols[name], cell)
}

// RowCount returns the maximum column length.
func (tb *Table) RowCount() int {
	n := 0
	for _, cells := range tb.cols {
		if len(cells) > n {
			n = len(cells)
		}
	}

	return n
}

// RowCells returns one row as a name→cell map. Every column is present;
// cells beyond a column's length are empty strings.
func (tb *Table) RowCells(ridx int) map[string]string {
	row := make(map[string]string, len(tb.colNames))
	for _, name := range tb.colNames {
		cell := ""
		if ridx >= 0 && ridx < len(tb.cols[name]) {
			cell = tb.cols[name][ridx]
		}

		row[name] = cell
	}

	return row
}

// Write emits the table as CSV in the given column order. Columns absent
// from the table write as empty cells. A nil colOrder writes every
// column in table order.
func (tb *Table) Write(w io.Writer, colOrder []string, withHeader bool) error {
	if colOrder == nil {
		colOrder = tb.colNames
	}

	cw := csv.NewWriter(w)

	if withHeader {
		if err := cw.Write(colOrder); err != nil {
			return fmt.Errorf("coeffio: writing header: %w", err)
		}
	}

	rowCount := tb.RowCount()
	record := make([]string, len(colOrder))

	for ridx := 0; ridx < rowCount; ridx++ {
		for colIdx, name := range colOrder {
			record[colIdx] = ""
			if cells, ok := tb.cols[name]; ok && ridx < len(cells) {
				record[colIdx] = cells[ridx]
			}
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("coeffio: writing row %d: %w", ridx, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Criteria restricts which table rows a sheet reader consumes: a row
// matches when, for every named column, its cell equals one of the
// allowed values. Empty criteria match every row.
type Criteria map[string][]string

// MatchesAll reports whether the row satisfies every criterion.
func (cr Criteria) MatchesAll(row map[string]string) bool {
	for name, allowed := range cr {
		cell, ok := row[name]
		if !ok {
			return false
		}

		found := false
		for _, want := range allowed {
			if cell == want {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// MatchesAny reports whether the row satisfies at least one criterion.
// Empty criteria match every row.
func (cr Criteria) MatchesAny(row map[string]string) bool {
	if len(cr) == 0 {
		return true
	}

	for name, allowed := range cr {
		cell, ok := row[name]
		if !ok {
			continue
		}

		for _, want := range allowed {
			if cell == want {
				return true
			}
		}
	}

	return false
}
