// SPDX-License-Identifier: MIT

package coeffio

import (
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Manifest describes one processing run for export provenance: which
// run produced a set of sheets, when, and under what settings. It is
// persisted as a two-column key/value CSV so any spreadsheet tool can
// open it.
type Manifest struct {
	RunID   string
	Created time.Time
	Fields  map[string]string
}

// NewRunID returns a fresh run identifier of the form "run_<uuid>".
func NewRunID() string {
	return "run_" + uuid.NewString()
}

// NewManifest returns a manifest with a fresh run identifier, the
// current time, and no extra fields.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:   NewRunID(),
		Created: time.Now().UTC(),
		Fields:  make(map[string]string),
	}
}

// Set stores one annotation field.
func (m *Manifest) Set(key, value string) {
	if m.Fields == nil {
		m.Fields = make(map[string]string)
	}

	m.Fields[key] = value
}

// WriteManifest emits the manifest as a key/value CSV sheet. The run
// identifier and creation time come first; annotation fields follow in
// sorted key order.
func WriteManifest(w io.Writer, m *Manifest) error {
	tb := NewTable()
	tb.AddColumn("key", nil)
	tb.AddColumn("value", nil)

	put := func(key, value string) {
		tb.AppendCell("key", key)
		tb.AppendCell("value", value)
	}

	put("run_id", m.RunID)
	put("created", m.Created.Format(time.RFC3339))

	keys := make([]string, 0, len(m.Fields))
	for key := range m.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		put(key, m.Fields[key])
	}

	return tb.Write(w, nil, true)
}

// ReadManifest parses a key/value CSV sheet back into a Manifest.
// Unknown keys land in Fields; a malformed creation time is left as the
// zero time.
func ReadManifest(r io.Reader) (*Manifest, error) {
	tb, err := ReadTable(r)
	if err != nil {
		return nil, err
	}

	m := &Manifest{Fields: make(map[string]string)}

	rowCount := tb.RowCount()
	for ridx := 0; ridx < rowCount; ridx++ {
		row := tb.RowCells(ridx)

		switch row["key"] {
		case "run_id":
			m.RunID = row["value"]
		case "created":
			if ts, terr := time.Parse(time.RFC3339, row["value"]); terr == nil {
				m.Created = ts
			}
		case "":
		default:
			m.Fields[row["key"]] = row["value"]
		}
	}

	return m, nil
}
