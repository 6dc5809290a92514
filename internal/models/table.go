package models

import (
	"encoding/csv"
	"io"
)

// Table is the tabular view shared by the result sets, so callers can hand
// any of them to a writer without knowing the row type.
type Table interface {
	Header() []string
	Rows() [][]string
}

// WriteCSV renders a table as CSV, header first. Absent values come through
// as empty cells.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	for _, row := range t.Rows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
