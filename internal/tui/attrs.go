package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"choromap/internal/classify"
)

// refreshAttrsFromCurrent rebuilds the point table from the current series.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildAttributes()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no regions in current dataset"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for i, c := range cols {
		w := len(c) + 2
		for _, r := range rows {
			w = max(w, len(r[i])+2)
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}

// buildAttributes lists every region with its value, color and the range it fell in.
func (m *Model) buildAttributes() ([]string, [][]string) {
	cols := []string{"name", "value", "color", "range"}
	classifier := m.opts.Classifier()
	var rows [][]string
	for i, p := range m.series.Points() {
		value, rng := "no data", "null"
		if p.Value != nil {
			value = m.series.ValueLabel(i)
			rng = "default"
			if r, ok := classifier.Match(p.Value); ok {
				rng = classify.Label(r, m.opts.ValueDecimals, nil)
			}
		}
		rows = append(rows, []string{p.Name, value, p.Color.Hex(), rng})
	}
	return cols, rows
}
