package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"choromap/internal/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(geom.Extensions, ext) {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a data file and rebuilds the series from it.
func (m *Model) loadPath(p string) {
	data, err := geom.LoadFile(p, m.opts.ValueProperty, m.opts.NameProperty)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(data)
	m.status = fmt.Sprintf("loaded: %s  regions=%d", filepath.Base(p), len(m.series.Points()))
	if m.logs.last != "" {
		m.status += "  (" + m.logs.last + ")"
	}
}

// addPasted appends a pasted path or WKT polygon as a region without a value.
func (m *Model) addPasted(text string) error {
	raw := text
	if geom.IsWKT(text) {
		rings, err := geom.ParseWKTRings(text)
		if err != nil {
			return err
		}
		raw = geom.PolygonPath(rings, true)
	}
	if _, err := geom.ParsePath(raw); err != nil {
		return err
	}
	data := append(slices.Clone(m.data), geom.Datum{
		Name:    fmt.Sprintf("pasted %d", len(m.data)+1),
		Path:    raw,
		Flipped: geom.IsWKT(text),
	})
	m.setData(data)
	return nil
}
