package tui

import (
	"log"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"choromap/internal/config"
	"choromap/internal/geom"
	"choromap/internal/series"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showLegend  bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	opts   config.Options
	data   []geom.Datum
	series *series.Series
	logs   *statusLog

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverIdx    int
	hoverHasXY  bool
	hoverX      float64
	hoverY      float64
	hoverLonLat bool

	// point table
	showAttrs bool
	tbl       table.Model
}

func New(opts config.Options) Model {
	m := Model{
		helpVisible: true,
		showLegend:  true,
		zoom:        1.0,
		status:      "choromap ready",
		opts:        opts,
		logs:        &statusLog{},
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a path (M 0 0 L 10 0 L 10 10 Z) or a WKT POLYGON. Enter adds it; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.series = series.New(opts, nil, m.logger())
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(opts config.Options, path string) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) logger() *log.Logger { return log.New(m.logs, "", 0) }

// setData replaces the map's regions and resets the view.
func (m *Model) setData(data []geom.Datum) {
	m.logs.last = ""
	m.data = data
	m.series = series.New(m.opts, data, m.logger())
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.hovering = false
	m.inspectPopup = ""
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}
