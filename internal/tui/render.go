package tui

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"choromap/internal/series"
)

func errUnknownShape(t string) error {
	return errors.Errorf("unsupported shape type %q", t)
}

// plotArea fits the series into a w x h cell map: the whole microgrid, with the
// unused margin split evenly so the map sits centered.
func (m Model) plotArea(w, h int) series.PlotArea {
	area := series.PlotArea{Width: float64(w*2 - 1), Height: float64(h*4 - 1)}
	m.series.Translate(area)
	box, t := m.series.BBox(), m.series.Transform()
	if box.Valid() {
		area.Left = float64(int((area.Width - box.Width()*t.Scale) / 2))
		area.Top = float64(int((area.Height - box.Height()*t.Scale) / 2))
	}
	return area
}

// drawMap runs a render pass of the series onto a fresh braille buffer.
func (m Model) drawMap(w, h int) (*brailleBuf, series.PlotArea) {
	b := newBrailleBuf(w, h)
	b.zoom = m.zoom
	b.offX, b.offY = m.offsetX*2, m.offsetY*4
	if len(m.series.Points()) == 0 {
		return b, series.PlotArea{}
	}
	area := m.plotArea(w, h)
	if err := m.series.Render(area, b); err != nil {
		m.logs.last = err.Error()
	}
	return b, area
}

func (m Model) renderMap(w, h int) string {
	b, _ := m.drawMap(w, h)
	if m.hovering && m.hoverIdx < len(m.series.Points()) {
		p := m.series.Points()[m.hoverIdx]
		b.mark(int(p.TooltipPos[0])/2, int(p.TooltipPos[1])/4)
	}
	return strings.Join(b.toLines(), "\n")
}

// hoverAt resolves the region under map cell (cx, cy) and the data-space
// coordinates of that cell.
func (m *Model) hoverAt(cx, cy, w, h int) {
	b, area := m.drawMap(w, h)
	mx, my := cx*2+1, cy*4+2
	idx, ok := m.series.Nearest(float64(mx), float64(my))
	m.hovering = ok
	m.hoverIdx = idx
	m.hoverHasXY = false
	if !ok {
		return
	}
	dx, dy := b.unview(mx, my)
	m.hoverX, m.hoverY = m.series.Transform().Invert(dx, dy, area.Left, area.Top)
	// geographic loaders store -lat
	m.hoverLonLat = m.series.Points()[idx].Flipped
	if m.hoverLonLat {
		m.hoverY = -m.hoverY
	}
	m.hoverHasXY = true
}

// legendView renders the static legend as colored swatches.
func (m Model) legendView() string {
	items := m.series.LegendItems()
	if len(items) == 0 {
		return ""
	}
	lines := []string{titleStyle.Render("Legend")}
	for _, it := range items {
		lines = append(lines, swatch(it.Color.Hex()).Render("██")+" "+it.Label)
	}
	lines = append(lines, swatch(m.opts.NullColor.Hex()).Render("██")+" no data")
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// inspect summarizes the dataset and the region nearest the map center.
func (m Model) inspect(w, h int) string {
	name := m.selPath
	if name == "" {
		name = "<unsaved>"
	}
	box := m.series.BBox()
	meta := []string{
		fmt.Sprintf("file: %s", name),
		fmt.Sprintf("regions: %d", len(m.series.Points())),
		fmt.Sprintf("bbox: [%g, %g, %g, %g]", box.MinX, box.MinY, box.MaxX, box.MaxY),
		fmt.Sprintf("max value: %g", m.series.MaxValue()),
	}
	m.drawMap(w, h)
	meta = append(meta, fmt.Sprintf("scale: %.4f", m.series.Transform().Scale))
	if i, ok := m.series.Nearest(float64(w*2-1)/2, float64(h*4-1)/2); ok {
		meta = append(meta, "nearest: "+m.series.Tooltip(i))
	}
	return strings.Join(meta, "\n")
}
