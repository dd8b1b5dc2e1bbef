package tui

import (
	"math"
	"sort"
	"strings"

	"choromap/internal/classify"
	"choromap/internal/geom"
	"choromap/internal/series"
)

// brailleBuf is the terminal drawing surface: a 2x4 micro-pixel grid per cell
// and one color per cell. It implements series.Renderer in micro coordinates.
type brailleBuf struct {
	w, h int                // in cells
	m    [][]uint8          // per-cell 8-bit mask
	c    [][]classify.Color // per-cell color, "" when unset

	// view transform applied on top of the series' device space
	zoom       float64
	offX, offY int // micro-pixels

	boxes map[int]geom.BBox

	marked       bool
	markX, markY int // cell
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]classify.Color, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]classify.Color, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c, zoom: 1, boxes: map[int]geom.BBox{}}
}

// microSize is the drawable area in micro-pixels.
func (b *brailleBuf) microSize() (int, int) { return b.w * 2, b.h * 4 }

// view maps a device point to micro-pixels, zooming around the grid center.
func (b *brailleBuf) view(x, y float64) (int, int) {
	wMic, hMic := b.microSize()
	cx, cy := float64(wMic-1)/2, float64(hMic-1)/2
	vx := cx + (x-cx)*b.zoom + float64(b.offX)
	vy := cy + (y-cy)*b.zoom + float64(b.offY)
	return int(math.Round(vx)), int(math.Round(vy))
}

// unview is the inverse of view.
func (b *brailleBuf) unview(mx, my int) (float64, float64) {
	wMic, hMic := b.microSize()
	cx, cy := float64(wMic-1)/2, float64(hMic-1)/2
	x := cx + (float64(mx-b.offX)-cx)/b.zoom
	y := cy + (float64(my-b.offY)-cy)/b.zoom
	return x, y
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) (int, int, bool) {
	if mx < 0 || my < 0 {
		return 0, 0, false
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return 0, 0, false
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	return cx, cy, true
}

// paint sets a micro-pixel and colors its cell. Without override only
// uncolored cells take the color.
func (b *brailleBuf) paint(mx, my int, col classify.Color, override bool) {
	cx, cy, ok := b.setPixel(mx, my)
	if !ok {
		return
	}
	if override || b.c[cy][cx] == "" {
		b.c[cy][cx] = col
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, col classify.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.paint(x0, y0, col, false)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillRings scanline-fills all rings together with the even-odd rule, so
// holes stay empty.
func (b *brailleBuf) fillRings(rings [][][2]int, col classify.Color) {
	minY, maxY := math.MaxInt, math.MinInt
	for _, r := range rings {
		for _, p := range r {
			minY = min(minY, p[1])
			maxY = max(maxY, p[1])
		}
	}
	_, hMic := b.microSize()
	for yMic := max(0, minY); yMic <= min(hMic-1, maxY); yMic++ {
		var xs []int
		for _, r := range rings {
			for i := 0; i < len(r); i++ {
				a := r[i]
				c := r[(i+1)%len(r)]
				if a[1] == c[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], c[1]
				x0, x1 := a[0], c[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				b.paint(xMic, yMic, col, true)
			}
		}
	}
}

// DrawShape fills a region with its color blended toward the map background
// and traces its outline with the border color.
func (b *brailleBuf) DrawShape(req series.ShapeRequest) error {
	if req.Shape.Type != series.ShapePath {
		return errUnknownShape(req.Shape.Type)
	}
	box := geom.EmptyBBox()
	var rings [][][2]int
	for _, ring := range req.Shape.Args.Rings() {
		r := make([][2]int, 0, len(ring))
		for _, p := range ring {
			x, y := b.view(p[0], p[1])
			box.Extend(float64(x), float64(y))
			r = append(r, [2]int{x, y})
		}
		if len(r) > 0 {
			rings = append(rings, r)
		}
	}
	b.boxes[req.Index] = box
	b.fillRings(rings, req.Fill.Blend(mapBg, req.Opacity))
	for _, r := range rings {
		for i := range r {
			a, c := r[i], r[(i+1)%len(r)]
			b.drawLineMicro(a[0], a[1], c[0], c[1], req.Border)
		}
	}
	return nil
}

// ShapeBBox reports the micro-pixel box of a drawn shape.
func (b *brailleBuf) ShapeBBox(index int) geom.BBox {
	if box, ok := b.boxes[index]; ok {
		return box
	}
	return geom.EmptyBBox()
}

// mark highlights one cell with the hover marker.
func (b *brailleBuf) mark(cx, cy int) {
	b.marked, b.markX, b.markY = true, cx, cy
}

func (b *brailleBuf) glyph(x, y int) string {
	mask := b.m[y][x]
	if mask == 0 {
		return " "
	}
	return string(rune(0x2800 + int(mask)))
}

// toLines renders each row as runs of equally colored cells.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb, run strings.Builder
		var runCol classify.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runCol == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(swatch(runCol.Hex()).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			if b.marked && x == b.markX && y == b.markY {
				flush()
				sb.WriteString(hoverStyle.Render("◯"))
				continue
			}
			col := b.c[y][x]
			if col != runCol {
				flush()
				runCol = col
			}
			run.WriteString(b.glyph(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
