// Package render draws a map series into a raster image.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"choromap/internal/classify"
	"choromap/internal/geom"
	"choromap/internal/series"
)

const (
	padding     = 10
	legendWidth = 160
	legendLineH = 18
	swatchSize  = 12
)

// Canvas is a series.Renderer backed by an RGBA image.
type Canvas struct {
	img   *image.RGBA
	gc    *draw2dimg.GraphicContext
	boxes map[int]geom.BBox
}

func NewCanvas(width, height int, background classify.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), background)
	return &Canvas{
		img:   img,
		gc:    draw2dimg.NewGraphicContext(img),
		boxes: make(map[int]geom.BBox),
	}
}

func fill(img draw.Image, r image.Rectangle, c classify.Color) {
	cr, cg, cb, _ := c.RGBA(1)
	draw.Draw(img, r, image.NewUniform(color.RGBA{R: cr, G: cg, B: cb, A: 0xff}), image.Point{}, draw.Src)
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// DrawShape fills the path with the request's color and opacity and strokes its border.
// Pairs after a move-to continue the subpath; other commands are drawn as polylines.
func (c *Canvas) DrawShape(req series.ShapeRequest) error {
	if req.Shape.Type != series.ShapePath {
		return errors.Errorf("unsupported shape type %q", req.Shape.Type)
	}
	if _, err := req.Fill.Parse(); err != nil {
		return err
	}
	fr, fg, fb, fa := req.Fill.RGBA(req.Opacity)
	br, bg, bb, _ := req.Border.RGBA(1)
	c.gc.SetFillColor(color.NRGBA{R: fr, G: fg, B: fb, A: fa})
	c.gc.SetStrokeColor(color.NRGBA{R: br, G: bg, B: bb, A: 0xff})
	c.gc.SetLineWidth(1)

	box := geom.EmptyBBox()
	open := false
	c.gc.BeginPath()
	for _, s := range req.Shape.Args {
		if !s.HasXY {
			switch s.Command {
			case 'M', 'm':
				open = false
			case 'Z', 'z':
				if open {
					c.gc.Close()
				}
				open = false
			}
			continue
		}
		box.Extend(s.X, s.Y)
		if !open {
			c.gc.MoveTo(s.X, s.Y)
			open = true
			continue
		}
		c.gc.LineTo(s.X, s.Y)
	}
	c.gc.FillStroke()
	c.boxes[req.Index] = box
	return nil
}

// ShapeBBox returns the device extent of a drawn shape, or an inverted box.
func (c *Canvas) ShapeBBox(index int) geom.BBox {
	if bb, ok := c.boxes[index]; ok {
		return bb
	}
	return geom.EmptyBBox()
}

// DrawLegend writes one swatch and label per item, top to bottom from x, y.
func (c *Canvas) DrawLegend(items []classify.LegendItem, x, y int) {
	for i, it := range items {
		top := y + i*legendLineH
		fill(c.img, image.Rect(x, top, x+swatchSize, top+swatchSize), it.Color)
		d := &font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(x+swatchSize+6, top+swatchSize-1),
		}
		d.DrawString(it.Label)
	}
}

// DrawLabels writes each anchored point's value centered on its shape.
func (c *Canvas) DrawLabels(s *series.Series) {
	area := s.Area()
	face := basicfont.Face7x13
	for i, p := range s.Points() {
		label := s.ValueLabel(i)
		if !p.Anchored || label == "" {
			continue
		}
		x := area.Left + p.PlotPos[0] - float64(font.MeasureString(face, label).Round())/2
		y := area.Top + p.PlotPos[1] + float64(face.Ascent-face.Descent)/2
		d := &font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
		}
		d.DrawString(label)
	}
}

// SavePNG writes the image to path.
func (c *Canvas) SavePNG(path string) error {
	return errors.Wrapf(draw2dimg.SaveToPngFile(path, c.img), "save %s", path)
}

// Render runs a full pass of s onto a new width x height canvas, with the map in
// the padded left area and the legend in a column on the right.
func Render(s *series.Series, width, height int, background classify.Color) (*Canvas, error) {
	if width <= 2*padding || height <= 2*padding {
		return nil, errors.Errorf("canvas %dx%d too small", width, height)
	}
	c := NewCanvas(width, height, background)
	legend := s.LegendItems()
	mapW := width - 2*padding
	if len(legend) > 0 && mapW > legendWidth {
		mapW -= legendWidth
	}
	area := series.PlotArea{
		Left:   padding,
		Top:    padding,
		Width:  float64(mapW),
		Height: float64(height - 2*padding),
	}
	if err := s.Render(area, c); err != nil {
		return nil, errors.Wrap(err, "render series")
	}
	if s.Options().DataLabels {
		c.DrawLabels(s)
	}
	if len(legend) > 0 {
		c.DrawLegend(legend, padding+mapW+padding, padding)
	}
	return c, nil
}
