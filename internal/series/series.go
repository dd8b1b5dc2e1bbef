// Package series turns region data into device-space shapes, one render pass at a time.
//
// A Series is owned by a single host and is not safe for concurrent use. Every
// Translate recomputes the bounding box and transform from the current points,
// so a later pass fully replaces an earlier one.
package series

import (
	"io"
	"log"
	"math"

	"github.com/pkg/errors"

	"choromap/internal/classify"
	"choromap/internal/config"
	"choromap/internal/geom"
)

// ShapePath is the only shape type a map series produces.
const ShapePath = "path"

// PlotArea is the host's drawing rectangle in device space.
type PlotArea struct {
	Left, Top     float64
	Width, Height float64
}

// Shape is the device-space drawing instruction handed to the host.
type Shape struct {
	Type string
	Args geom.Path
}

// DisplayValue separates a point's raw value from the number the host may draw with.
// A missing value draws as 0 while Raw stays nil.
type DisplayValue struct {
	Raw      *float64
	Drawable float64
}

func displayValue(v *float64) DisplayValue {
	if v == nil {
		return DisplayValue{}
	}
	return DisplayValue{Raw: v, Drawable: *v}
}

// Point is one region of the map.
type Point struct {
	Name    string
	Value   *float64
	Path    geom.Path
	Color   classify.Color
	Opacity float64
	// Flipped is carried over from the datum: Y is negated latitude.
	Flipped bool

	// Set by Translate.
	Shape Shape
	// Set by DrawPoints: center of the drawn shape, and the same relative to the plot area.
	// Anchored is false when the host drew nothing for the point in this pass.
	TooltipPos [2]float64
	PlotPos    [2]float64
	Anchored   bool
}

// ShapeRequest asks the host to draw one point.
type ShapeRequest struct {
	Index   int
	Shape   Shape
	Fill    classify.Color
	Opacity float64
	Border  classify.Color
	Value   DisplayValue
}

// Renderer is the host side: it draws shapes and reports the device bounding box
// of what it drew.
type Renderer interface {
	DrawShape(req ShapeRequest) error
	ShapeBBox(index int) geom.BBox
}

type Series struct {
	opts       config.Options
	classifier classify.Classifier
	format     classify.NumberFormat
	legend     []classify.LegendItem
	log        *log.Logger

	points []*Point

	area      PlotArea
	box       geom.BBox
	transform geom.Transform
	maxValue  float64
	pass      int
}

// New builds a series from options and data. Shapes whose path fails to parse
// are skipped and logged. A nil logger discards warnings.
func New(opts config.Options, data []geom.Datum, logger *log.Logger) *Series {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Series{
		opts:       opts,
		classifier: opts.Classifier(),
		format:     classify.FormatNumber,
		log:        logger,
		box:        geom.EmptyBBox(),
	}
	s.legend = classify.Legend(opts.ValueRanges, opts.ValueDecimals, s.format)
	s.SetData(data)
	return s
}

// SetNumberFormat replaces the number formatter and rebuilds the legend.
func (s *Series) SetNumberFormat(f classify.NumberFormat) {
	if f == nil {
		f = classify.FormatNumber
	}
	s.format = f
	s.legend = classify.Legend(s.opts.ValueRanges, s.opts.ValueDecimals, f)
}

// SetData replaces all points and returns how many were skipped.
func (s *Series) SetData(data []geom.Datum) int {
	points := make([]*Point, 0, len(data))
	skipped := 0
	for _, d := range data {
		p, err := geom.ParsePath(d.Path)
		if err != nil {
			s.log.Printf("series: skipping %q: %v", d.Name, err)
			skipped++
			continue
		}
		points = append(points, &Point{
			Name:    d.Name,
			Value:   d.Value,
			Path:    p,
			Color:   s.classifier.Resolve(d.Value),
			Opacity: 1,
			Flipped: d.Flipped,
		})
	}
	s.points = points
	s.pass = 0
	return skipped
}

func (s *Series) Options() config.Options            { return s.opts }
func (s *Series) Points() []*Point                    { return s.points }
func (s *Series) LegendItems() []classify.LegendItem { return s.legend }
func (s *Series) BBox() geom.BBox                    { return s.box }
func (s *Series) Transform() geom.Transform          { return s.transform }
func (s *Series) Area() PlotArea                     { return s.area }

// MaxValue is the largest value seen by the last pass, never below 0.
func (s *Series) MaxValue() float64 { return s.maxValue }

// Pass counts completed Translate calls since the data was set.
func (s *Series) Pass() int { return s.pass }

// Translate runs the geometry part of a render pass: bounding box over all points,
// a uniform transform fitting it into area, and each point's device-space shape.
// A degenerate box is drawn at scale 1 with a logged warning.
func (s *Series) Translate(area PlotArea) {
	paths := make([]geom.Path, len(s.points))
	for i, p := range s.points {
		paths[i] = p.Path
	}
	box := geom.ComputeBBox(paths...)
	tr, err := geom.BuildTransform(box, area.Width, area.Height)
	if err != nil && len(s.points) > 0 {
		s.log.Printf("series: %v; drawing at scale 1", err)
	}

	maxValue := 0.0
	shapes := make([]Shape, len(s.points))
	for i, p := range s.points {
		shapes[i] = Shape{Type: ShapePath, Args: geom.TransformPath(p.Path, tr, area.Left, area.Top)}
		if p.Value != nil && *p.Value > maxValue {
			maxValue = *p.Value
		}
	}

	for i, p := range s.points {
		p.Shape = shapes[i]
		p.Opacity = s.opacity(p.Value, maxValue)
		p.TooltipPos, p.PlotPos, p.Anchored = [2]float64{}, [2]float64{}, false
	}
	s.area, s.box, s.transform, s.maxValue = area, box, tr, maxValue
	s.pass++
}

func (s *Series) opacity(v *float64, maxValue float64) float64 {
	if !s.opts.WeightedOpacity || v == nil {
		return 1
	}
	if maxValue <= 0 || *v <= 0 {
		return s.opts.MinOpacity
	}
	return math.Min(1, s.opts.MinOpacity+(1-s.opts.MinOpacity)*(*v/maxValue))
}

// DrawPoints hands every translated shape to r and anchors each point's tooltip
// at the center of what r drew.
func (s *Series) DrawPoints(r Renderer) error {
	for i, p := range s.points {
		req := ShapeRequest{
			Index:   i,
			Shape:   p.Shape,
			Fill:    p.Color,
			Opacity: p.Opacity,
			Border:  s.opts.BorderColor,
			Value:   displayValue(p.Value),
		}
		if err := r.DrawShape(req); err != nil {
			return errors.Wrapf(err, "draw %q", p.Name)
		}
		bb := r.ShapeBBox(i)
		if !bb.Valid() {
			continue
		}
		cx, cy := bb.Center()
		p.TooltipPos = [2]float64{cx, cy}
		p.PlotPos = [2]float64{cx - s.area.Left, cy - s.area.Top}
		p.Anchored = true
	}
	return nil
}

// Render runs a full pass: Translate then DrawPoints.
func (s *Series) Render(area PlotArea, r Renderer) error {
	s.Translate(area)
	return s.DrawPoints(r)
}

// Tooltip returns "name: value", or "name: no data" for a missing value.
func (s *Series) Tooltip(i int) string {
	if i < 0 || i >= len(s.points) {
		return ""
	}
	p := s.points[i]
	if p.Value == nil {
		return p.Name + ": no data"
	}
	return p.Name + ": " + s.ValueLabel(i)
}

// ValueLabel formats point i's value at its own precision, or "" without a value.
func (s *Series) ValueLabel(i int) string {
	if i < 0 || i >= len(s.points) || s.points[i].Value == nil {
		return ""
	}
	v := *s.points[i].Value
	return s.format(v, classify.Decimals(v))
}

// Nearest returns the index of the anchored point whose tooltip anchor is closest to x, y.
func (s *Series) Nearest(x, y float64) (int, bool) {
	if s.pass == 0 {
		return 0, false
	}
	best, bestD := -1, math.Inf(1)
	for i, p := range s.points {
		if !p.Anchored {
			continue
		}
		dx, dy := p.TooltipPos[0]-x, p.TooltipPos[1]-y
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}
