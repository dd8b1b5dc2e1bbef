package geom

import (
	"fmt"
	"math"
)

// Transform maps data space into device space with one scale factor for both axes.
type Transform struct {
	MinX  float64
	MinY  float64
	Scale float64
}

// DegenerateGeometryError is returned when the box has no extent on an axis
// or the canvas has no area, so no finite scale exists.
type DegenerateGeometryError struct {
	Box           BBox
	Width, Height float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("geom: degenerate geometry: box [%g, %g, %g, %g] on %gx%g canvas",
		e.Box.MinX, e.Box.MinY, e.Box.MaxX, e.Box.MaxY, e.Width, e.Height)
}

// BuildTransform fits box into a width x height canvas, preserving aspect ratio.
// On a degenerate box it returns a unit-scale transform along with the error so
// callers may choose to keep drawing.
func BuildTransform(box BBox, width, height float64) (Transform, error) {
	t := Transform{MinX: box.MinX, MinY: box.MinY, Scale: 1}
	if box.MaxX <= box.MinX || box.MaxY <= box.MinY || width <= 0 || height <= 0 {
		return t, &DegenerateGeometryError{Box: box, Width: width, Height: height}
	}
	t.Scale = math.Min(width/box.Width(), height/box.Height())
	return t, nil
}

// Apply maps a data-space coordinate to rounded device space offset by the origin.
func (t Transform) Apply(x, y, originX, originY float64) (float64, float64) {
	return math.Round(originX + (x-t.MinX)*t.Scale),
		math.Round(originY + (y-t.MinY)*t.Scale)
}

// Invert maps a device coordinate back to data space.
func (t Transform) Invert(x, y, originX, originY float64) (float64, float64) {
	return t.MinX + (x-originX)/t.Scale, t.MinY + (y-originY)/t.Scale
}

// TransformPath returns a device-space copy of p. Command letters pass through.
func TransformPath(p Path, t Transform, originX, originY float64) Path {
	out := make(Path, len(p))
	for i, s := range p {
		if s.HasXY {
			s.X, s.Y = t.Apply(s.X, s.Y, originX, originY)
		}
		out[i] = s
	}
	return out
}
