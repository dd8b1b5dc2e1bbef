package geom

import "math"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox returns the inverted sentinel box that every real coordinate shrinks.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Pow(2, 31) - 1,
		MinY: math.Pow(2, 31) - 1,
		MaxX: -math.Pow(2, 31),
		MaxY: -math.Pow(2, 31),
	}
}

// Extend grows the box to include x, y.
func (b *BBox) Extend(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// Valid reports whether at least one coordinate was added.
func (b BBox) Valid() bool { return b.MaxX >= b.MinX && b.MaxY >= b.MinY }

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the middle of the box.
func (b BBox) Center() (float64, float64) {
	return b.MinX + b.Width()/2, b.MinY + b.Height()/2
}

// Datum is one region as loaded from a data file: a label, an optional value and its outline.
type Datum struct {
	Name  string
	Value *float64 // nil means no data
	Path  string
	// Flipped marks paths built from lon/lat with latitude negated.
	Flipped bool
}
