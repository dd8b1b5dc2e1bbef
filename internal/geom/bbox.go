package geom

// ComputeBBox scans every coordinate pair of every path. Subpaths are part of the
// same stream. With no coordinates at all the result is the inverted EmptyBBox.
func ComputeBBox(paths ...Path) BBox {
	bb := EmptyBBox()
	for _, p := range paths {
		for _, s := range p {
			if s.HasXY {
				bb.Extend(s.X, s.Y)
			}
		}
	}
	return bb
}
