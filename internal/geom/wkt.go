package geom

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseWKTRings parses a WKT POLYGON, MULTIPOLYGON or LINESTRING into vertex rings.
func ParseWKTRings(wkt string) ([][][2]float64, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	parseTuples := func(block string) [][2]float64 {
		var out [][2]float64
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.Trim(strings.TrimSpace(tup), "()"))
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, [2]float64{x, y})
		}
		return out
	}
	splitRings := func(block string) [][][2]float64 {
		// normalize spaces around ring separators
		norm := strings.ReplaceAll(block, "), (", "),(")
		norm = strings.ReplaceAll(norm, ") , (", "),(")
		var rings [][][2]float64
		for _, rp := range strings.Split(norm, "),(") {
			if pts := parseTuples(rp); len(pts) > 0 {
				rings = append(rings, pts)
			}
		}
		return rings
	}
	var rings [][][2]float64
	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		i := strings.Index(s, "(((")
		j := strings.LastIndex(s, ")))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt multipolygon: invalid")
		}
		block := strings.ReplaceAll(s[i+3:j], ")), ((", "),(")
		block = strings.ReplaceAll(block, ")),((", "),(")
		rings = splitRings(block)
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return nil, errors.New("wkt polygon: invalid")
		}
		rings = splitRings(s[i+2 : j])
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return nil, errors.New("wkt linestring: invalid")
		}
		if pts := parseTuples(s[i+1 : j]); len(pts) > 0 {
			rings = append(rings, pts)
		}
	default:
		return nil, errors.New("unsupported wkt type")
	}
	if len(rings) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return rings, nil
}

// IsWKT reports whether s looks like one of the WKT geometries ParseWKTRings accepts.
func IsWKT(s string) bool {
	up := strings.ToUpper(strings.TrimSpace(s))
	for _, p := range []string{"POLYGON", "MULTIPOLYGON", "LINESTRING"} {
		if strings.HasPrefix(up, p) {
			return true
		}
	}
	return false
}
