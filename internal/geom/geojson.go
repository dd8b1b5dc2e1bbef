package geom

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// LoadGeo reads a GeoJSON Feature or FeatureCollection and returns one region per
// Polygon or MultiPolygon feature. The value is taken from valueProp and the label
// from nameProp; latitude is flipped so north is up once drawn.
func LoadGeo(path, valueProp, nameProp string) ([]Datum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "decode geojson %s", path)
	}
	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	parseRing := func(v any) (ring [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ring = append(ring, pt)
			}
		}
		return ring, true
	}
	parsePolygon := func(v any) (poly [][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, r := range arr {
			if ring, ok := parseRing(r); ok && len(ring) > 0 {
				poly = append(poly, ring)
			}
		}
		return poly, true
	}
	rings := func(g map[string]any) [][][2]float64 {
		gt, _ := g["type"].(string)
		switch gt {
		case "Polygon":
			poly, _ := parsePolygon(g["coordinates"])
			return poly
		case "MultiPolygon":
			arr, _ := g["coordinates"].([]any)
			var all [][][2]float64
			for _, el := range arr {
				if poly, ok := parsePolygon(el); ok {
					all = append(all, poly...)
				}
			}
			return all
		}
		return nil
	}
	var out []Datum
	addFeature := func(fm map[string]any) {
		g, ok := fm["geometry"].(map[string]any)
		if !ok {
			return
		}
		rs := rings(g)
		if len(rs) == 0 {
			return
		}
		props, _ := fm["properties"].(map[string]any)
		d := Datum{Path: PolygonPath(rs, true), Flipped: true}
		d.Name = propString(props[nameProp])
		if d.Name == "" {
			d.Name = "#" + strconv.Itoa(len(out)+1)
		}
		d.Value = propNumber(props[valueProp])
		out = append(out, d)
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		addFeature(raw)
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					addFeature(fm)
				}
			}
		}
	case "Polygon", "MultiPolygon":
		addFeature(map[string]any{"geometry": raw})
	default:
		return nil, errors.Errorf("unsupported geojson type: %q", t)
	}
	if len(out) == 0 {
		return nil, errors.New("no polygon features found")
	}
	return out, nil
}

func propString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func propNumber(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return &f
		}
	}
	return nil
}
