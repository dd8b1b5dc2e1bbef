package geom

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type kmlRing struct {
	Coordinates string `xml:"LinearRing>coordinates"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlSimpleData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type kmlPlacemark struct {
	Name       string          `xml:"name"`
	Polygons   []kmlPolygon    `xml:"Polygon"`
	Multi      []kmlPolygon    `xml:"MultiGeometry>Polygon"`
	Data       []kmlData       `xml:"ExtendedData>Data"`
	SimpleData []kmlSimpleData `xml:"ExtendedData>SchemaData>SimpleData"`
}

// prop looks up an ExtendedData field; "name" falls back to the Placemark name.
func (pm kmlPlacemark) prop(key string) string {
	for _, d := range pm.Data {
		if d.Name == key {
			return strings.TrimSpace(d.Value)
		}
	}
	for _, d := range pm.SimpleData {
		if d.Name == key {
			return strings.TrimSpace(d.Value)
		}
	}
	if key == "name" {
		return strings.TrimSpace(pm.Name)
	}
	return ""
}

// parseKMLCoords reads "lon,lat[,alt]" tuples separated by whitespace; altitude is ignored.
func parseKMLCoords(s string) [][2]float64 {
	var ring [][2]float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ring = append(ring, [2]float64{lon, lat})
	}
	return ring
}

// LoadKML reads every Placemark with Polygon geometry (directly or in a
// MultiGeometry, at any Document/Folder depth) as one region. The value and
// label come from ExtendedData fields named valueProp and nameProp.
func LoadKML(path, valueProp, nameProp string) ([]Datum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var out []Datum
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode kml %s", path)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, errors.Wrapf(err, "decode kml %s", path)
		}
		var rings [][][2]float64
		for _, poly := range append(pm.Polygons, pm.Multi...) {
			if r := parseKMLCoords(poly.Outer.Coordinates); len(r) > 0 {
				rings = append(rings, r)
			}
			for _, in := range poly.Inner {
				if r := parseKMLCoords(in.Coordinates); len(r) > 0 {
					rings = append(rings, r)
				}
			}
		}
		if len(rings) == 0 {
			continue
		}
		d := Datum{Path: PolygonPath(rings, true), Flipped: true}
		d.Name = pm.prop(nameProp)
		if d.Name == "" {
			d.Name = "#" + strconv.Itoa(len(out)+1)
		}
		d.Value = propNumber(pm.prop(valueProp))
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.New("kml: no polygon placemarks found")
	}
	return out, nil
}
