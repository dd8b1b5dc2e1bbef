package geom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Extensions lists the file types LoadFile understands.
var Extensions = []string{".csv", ".geojson", ".json", ".kml", ".wkt"}

// LoadFile picks a loader by file extension.
func LoadFile(path, valueProp, nameProp string) ([]Datum, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path, valueProp, nameProp)
	case ".geojson", ".json":
		return LoadGeo(path, valueProp, nameProp)
	case ".kml":
		return LoadKML(path, valueProp, nameProp)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		rings, err := ParseWKTRings(string(b))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		return []Datum{{Name: name, Path: PolygonPath(rings, true), Flipped: true}}, nil
	default:
		return nil, errors.Errorf("unsupported file: %s", ext)
	}
}
