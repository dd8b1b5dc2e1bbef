package geom

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads regions from a CSV file with a header row.
// Column detection (case-insensitive): valueCol, then value|y; nameCol, then
// name|region|id; path|d. An empty or unparsable value cell is treated as no data.
func LoadCSV(path, valueCol, nameCol string) ([]Datum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read csv %s", path)
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxName, idxValue, idxPath := -1, -1, -1
	for i, h := range recs[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if valueCol != "" && h == strings.ToLower(valueCol) {
			idxValue = i
			continue
		}
		if nameCol != "" && h == strings.ToLower(nameCol) {
			idxName = i
			continue
		}
		switch h {
		case "name", "region", "id":
			if idxName == -1 {
				idxName = i
			}
		case "value", "y":
			if idxValue == -1 {
				idxValue = i
			}
		case "path", "d":
			if idxPath == -1 {
				idxPath = i
			}
		}
	}
	if idxPath == -1 {
		return nil, errors.New("csv: path column not found")
	}
	var out []Datum
	for n, row := range recs[1:] {
		if idxPath >= len(row) || strings.TrimSpace(row[idxPath]) == "" {
			continue
		}
		d := Datum{Path: row[idxPath]}
		if idxName >= 0 && idxName < len(row) {
			d.Name = strings.TrimSpace(row[idxName])
		}
		if d.Name == "" {
			d.Name = "#" + strconv.Itoa(n+1)
		}
		if idxValue >= 0 && idxValue < len(row) {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[idxValue]), 64); err == nil {
				d.Value = &v
			}
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no regions parsed")
	}
	return out, nil
}
