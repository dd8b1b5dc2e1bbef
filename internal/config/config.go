// Package config holds the map series options and loads them from a JSON file.
package config

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"choromap/internal/classify"
)

// DefaultPath is read when no config file is given; a missing file there is fine.
const DefaultPath = "~/.choromap.json"

type Options struct {
	ValueRanges     []classify.ValueRange `json:"valueRanges"`
	MinOpacity      float64               `json:"minOpacity"`
	WeightedOpacity bool                  `json:"weightedOpacity"`
	NullColor       classify.Color        `json:"nullColor"`
	BorderColor     classify.Color        `json:"borderColor"`
	DefaultColor    classify.Color        `json:"defaultColor"`
	// ValueDecimals is the legend label precision; unset means 2.
	ValueDecimals int `json:"valueDecimals"`
	// DataLabels prints each region's value at its center in the PNG output.
	DataLabels    bool   `json:"dataLabels"`
	ValueProperty string `json:"valueProperty"`
	NameProperty  string `json:"nameProperty"`
}

func Default() Options {
	return Options{
		MinOpacity:      0.2,
		WeightedOpacity: true,
		NullColor:       "#F8F8F8",
		BorderColor:     "silver",
		DefaultColor:    "#7CB5EC",
		ValueDecimals:   2,
		ValueProperty:   "value",
		NameProperty:    "name",
	}
}

// Load reads options from path on top of Default. An empty path means
// DefaultPath, which may be absent.
func Load(path string) (Options, error) {
	opts := Default()
	optional := path == ""
	if optional {
		path = DefaultPath
	}
	full, err := homedir.Expand(path)
	if err != nil {
		return opts, errors.Wrapf(err, "expand %s", path)
	}
	b, err := os.ReadFile(full)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.Wrapf(err, "read config %s", full)
	}
	if err := json.Unmarshal(b, &opts); err != nil {
		return opts, errors.Wrapf(err, "decode config %s", full)
	}
	if err := opts.Validate(); err != nil {
		return opts, errors.Wrapf(err, "config %s", full)
	}
	return opts, nil
}

// Validate checks colors and numeric bounds.
func (o Options) Validate() error {
	if o.MinOpacity < 0 || o.MinOpacity > 1 {
		return errors.Errorf("minOpacity %g out of [0, 1]", o.MinOpacity)
	}
	for name, c := range map[string]classify.Color{
		"nullColor":    o.NullColor,
		"borderColor":  o.BorderColor,
		"defaultColor": o.DefaultColor,
	} {
		if _, err := c.Parse(); err != nil {
			return errors.Wrap(err, name)
		}
	}
	for i, r := range o.ValueRanges {
		if _, err := r.Color.Parse(); err != nil {
			return errors.Wrapf(err, "valueRanges[%d]", i)
		}
		if r.From != nil && r.To != nil && *r.From > *r.To {
			return errors.Errorf("valueRanges[%d]: from %g > to %g", i, *r.From, *r.To)
		}
	}
	return nil
}

// Classifier builds the classifier for these options.
func (o Options) Classifier() classify.Classifier {
	return classify.Classifier{
		Ranges:    o.ValueRanges,
		Default:   o.DefaultColor,
		NullColor: o.NullColor,
	}
}
