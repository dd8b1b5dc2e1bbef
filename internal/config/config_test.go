package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choromap/internal/classify"
)

func TestLoadMergesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(p, []byte(`{
		"valueRanges": [
			{"to": 10, "color": "#FFE0E0"},
			{"from": 10, "to": 100, "color": "#FF8080"},
			{"from": 100, "color": "#800000", "name": "high"}
		],
		"valueDecimals": 1,
		"nullColor": "#EEEEEE"
	}`), 0o644))

	opts, err := Load(p)
	require.NoError(t, err)
	require.Len(t, opts.ValueRanges, 3)
	assert.Nil(t, opts.ValueRanges[0].From)
	assert.Equal(t, 10.0, *opts.ValueRanges[0].To)
	assert.Equal(t, "high", opts.ValueRanges[2].Name)
	assert.Equal(t, 1, opts.ValueDecimals)
	assert.Equal(t, classify.Color("#EEEEEE"), opts.NullColor)
	// untouched keys keep their defaults
	assert.Equal(t, 0.2, opts.MinOpacity)
	assert.True(t, opts.WeightedOpacity)
	assert.Equal(t, classify.Color("silver"), opts.BorderColor)
	assert.False(t, opts.DataLabels)

	v := 50.0
	assert.Equal(t, classify.Color("#FF8080"), opts.Classifier().Resolve(&v))
	assert.Equal(t, classify.Color("#EEEEEE"), opts.Classifier().Resolve(nil))
}

func TestLoadKeepsDefaultDecimals(t *testing.T) {
	assert.Equal(t, 2, Default().ValueDecimals)

	p := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"dataLabels": true}`), 0o644))
	opts, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 2, opts.ValueDecimals)
	assert.True(t, opts.DataLabels)

	require.NoError(t, os.WriteFile(p, []byte(`{"valueDecimals": 0}`), 0o644))
	opts, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, 0, opts.ValueDecimals)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	homedir.Reset()
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestValidate(t *testing.T) {
	lo, hi := 5.0, 1.0
	tests := []struct {
		name string
		mod  func(*Options)
	}{
		{"opacity", func(o *Options) { o.MinOpacity = 1.5 }},
		{"null color", func(o *Options) { o.NullColor = "nope" }},
		{"range color", func(o *Options) { o.ValueRanges = []classify.ValueRange{{Color: "#zzzzzz"}} }},
		{"inverted range", func(o *Options) {
			o.ValueRanges = []classify.ValueRange{{From: &lo, To: &hi, Color: "#000000"}}
		}},
	}
	require.NoError(t, Default().Validate())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := Default()
			tc.mod(&o)
			assert.Error(t, o.Validate())
		})
	}
}
