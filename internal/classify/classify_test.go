package classify

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestClassifyLaterRangeWins(t *testing.T) {
	c := Classifier{
		Ranges: []ValueRange{
			{From: f(0), To: f(10), Color: "#A00000"},
			{From: f(5), To: f(15), Color: "#00B000"},
		},
		Default: "#cccccc",
	}
	assert.Equal(t, Color("#00B000"), c.Classify(f(7)))
	assert.Equal(t, Color("#A00000"), c.Classify(f(3)))
	assert.Equal(t, Color("#00B000"), c.Classify(f(15)))
}

func TestClassifyBoundsInclusive(t *testing.T) {
	c := Classifier{Ranges: []ValueRange{{From: f(1), To: f(2), Color: "#111111"}}, Default: "#999999"}
	assert.Equal(t, Color("#111111"), c.Classify(f(1)))
	assert.Equal(t, Color("#111111"), c.Classify(f(2)))
	assert.Equal(t, Color("#999999"), c.Classify(f(2.0001)))
	assert.Equal(t, Color("#999999"), c.Classify(f(0.9999)))
}

func TestClassifyOpenBounds(t *testing.T) {
	c := Classifier{
		Ranges: []ValueRange{
			{To: f(0), Color: "#000001"},
			{From: f(100), Color: "#000002"},
		},
		Default: "#000003",
	}
	assert.Equal(t, Color("#000001"), c.Classify(f(-1e9)))
	assert.Equal(t, Color("#000002"), c.Classify(f(1e9)))
	assert.Equal(t, Color("#000003"), c.Classify(f(50)))
}

func TestClassifyFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Color("#abcdef"), Classifier{Default: "#abcdef"}.Classify(f(5)))
	assert.Equal(t, Color("#abcdef"), Classifier{Default: "#abcdef"}.Classify(nil))
}

func TestClassifyNull(t *testing.T) {
	bounded := Classifier{
		Ranges:    []ValueRange{{From: f(-1e300), To: f(1e300), Color: "#010101"}},
		Default:   "#020202",
		NullColor: "#F8F8F8",
	}
	assert.Equal(t, Color("#020202"), bounded.Classify(nil))
	assert.Equal(t, Color("#F8F8F8"), bounded.Resolve(nil))
	assert.Equal(t, Color("#010101"), bounded.Resolve(f(3)))

	halfOpen := Classifier{Ranges: []ValueRange{{From: f(0), Color: "#030303"}}, Default: "#020202"}
	assert.Equal(t, Color("#020202"), halfOpen.Classify(nil))

	unbounded := Classifier{
		Ranges:  []ValueRange{{Color: "#040404"}, {From: f(0), To: f(1), Color: "#050505"}},
		Default: "#020202",
	}
	assert.Equal(t, Color("#040404"), unbounded.Classify(nil))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		r        ValueRange
		decimals int
		want     string
	}{
		{ValueRange{To: f(10)}, 0, "< 10"},
		{ValueRange{From: f(10)}, 0, "> 10"},
		{ValueRange{From: f(1), To: f(2.5)}, 1, "1.0 - 2.5"},
		{ValueRange{From: f(0.126), To: f(0.5)}, 2, "0.13 - 0.50"},
		{ValueRange{From: f(1), To: f(2), Name: "low"}, 0, "low"},
		{ValueRange{From: f(1), To: f(2)}, -2, "1.00 - 2.00"},
		{ValueRange{From: f(1500), To: f(2000)}, 2, "1,500.00 - 2,000.00"},
		// both bounds open: only the "< " prefix remains
		{ValueRange{}, 0, "< "},
		{ValueRange{}, 2, "< "},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Label(tc.r, tc.decimals, nil))
	}
}

func TestLegendCustomFormat(t *testing.T) {
	ranges := []ValueRange{
		{To: f(5), Color: "#111111"},
		{From: f(5), To: f(10), Color: "#222222"},
	}
	pct := func(v float64, _ int) string { return strconv.FormatFloat(v, 'f', -1, 64) + "%" }
	items := Legend(ranges, 0, pct)
	require.Len(t, items, 2)
	assert.Equal(t, "< 5%", items[0].Label)
	assert.Equal(t, "5% - 10%", items[1].Label)
	for i, it := range items {
		assert.True(t, it.Static)
		assert.Equal(t, ranges[i].Color, it.Color)
	}
}

func TestColorBlend(t *testing.T) {
	assert.Equal(t, Color("#FF0000"), Color("#FF0000").Blend("#000000", 1))
	assert.Equal(t, Color("#000000"), Color("#FF0000").Blend("#000000", 0))
	assert.Equal(t, Color("#C0C0C0"), Color("silver").Blend("#000000", 1))

	r, g, b, a := Color("#102030").RGBA(0.5)
	assert.Equal(t, []uint8{0x10, 0x20, 0x30, 128}, []uint8{r, g, b, a})

	_, err := Color("nope").Parse()
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "80.0", FormatNumber(80, -1))
	assert.Equal(t, "12.25", FormatNumber(12.25, -2))
	assert.Equal(t, "3", FormatNumber(3.2, 0))
	assert.Equal(t, "3.20", FormatNumber(3.2, 2))
	assert.Equal(t, "1,234,567.89", FormatNumber(1234567.891, 2))
}

func TestDecimals(t *testing.T) {
	assert.Equal(t, 0, Decimals(80))
	assert.Equal(t, 2, Decimals(12.25))
	assert.Equal(t, 3, Decimals(-0.125))
	assert.Equal(t, "12.25", FormatNumber(12.25, Decimals(12.25)))
}
