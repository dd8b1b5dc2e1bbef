package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choromap/internal/classify"
	"choromap/internal/config"
	"choromap/internal/geom"
	"choromap/internal/series"
)

func f(v float64) *float64 { return &v }

func testSeries() *series.Series { return testSeriesWith(config.Default()) }

func testSeriesWith(opts config.Options) *series.Series {
	opts.WeightedOpacity = false
	opts.ValueRanges = []classify.ValueRange{
		{To: f(10), Color: "#2040A0"},
		{From: f(10), Color: "#C03020"},
	}
	return series.New(opts, []geom.Datum{
		{Name: "a", Value: f(1), Path: "M0 0 L10 0 L10 10 L0 10 Z"},
		{Name: "b", Value: f(20), Path: "M10 0 L20 0 L20 10 L10 10 Z"},
		{Name: "c", Path: "M0 10 L20 10 L20 20 L0 20 Z"},
	}, nil)
}

func assertPixel(t *testing.T, c *Canvas, x, y float64, want classify.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA(1)
	got := c.Image().RGBAAt(int(x), int(y))
	assert.InDelta(t, wr, got.R, 2, "red at %v,%v", x, y)
	assert.InDelta(t, wg, got.G, 2, "green at %v,%v", x, y)
	assert.InDelta(t, wb, got.B, 2, "blue at %v,%v", x, y)
}

func TestRenderFillsRegions(t *testing.T) {
	s := testSeries()
	c, err := Render(s, 400, 220, "#FFFFFF")
	require.NoError(t, err)

	pts := s.Points()
	assertPixel(t, c, pts[0].TooltipPos[0], pts[0].TooltipPos[1], "#2040A0")
	assertPixel(t, c, pts[1].TooltipPos[0], pts[1].TooltipPos[1], "#C03020")
	assertPixel(t, c, pts[2].TooltipPos[0], pts[2].TooltipPos[1], "#F8F8F8")
	// outside every shape stays background
	assertPixel(t, c, 399, 219, "#FFFFFF")

	// map area is 400-2*10-160 = 220 wide, 200 high, box is 20x20: scale 10
	assert.Equal(t, 10.0, s.Transform().Scale)
	assert.Equal(t, geom.BBox{MinX: 10, MinY: 10, MaxX: 110, MaxY: 110}, c.ShapeBBox(0))
	assert.False(t, c.ShapeBBox(42).Valid())
}

func TestRenderLegendSwatches(t *testing.T) {
	s := testSeries()
	c, err := Render(s, 400, 220, "#FFFFFF")
	require.NoError(t, err)
	x := float64(padding + 220 + padding + swatchSize/2)
	assertPixel(t, c, x, padding+swatchSize/2, "#2040A0")
	assertPixel(t, c, x, padding+legendLineH+swatchSize/2, "#C03020")
}

// darkPixels counts near-black pixels in the 21x21 square around x, y.
func darkPixels(c *Canvas, x, y float64) int {
	n := 0
	for dy := -10; dy <= 10; dy++ {
		for dx := -10; dx <= 10; dx++ {
			p := c.Image().RGBAAt(int(x)+dx, int(y)+dy)
			if p.R < 40 && p.G < 40 && p.B < 40 {
				n++
			}
		}
	}
	return n
}

func TestRenderDataLabels(t *testing.T) {
	plain := testSeries()
	c, err := Render(plain, 400, 220, "#FFFFFF")
	require.NoError(t, err)
	a := plain.Points()[0]
	assert.Zero(t, darkPixels(c, a.TooltipPos[0], a.TooltipPos[1]))

	opts := config.Default()
	opts.DataLabels = true
	labeled := testSeriesWith(opts)
	c, err = Render(labeled, 400, 220, "#FFFFFF")
	require.NoError(t, err)
	pts := labeled.Points()
	assert.Positive(t, darkPixels(c, pts[0].TooltipPos[0], pts[0].TooltipPos[1]))
	assert.Positive(t, darkPixels(c, pts[1].TooltipPos[0], pts[1].TooltipPos[1]))
	// no value, no label
	assert.Zero(t, darkPixels(c, pts[2].TooltipPos[0], pts[2].TooltipPos[1]))
}

func TestRenderTooSmall(t *testing.T) {
	_, err := Render(testSeries(), 10, 10, "#FFFFFF")
	assert.Error(t, err)
}

func TestDrawShapeRejectsUnknownType(t *testing.T) {
	c := NewCanvas(10, 10, "#FFFFFF")
	err := c.DrawShape(series.ShapeRequest{Shape: series.Shape{Type: "circle"}, Fill: "#000000"})
	assert.EqualError(t, err, `unsupported shape type "circle"`)
}

func TestSavePNG(t *testing.T) {
	c, err := Render(testSeries(), 300, 150, "#FFFFFF")
	require.NoError(t, err)
	out := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, c.SavePNG(out))

	fh, err := os.Open(out)
	require.NoError(t, err)
	defer fh.Close()
	img, err := png.Decode(fh)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}
