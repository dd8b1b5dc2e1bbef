package geom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{
			"square",
			"M0 0 L10 0 L10 10 L0 10 Z",
			Path{
				{Command: 'M'}, {X: 0, Y: 0, HasXY: true},
				{Command: 'L'}, {X: 10, Y: 0, HasXY: true},
				{Command: 'L'}, {X: 10, Y: 10, HasXY: true},
				{Command: 'L'}, {X: 0, Y: 10, HasXY: true},
				{Command: 'Z'},
			},
		},
		{
			"commas and no spaces",
			"M1.5,-2L3,4z",
			Path{
				{Command: 'M'}, {X: 1.5, Y: -2, HasXY: true},
				{Command: 'L'}, {X: 3, Y: 4, HasXY: true},
				{Command: 'z'},
			},
		},
		{
			"implicit lineto after move",
			"  M 0 0 5 5 10 0 Z  ",
			Path{
				{Command: 'M'},
				{X: 0, Y: 0, HasXY: true},
				{X: 5, Y: 5, HasXY: true},
				{X: 10, Y: 0, HasXY: true},
				{Command: 'Z'},
			},
		},
		{"empty", "", Path{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePath(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePathIsIdempotent(t *testing.T) {
	const raw = "M 10 20 L 30 40 L 50 10 Z M 100 100 L 110 100 L 110 110 Z"
	a, err := ParsePath(raw)
	require.NoError(t, err)
	b, err := ParsePath(raw)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParsePathMalformed(t *testing.T) {
	tests := []struct {
		in    string
		token string
		pos   int
	}{
		{"M 0 0 L 1..2 3", "1..2", 4},
		{"M 0 0 L 5 Z", "5", 4},
		{"M 0 0 L 5", "5", 4},
	}
	for _, tc := range tests {
		_, err := ParsePath(tc.in)
		require.Error(t, err, tc.in)
		var mpe *MalformedPathError
		require.True(t, errors.As(err, &mpe), tc.in)
		assert.Equal(t, tc.token, mpe.Token, tc.in)
		assert.Equal(t, tc.pos, mpe.Pos, tc.in)
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	p, err := ParsePath("M0 0 L10.5 0 L10 -3 Z")
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 L 10.5 0 L 10 -3 Z", p.String())

	again, err := ParsePath(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestPathRings(t *testing.T) {
	p, err := ParsePath("M0 0 L1 0 L1 1 Z M5 5 L6 5 L6 6 Z")
	require.NoError(t, err)
	rings := p.Rings()
	require.Len(t, rings, 2)
	assert.Equal(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}}, rings[0])
	assert.Equal(t, [][2]float64{{5, 5}, {6, 5}, {6, 6}}, rings[1])
}

func TestPolygonPath(t *testing.T) {
	rings := [][][2]float64{{{0, 0}, {10, 0}, {10, 5}}}
	assert.Equal(t, "M 0 0 L 10 0 L 10 -5 Z", PolygonPath(rings, true))
	assert.Equal(t, "M 0 0 L 10 0 L 10 5 Z", PolygonPath(rings, false))
	assert.Equal(t, "", PolygonPath(nil, true))
}
