package classify

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a CSS-style color: "#rrggbb", "#rgb" or one of a few named colors.
type Color string

var named = map[string]string{
	"black":  "#000000",
	"white":  "#FFFFFF",
	"silver": "#C0C0C0",
	"gray":   "#808080",
	"grey":   "#808080",
	"red":    "#FF0000",
	"green":  "#008000",
	"blue":   "#0000FF",
}

// Hex returns the color as "#rrggbb", resolving named colors.
func (c Color) Hex() string {
	if h, ok := named[strings.ToLower(string(c))]; ok {
		return h
	}
	return string(c)
}

// Parse converts the color to a colorful.Color.
func (c Color) Parse() (colorful.Color, error) {
	cc, err := colorful.Hex(c.Hex())
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "invalid color %q", string(c))
	}
	return cc, nil
}

// Blend mixes c over bg with the given opacity and returns the result as hex.
// Unparsable colors are returned unchanged.
func (c Color) Blend(bg Color, opacity float64) Color {
	if opacity >= 1 {
		return Color(c.Hex())
	}
	fg, err := c.Parse()
	if err != nil {
		return c
	}
	back, err := bg.Parse()
	if err != nil {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	return Color(back.BlendRgb(fg, opacity).Clamped().Hex())
}

// RGBA returns 8-bit channels with the alpha given by opacity.
func (c Color) RGBA(opacity float64) (r, g, b, a uint8) {
	cc, err := c.Parse()
	if err != nil {
		return 0, 0, 0, 0
	}
	r, g, b = cc.Clamped().RGB255()
	if opacity > 1 {
		opacity = 1
	} else if opacity < 0 {
		opacity = 0
	}
	return r, g, b, uint8(opacity*255 + 0.5)
}
