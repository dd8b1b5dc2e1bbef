package geom

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Segment is one token of a parsed path: a command letter, or the X,Y pair of an operand.
type Segment struct {
	Command byte
	X, Y    float64
	HasXY   bool
}

// Path is the ordered token stream of a path description.
type Path []Segment

// MalformedPathError reports a token that is not a command letter nor a number,
// or a coordinate left without its pair.
type MalformedPathError struct {
	Token string
	Pos   int
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("path: malformed token %q at position %d", e.Token, e.Pos)
}

func isLetter(r rune) bool { return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' }

// pathTokens moves command letters apart and splits on whitespace and commas.
func pathTokens(raw string) []string {
	var b strings.Builder
	b.Grow(len(raw) + 8)
	for _, r := range raw {
		if isLetter(r) {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.FieldsFunc(strings.TrimSpace(b.String()), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// ParsePath converts a path description like "M0 0 L10 0 L10 10 Z" into segments.
// Numbers following a command are paired into X,Y operands of that command.
func ParsePath(raw string) (Path, error) {
	toks := pathTokens(raw)
	p := make(Path, 0, len(toks))
	var (
		pendingX   float64
		pendingPos = -1
	)
	for i, tok := range toks {
		if isLetter(rune(tok[0])) {
			if pendingPos >= 0 {
				return nil, &MalformedPathError{Token: toks[pendingPos], Pos: pendingPos}
			}
			p = append(p, Segment{Command: tok[0]})
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &MalformedPathError{Token: tok, Pos: i}
		}
		if pendingPos < 0 {
			pendingX, pendingPos = v, i
			continue
		}
		p = append(p, Segment{X: pendingX, Y: v, HasXY: true})
		pendingPos = -1
	}
	if pendingPos >= 0 {
		return nil, &MalformedPathError{Token: toks[pendingPos], Pos: pendingPos}
	}
	return p, nil
}

// String serializes the path back to its textual form.
func (p Path) String() string {
	parts := make([]string, 0, len(p)*2)
	for _, s := range p {
		if !s.HasXY {
			parts = append(parts, string(s.Command))
			continue
		}
		parts = append(parts, formatCoord(s.X), formatCoord(s.Y))
	}
	return strings.Join(parts, " ")
}

func formatCoord(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Rings splits the path into its subpaths, one vertex list per move-to.
func (p Path) Rings() [][][2]float64 {
	var rings [][][2]float64
	var cur [][2]float64
	flush := func() {
		if len(cur) > 0 {
			rings = append(rings, cur)
		}
		cur = nil
	}
	for _, s := range p {
		if !s.HasXY {
			switch s.Command {
			case 'M', 'm', 'Z', 'z':
				flush()
			}
			continue
		}
		cur = append(cur, [2]float64{s.X, s.Y})
	}
	flush()
	return rings
}

// PolygonPath builds a closed path from rings of lon/lat vertices.
// When flipY is set the Y axis is negated so north points up in device space.
func PolygonPath(rings [][][2]float64, flipY bool) string {
	var b strings.Builder
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		for i, pt := range ring {
			y := pt[1]
			if flipY && y != 0 {
				y = -y
			}
			if i == 0 {
				b.WriteString("M ")
			} else {
				b.WriteString(" L ")
			}
			b.WriteString(formatCoord(pt[0]))
			b.WriteByte(' ')
			b.WriteString(formatCoord(y))
		}
		b.WriteString(" Z ")
	}
	return strings.TrimSpace(b.String())
}
