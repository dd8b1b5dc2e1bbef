// Package classify assigns colors to values through ordered value ranges and
// derives the legend entries for those ranges.
package classify

// ValueRange maps the inclusive interval [From, To] to a color. A nil bound is open.
type ValueRange struct {
	From  *float64 `json:"from,omitempty"`
	To    *float64 `json:"to,omitempty"`
	Color Color    `json:"color"`
	// Name replaces the derived legend label when set.
	Name string `json:"name,omitempty"`
}

// Contains reports whether v falls in the range. A nil value only falls in a
// range with both bounds open.
func (r ValueRange) Contains(v *float64) bool {
	if v == nil {
		return r.From == nil && r.To == nil
	}
	return (r.From == nil || *v >= *r.From) && (r.To == nil || *v <= *r.To)
}

// Classifier resolves a value to a color.
//
// Ranges are scanned from last to first and the first match wins, so a range
// appended after a general one overrides it where both apply.
type Classifier struct {
	Ranges    []ValueRange
	Default   Color
	NullColor Color
}

// Match returns the winning range for v.
func (c Classifier) Match(v *float64) (ValueRange, bool) {
	for i := len(c.Ranges) - 1; i >= 0; i-- {
		if c.Ranges[i].Contains(v) {
			return c.Ranges[i], true
		}
	}
	return ValueRange{}, false
}

// Classify returns the color of the winning range, or Default.
func (c Classifier) Classify(v *float64) Color {
	if r, ok := c.Match(v); ok {
		return r.Color
	}
	return c.Default
}

// Resolve is Classify for drawing: a missing value always gets NullColor.
func (c Classifier) Resolve(v *float64) Color {
	if v == nil {
		return c.NullColor
	}
	return c.Classify(v)
}
