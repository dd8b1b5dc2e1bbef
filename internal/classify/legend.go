package classify

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LegendItem is one static legend entry derived from a ValueRange.
type LegendItem struct {
	Label string
	Color Color
	// Static entries never toggle visibility or react to hover.
	Static bool
}

// NumberFormat renders a legend bound with the given number of decimals.
type NumberFormat func(v float64, decimals int) string

var printer = message.NewPrinter(language.English)

// FormatNumber is the default NumberFormat: fixed decimals with thousands grouping.
// A negative decimals counts as its absolute value.
func FormatNumber(v float64, decimals int) string {
	if decimals < 0 {
		decimals = -decimals
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Decimals is the number of decimals in the shortest representation of v.
func Decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.Index(s, "."); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Label derives the legend text of r: "< to", "> from" or "from - to".
func Label(r ValueRange, decimals int, format NumberFormat) string {
	if r.Name != "" {
		return r.Name
	}
	if format == nil {
		format = FormatNumber
	}
	var name string
	if r.From == nil {
		name = "< "
	} else if r.To == nil {
		name = "> "
	}
	if r.From != nil {
		name += format(*r.From, decimals)
	}
	if r.From != nil && r.To != nil {
		name += " - "
	}
	if r.To != nil {
		name += format(*r.To, decimals)
	}
	return name
}

// Legend builds one static item per range, in declaration order.
func Legend(ranges []ValueRange, decimals int, format NumberFormat) []LegendItem {
	items := make([]LegendItem, 0, len(ranges))
	for _, r := range ranges {
		items = append(items, LegendItem{
			Label:  Label(r, decimals, format),
			Color:  r.Color,
			Static: true,
		})
	}
	return items
}
