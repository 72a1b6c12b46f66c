package tabular

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Capitalize upper-cases the first rune and lower-cases the rest, matching
// the column-name style of raw API field names ("description" -> "Description").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Prettify turns an API field name into a display column name: underscores
// become spaces and each word is capitalized ("start_date" -> "Start Date").
func Prettify(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// CellFloat converts an optional number to a cell value, mapping nil to the
// placeholder. Trailing zeros are trimmed.
func CellFloat(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return decimal.NewFromFloat(*v).String()
}

var longNumberUnits = []struct {
	value  float64
	suffix string
}{
	{1e12, " T"},
	{1e9, " B"},
	{1e6, " M"},
	{1e3, " K"},
}

// FormatLongNumber renders a large quantity in a human-readable form with a
// K/M/B/T suffix and at most three decimals ("21000000" -> "21 M").
func FormatLongNumber(v float64) string {
	abs := math.Abs(v)
	for _, unit := range longNumberUnits {
		if abs >= unit.value {
			scaled := decimal.NewFromFloat(v / unit.value).Round(3)
			return scaled.String() + unit.suffix
		}
	}
	return decimal.NewFromFloat(v).Round(3).String()
}
