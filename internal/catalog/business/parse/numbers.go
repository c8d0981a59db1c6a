package parse

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity converts a loosely formatted quantity string into an int.
// Spaces are thousands separators, a comma is a decimal point, the fractional
// part is truncated. Any malformed input yields 0, never an error.
func ParseQuantity(raw string) int {
	cleaned := strings.ReplaceAll(raw, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	if f >= float64(maxInt) || f <= float64(minInt) {
		return 0
	}
	return int(f)
}

// ParseAmount converts a price string into a decimal. Everything except
// digits, dots and commas is stripped (currency symbols, spaces), a comma
// becomes a decimal point. Any malformed input yields 0, never an error.
func ParseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

const maxInt = int(^uint(0) >> 1)
const minInt = -maxInt - 1
