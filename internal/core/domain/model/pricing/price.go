package pricing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// CurrencySymbol prefixes every formatted money string.
const CurrencySymbol = "₹"

// priceNumberPattern matches the first contiguous decimal numeral anywhere
// in a free-text price string.
var priceNumberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParsePriceNumber extracts the first numeral from a human-entered price
// string such as "₹320/kg", "500/kg", or "₹280". Currency symbols, unit
// suffixes, and ranges are not interpreted: "₹280–320" yields 280. Returns 0
// when no numeral is present. This first-match-only behavior is the contract,
// not a defect — catalog prices are display strings, and the leading numeral
// is the authoritative magnitude.
func ParsePriceNumber(text string) float64 {
	m := priceNumberPattern.FindString(text)
	if m == "" {
		return 0
	}

	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatMoney renders an amount with the currency prefix, rounded to two
// decimal places. Whole amounts render without a decimal point ("₹320"),
// everything else with exactly two decimals ("₹319.50"). It is a display
// formatter only; FormatMoney and ParsePriceNumber do not round-trip.
func FormatMoney(n float64) string {
	if math.IsNaN(n) {
		return ""
	}

	val := math.Round(n*100) / 100
	if val == math.Trunc(val) {
		return fmt.Sprintf("%s%.0f", CurrencySymbol, val)
	}
	return fmt.Sprintf("%s%.2f", CurrencySymbol, val)
}

// IsKgLabel reports whether a size label denotes a kilogram-denominated
// variant. The check is a case-insensitive substring match, so "1 kg",
// "2 Kg", and "1.5KG" all qualify while "500 g" and "pack of 4" do not.
func IsKgLabel(sizeLabel string) bool {
	return strings.Contains(strings.ToLower(sizeLabel), "kg")
}

// QtyStep returns the quantity increment granularity for a variant:
// half-unit steps for kilogram labels, whole units for everything else
// (pieces, packs, gram-denominated sizes).
func QtyStep(sizeLabel string) float64 {
	if IsKgLabel(sizeLabel) {
		return 0.5
	}
	return 1
}

// ComputeTotal multiplies the numeral parsed from the unit price text by the
// quantity. No rounding is applied; callers round at display time via
// FormatMoney.
func ComputeTotal(unitPriceText string, qty float64) float64 {
	return ParsePriceNumber(unitPriceText) * qty
}
