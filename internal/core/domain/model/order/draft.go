package order

import (
	"fmt"
	"strconv"
	"strings"

	"farmstore/internal/core/domain/model/pricing"
)

// Draft is the transient, user-editable order form state. It is seeded from
// the catalog link parameters, mutated by edits, submitted once, and then
// discarded. The total is recomputed reactively whenever quantity and unit
// price are both valid positive values; when either is invalid mid-edit the
// previously displayed total is left standing rather than collapsing to
// zero. That stale-total-on-invalid-input behavior is the documented policy.
type Draft struct {
	Category  string
	SubType   string
	Item      string
	BuyerType string
	Name      string
	Phone     string
	Qty       string
	Location  string
	Notes     string
	UnitPrice string
	Total     string
}

// NewDraft seeds a draft from catalog link parameters. The buyer type is
// pre-filled from the category/subtype lookup and the notes open with a
// header naming the selection, mirroring what the order page shows.
func NewDraft(category, subType, item, unitPrice, qty, total string) *Draft {
	d := &Draft{
		Category:  category,
		SubType:   subType,
		Item:      item,
		BuyerType: SuggestBuyerType(category, subType),
		Qty:       qty,
		UnitPrice: unitPrice,
		Total:     total,
	}

	var lines []string
	if category != "" {
		lines = append(lines, "Category: "+category)
	}
	if subType != "" {
		lines = append(lines, "Selected Type: "+subType)
	}
	if len(lines) > 0 {
		d.Notes = strings.Join(lines, " | ") + "\n"
	}

	d.Recalculate()
	return d
}

// SetQty records a quantity edit and recomputes the total.
func (d *Draft) SetQty(qty string) {
	d.Qty = qty
	d.Recalculate()
}

// SetUnitPrice records a unit price edit and recomputes the total.
func (d *Draft) SetUnitPrice(unitPrice string) {
	d.UnitPrice = unitPrice
	d.Recalculate()
}

// Recalculate refreshes the displayed total from the current quantity and
// unit price. If the quantity does not parse to a positive number, or the
// unit price yields no positive numeral, the existing total is kept.
func (d *Draft) Recalculate() {
	qty, err := strconv.ParseFloat(strings.TrimSpace(d.Qty), 64)
	if err != nil || qty <= 0 {
		return
	}

	unit := pricing.ParsePriceNumber(d.UnitPrice)
	if unit <= 0 {
		return
	}

	d.Total = pricing.FormatMoney(unit * qty)
}

// SummaryText renders the draft as the plain-text message body sent to the
// farm's contact number. Blank fields render as "-".
func (d *Draft) SummaryText() string {
	return fmt.Sprintf(`Farm Order Request
Category: %s
Type: %s
Item: %s
Buyer Type: %s
Name: %s
Phone: %s
Quantity: %s
Unit Price: %s
Total: %s
Location: %s
Notes: %s`,
		orDash(d.Category),
		orDash(d.SubType),
		orDash(d.Item),
		orDash(d.BuyerType),
		orDash(d.Name),
		orDash(d.Phone),
		orDash(d.Qty),
		orDash(d.UnitPrice),
		orDash(d.Total),
		orDash(d.Location),
		orDash(d.Notes))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// SuggestBuyerType pre-fills the buyer classification from the catalog
// selection. The table is keyed on {category, subtype}; unknown combinations
// fall back to a generic label.
func SuggestBuyerType(category, subType string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	t := strings.ToLower(strings.TrimSpace(subType))

	switch c {
	case "fish":
		switch t {
		case "seed":
			return "Tender (Seed Buyer / Tender)"
		case "bulk":
			return "Wholesale (Bulk Buyer)"
		case "fresh", "family":
			return "Family (Home Cooking)"
		}
		return "Fish Buyer"
	case "sheep":
		switch t {
		case "live":
			return "Live Sheep Buyer"
		case "mutton":
			return "Mutton (kg) Buyer"
		}
		return "Sheep Buyer"
	case "vegetables":
		return "Vegetable Buyer"
	}
	return "Buyer"
}
