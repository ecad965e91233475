package pricing

import (
	"fmt"
	"net/url"
	"strconv"
)

// OrderLinkParams carries the catalog selection serialized into an order
// page link.
type OrderLinkParams struct {
	ItemName     string
	ServiceLabel string
	SizeLabel    string
	Category     string
	SubType      string
	UnitPrice    string
	Qty          float64
	Total        float64
}

// BuildOrderLink serializes a catalog selection into the order page URL.
// This is a one-way, lossy hand-off: the order page re-derives editable
// draft state from these parameters, but the persisted order created on
// submission is the canonical representation, not the link.
func BuildOrderLink(p OrderLinkParams) string {
	itemText := fmt.Sprintf("%s - %s - %s", p.ItemName, p.ServiceLabel, p.SizeLabel)

	return "/order?item=" + url.QueryEscape(itemText) +
		"&type=" + url.QueryEscape(p.SubType) +
		"&category=" + url.QueryEscape(p.Category) +
		"&unitPrice=" + url.QueryEscape(p.UnitPrice) +
		"&qty=" + url.QueryEscape(strconv.FormatFloat(p.Qty, 'f', -1, 64)) +
		"&total=" + url.QueryEscape(FormatMoney(p.Total))
}
