package catalog

import "strings"

// Conventional availability labels. Availability is stored as a free-entry
// display string — staff can type anything — so these are defaults, not an
// enforced enum.
const (
	Available = "Available"
	Limited   = "Limited"
	SoldOut   = "Sold Out"
)

// NormalizeAvailability substitutes the default label for blank input and
// otherwise returns the entered text unchanged.
func NormalizeAvailability(s string) string {
	if strings.TrimSpace(s) == "" {
		return Available
	}
	return s
}
