package catalog

import (
	"fmt"
	"strings"

	"farmstore/internal/pkg/errs"
)

// Category identifies one of the storefront's produce sections.
type Category string

const (
	CategoryFish       Category = "fish"
	CategorySheep      Category = "sheep"
	CategoryVegetables Category = "vegetables"
)

// ParseCategory maps a request string onto a known category. Matching is
// case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFish:
		return CategoryFish, nil
	case CategorySheep:
		return CategorySheep, nil
	case CategoryVegetables:
		return CategoryVegetables, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%q is not a known category", s))
	}
}

// String returns the category's wire representation.
func (c Category) String() string {
	return string(c)
}
