package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/errs"
	"farmstore/internal/pkg/guard"
)

var (
	ErrFishItemIsNotConstructed = errors.New("FishItem must be created via NewFishItem constructor")
	ErrFishItemNameIsRequired   = errors.New("fish item name is required")
)

// FishItemType classifies stock listings on the fish page: hatchery seed,
// bulk pond lots, and fresh-cut retail packs.
type FishItemType string

const (
	FishSeed  FishItemType = "seed"
	FishBulk  FishItemType = "bulk"
	FishFresh FishItemType = "fresh"
)

// ParseFishItemType maps a request string onto a fish item type. Blank
// input defaults to "fresh", matching the storefront's primary tab.
func ParseFishItemType(s string) (FishItemType, error) {
	switch FishItemType(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return FishFresh, nil
	case FishSeed:
		return FishSeed, nil
	case FishBulk:
		return FishBulk, nil
	case FishFresh:
		return FishFresh, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("fish item type",
			fmt.Errorf("%q is not a known fish item type", s))
	}
}

// FishItem is a stock listing on the fish inventory page. Detail and price
// are free-text display strings ("2 kg avg • 200 kg lot", "₹ / kg (Call)").
type FishItem struct {
	id        kernel.UUID
	itemType  FishItemType
	name      string
	detail    string
	price     string
	status    string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewFishItem creates a fish stock listing. Name is required; the item type
// defaults to fresh and the availability status to "Available" when blank.
func NewFishItem(id kernel.UUID, itemType FishItemType, name, detail, price, status string) (*FishItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrFishItemNameIsRequired
	}
	if itemType == "" {
		itemType = FishFresh
	}

	return &FishItem{
		id:        id,
		itemType:  itemType,
		name:      strings.TrimSpace(name),
		detail:    detail,
		price:     price,
		status:    NormalizeAvailability(status),
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreFishItem reconstructs a fish item from persistence.
func RestoreFishItem(id kernel.UUID, itemType FishItemType, name, detail, price, status string, createdAt time.Time) (*FishItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &FishItem{
		id:        id,
		itemType:  itemType,
		name:      name,
		detail:    detail,
		price:     price,
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item came through a constructor.
func (f *FishItem) Validate() error {
	if f == nil {
		return ErrFishItemIsNotConstructed
	}
	return f.guard.Validate(ErrFishItemIsNotConstructed)
}

// ID returns the item identifier.
func (f *FishItem) ID() kernel.UUID { return f.id }

// ItemType returns the stock classification (seed, bulk, fresh).
func (f *FishItem) ItemType() FishItemType { return f.itemType }

// Name returns the listing name.
func (f *FishItem) Name() string { return f.name }

// Detail returns the free-text detail line.
func (f *FishItem) Detail() string { return f.detail }

// Price returns the free-text price string.
func (f *FishItem) Price() string { return f.price }

// Status returns the availability display string.
func (f *FishItem) Status() string { return f.status }

// CreatedAt returns the listing creation time.
func (f *FishItem) CreatedAt() time.Time { return f.createdAt }
