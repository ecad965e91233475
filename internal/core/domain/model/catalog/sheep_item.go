package catalog

import (
	"errors"
	"strings"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var ErrSheepItemIsNotConstructed = errors.New("SheepItem must be created via NewSheepItem constructor")

// Sheep sale kinds: whole live animals or mutton sold by weight.
const (
	SheepLive   = "live"
	SheepMutton = "mutton"
)

// SheepItem is a live-sheep or mutton listing. Weight, age, and price are
// kept as the strings staff entered; display formatting happens elsewhere.
type SheepItem struct {
	id        kernel.UUID
	saleType  string
	tagID     string
	weightKg  string
	ageMonths string
	price     string
	status    string
	notes     string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewSheepItem creates a sheep listing. All fields are optional; the sale
// type defaults to live and the status to "Available".
func NewSheepItem(id kernel.UUID, saleType, tagID, weightKg, ageMonths, price, status, notes string) (*SheepItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(saleType) == "" {
		saleType = SheepLive
	}

	return &SheepItem{
		id:        id,
		saleType:  saleType,
		tagID:     tagID,
		weightKg:  weightKg,
		ageMonths: ageMonths,
		price:     price,
		status:    NormalizeAvailability(status),
		notes:     notes,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreSheepItem reconstructs a sheep item from persistence.
func RestoreSheepItem(id kernel.UUID, saleType, tagID, weightKg, ageMonths, price, status, notes string, createdAt time.Time) (*SheepItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &SheepItem{
		id:        id,
		saleType:  saleType,
		tagID:     tagID,
		weightKg:  weightKg,
		ageMonths: ageMonths,
		price:     price,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item came through a constructor.
func (s *SheepItem) Validate() error {
	if s == nil {
		return ErrSheepItemIsNotConstructed
	}
	return s.guard.Validate(ErrSheepItemIsNotConstructed)
}

// ID returns the item identifier.
func (s *SheepItem) ID() kernel.UUID { return s.id }

// SaleType returns "live" or "mutton".
func (s *SheepItem) SaleType() string { return s.saleType }

// TagID returns the ear-tag identifier, if recorded.
func (s *SheepItem) TagID() string { return s.tagID }

// WeightKg returns the entered weight string.
func (s *SheepItem) WeightKg() string { return s.weightKg }

// AgeMonths returns the entered age string.
func (s *SheepItem) AgeMonths() string { return s.ageMonths }

// Price returns the free-text price string.
func (s *SheepItem) Price() string { return s.price }

// Status returns the availability display string.
func (s *SheepItem) Status() string { return s.status }

// Notes returns any staff notes.
func (s *SheepItem) Notes() string { return s.notes }

// CreatedAt returns the listing creation time.
func (s *SheepItem) CreatedAt() time.Time { return s.createdAt }
