package catalog

import (
	"errors"
	"strings"
	"time"

	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/pkg/guard"
)

var (
	ErrFishTypeIsNotConstructed    = errors.New("FishType must be created via NewFishType constructor")
	ErrFishTypeNameIsRequired      = errors.New("fish type name is required")
	ErrFishVariantIsNotConstructed = errors.New("FishVariant must be created via NewFishVariant constructor")
	ErrSizeLabelIsRequired         = errors.New("variant size label is required")
	ErrPriceIsRequired             = errors.New("variant price is required")
)

// FishType is a family-pack species entry ("Rohu", "Katla"). Variants hang
// off it, one per service type and size.
type FishType struct {
	id          kernel.UUID
	name        string
	description string
	imageURL    string
	isActive    bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewFishType creates a fish type. Name is required and trimmed; new types
// are active unless explicitly created inactive.
func NewFishType(id kernel.UUID, name, description, imageURL string, isActive bool) (*FishType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrFishTypeNameIsRequired
	}

	return &FishType{
		id:          id,
		name:        name,
		description: description,
		imageURL:    imageURL,
		isActive:    isActive,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreFishType reconstructs a fish type from persistence.
func RestoreFishType(id kernel.UUID, name, description, imageURL string, isActive bool, createdAt time.Time) (*FishType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &FishType{
		id:          id,
		name:        name,
		description: description,
		imageURL:    imageURL,
		isActive:    isActive,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the fish type came through a constructor.
func (f *FishType) Validate() error {
	if f == nil {
		return ErrFishTypeIsNotConstructed
	}
	return f.guard.Validate(ErrFishTypeIsNotConstructed)
}

// ID returns the fish type identifier.
func (f *FishType) ID() kernel.UUID { return f.id }

// Name returns the species name.
func (f *FishType) Name() string { return f.name }

// Description returns the customer-facing description.
func (f *FishType) Description() string { return f.description }

// ImageURL returns the listing image location.
func (f *FishType) ImageURL() string { return f.imageURL }

// IsActive reports whether the type is visible on the storefront.
func (f *FishType) IsActive() bool { return f.isActive }

// CreatedAt returns the creation time.
func (f *FishType) CreatedAt() time.Time { return f.createdAt }

// FishVariant is a sellable configuration of a fish type: a service type and
// size with its own free-text price, notes, and preparation time.
type FishVariant struct {
	id           kernel.UUID
	fishTypeID   kernel.UUID
	serviceType  ServiceType
	sizeLabel    string
	price        string
	notes        string
	prepTimeMins string
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewFishVariant creates a variant for a fish type. The service type must be
// one of the known values and both size label and price are required — a
// variant without them cannot be priced or stepped.
func NewFishVariant(id, fishTypeID kernel.UUID, serviceType ServiceType, sizeLabel, price, notes, prepTimeMins string, isAvailable bool) (*FishVariant, error) {
	if err := errors.Join(id.Validate(), fishTypeID.Validate(), serviceType.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(sizeLabel) == "" {
		return nil, ErrSizeLabelIsRequired
	}
	if strings.TrimSpace(price) == "" {
		return nil, ErrPriceIsRequired
	}

	return &FishVariant{
		id:           id,
		fishTypeID:   fishTypeID,
		serviceType:  serviceType,
		sizeLabel:    sizeLabel,
		price:        price,
		notes:        notes,
		prepTimeMins: prepTimeMins,
		isAvailable:  isAvailable,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreFishVariant reconstructs a variant from persistence.
func RestoreFishVariant(id, fishTypeID kernel.UUID, serviceType ServiceType, sizeLabel, price, notes, prepTimeMins string, isAvailable bool) (*FishVariant, error) {
	if err := errors.Join(id.Validate(), fishTypeID.Validate()); err != nil {
		return nil, err
	}

	return &FishVariant{
		id:           id,
		fishTypeID:   fishTypeID,
		serviceType:  serviceType,
		sizeLabel:    sizeLabel,
		price:        price,
		notes:        notes,
		prepTimeMins: prepTimeMins,
		isAvailable:  isAvailable,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the variant came through a constructor.
func (v *FishVariant) Validate() error {
	if v == nil {
		return ErrFishVariantIsNotConstructed
	}
	return v.guard.Validate(ErrFishVariantIsNotConstructed)
}

// ID returns the variant identifier.
func (v *FishVariant) ID() kernel.UUID { return v.id }

// FishTypeID returns the owning fish type's identifier.
func (v *FishVariant) FishTypeID() kernel.UUID { return v.fishTypeID }

// ServiceType returns the preparation classification.
func (v *FishVariant) ServiceType() ServiceType { return v.serviceType }

// SizeLabel returns the free-text size ("1 kg", "500 g").
func (v *FishVariant) SizeLabel() string { return v.sizeLabel }

// Price returns the free-text price string.
func (v *FishVariant) Price() string { return v.price }

// Notes returns the variant notes.
func (v *FishVariant) Notes() string { return v.notes }

// PrepTimeMins returns the preparation time display string.
func (v *FishVariant) PrepTimeMins() string { return v.prepTimeMins }

// IsAvailable reports whether the variant is orderable.
func (v *FishVariant) IsAvailable() bool { return v.isAvailable }
