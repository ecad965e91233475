package http

import (
	"time"

	"farmstore/internal/core/application/usecases/queries"
	"farmstore/internal/core/domain/model/pricing"
)

// CreateOrderRequest is the order submission payload. Phone, qty, and
// location are the only required fields; everything else is carried as
// display text.
type CreateOrderRequest struct {
	Item      string `json:"item"`
	BuyerType string `json:"buyerType"`
	Name      string `json:"name"`
	Phone     string `json:"phone" validate:"required"`
	Qty       string `json:"qty" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Notes     string `json:"notes"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
	// Status is accepted but ignored: new orders always start as NEW.
	Status string `json:"status"`
}

// UpdateOrderStatusRequest is the admin status-overwrite payload. Status is
// matched case-insensitively against the fixed set.
type UpdateOrderStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// OrderResponse is one order as the admin panel renders it.
type OrderResponse struct {
	ID        string    `json:"id"`
	Item      string    `json:"item"`
	BuyerType string    `json:"buyerType"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Qty       string    `json:"qty"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
	UnitPrice string    `json:"unitPrice"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddFishItemRequest is the fish inventory creation payload.
type AddFishItemRequest struct {
	Type   string `json:"type"`
	Name   string `json:"name" validate:"required"`
	Detail string `json:"detail"`
	Price  string `json:"price"`
	Status string `json:"status"`
}

// FishItemResponse is one fish inventory row.
type FishItemResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail"`
	Price     string    `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddSheepItemRequest is the sheep listing creation payload. All fields are
// optional; defaults are applied server-side.
type AddSheepItemRequest struct {
	SaleType  string `json:"type"`
	TagID     string `json:"tagId"`
	WeightKg  string `json:"weightKg"`
	AgeMonths string `json:"ageMonths"`
	Price     string `json:"price"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// SheepItemResponse is one sheep listing row.
type SheepItemResponse struct {
	ID        string    `json:"id"`
	SaleType  string    `json:"type"`
	TagID     string    `json:"tagId"`
	WeightKg  string    `json:"weightKg"`
	AgeMonths string    `json:"ageMonths"`
	Price     string    `json:"price"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddVegetableItemRequest is the vegetable listing creation payload.
type AddVegetableItemRequest struct {
	Category     string `json:"category"`
	Name         string `json:"name" validate:"required"`
	Unit         string `json:"unit"`
	Price        string `json:"price"`
	AvailableQty string `json:"availableQty"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
}

// VegetableItemResponse is one vegetable listing row.
type VegetableItemResponse struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	Price        string    `json:"price"`
	AvailableQty string    `json:"availableQty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddFishTypeRequest is the family-pack species creation payload.
type AddFishTypeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

// FishTypeResponse is one fish type row for the admin panel.
type FishTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AddFishVariantRequest is the payload attaching a sellable configuration
// to a fish type.
type AddFishVariantRequest struct {
	ServiceType  string `json:"serviceType" validate:"required"`
	SizeLabel    string `json:"sizeLabel" validate:"required"`
	Price        string `json:"price" validate:"required"`
	Notes        string `json:"notes"`
	PrepTimeMins string `json:"prepTimeMins"`
	IsAvailable  *bool  `json:"isAvailable"`
}

// FamilyPackVariantResponse is one orderable variant on the storefront.
// OrderLink is the prebuilt order page URL seeded with quantity 1.
type FamilyPackVariantResponse struct {
	ID           string `json:"id"`
	ServiceType  string `json:"serviceType"`
	ServiceLabel string `json:"serviceLabel"`
	SizeLabel    string `json:"sizeLabel"`
	Price        string `json:"price"`
	Notes        string `json:"notes"`
	PrepTimeMins string `json:"prepTimeMins"`
	OrderLink    string `json:"orderLink"`
}

// FamilyPackResponse is one storefront fish type with its variants in
// display order.
type FamilyPackResponse struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	ImageURL    string                      `json:"imageUrl"`
	Variants    []FamilyPackVariantResponse `json:"variants"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func orderFromQuery(row queries.GetOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:        row.ID.String(),
		Item:      row.Item,
		BuyerType: row.BuyerType,
		Name:      row.Name,
		Phone:     row.Phone,
		Qty:       row.Qty,
		Location:  row.Location,
		Notes:     row.Notes,
		UnitPrice: row.UnitPrice,
		Total:     row.Total,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func fishItemFromQuery(row queries.GetFishItemsQueryResponse) FishItemResponse {
	return FishItemResponse{
		ID:        row.ID.String(),
		Type:      row.Type,
		Name:      row.Name,
		Detail:    row.Detail,
		Price:     row.Price,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func sheepItemFromQuery(row queries.GetSheepItemsQueryResponse) SheepItemResponse {
	return SheepItemResponse{
		ID:        row.ID.String(),
		SaleType:  row.SaleType,
		TagID:     row.TagID,
		WeightKg:  row.WeightKg,
		AgeMonths: row.AgeMonths,
		Price:     row.Price,
		Status:    row.Status,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
	}
}

func vegetableItemFromQuery(row queries.GetVegetableItemsQueryResponse) VegetableItemResponse {
	return VegetableItemResponse{
		ID:           row.ID.String(),
		Category:     row.Category,
		Name:         row.Name,
		Unit:         row.Unit,
		Price:        row.Price,
		AvailableQty: row.AvailableQty,
		Status:       row.Status,
		Notes:        row.Notes,
		CreatedAt:    row.CreatedAt,
	}
}

func fishTypeFromQuery(row queries.GetFishTypesQueryResponse) FishTypeResponse {
	return FishTypeResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
}

func familyPackFromQuery(row queries.GetFamilyPacksQueryResponse) FamilyPackResponse {
	variants := make([]FamilyPackVariantResponse, 0, len(row.Variants))
	for _, v := range row.Variants {
		variants = append(variants, FamilyPackVariantResponse{
			ID:           v.ID.String(),
			ServiceType:  v.ServiceType,
			ServiceLabel: v.ServiceLabel,
			SizeLabel:    v.SizeLabel,
			Price:        v.Price,
			Notes:        v.Notes,
			PrepTimeMins: v.PrepTimeMins,
			OrderLink: pricing.BuildOrderLink(pricing.OrderLinkParams{
				ItemName:     row.Name,
				ServiceLabel: v.ServiceLabel,
				SizeLabel:    v.SizeLabel,
				Category:     "fish",
				SubType:      "family",
				UnitPrice:    v.Price,
				Qty:          1,
				Total:        pricing.ComputeTotal(v.Price, 1),
			}),
		})
	}

	return FamilyPackResponse{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Variants:    variants,
	}
}
