// Package http exposes the storefront and admin API over echo.
package http

import (
	"errors"
	"net/http"

	"farmstore/internal/core/application/usecases/commands"
	"farmstore/internal/core/application/usecases/queries"
	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"
	"farmstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application's command and query handlers.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	addFishItemHandler         commands.AddFishItemCommandHandler
	addSheepItemHandler        commands.AddSheepItemCommandHandler
	addVegetableItemHandler    commands.AddVegetableItemCommandHandler
	removeInventoryItemHandler commands.RemoveInventoryItemCommandHandler
	addFishTypeHandler         commands.AddFishTypeCommandHandler
	addFishVariantHandler      commands.AddFishVariantCommandHandler

	getOrdersHandler         queries.GetOrdersQueryHandler
	getFishItemsHandler      queries.GetFishItemsQueryHandler
	getSheepItemsHandler     queries.GetSheepItemsQueryHandler
	getVegetableItemsHandler queries.GetVegetableItemsQueryHandler
	getFishTypesHandler      queries.GetFishTypesQueryHandler
	getFamilyPacksHandler    queries.GetFamilyPacksQueryHandler
}

// Handlers groups everything a Server needs.
type Handlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	ChangeOrderStatus   commands.ChangeOrderStatusCommandHandler
	AddFishItem         commands.AddFishItemCommandHandler
	AddSheepItem        commands.AddSheepItemCommandHandler
	AddVegetableItem    commands.AddVegetableItemCommandHandler
	RemoveInventoryItem commands.RemoveInventoryItemCommandHandler
	AddFishType         commands.AddFishTypeCommandHandler
	AddFishVariant      commands.AddFishVariantCommandHandler

	GetOrders         queries.GetOrdersQueryHandler
	GetFishItems      queries.GetFishItemsQueryHandler
	GetSheepItems     queries.GetSheepItemsQueryHandler
	GetVegetableItems queries.GetVegetableItemsQueryHandler
	GetFishTypes      queries.GetFishTypesQueryHandler
	GetFamilyPacks    queries.GetFamilyPacksQueryHandler
}

// NewServer creates the HTTP server facade over the use case handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:         h.CreateOrder,
		changeOrderStatusHandler:   h.ChangeOrderStatus,
		addFishItemHandler:         h.AddFishItem,
		addSheepItemHandler:        h.AddSheepItem,
		addVegetableItemHandler:    h.AddVegetableItem,
		removeInventoryItemHandler: h.RemoveInventoryItem,
		addFishTypeHandler:         h.AddFishType,
		addFishVariantHandler:      h.AddFishVariant,
		getOrdersHandler:           h.GetOrders,
		getFishItemsHandler:        h.GetFishItems,
		getSheepItemsHandler:       h.GetSheepItems,
		getVegetableItemsHandler:   h.GetVegetableItems,
		getFishTypesHandler:        h.GetFishTypes,
		getFamilyPacksHandler:      h.GetFamilyPacks,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.PUT("/orders/status", s.UpdateOrderStatus)

	api.GET("/fish-items", s.GetFishItems)
	api.POST("/fish-items", s.AddFishItem)
	api.DELETE("/fish-items", s.removeInventoryItem(catalog.CategoryFish))

	api.GET("/sheep-items", s.GetSheepItems)
	api.POST("/sheep-items", s.AddSheepItem)
	api.DELETE("/sheep-items", s.removeInventoryItem(catalog.CategorySheep))

	api.GET("/vegetable-items", s.GetVegetableItems)
	api.POST("/vegetable-items", s.AddVegetableItem)
	api.DELETE("/vegetable-items", s.removeInventoryItem(catalog.CategoryVegetables))

	api.GET("/fish-types", s.GetFishTypes)
	api.POST("/fish-types", s.AddFishType)
	api.POST("/fish-types/:id/variants", s.AddFishVariant)

	api.GET("/fish-family-packs", s.GetFamilyPacks)
}

// CreateOrder handles POST /api/v1/orders. Any status in the payload is
// discarded; the stored order always starts as NEW.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "phone, qty and location are required")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.Item, req.BuyerType,
		req.Name, req.Phone, req.Qty, req.Location, req.Notes, req.UnitPrice, req.Total)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "failed to create order")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"id":      orderID.String(),
		"status":  string(order.StatusNew),
	})
}

// GetOrders handles GET /api/v1/orders for the admin panel.
func (s *Server) GetOrders(ctx echo.Context) error {
	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve orders")
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// UpdateOrderStatus handles PUT /api/v1/orders/status. The status is matched
// case-insensitively; "delivered" and "DELIVERED" update the same way.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "id and status are required")
	}

	orderID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isNotFound(err) {
			return notFound(ctx, "order not found")
		}
		return internalError(ctx, "failed to update order status")
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"status":  string(status),
	})
}

// GetFishItems handles GET /api/v1/fish-items with an optional ?type= filter.
func (s *Server) GetFishItems(ctx echo.Context) error {
	query := queries.NewGetFishItemsQuery()
	if typeParam := ctx.QueryParam("type"); typeParam != "" {
		itemType, err := catalog.ParseFishItemType(typeParam)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		query, err = queries.NewGetFishItemsQueryWithType(itemType)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	}

	rows, err := s.getFishItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "failed to retrieve fish items")
	}

	items := make([]FishItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, fishItemFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, echo.Map{"items": items})
}

// AddFishItem handles POST /api/v1/fish-items.
func (s *Server) AddFishItem(ctx echo.Context) error {
	var req AddFishItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "name is required")
	}

	itemType, err := catalog.ParseFishItemType(req.Type)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddFishItemCommand(itemID, itemType, req.Name, req.Detail, req.Price, req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addFishItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "failed to add fish item")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": itemID.String()})
}

// GetSheepItems handles GET /api/v1/sheep-items.
func (s *Server) GetSheepItems(ctx echo.Context) error {
	rows, err := s.getSheepItemsHandler.Handle(ctx.Request().Context(), queries.NewGetSheepItemsQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve sheep items")
	}

	items := make([]SheepItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, sheepItemFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, echo.Map{"items": items})
}

// AddSheepItem handles POST /api/v1/sheep-items.
func (s *Server) AddSheepItem(ctx echo.Context) error {
	var req AddSheepItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddSheepItemCommand(itemID, req.SaleType, req.TagID,
		req.WeightKg, req.AgeMonths, req.Price, req.Status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addSheepItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "failed to add sheep item")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": itemID.String()})
}

// GetVegetableItems handles GET /api/v1/vegetable-items.
func (s *Server) GetVegetableItems(ctx echo.Context) error {
	rows, err := s.getVegetableItemsHandler.Handle(ctx.Request().Context(), queries.NewGetVegetableItemsQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve vegetable items")
	}

	items := make([]VegetableItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, vegetableItemFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, echo.Map{"items": items})
}

// AddVegetableItem handles POST /api/v1/vegetable-items.
func (s *Server) AddVegetableItem(ctx echo.Context) error {
	var req AddVegetableItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "name is required")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddVegetableItemCommand(itemID, req.Category, req.Name,
		req.Unit, req.Price, req.AvailableQty, req.Status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addVegetableItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "failed to add vegetable item")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": itemID.String()})
}

// removeInventoryItem builds the DELETE handler for one inventory category.
// The listing to delete is addressed with the ?id= query parameter.
func (s *Server) removeInventoryItem(category catalog.Category) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		itemID, err := kernel.UUIDFromString(ctx.QueryParam("id"))
		if err != nil {
			return badRequest(ctx, "invalid item id")
		}

		cmd, err := commands.NewRemoveInventoryItemCommand(category, itemID)
		if err != nil {
			return badRequest(ctx, err.Error())
		}

		if err = s.removeInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			if isNotFound(err) {
				return notFound(ctx, "item not found")
			}
			return internalError(ctx, "failed to remove item")
		}

		return ctx.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

// GetFishTypes handles GET /api/v1/fish-types for the admin panel.
func (s *Server) GetFishTypes(ctx echo.Context) error {
	rows, err := s.getFishTypesHandler.Handle(ctx.Request().Context(), queries.NewGetFishTypesQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve fish types")
	}

	types := make([]FishTypeResponse, 0, len(rows))
	for _, row := range rows {
		types = append(types, fishTypeFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, echo.Map{"fishTypes": types})
}

// AddFishType handles POST /api/v1/fish-types. New types default to active.
func (s *Server) AddFishType(ctx echo.Context) error {
	var req AddFishTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "name is required")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	fishTypeID := kernel.NewUUID()
	cmd, err := commands.NewAddFishTypeCommand(fishTypeID, req.Name, req.Description, req.ImageURL, isActive)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addFishTypeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "failed to add fish type")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": fishTypeID.String()})
}

// AddFishVariant handles POST /api/v1/fish-types/:id/variants.
func (s *Server) AddFishVariant(ctx echo.Context) error {
	fishTypeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid fish type id")
	}

	var req AddFishVariantRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, "serviceType, sizeLabel and price are required")
	}

	serviceType, err := catalog.ParseServiceType(req.ServiceType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	variantID := kernel.NewUUID()
	cmd, err := commands.NewAddFishVariantCommand(variantID, fishTypeID, serviceType,
		req.SizeLabel, req.Price, req.Notes, req.PrepTimeMins, isAvailable)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addFishVariantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if isNotFound(err) {
			return notFound(ctx, "fish type not found")
		}
		return internalError(ctx, "failed to add fish variant")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": variantID.String()})
}

// GetFamilyPacks handles GET /api/v1/fish-family-packs.
func (s *Server) GetFamilyPacks(ctx echo.Context) error {
	rows, err := s.getFamilyPacksHandler.Handle(ctx.Request().Context(), queries.NewGetFamilyPacksQuery())
	if err != nil {
		return internalError(ctx, "failed to retrieve family packs")
	}

	packs := make([]FamilyPackResponse, 0, len(rows))
	for _, row := range rows {
		packs = append(packs, familyPackFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, echo.Map{"fishTypes": packs})
}

func isNotFound(err error) bool {
	var notFoundErr *errs.ObjectNotFoundError
	return errors.As(err, &notFoundErr)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}
