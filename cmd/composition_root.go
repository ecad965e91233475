package cmd

import (
	adapterhttp "farmstore/internal/adapters/in/http"
	"farmstore/internal/adapters/out/postgres"
	"farmstore/internal/core/application/usecases/commands"
	"farmstore/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddFishItemCommandHandler() commands.AddFishItemCommandHandler {
	return commands.NewAddFishItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAddSheepItemCommandHandler() commands.AddSheepItemCommandHandler {
	return commands.NewAddSheepItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAddVegetableItemCommandHandler() commands.AddVegetableItemCommandHandler {
	return commands.NewAddVegetableItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateRemoveInventoryItemCommandHandler() commands.RemoveInventoryItemCommandHandler {
	return commands.NewRemoveInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAddFishTypeCommandHandler() commands.AddFishTypeCommandHandler {
	return commands.NewAddFishTypeCommandHandler(c.fishTypeUoWFactory())
}

func (c *CompositionRoot) CreateAddFishVariantCommandHandler() commands.AddFishVariantCommandHandler {
	return commands.NewAddFishVariantCommandHandler(c.fishTypeUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFishItemsQueryHandler() queries.GetFishItemsQueryHandler {
	return queries.NewGetFishItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSheepItemsQueryHandler() queries.GetSheepItemsQueryHandler {
	return queries.NewGetSheepItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVegetableItemsQueryHandler() queries.GetVegetableItemsQueryHandler {
	return queries.NewGetVegetableItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFishTypesQueryHandler() queries.GetFishTypesQueryHandler {
	return queries.NewGetFishTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFamilyPacksQueryHandler() queries.GetFamilyPacksQueryHandler {
	return queries.NewGetFamilyPacksQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case handler for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() adapterhttp.Handlers {
	return adapterhttp.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		AddFishItem:         c.CreateAddFishItemCommandHandler(),
		AddSheepItem:        c.CreateAddSheepItemCommandHandler(),
		AddVegetableItem:    c.CreateAddVegetableItemCommandHandler(),
		RemoveInventoryItem: c.CreateRemoveInventoryItemCommandHandler(),
		AddFishType:         c.CreateAddFishTypeCommandHandler(),
		AddFishVariant:      c.CreateAddFishVariantCommandHandler(),

		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetFishItems:      c.CreateGetFishItemsQueryHandler(),
		GetSheepItems:     c.CreateGetSheepItemsQueryHandler(),
		GetVegetableItems: c.CreateGetVegetableItemsQueryHandler(),
		GetFishTypes:      c.CreateGetFishTypesQueryHandler(),
		GetFamilyPacks:    c.CreateGetFamilyPacksQueryHandler(),
	}
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fishTypeUoWFactory() commands.FishTypeUoWFactory {
	return FuncFishTypeUoWFactory(func() commands.FishTypeUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncFishTypeUoWFactory func() commands.FishTypeUoW

func (f FuncFishTypeUoWFactory) Create() commands.FishTypeUoW {
	return f()
}
