// Package commands contains business operations that modify system state.
// All commands follow the same pattern: constructor validation, transaction
// management through a unit of work, and persistence.
package commands

import (
	"context"

	"farmstore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the three inventory repositories
	// within a transaction.
	InventoryRepoFactory interface {
		FishItemRepository() ports.FishItemRepository
		SheepItemRepository() ports.SheepItemRepository
		VegetableItemRepository() ports.VegetableItemRepository
	}

	// FishTypeRepoFactory provides access to the fish type repository within a transaction.
	FishTypeRepoFactory interface {
		FishTypeRepository() ports.FishTypeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InventoryUoW manages transactions for inventory operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// FishTypeUoW manages transactions for family-pack catalog operations.
	FishTypeUoW interface {
		TxManager
		FishTypeRepoFactory
	}

	// FishTypeUoWFactory creates new fish type unit of work instances.
	FishTypeUoWFactory interface {
		Create() FishTypeUoW
	}
)
