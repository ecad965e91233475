package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the current
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// FishItemRepository returns a FishItemRepository bound to the current transaction.
	FishItemRepository() FishItemRepository

	// SheepItemRepository returns a SheepItemRepository bound to the current transaction.
	SheepItemRepository() SheepItemRepository

	// VegetableItemRepository returns a VegetableItemRepository bound to the current transaction.
	VegetableItemRepository() VegetableItemRepository

	// FishTypeRepository returns a FishTypeRepository bound to the current transaction.
	FishTypeRepository() FishTypeRepository
}
