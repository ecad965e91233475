// Package postgres provides the GORM-based Unit of Work implementation.
// Each unit of work wraps one database transaction and hands out
// repositories bound to it, so a command handler's writes either all land
// or all roll back.
package postgres

import (
	"context"

	"farmstore/internal/adapters/out/postgres/fishrepo"
	"farmstore/internal/adapters/out/postgres/orderrepo"
	"farmstore/internal/adapters/out/postgres/packrepo"
	"farmstore/internal/adapters/out/postgres/sheeprepo"
	"farmstore/internal/adapters/out/postgres/vegetablerepo"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh instance so concurrent
// requests never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across repositories and
// records every aggregate written through it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again on an instance with an
// open transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. Returns
// gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns
// gorm.ErrInvalidTransaction when no transaction is open, which makes the
// handlers' deferred rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// FishItemRepository returns a fish inventory repository bound to the current transaction.
func (uow *GormUnitOfWork) FishItemRepository() ports.FishItemRepository {
	return fishrepo.NewGormFishItemRepository(uow.conn(), uow)
}

// SheepItemRepository returns a sheep listing repository bound to the current transaction.
func (uow *GormUnitOfWork) SheepItemRepository() ports.SheepItemRepository {
	return sheeprepo.NewGormSheepItemRepository(uow.conn(), uow)
}

// VegetableItemRepository returns a vegetable listing repository bound to the current transaction.
func (uow *GormUnitOfWork) VegetableItemRepository() ports.VegetableItemRepository {
	return vegetablerepo.NewGormVegetableItemRepository(uow.conn(), uow)
}

// FishTypeRepository returns a family-pack repository bound to the current transaction.
func (uow *GormUnitOfWork) FishTypeRepository() ports.FishTypeRepository {
	return packrepo.NewGormFishTypeRepository(uow.conn(), uow)
}

// TrackAggregate records an aggregate written within this unit of work.
// Repositories call it on every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
