package postgres_test

import (
	"context"
	"testing"
	"time"

	"farmstore/internal/adapters/out/postgres"
	"farmstore/internal/adapters/out/postgres/fishrepo"
	"farmstore/internal/adapters/out/postgres/orderrepo"
	"farmstore/internal/adapters/out/postgres/packrepo"
	"farmstore/internal/adapters/out/postgres/sheeprepo"
	"farmstore/internal/adapters/out/postgres/vegetablerepo"
	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// repositories handed out by one unit of work.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&fishrepo.FishItemDTO{},
		&sheeprepo.SheepItemDTO{},
		&vegetablerepo.VegetableItemDTO{},
		&packrepo.FishTypeDTO{},
		&packrepo.FishVariantDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, fish_items, sheep_items, vegetable_items, fish_types, fish_variants").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder, err := order.NewOrder(kernel.NewUUID(), "Rohu - Raw Fish - 1 kg",
		"Home Cook", "Asha", "9876543210", "1", "Market Road", "", "₹320/kg", "₹320")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	fishItem, err := catalog.NewFishItem(kernel.NewUUID(), catalog.FishFresh,
		"Rohu", "1-2 kg pieces", "₹320/kg", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FishItemRepository().Add(ctx, fishItem))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&fishrepo.FishItemDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder, err := order.NewOrder(kernel.NewUUID(), "Katla - Raw Fish - 1 kg",
		"Home Cook", "Ravi", "9876500000", "2", "Farm Gate", "", "₹280/kg", "₹560")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	sheepItem, err := catalog.NewSheepItem(kernel.NewUUID(), catalog.SheepLive,
		"T-42", "28", "10", "₹9000", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.SheepItemRepository().Add(ctx, sheepItem))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&sheeprepo.SheepItemDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_FishTypeWithVariant() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	fishType, err := catalog.NewFishType(kernel.NewUUID(), "Rohu", "River fish", "", true)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FishTypeRepository().Add(ctx, fishType))

	variant, err := catalog.NewFishVariant(kernel.NewUUID(), fishType.ID(),
		catalog.ServiceCut, "1 kg", "₹340/kg", "", "20", true)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FishTypeRepository().AddVariant(ctx, variant))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&packrepo.FishTypeDTO{}, 1)
	suite.assertCount(&packrepo.FishVariantDTO{}, 1)

	restored, err := suite.factory.Create().FishTypeRepository().Get(ctx, fishType.ID())
	suite.Require().NoError(err)
	suite.Equal("Rohu", restored.Name())
	suite.True(restored.IsActive())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestVegetableRepository_AddAndRemove() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	item, err := catalog.NewVegetableItem(kernel.NewUUID(), "", "Tomato", "",
		"₹40/kg", "120", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.VegetableItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&vegetablerepo.VegetableItemDTO{}, 1)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.VegetableItemRepository().Remove(ctx, item.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&vegetablerepo.VegetableItemDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
