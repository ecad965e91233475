package commands_test

import (
	"errors"
	"testing"
	"time"

	"farmstore/internal/core/application/usecases/commands"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"
	"farmstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, "Rohu - Raw Fish - 1 kg", "Home Cook", "Asha",
		"9876543210", "1", "Market Road", "", "₹320/kg", "₹320", status, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.StatusConfirmed)

	existing := storedOrder(t, id, order.StatusNew)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.StatusConfirmed
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AllowsBackwardMove(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.StatusNew)

	existing := storedOrder(t, id, order.StatusDelivered)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.StatusNew
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.StatusCancelled)

	notFound := errs.NewObjectNotFoundError("order_id", id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, order.StatusContacted)

	existing := storedOrder(t, id, order.StatusNew)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
