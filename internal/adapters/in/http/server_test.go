package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapterhttp "farmstore/internal/adapters/in/http"
	"farmstore/internal/core/application/usecases/commands"
	"farmstore/internal/core/domain/model/catalog"
	"farmstore/internal/core/domain/model/kernel"
	"farmstore/internal/core/domain/model/order"
	"farmstore/internal/core/ports"
	"farmstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes stand in for the postgres unit of work so handler tests
// run without a database.

type fakeStore struct {
	orders    map[kernel.UUID]*order.Order
	fishItems map[kernel.UUID]*catalog.FishItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:    make(map[kernel.UUID]*order.Order),
		fishItems: make(map[kernel.UUID]*catalog.FishItem),
	}
}

type fakeOrderRepo struct{ store *fakeStore }

func (r fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.store.orders[o.ID()] = o
	return nil
}

func (r fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.store.orders[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	r.store.orders[o.ID()] = o
	return nil
}

func (r fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.store.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

func (r fakeOrderRepo) GetAll(_ context.Context) ([]*order.Order, error) {
	all := make([]*order.Order, 0, len(r.store.orders))
	for _, o := range r.store.orders {
		all = append(all, o)
	}
	return all, nil
}

type fakeFishItemRepo struct{ store *fakeStore }

func (r fakeFishItemRepo) Add(_ context.Context, item *catalog.FishItem) error {
	r.store.fishItems[item.ID()] = item
	return nil
}

func (r fakeFishItemRepo) Get(_ context.Context, id kernel.UUID) (*catalog.FishItem, error) {
	item, ok := r.store.fishItems[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("fish item", id.String())
	}
	return item, nil
}

func (r fakeFishItemRepo) Remove(_ context.Context, id kernel.UUID) error {
	if _, ok := r.store.fishItems[id]; !ok {
		return errs.NewObjectNotFoundError("fish item", id.String())
	}
	delete(r.store.fishItems, id)
	return nil
}

type fakeUoW struct{ store *fakeStore }

func (u fakeUoW) Begin(_ context.Context) error    { return nil }
func (u fakeUoW) Commit(_ context.Context) error   { return nil }
func (u fakeUoW) Rollback(_ context.Context) error { return nil }

func (u fakeUoW) OrderRepository() ports.OrderRepository       { return fakeOrderRepo{store: u.store} }
func (u fakeUoW) FishItemRepository() ports.FishItemRepository { return fakeFishItemRepo{store: u.store} }
func (u fakeUoW) SheepItemRepository() ports.SheepItemRepository {
	panic("not used in these tests")
}
func (u fakeUoW) VegetableItemRepository() ports.VegetableItemRepository {
	panic("not used in these tests")
}

type fakeOrderUoWFactory struct{ store *fakeStore }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return fakeUoW{store: f.store} }

type fakeInventoryUoWFactory struct{ store *fakeStore }

func (f fakeInventoryUoWFactory) Create() commands.InventoryUoW { return fakeUoW{store: f.store} }

func newTestServer(store *fakeStore) *echo.Echo {
	server := adapterhttp.NewServer(adapterhttp.Handlers{
		CreateOrder:         commands.NewCreateOrderCommandHandler(fakeOrderUoWFactory{store: store}),
		ChangeOrderStatus:   commands.NewChangeOrderStatusCommandHandler(fakeOrderUoWFactory{store: store}),
		AddFishItem:         commands.NewAddFishItemCommandHandler(fakeInventoryUoWFactory{store: store}),
		RemoveInventoryItem: commands.NewRemoveInventoryItemCommandHandler(fakeInventoryUoWFactory{store: store}),
	})

	e := echo.New()
	e.Validator = adapterhttp.NewRequestValidator()
	server.RegisterRoutes(e)
	return e
}

func perform(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_MissingRequiredFields(t *testing.T) {
	e := newTestServer(newFakeStore())

	testCases := map[string]string{
		"missing phone":    `{"qty":"1","location":"Market Road"}`,
		"missing qty":      `{"phone":"9876543210","location":"Market Road"}`,
		"missing location": `{"phone":"9876543210","qty":"1"}`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			rec := perform(e, http.MethodPost, "/api/v1/orders", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateOrder_Success_ForcesNewStatus(t *testing.T) {
	store := newFakeStore()
	e := newTestServer(store)

	// Caller-supplied status must be discarded
	body := `{"item":"Rohu - Raw Fish - 1 kg","phone":"9876543210","qty":"1.5","location":"Market Road","status":"DELIVERED"}`
	rec := perform(e, http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "NEW", resp.Status)

	require.Len(t, store.orders, 1)
	for _, stored := range store.orders {
		assert.Equal(t, order.StatusNew, stored.Status())
		assert.Equal(t, "Rohu - Raw Fish - 1 kg", stored.Item())
	}
}

func TestUpdateOrderStatus_LowercaseStatusIsAccepted(t *testing.T) {
	store := newFakeStore()
	e := newTestServer(store)

	existing, err := order.NewOrder(kernel.NewUUID(), "item", "", "", "9876543210", "1", "Market Road", "", "", "")
	require.NoError(t, err)
	store.orders[existing.ID()] = existing

	body := `{"id":"` + existing.ID().String() + `","status":"delivered"}`
	rec := perform(e, http.MethodPut, "/api/v1/orders/status", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, order.StatusDelivered, store.orders[existing.ID()].Status())
}

func TestUpdateOrderStatus_UnknownStatus(t *testing.T) {
	store := newFakeStore()
	e := newTestServer(store)

	existing, err := order.NewOrder(kernel.NewUUID(), "item", "", "", "9876543210", "1", "Market Road", "", "", "")
	require.NoError(t, err)
	store.orders[existing.ID()] = existing

	body := `{"id":"` + existing.ID().String() + `","status":"SHIPPED"}`
	rec := perform(e, http.MethodPut, "/api/v1/orders/status", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, order.StatusNew, store.orders[existing.ID()].Status())
}

func TestUpdateOrderStatus_MissingFields(t *testing.T) {
	e := newTestServer(newFakeStore())

	rec := perform(e, http.MethodPut, "/api/v1/orders/status", `{"status":"NEW"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(e, http.MethodPut, "/api/v1/orders/status", `{"id":"`+kernel.NewUUID().String()+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_OrderNotFound(t *testing.T) {
	e := newTestServer(newFakeStore())

	body := `{"id":"` + kernel.NewUUID().String() + `","status":"CONFIRMED"}`
	rec := perform(e, http.MethodPut, "/api/v1/orders/status", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddFishItem_MissingName(t *testing.T) {
	e := newTestServer(newFakeStore())

	rec := perform(e, http.MethodPost, "/api/v1/fish-items", `{"type":"seed","price":"₹2/piece"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddFishItem_Success_DefaultsApplied(t *testing.T) {
	store := newFakeStore()
	e := newTestServer(store)

	rec := perform(e, http.MethodPost, "/api/v1/fish-items", `{"name":"Rohu"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, store.fishItems, 1)
	for _, item := range store.fishItems {
		assert.Equal(t, catalog.FishFresh, item.ItemType())
		assert.Equal(t, "Available", item.Status())
	}
}

func TestAddFishItem_UnknownType(t *testing.T) {
	e := newTestServer(newFakeStore())

	rec := perform(e, http.MethodPost, "/api/v1/fish-items", `{"name":"Rohu","type":"frozen"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFishItem_Success(t *testing.T) {
	store := newFakeStore()
	e := newTestServer(store)

	item, err := catalog.NewFishItem(kernel.NewUUID(), catalog.FishFresh, "Rohu", "", "", "")
	require.NoError(t, err)
	store.fishItems[item.ID()] = item

	rec := perform(e, http.MethodDelete, "/api/v1/fish-items?id="+item.ID().String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.fishItems)
}

func TestRemoveFishItem_InvalidID(t *testing.T) {
	e := newTestServer(newFakeStore())

	rec := perform(e, http.MethodDelete, "/api/v1/fish-items?id=not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFishItem_NotFound(t *testing.T) {
	e := newTestServer(newFakeStore())

	rec := perform(e, http.MethodDelete, "/api/v1/fish-items?id="+kernel.NewUUID().String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
