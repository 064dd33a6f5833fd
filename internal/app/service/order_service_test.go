package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/internal/db"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
)

func newOrderTestService(t *testing.T) OrderService {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	engine := pricing.NewEngine(pricing.DefaultTable(), nil)
	return NewOrderService(repository.NewOrderRepository(database), engine)
}

func TestOrderService_CreateFromQuote(t *testing.T) {
	svc := newOrderTestService(t)

	order, err := svc.CreateFromQuote(quoteRequest())

	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.True(t, len(order.OrderNumber) == len("ONN20260831103000"))
	assert.Equal(t, "ONN", order.OrderNumber[:3])
	assert.Equal(t, model.OrderStatusQuoted, order.Status)
	assert.Equal(t, int64(2600), order.TotalPriceWithTax)
	assert.Equal(t, int64(2340), order.TotalPrice)
	assert.Equal(t, int64(260), order.TaxAmount)
}

func TestOrderService_CreateFromQuote_InvalidRequest(t *testing.T) {
	svc := newOrderTestService(t)

	req := quoteRequest()
	req.Quantity = 0
	_, err := svc.CreateFromQuote(req)

	assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc := newOrderTestService(t)

	_, err := svc.GetOrder(999)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	svc := newOrderTestService(t)

	order, err := svc.CreateFromQuote(quoteRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, model.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, updated.Status)

	found, err := svc.GetOrderByNumber(order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, found.Status)
}

func TestOrderService_ListOrders(t *testing.T) {
	svc := newOrderTestService(t)

	_, err := svc.CreateFromQuote(quoteRequest())
	require.NoError(t, err)

	orders, total, err := svc.ListOrders(repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, orders, 1)
}
