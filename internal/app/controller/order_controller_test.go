package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/db"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
)

func setupOrderControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	engine := pricing.NewEngine(pricing.DefaultTable(), nil)
	orderService := service.NewOrderService(repository.NewOrderRepository(testDB), engine)
	orderController := NewOrderController(orderService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders", orderController.CreateOrder)
	router.GET("/orders", orderController.ListOrders)
	router.GET("/orders/:number", orderController.GetOrder)

	return router, testDB
}

func TestCreateOrder_Success(t *testing.T) {
	router, _ := setupOrderControllerTest(t)

	w := postJSON(t, router, "/orders", validQuoteBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	order := resp["order"].(map[string]interface{})
	assert.Equal(t, "견적요청", order["status"])
	assert.Equal(t, float64(2600), order["total_price_with_tax"])
	assert.Equal(t, "ONN", order["order_number"].(string)[:3])
}

func TestCreateOrder_RequiresEmail(t *testing.T) {
	router, _ := setupOrderControllerTest(t)

	body := validQuoteBody()
	delete(body, "customer_email")
	w := postJSON(t, router, "/orders", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders(t *testing.T) {
	router, _ := setupOrderControllerTest(t)

	postJSON(t, router, "/orders", validQuoteBody())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["total"])
}

func TestGetOrder_NotFound(t *testing.T) {
	router, _ := setupOrderControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/ONN00000000000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ORDER_NOT_FOUND", resp["error"])
}

func TestGetOrder_ByNumber(t *testing.T) {
	router, _ := setupOrderControllerTest(t)

	created := postJSON(t, router, "/orders", validQuoteBody())
	var createResp map[string]interface{}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createResp))
	number := createResp["order"].(map[string]interface{})["order_number"].(string)

	req := httptest.NewRequest(http.MethodGet, "/orders/"+number, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	order := resp["order"].(map[string]interface{})
	assert.Equal(t, number, order["order_number"])
}
