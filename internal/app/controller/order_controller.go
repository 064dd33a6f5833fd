package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/errors"
	"github.com/onnuriprint/onnuriprint-backend/internal/middleware"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder 견적 요청을 주문으로 접수
// POST /api/v1/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req, ok := bindQuoteBody(c)
	if !ok {
		return
	}

	if req.CustomerEmail == "" {
		errors.RespondWithValidationError(c, map[string]string{
			"customer_email": "주문 접수에는 이메일 주소가 필요합니다",
		})
		return
	}

	order, err := ctrl.orderService.CreateFromQuote(req)
	if err != nil {
		log.Error("주문 접수 실패", err, map[string]interface{}{
			"email": req.CustomerEmail,
		})
		if err == pricing.ErrInvalidPages || err == pricing.ErrInvalidQuantity {
			errors.BadRequest(c, errors.OrderCreateFailed, err.Error())
			return
		}
		info := errors.ParseError(err, "order")
		errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	log.Info("주문 접수", map[string]interface{}{
		"order_number": order.OrderNumber,
	})
	c.JSON(http.StatusCreated, gin.H{
		"order": order,
	})
}

// ListOrders 주문 목록 (관리자)
// GET /api/v1/orders
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.OrderFilter{
		Status:        model.OrderStatus(c.Query("status")),
		CustomerEmail: c.Query("email"),
		Limit:         limit,
		Offset:        offset,
	}

	orders, total, err := ctrl.orderService.ListOrders(filter)
	if err != nil {
		log.Error("주문 목록 조회 실패", err, nil)
		errors.InternalError(c, "주문 목록을 불러오지 못했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
	})
}

// GetOrder 주문 단건 조회 (관리자)
// GET /api/v1/orders/:number
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	order, err := ctrl.orderService.GetOrderByNumber(c.Param("number"))
	if err != nil {
		if err == service.ErrOrderNotFound {
			errors.NotFound(c, errors.OrderNotFound, "주문을 찾을 수 없습니다")
			return
		}
		log.Error("주문 조회 실패", err, map[string]interface{}{
			"order_number": c.Param("number"),
		})
		info := errors.ParseError(err, "order")
		errors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}
