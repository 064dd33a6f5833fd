package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

var ErrOrderNotFound = errors.New("주문을 찾을 수 없습니다")

type OrderService interface {
	// CreateFromQuote 견적 요청을 주문으로 저장 (상태: 견적요청)
	CreateFromQuote(req *model.QuoteRequest) (*model.Order, error)
	GetOrder(id uint) (*model.Order, error)
	GetOrderByNumber(orderNumber string) (*model.Order, error)
	ListOrders(filter repository.OrderFilter) ([]model.Order, int64, error)
	UpdateStatus(id uint, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	engine    pricing.Engine
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, engine pricing.Engine) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		engine:    engine,
		now:       time.Now,
	}
}

func (s *orderService) CreateFromQuote(req *model.QuoteRequest) (*model.Order, error) {
	breakdown, err := s.engine.Compute(req)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		OrderNumber:       model.NewOrderNumber(s.now()),
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		PrintType:         req.PrintType,
		PrintMethod:       req.PrintMethod,
		BindingType:       req.BindingType,
		Pages:             req.Pages,
		Quantity:          req.Quantity,
		UnitPrice:         breakdown.UnitPrice,
		TotalPrice:        breakdown.TotalPrice,
		TaxAmount:         breakdown.TaxAmount,
		TotalPriceWithTax: breakdown.TotalPriceWithTax,
		Status:            model.OrderStatusQuoted,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("견적 주문 저장", map[string]interface{}{
		"order_number": order.OrderNumber,
		"total":        order.TotalPriceWithTax,
	})
	return order, nil
}

func (s *orderService) GetOrder(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderByNumber(orderNumber string) (*model.Order, error) {
	order, err := s.orderRepo.FindByOrderNumber(orderNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]model.Order, int64, error) {
	return s.orderRepo.FindAll(filter)
}

func (s *orderService) UpdateStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
