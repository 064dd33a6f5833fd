package pricing

import (
	"errors"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
)

// 견적 계산 관련 에러 정의
var (
	ErrInvalidPages    = errors.New("페이지 수는 1 이상이어야 합니다")
	ErrInvalidQuantity = errors.New("수량은 1 이상이어야 합니다")
)

// FallbackHook 알 수 없는 출력/제본 방식을 기본값으로 대체했을 때 호출된다
type FallbackHook func(field string, value string)

// Engine 단가표 기반 견적 계산 엔진
type Engine interface {
	Compute(req *model.QuoteRequest) (*model.PriceBreakdown, error)
}

type engine struct {
	table      *Table
	onFallback FallbackHook
}

// NewEngine 견적 계산 엔진 생성 (hook은 nil 허용)
func NewEngine(table *Table, hook FallbackHook) Engine {
	if table == nil {
		table = DefaultTable()
	}
	return &engine{table: table, onFallback: hook}
}

// Compute 견적 계산
//
// 총 페이지 수 = 페이지 × 수량으로 출력 단가 구간을 정하고, 수량으로
// 제본 단가 구간을 정한다. 합계금액에서 부가세(10%)를 반올림으로
// 역산해 공급가액을 구한다. 같은 입력은 항상 같은 결과를 낸다
func (e *engine) Compute(req *model.QuoteRequest) (*model.PriceBreakdown, error) {
	if req.Pages < 1 {
		return nil, ErrInvalidPages
	}
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	totalPages := req.Pages * req.Quantity

	unitPrintPrice, printFallback := e.table.printRate(req.PrintType, req.PrintMethod, totalPages)
	if printFallback {
		e.fallback("print_type", string(req.PrintType))
	}

	unitBindingPrice, bindingFallback := e.table.bindingRate(req.BindingType, req.Quantity)
	if bindingFallback {
		e.fallback("binding_type", string(req.BindingType))
	}

	printPrice := unitPrintPrice * totalPages
	bindingPrice := unitBindingPrice * req.Quantity
	totalWithTax := printPrice + bindingPrice

	// 부가세는 합계의 10%를 반올림 (정수 연산, 0.5는 올림)
	tax := (totalWithTax*e.table.TaxRatePct + 50) / 100

	return &model.PriceBreakdown{
		UnitPrice:         unitPrintPrice*req.Pages + unitBindingPrice,
		TotalPrice:        totalWithTax - tax,
		TotalPriceWithTax: totalWithTax,
		TaxAmount:         tax,
		DiscountRate:      0,
		PrintPrice:        printPrice,
		BindingPrice:      bindingPrice,
		UnitPrintPrice:    unitPrintPrice,
		UnitBindingPrice:  unitBindingPrice,
		Pages:             req.Pages,
		TotalPages:        totalPages,
	}, nil
}

func (e *engine) fallback(field, value string) {
	if e.onFallback != nil {
		e.onFallback(field, value)
	}
}
