package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
)

func testQuotation() *Quotation {
	req := &model.QuoteRequest{
		PrintType:    model.PrintBlackWhite,
		PrintMethod:  model.PrintMethodSingle,
		BindingType:  model.BindingRing,
		Pages:        10,
		Quantity:     1,
		CustomerName: "홍길동",
	}
	price := &model.PriceBreakdown{
		UnitPrice:         2600,
		TotalPrice:        2340,
		TotalPriceWithTax: 2600,
		TaxAmount:         260,
		PrintPrice:        400,
		BindingPrice:      2200,
		UnitPrintPrice:    40,
		UnitBindingPrice:  2200,
		Pages:             10,
		TotalPages:        10,
	}
	return Assemble(req, price, time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC))
}

func TestAssemble(t *testing.T) {
	q := testQuotation()

	assert.Equal(t, "홍길동", q.CustomerName)
	assert.Equal(t, "A4 흑백 단면 링제본", q.ProductName)
	assert.Equal(t, "A4", q.PaperSize)
	assert.Equal(t, int64(10), q.Pages)
	assert.Equal(t, int64(1), q.Quantity)
	assert.Equal(t, int64(2600), q.Price.TotalPriceWithTax)
}

func TestAssemble_DefaultCustomerName(t *testing.T) {
	q := Assemble(&model.QuoteRequest{
		PrintType:   model.PrintBlackWhite,
		PrintMethod: model.PrintMethodSingle,
		BindingType: model.BindingRing,
		Pages:       1,
		Quantity:    1,
	}, &model.PriceBreakdown{}, time.Now())

	assert.Equal(t, "고객님", q.CustomerName)
}

func TestDateLabel(t *testing.T) {
	q := testQuotation()
	// 월과 일은 앞자리 0 없이 표기한다
	assert.Equal(t, "2026년 8월 31일", q.DateLabel())
}

func TestProductName_UnknownValuesKeptVerbatim(t *testing.T) {
	req := &model.QuoteRequest{
		PrintType:   model.PrintType("hologram"),
		PrintMethod: model.PrintMethodDouble,
		BindingType: model.BindingPerfect,
	}
	assert.Equal(t, "A4 hologram 양면 무선제본", req.ProductName())
}

func TestProductName_CustomPaperSize(t *testing.T) {
	req := &model.QuoteRequest{
		PrintType:   model.PrintBlackWhite,
		PrintMethod: model.PrintMethodSingle,
		BindingType: model.BindingSaddle,
		Size:        "B5",
	}
	assert.Equal(t, "B5 흑백 단면 중철제본", req.ProductName())
}
