package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/document"
	"github.com/onnuriprint/onnuriprint-backend/internal/errors"
	"github.com/onnuriprint/onnuriprint-backend/internal/middleware"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
	"github.com/onnuriprint/onnuriprint-backend/pkg/korean"
)

type QuoteController struct {
	quoteService service.QuoteService
}

func NewQuoteController(quoteService service.QuoteService) *QuoteController {
	return &QuoteController{quoteService: quoteService}
}

// QuoteBody 견적 요청 본문
// 필드별 검증 메시지를 주기 위해 binding 태그 대신 직접 검사한다
type QuoteBody struct {
	PrintType     string `json:"print_type"`
	PrintMethod   string `json:"print_method"`
	BindingType   string `json:"binding_type"`
	Pages         int64  `json:"pages"`
	Quantity      int64  `json:"quantity"`
	Size          string `json:"size"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Keyword       string `json:"keyword"`
}

// quoteBodyAlias 기존 프론트엔드가 보내는 camelCase 키
type quoteBodyAlias struct {
	PrintType     string `json:"printType"`
	PrintMethod   string `json:"printMethod"`
	BindingType   string `json:"bindingType"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

func (b *QuoteBody) merge(alias quoteBodyAlias) {
	if b.PrintType == "" {
		b.PrintType = alias.PrintType
	}
	if b.PrintMethod == "" {
		b.PrintMethod = alias.PrintMethod
	}
	if b.BindingType == "" {
		b.BindingType = alias.BindingType
	}
	if b.CustomerName == "" {
		b.CustomerName = alias.CustomerName
	}
	if b.CustomerEmail == "" {
		b.CustomerEmail = alias.CustomerEmail
	}
	if b.CustomerPhone == "" {
		b.CustomerPhone = alias.CustomerPhone
	}
}

func (b *QuoteBody) validate() map[string]string {
	fields := map[string]string{}
	if b.PrintType == "" {
		fields["print_type"] = "출력 방식은 필수입니다"
	}
	if b.BindingType == "" {
		fields["binding_type"] = "제본 방식은 필수입니다"
	}
	if b.Pages < 1 {
		fields["pages"] = "페이지 수는 1 이상이어야 합니다"
	}
	if b.Quantity < 1 {
		fields["quantity"] = "수량은 1 이상이어야 합니다"
	}
	return fields
}

func (b *QuoteBody) toRequest() *model.QuoteRequest {
	// 인쇄 면을 생략하면 단면으로 계산한다
	printMethod := model.PrintMethod(b.PrintMethod)
	if printMethod == "" {
		printMethod = model.PrintMethodSingle
	}

	return &model.QuoteRequest{
		PrintType:     model.PrintType(b.PrintType),
		PrintMethod:   printMethod,
		BindingType:   model.BindingType(b.BindingType),
		Pages:         b.Pages,
		Quantity:      b.Quantity,
		Size:          b.Size,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Keyword:       b.Keyword,
	}
}

// bindQuoteBody 본문 파싱과 필드 검증 공통 처리
// snake_case와 camelCase 키를 모두 받는다
func bindQuoteBody(c *gin.Context) (*model.QuoteRequest, bool) {
	var body QuoteBody
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidFormat, "요청 본문이 올바르지 않습니다")
		return nil, false
	}

	var alias quoteBodyAlias
	if err := c.ShouldBindBodyWith(&alias, binding.JSON); err == nil {
		body.merge(alias)
	}

	if fields := body.validate(); len(fields) > 0 {
		errors.RespondWithValidationError(c, fields)
		return nil, false
	}
	return body.toRequest(), true
}

// CalculateQuote 견적 계산
// POST /api/v1/quotes
func (ctrl *QuoteController) CalculateQuote(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req, ok := bindQuoteBody(c)
	if !ok {
		return
	}

	breakdown, err := ctrl.quoteService.Quote(req)
	if err != nil {
		log.Error("견적 계산 실패", err, map[string]interface{}{
			"print_type": req.PrintType,
			"pages":      req.Pages,
			"quantity":   req.Quantity,
		})
		errors.BadRequest(c, errors.QuoteComputeFailed, err.Error())
		return
	}

	log.Info("견적 계산 완료", map[string]interface{}{
		"total_price_with_tax": breakdown.TotalPriceWithTax,
		"total_pages":          breakdown.TotalPages,
	})
	c.JSON(http.StatusOK, breakdown)
}

// PreviewQuote 화면 미리보기용 견적 요약
// POST /api/v1/quotes/preview
func (ctrl *QuoteController) PreviewQuote(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req, ok := bindQuoteBody(c)
	if !ok {
		return
	}

	breakdown, err := ctrl.quoteService.Compute(req)
	if err != nil {
		log.Error("견적 미리보기 실패", err, nil)
		errors.BadRequest(c, errors.QuoteComputeFailed, err.Error())
		return
	}

	quotation := document.Assemble(req, breakdown, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"price": breakdown,
		"document": gin.H{
			"customer_name": quotation.CustomerName,
			"product_name":  quotation.ProductName,
			"quote_date":    quotation.DateLabel(),
			"total_korean":  korean.ToKoreanNumeral(breakdown.TotalPrice) + "원",
			"company_name":  document.CompanyName,
		},
	})
}

// DownloadQuoteDocument 견적서 PDF 다운로드
// POST /api/v1/quotes/document
func (ctrl *QuoteController) DownloadQuoteDocument(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req, ok := bindQuoteBody(c)
	if !ok {
		return
	}

	pdf, err := ctrl.quoteService.RenderDocument(req)
	if err != nil {
		if err == pricing.ErrInvalidPages || err == pricing.ErrInvalidQuantity {
			errors.BadRequest(c, errors.QuoteComputeFailed, err.Error())
			return
		}
		log.Error("견적서 PDF 생성 실패", err, nil)
		errors.InternalError(c, "견적서 생성에 실패했습니다")
		return
	}

	name := req.CustomerName
	if name == "" {
		name = "고객"
	}
	filename := fmt.Sprintf("견적서_%s_%s.pdf", name, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(filename)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SendQuoteEmail 견적서 메일 발송
// POST /api/v1/quotes/email
func (ctrl *QuoteController) SendQuoteEmail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	req, ok := bindQuoteBody(c)
	if !ok {
		return
	}

	if req.CustomerEmail == "" {
		errors.RespondWithValidationError(c, map[string]string{
			"customer_email": "견적서를 받을 이메일 주소는 필수입니다",
		})
		return
	}

	err := ctrl.quoteService.SendQuoteEmail(c.Request.Context(), req)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "견적서를 이메일로 발송했습니다",
			"email":   req.CustomerEmail,
		})
	case service.ErrEmailThrottled:
		errors.TooManyRequests(c, errors.QuoteEmailThrottled, err.Error())
	case pricing.ErrInvalidPages, pricing.ErrInvalidQuantity:
		errors.BadRequest(c, errors.QuoteComputeFailed, err.Error())
	default:
		log.Error("견적 메일 발송 실패", err, map[string]interface{}{
			"email": req.CustomerEmail,
		})
		errors.InternalError(c, "견적서 발송에 실패했습니다")
	}
}
