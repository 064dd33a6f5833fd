package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/db"
	"github.com/onnuriprint/onnuriprint-backend/internal/document"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
	"github.com/onnuriprint/onnuriprint-backend/pkg/mailer"
)

type recordingMailer struct {
	sent []*mailer.Message
}

func (m *recordingMailer) Send(msg *mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func setupQuoteControllerTest(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	mail := &recordingMailer{}
	leadService := service.NewLeadService(repository.NewLeadRepository(testDB))
	engine := pricing.NewEngine(pricing.DefaultTable(), nil)
	quoteService := service.NewQuoteService(engine, document.NewPDFRenderer(nil), mail, leadService)
	quoteController := NewQuoteController(quoteService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/quotes", quoteController.CalculateQuote)
	router.POST("/quotes/preview", quoteController.PreviewQuote)
	router.POST("/quotes/document", quoteController.DownloadQuoteDocument)
	router.POST("/quotes/email", quoteController.SendQuoteEmail)

	return router, mail
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validQuoteBody() map[string]interface{} {
	return map[string]interface{}{
		"print_type":     "black_white",
		"print_method":   "single",
		"binding_type":   "ring",
		"pages":          10,
		"quantity":       1,
		"customer_name":  "홍길동",
		"customer_email": "hong@example.com",
		"keyword":        "논문 제본",
	}
}

func TestCalculateQuote_Success(t *testing.T) {
	router, _ := setupQuoteControllerTest(t)

	w := postJSON(t, router, "/quotes", validQuoteBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2600), resp["unit_price"])
	assert.Equal(t, float64(2340), resp["total_price"])
	assert.Equal(t, float64(2600), resp["total_price_with_tax"])
	assert.Equal(t, float64(260), resp["tax_amount"])
	assert.Equal(t, float64(0), resp["discount_rate"])
	assert.Equal(t, float64(400), resp["print_price"])
	assert.Equal(t, float64(2200), resp["binding_price"])
	assert.Equal(t, float64(40), resp["unit_print_price"])
	assert.Equal(t, float64(2200), resp["unit_binding_price"])
	assert.Equal(t, float64(10), resp["pages"])
	assert.Equal(t, float64(10), resp["total_pages"])
}

func TestCalculateQuote_MissingFieldNamesField(t *testing.T) {
	router, _ := setupQuoteControllerTest(t)

	body := validQuoteBody()
	delete(body, "print_type")
	w := postJSON(t, router, "/quotes", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_INVALID_INPUT", resp["error"])
	fields := resp["fields"].(map[string]interface{})
	assert.Contains(t, fields, "print_type")
	assert.NotContains(t, fields, "binding_type")
}

func TestCalculateQuote_ZeroQuantity(t *testing.T) {
	router, _ := setupQuoteControllerTest(t)

	body := validQuoteBody()
	body["quantity"] = 0
	w := postJSON(t, router, "/quotes", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := resp["fields"].(map[string]interface{})
	assert.Contains(t, fields, "quantity")
}

func TestCalculateQuote_PrintMethodOptionalDefaultsToSingle(t *testing.T) {
	// 인쇄 면을 생략하면 단면 단가로 계산된다
	router, _ := setupQuoteControllerTest(t)

	body := validQuoteBody()
	delete(body, "print_method")
	w := postJSON(t, router, "/quotes", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(40), resp["unit_print_price"])
	assert.Equal(t, float64(2600), resp["total_price_with_tax"])
}

func TestCalculateQuote_CamelCaseKeys(t *testing.T) {
	// 기존 프론트엔드의 camelCase 키도 그대로 받는다
	router, _ := setupQuoteControllerTest(t)

	w := postJSON(t, router, "/quotes", map[string]interface{}{
		"printType":     "black_white",
		"printMethod":   "single",
		"bindingType":   "ring",
		"pages":         10,
		"quantity":      1,
		"customerName":  "홍길동",
		"customerEmail": "hong@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2600), resp["total_price_with_tax"])
	assert.Equal(t, float64(40), resp["unit_print_price"])
}

func TestCalculateQuote_UnknownPrintTypeFallsBack(t *testing.T) {
	// 모르는 출력 방식은 흑백 단가로 계산되고 200을 반환한다
	router, _ := setupQuoteControllerTest(t)

	body := validQuoteBody()
	body["print_type"] = "hologram"
	w := postJSON(t, router, "/quotes", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(40), resp["unit_print_price"])
}

func TestPreviewQuote(t *testing.T) {
	router, _ := setupQuoteControllerTest(t)

	w := postJSON(t, router, "/quotes/preview", validQuoteBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	price := resp["price"].(map[string]interface{})
	assert.Equal(t, float64(2600), price["total_price_with_tax"])

	doc := resp["document"].(map[string]interface{})
	assert.Equal(t, "홍길동", doc["customer_name"])
	assert.Equal(t, "A4 흑백 단면 링제본", doc["product_name"])
	assert.Equal(t, "이천삼백사십원", doc["total_korean"])
	assert.Equal(t, "온누리인쇄나라", doc["company_name"])
}

func TestDownloadQuoteDocument(t *testing.T) {
	router, _ := setupQuoteControllerTest(t)

	w := postJSON(t, router, "/quotes/document", validQuoteBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestSendQuoteEmail(t *testing.T) {
	router, mail := setupQuoteControllerTest(t)

	w := postJSON(t, router, "/quotes/email", validQuoteBody())

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "hong@example.com", mail.sent[0].To)
}

// throttledQuoteService 발송 제한에 걸린 상태를 흉내낸다
type throttledQuoteService struct {
	service.QuoteService
}

func (s throttledQuoteService) SendQuoteEmail(ctx context.Context, req *model.QuoteRequest) error {
	return service.ErrEmailThrottled
}

func TestSendQuoteEmail_Throttled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/quotes/email", NewQuoteController(throttledQuoteService{}).SendQuoteEmail)

	w := postJSON(t, router, "/quotes/email", validQuoteBody())

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "QUOTE_EMAIL_THROTTLED", resp["error"])
}

func TestSendQuoteEmail_MissingAddress(t *testing.T) {
	router, mail := setupQuoteControllerTest(t)

	body := validQuoteBody()
	delete(body, "customer_email")
	w := postJSON(t, router, "/quotes/email", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mail.sent)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	fields := resp["fields"].(map[string]interface{})
	assert.Contains(t, fields, "customer_email")
}
