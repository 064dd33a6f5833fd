package service

import (
	"context"
	"errors"
	"time"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/document"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
	"github.com/onnuriprint/onnuriprint-backend/pkg/mailer"
	"github.com/onnuriprint/onnuriprint-backend/pkg/redis"
)

var (
	ErrEmailRequired  = errors.New("견적서를 받을 이메일 주소가 필요합니다")
	ErrEmailThrottled = errors.New("잠시 후 다시 시도해주세요. 같은 주소로는 10분에 한 번만 발송됩니다")
)

// 수신자별 견적 메일 발송 간격
const emailThrottleWindow = 10 * time.Minute

type QuoteService interface {
	// Compute 견적 계산만 수행
	Compute(req *model.QuoteRequest) (*model.PriceBreakdown, error)
	// Quote 견적 계산과 리드 수집을 함께 수행 (조회용 주 진입점)
	Quote(req *model.QuoteRequest) (*model.PriceBreakdown, error)
	// RenderDocument 견적서 PDF 생성
	RenderDocument(req *model.QuoteRequest) ([]byte, error)
	// SendQuoteEmail 견적서 메일 발송
	SendQuoteEmail(ctx context.Context, req *model.QuoteRequest) error
}

type quoteService struct {
	engine      pricing.Engine
	pdfRenderer *document.PDFRenderer
	mail        mailer.Mailer
	leadService LeadService
	now         func() time.Time

	// 발송 제한은 주입 가능하게 두고 기본은 Redis SETNX를 쓴다
	acquireEmailSlot func(ctx context.Context, email string, window time.Duration) (bool, error)
	releaseEmailSlot func(ctx context.Context, email string) error
}

func NewQuoteService(engine pricing.Engine, pdfRenderer *document.PDFRenderer, mail mailer.Mailer, leadService LeadService) QuoteService {
	return &quoteService{
		engine:           engine,
		pdfRenderer:      pdfRenderer,
		mail:             mail,
		leadService:      leadService,
		now:              time.Now,
		acquireEmailSlot: redis.AcquireEmailSlot,
		releaseEmailSlot: redis.ReleaseEmailSlot,
	}
}

func (s *quoteService) Compute(req *model.QuoteRequest) (*model.PriceBreakdown, error) {
	return s.engine.Compute(req)
}

func (s *quoteService) Quote(req *model.QuoteRequest) (*model.PriceBreakdown, error) {
	breakdown, err := s.engine.Compute(req)
	if err != nil {
		return nil, err
	}

	// 리드 수집 실패는 견적 응답을 막지 않는다
	if s.leadService != nil && req.CustomerEmail != "" {
		if err := s.leadService.Capture(req); err != nil {
			logger.Warn("리드 수집 실패", map[string]interface{}{
				"email": req.CustomerEmail,
				"error": err.Error(),
			})
		}
	}

	return breakdown, nil
}

func (s *quoteService) RenderDocument(req *model.QuoteRequest) ([]byte, error) {
	breakdown, err := s.engine.Compute(req)
	if err != nil {
		return nil, err
	}

	quotation := document.Assemble(req, breakdown, s.now())
	return s.pdfRenderer.Render(quotation)
}

// SendQuoteEmail 견적서를 메일로 발송
// 같은 수신자에게는 일정 시간 안에 한 번만 발송한다
func (s *quoteService) SendQuoteEmail(ctx context.Context, req *model.QuoteRequest) error {
	if req.CustomerEmail == "" {
		return ErrEmailRequired
	}

	breakdown, err := s.engine.Compute(req)
	if err != nil {
		return err
	}

	allowed, err := s.acquireEmailSlot(ctx, req.CustomerEmail, emailThrottleWindow)
	if err == nil && !allowed {
		return ErrEmailThrottled
	}

	quotation := document.Assemble(req, breakdown, s.now())
	msg := &mailer.Message{
		To:       req.CustomerEmail,
		Subject:  document.EmailSubject(quotation),
		HTMLBody: document.RenderEmailHTML(quotation),
		TextBody: document.RenderEmailText(quotation),
	}

	if err := s.mail.Send(msg); err != nil {
		// 발송 실패가 수신자를 10분간 막지 않도록 슬롯을 돌려준다
		if releaseErr := s.releaseEmailSlot(ctx, req.CustomerEmail); releaseErr != nil {
			logger.Warn("메일 발송 슬롯 반환 실패", map[string]interface{}{
				"email": req.CustomerEmail,
				"error": releaseErr.Error(),
			})
		}
		return err
	}

	logger.Info("견적 메일 발송 완료", map[string]interface{}{
		"to":    req.CustomerEmail,
		"total": breakdown.TotalPriceWithTax,
	})
	return nil
}
