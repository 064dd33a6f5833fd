package service

import (
	"strings"
	"time"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

type LeadService interface {
	// Capture 견적 요청에서 리드 저장 (같은 이메일+키워드는 조회 횟수 증가)
	Capture(req *model.QuoteRequest) error
	ListLeads(limit, offset int) ([]model.MarketingLead, int64, error)
	TopKeywords(limit int) ([]repository.KeywordCount, error)
	LeadsSince(since time.Time) ([]model.MarketingLead, error)
}

type leadService struct {
	leadRepo repository.LeadRepository
}

func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

func (s *leadService) Capture(req *model.QuoteRequest) error {
	keyword := normalizeKeyword(req.Keyword)
	if keyword == "" {
		keyword = defaultKeyword(req)
	}

	lead := &model.MarketingLead{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Keyword:       keyword,
	}
	if err := s.leadRepo.Upsert(lead); err != nil {
		return err
	}

	logger.Debug("리드 수집", map[string]interface{}{
		"email":        lead.CustomerEmail,
		"keyword":      lead.Keyword,
		"search_count": lead.SearchCount,
	})
	return nil
}

func (s *leadService) ListLeads(limit, offset int) ([]model.MarketingLead, int64, error) {
	return s.leadRepo.FindAll(limit, offset)
}

func (s *leadService) TopKeywords(limit int) ([]repository.KeywordCount, error) {
	return s.leadRepo.TopKeywords(limit)
}

func (s *leadService) LeadsSince(since time.Time) ([]model.MarketingLead, error) {
	return s.leadRepo.FindSince(since)
}

func normalizeKeyword(keyword string) string {
	return strings.TrimSpace(keyword)
}

// defaultKeyword 키워드가 없으면 견적 사양으로 대체
func defaultKeyword(req *model.QuoteRequest) string {
	return model.PrintTypeLabel(req.PrintType) + " " + model.BindingTypeLabel(req.BindingType)
}
