package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

type LeadRepository interface {
	Upsert(lead *model.MarketingLead) error
	FindAll(limit, offset int) ([]model.MarketingLead, int64, error)
	FindSince(since time.Time) ([]model.MarketingLead, error)
	TopKeywords(limit int) ([]KeywordCount, error)
}

type KeywordCount struct {
	Keyword     string `json:"keyword"`
	SearchCount int64  `json:"search_count"`
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Upsert 이메일과 키워드가 같은 리드가 있으면 조회 횟수만 올리고,
// 없으면 새로 만든다
func (r *leadRepository) Upsert(lead *model.MarketingLead) error {
	var existing model.MarketingLead
	err := r.db.
		Where("customer_email = ? AND keyword = ?", lead.CustomerEmail, lead.Keyword).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		lead.SearchCount = 1
		lead.LastQuotedAt = time.Now()
		if err := r.db.Create(lead).Error; err != nil {
			logger.Error("리드 생성 실패", err, map[string]interface{}{
				"email":   lead.CustomerEmail,
				"keyword": lead.Keyword,
			})
			return err
		}
		return nil
	}
	if err != nil {
		return err
	}

	existing.SearchCount++
	existing.LastQuotedAt = time.Now()
	existing.CustomerName = lead.CustomerName
	existing.CustomerPhone = lead.CustomerPhone
	if err := r.db.Save(&existing).Error; err != nil {
		logger.Error("리드 갱신 실패", err, map[string]interface{}{
			"lead_id": existing.ID,
		})
		return err
	}
	*lead = existing
	return nil
}

func (r *leadRepository) FindAll(limit, offset int) ([]model.MarketingLead, int64, error) {
	query := r.db.Model(&model.MarketingLead{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var leads []model.MarketingLead
	if err := query.Order("updated_at DESC").Find(&leads).Error; err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// FindSince 기준 시각 이후에 견적을 낸 리드 조회 (일일 요약 메일용)
func (r *leadRepository) FindSince(since time.Time) ([]model.MarketingLead, error) {
	var leads []model.MarketingLead
	err := r.db.
		Where("last_quoted_at >= ?", since).
		Order("last_quoted_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// TopKeywords 조회 횟수 합 기준 상위 키워드 집계
func (r *leadRepository) TopKeywords(limit int) ([]KeywordCount, error) {
	var counts []KeywordCount
	err := r.db.Model(&model.MarketingLead{}).
		Select("keyword, SUM(search_count) AS search_count").
		Where("keyword <> ''").
		Group("keyword").
		Order("search_count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
