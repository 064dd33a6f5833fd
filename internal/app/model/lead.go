package model

import (
	"time"

	"gorm.io/gorm"
)

// MarketingLead 견적 요청에서 수집한 잠재 고객 정보
//
// 같은 이메일과 검색 키워드 조합은 한 행으로 유지하며 조회 횟수만
// 올린다. 매일 아침 요약 메일 발송에 사용된다
type MarketingLead struct {
	ID            uint           `gorm:"primarykey" json:"id"`                            // 리드 ID
	CustomerName  string         `gorm:"type:varchar(100)" json:"customer_name"`          // 고객명
	CustomerEmail string         `gorm:"type:varchar(255);index" json:"customer_email"`   // 고객 이메일
	CustomerPhone string         `gorm:"type:varchar(20)" json:"customer_phone"`          // 고객 전화번호
	Keyword       string         `gorm:"type:varchar(100);index" json:"keyword"`          // 유입 검색 키워드
	SearchCount   int64          `gorm:"not null;default:1" json:"search_count"`          // 견적 조회 횟수
	LastQuotedAt  time.Time      `json:"last_quoted_at"`                                  // 마지막 견적 시각
	CreatedAt     time.Time      `json:"created_at"`                                      // 생성 시각
	UpdatedAt     time.Time      `json:"updated_at"`                                      // 수정 시각
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                  // 삭제 시각(소프트 삭제)
}

func (MarketingLead) TableName() string {
	return "marketing_leads"
}
