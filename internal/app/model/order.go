package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string // 주문 상태 코드

const (
	OrderStatusQuoted    OrderStatus = "견적요청" // 견적 요청 접수
	OrderStatusConfirmed OrderStatus = "주문확정" // 주문 확정
	OrderStatusPrinting  OrderStatus = "제작중"  // 제작 중
	OrderStatusDone      OrderStatus = "완료"   // 출고 완료
	OrderStatusCancelled OrderStatus = "취소"   // 주문 취소
)

type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                               // 주문 ID
	OrderNumber       string         `gorm:"type:varchar(20);uniqueIndex" json:"order_number"`   // 주문번호 (ONN + 일시)
	CustomerName      string         `gorm:"type:varchar(100)" json:"customer_name"`             // 고객명
	CustomerEmail     string         `gorm:"type:varchar(255);index" json:"customer_email"`      // 고객 이메일
	CustomerPhone     string         `gorm:"type:varchar(20)" json:"customer_phone"`             // 고객 전화번호
	PrintType         PrintType      `gorm:"type:varchar(20);not null" json:"print_type"`        // 출력 방식
	PrintMethod       PrintMethod    `gorm:"type:varchar(20);not null" json:"print_method"`      // 인쇄 면
	BindingType       BindingType    `gorm:"type:varchar(20);not null" json:"binding_type"`      // 제본 방식
	Pages             int64          `gorm:"not null" json:"pages"`                              // 부당 페이지 수
	Quantity          int64          `gorm:"not null" json:"quantity"`                           // 수량
	UnitPrice         int64          `gorm:"not null" json:"unit_price"`                         // 부당 단가
	TotalPrice        int64          `gorm:"not null" json:"total_price"`                        // 공급가액
	TaxAmount         int64          `gorm:"not null" json:"tax_amount"`                         // 세액
	TotalPriceWithTax int64          `gorm:"not null" json:"total_price_with_tax"`               // 합계금액
	Status            OrderStatus    `gorm:"type:varchar(20);default:'견적요청'" json:"status"` // 주문 상태
	CreatedAt         time.Time      `json:"created_at"`                                         // 생성 시각
	UpdatedAt         time.Time      `json:"updated_at"`                                         // 수정 시각
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                     // 삭제 시각(소프트 삭제)
}

func (Order) TableName() string {
	return "orders"
}

// NewOrderNumber 주문번호 생성 ("ONN" + yyyymmddhhmmss)
func NewOrderNumber(now time.Time) string {
	return "ONN" + now.Format("20060102150405")
}
