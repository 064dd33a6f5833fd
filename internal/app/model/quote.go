package model

// PrintType 출력 방식
type PrintType string

// PrintMethod 인쇄 면
type PrintMethod string

// BindingType 제본 방식
type BindingType string

const (
	PrintBlackWhite PrintType = "black_white" // 흑백
	PrintLaserColor PrintType = "laser_color" // 레이저칼라
	PrintInkColor   PrintType = "ink_color"   // 잉크칼라

	PrintMethodSingle PrintMethod = "single" // 단면
	PrintMethodDouble PrintMethod = "double" // 양면

	BindingRing    BindingType = "ring"    // 링제본
	BindingPerfect BindingType = "perfect" // 무선제본
	BindingSaddle  BindingType = "saddle"  // 중철제본
	BindingFolding BindingType = "folding" // 접지제본
)

// 한글 표기 맵 (견적서, 메일 본문에 사용)
var (
	PrintTypeLabels = map[PrintType]string{
		PrintBlackWhite: "흑백",
		PrintLaserColor: "레이저칼라",
		PrintInkColor:   "잉크칼라",
	}

	PrintMethodLabels = map[PrintMethod]string{
		PrintMethodSingle: "단면",
		PrintMethodDouble: "양면",
	}

	BindingTypeLabels = map[BindingType]string{
		BindingRing:    "링제본",
		BindingPerfect: "무선제본",
		BindingSaddle:  "중철제본",
		BindingFolding: "접지제본",
	}
)

// PrintTypeLabel 출력 방식 한글 표기 (알 수 없는 값은 원문 유지)
func PrintTypeLabel(t PrintType) string {
	if label, ok := PrintTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// PrintMethodLabel 인쇄 면 한글 표기
func PrintMethodLabel(m PrintMethod) string {
	if label, ok := PrintMethodLabels[m]; ok {
		return label
	}
	return string(m)
}

// BindingTypeLabel 제본 방식 한글 표기
func BindingTypeLabel(b BindingType) string {
	if label, ok := BindingTypeLabels[b]; ok {
		return label
	}
	return string(b)
}

// QuoteRequest 견적 계산 요청
// Size는 표기용이며 가격 계산에는 쓰이지 않는다
type QuoteRequest struct {
	PrintType     PrintType   `json:"print_type"`
	PrintMethod   PrintMethod `json:"print_method"`
	BindingType   BindingType `json:"binding_type"`
	Pages         int64       `json:"pages"`
	Quantity      int64       `json:"quantity"`
	Size          string      `json:"size"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	Keyword       string      `json:"keyword"`
}

// PaperSize 용지 규격 (기본 A4)
func (r *QuoteRequest) PaperSize() string {
	if r.Size == "" {
		return "A4"
	}
	return r.Size
}

// ProductName 견적서에 표기할 상품명 ("A4 흑백 단면 링제본")
func (r *QuoteRequest) ProductName() string {
	return r.PaperSize() + " " + PrintTypeLabel(r.PrintType) + " " + PrintMethodLabel(r.PrintMethod) + " " + BindingTypeLabel(r.BindingType)
}

// PriceBreakdown 견적 계산 결과
//
// 모든 금액은 원화 정수이다. TotalPriceWithTax가 단가 기반 합계이고
// 거기서 부가세를 역산해 공급가액(TotalPrice)을 구한다
type PriceBreakdown struct {
	UnitPrice         int64 `json:"unit_price"`           // 부당 단가 (출력비 + 제본비)
	TotalPrice        int64 `json:"total_price"`          // 공급가액
	TotalPriceWithTax int64 `json:"total_price_with_tax"` // 합계금액 (부가세 포함)
	TaxAmount         int64 `json:"tax_amount"`           // 세액
	DiscountRate      int64 `json:"discount_rate"`        // 할인율 (단가표에 반영되어 항상 0)
	PrintPrice        int64 `json:"print_price"`          // 출력비 합계
	BindingPrice      int64 `json:"binding_price"`        // 제본비 합계
	UnitPrintPrice    int64 `json:"unit_print_price"`     // 페이지당 출력 단가
	UnitBindingPrice  int64 `json:"unit_binding_price"`   // 부당 제본 단가
	Pages             int64 `json:"pages"`                // 부당 페이지 수
	TotalPages        int64 `json:"total_pages"`          // 총 페이지 수 (페이지 × 수량)
}
