package document

import (
	"time"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
)

// 공급자 정보 (견적서 우측 상단 표기)
const (
	CompanyName       = "온누리인쇄나라"
	CompanyBizNumber  = "491-20-00640"
	CompanyCEO        = "류도현"
	CompanyAddress    = "서울 금천구 가산디지털1로 142 가산더스카이밸리1차 8층 816호"
	CompanyBizType    = "제조, 소매, 서비스업"
	CompanyBizItem    = "경인쇄, 문구, 출력, 복사, 제본"
	CompanyBankAcct   = "신한 110-493-223413"
	CompanyPhone      = "02-6338-7123"
	CompanyMobile     = "010-2624-7123"
	CompanyEmail      = "print7123@naver.com"
	CompanyWebsite    = "https://print7123.com/"
	CompanyHours      = "09:30-16:00 (월-금)"
)

// Quotation 견적서 렌더링에 필요한 모든 값
//
// 계산 결과와 요청을 묶어 렌더러(PDF, 메일)가 공유하는 중간 표현이다.
// 렌더러는 이 구조체만 읽고 다시 계산하지 않는다
type Quotation struct {
	CustomerName string
	ProductName  string
	PrintType    model.PrintType
	PrintMethod  model.PrintMethod
	BindingType  model.BindingType
	Pages        int64
	Quantity     int64
	PaperSize    string
	QuotedAt     time.Time
	Price        *model.PriceBreakdown
}

// Assemble 견적 요청과 계산 결과로 견적서 데이터를 구성
// now는 견적일자로 그대로 찍힌다
func Assemble(req *model.QuoteRequest, price *model.PriceBreakdown, now time.Time) *Quotation {
	name := req.CustomerName
	if name == "" {
		name = "고객님"
	}
	return &Quotation{
		CustomerName: name,
		ProductName:  req.ProductName(),
		PrintType:    req.PrintType,
		PrintMethod:  req.PrintMethod,
		BindingType:  req.BindingType,
		Pages:        req.Pages,
		Quantity:     req.Quantity,
		PaperSize:    req.PaperSize(),
		QuotedAt:     now,
		Price:        price,
	}
}

// DateLabel 견적일자 표기 ("2026년 8월 31일")
func (q *Quotation) DateLabel() string {
	return q.QuotedAt.Format("2006년 1월 2일")
}
