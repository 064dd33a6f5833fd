package pricing

import "github.com/onnuriprint/onnuriprint-backend/internal/app/model"

// 단가표 (2025.01.02 공식 가격표 고정)
//
// 출력 단가는 총 페이지 수(페이지 × 수량) 구간으로, 제본 단가는 수량
// 구간으로 결정된다. 수량 할인은 제본 단가표에 이미 반영되어 있어
// 별도의 할인율은 존재하지 않는다.

// PrintRate 출력 방식별 페이지당 단가 (원)
type PrintRate struct {
	Single int64 // 단면
	Double int64 // 양면
}

// PrintBracket 총 페이지 수 구간별 출력 단가
type PrintBracket struct {
	MaxTotalPages int64 // 구간 상한 (0이면 무제한)
	Rates         map[model.PrintType]PrintRate
}

// BindingTier 수량 구간별 제본 단가 (부당, 원)
type BindingTier struct {
	MaxQuantity int64 // 구간 상한 (0이면 무제한)
	UnitPrice   int64
}

// Table 견적 계산에 쓰이는 전체 단가표
// 프로세스 기동 시 한 번 만들어 엔진에 주입하는 읽기 전용 설정이다
type Table struct {
	PrintBrackets []PrintBracket
	BindingTiers  map[model.BindingType][]BindingTier
	TaxRatePct    int64 // 부가세율 (%)
}

// DefaultTable 공식 단가표 반환
func DefaultTable() *Table {
	return &Table{
		PrintBrackets: []PrintBracket{
			{
				MaxTotalPages: 500,
				Rates: map[model.PrintType]PrintRate{
					model.PrintBlackWhite: {Single: 40, Double: 40},
					model.PrintLaserColor: {Single: 150, Double: 150},
					model.PrintInkColor:   {Single: 70, Double: 70},
				},
			},
			{
				MaxTotalPages: 5000,
				Rates: map[model.PrintType]PrintRate{
					model.PrintBlackWhite: {Single: 38, Double: 33},
					model.PrintLaserColor: {Single: 115, Double: 110},
					model.PrintInkColor:   {Single: 66, Double: 60},
				},
			},
			{
				MaxTotalPages: 10000,
				Rates: map[model.PrintType]PrintRate{
					model.PrintBlackWhite: {Single: 30, Double: 25},
					model.PrintLaserColor: {Single: 93, Double: 88},
					model.PrintInkColor:   {Single: 55, Double: 50},
				},
			},
			{
				MaxTotalPages: 15000,
				Rates: map[model.PrintType]PrintRate{
					model.PrintBlackWhite: {Single: 27, Double: 22},
					model.PrintLaserColor: {Single: 82, Double: 77},
					model.PrintInkColor:   {Single: 50, Double: 45},
				},
			},
			{
				// 15,001 페이지 이상
				MaxTotalPages: 0,
				Rates: map[model.PrintType]PrintRate{
					model.PrintBlackWhite: {Single: 25, Double: 20},
					model.PrintLaserColor: {Single: 72, Double: 66},
					model.PrintInkColor:   {Single: 45, Double: 40},
				},
			},
		},
		BindingTiers: map[model.BindingType][]BindingTier{
			model.BindingRing: {
				{MaxQuantity: 30, UnitPrice: 2200},
				{MaxQuantity: 49, UnitPrice: 1650},
				{MaxQuantity: 99, UnitPrice: 1430},
				{MaxQuantity: 0, UnitPrice: 1100},
			},
			model.BindingPerfect: {
				{MaxQuantity: 30, UnitPrice: 2200},
				{MaxQuantity: 49, UnitPrice: 1100},
				{MaxQuantity: 99, UnitPrice: 770},
				{MaxQuantity: 0, UnitPrice: 770},
			},
			model.BindingSaddle: {
				{MaxQuantity: 0, UnitPrice: 330},
			},
			model.BindingFolding: {
				{MaxQuantity: 0, UnitPrice: 500},
			},
		},
		TaxRatePct: 10,
	}
}

// printRate 총 페이지 수 구간에 해당하는 출력 단가 조회
// 알 수 없는 출력 방식은 흑백 단가로 대체한다 (폴백 여부를 함께 반환)
func (t *Table) printRate(printType model.PrintType, printMethod model.PrintMethod, totalPages int64) (int64, bool) {
	var bracket PrintBracket
	for _, b := range t.PrintBrackets {
		bracket = b
		if b.MaxTotalPages == 0 || totalPages <= b.MaxTotalPages {
			break
		}
	}

	fallback := false
	rate, ok := bracket.Rates[printType]
	if !ok {
		rate = bracket.Rates[model.PrintBlackWhite]
		fallback = true
	}

	if printMethod == model.PrintMethodDouble {
		return rate.Double, fallback
	}
	return rate.Single, fallback
}

// bindingRate 수량 구간에 해당하는 제본 단가 조회
// 알 수 없는 제본 방식은 제본비 0원으로 대체한다 (폴백 여부를 함께 반환)
func (t *Table) bindingRate(bindingType model.BindingType, quantity int64) (int64, bool) {
	tiers, ok := t.BindingTiers[bindingType]
	if !ok {
		return 0, true
	}

	for _, tier := range tiers {
		if tier.MaxQuantity == 0 || quantity <= tier.MaxQuantity {
			return tier.UnitPrice, false
		}
	}
	return 0, false
}
