package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/onnuriprint/onnuriprint-backend/pkg/korean"
)

// 견적서 지면 규격 (mm)
const (
	pageMargin = 15.0

	infoLabelWidth = 25.0
	infoValueWidth = 60.0
	infoRowHeight  = 7.0

	totalRowHeight = 12.0

	itemRowHeight   = 9.0
	itemFillerRows  = 3
)

// 상품 상세 테이블 열 너비 (상품명/단가적용구간/규격/수량/단가/공급가액/세액/비고)
var itemColWidths = []float64{35, 20, 15, 15, 20, 25, 20, 15}

// 합계금액 행 열 너비 (합계금액/금액/일금/한글금액)
var totalColWidths = []float64{25, 35, 25, 55}

// PDFRenderer 견적서 PDF 렌더러
type PDFRenderer struct {
	font *KoreanFont
}

// NewPDFRenderer PDF 렌더러 생성 (font는 nil 허용)
func NewPDFRenderer(font *KoreanFont) *PDFRenderer {
	if font == nil {
		font = &KoreanFont{}
	}
	return &PDFRenderer{font: font}
}

// pdfDoc 렌더링 중인 문서 상태
type pdfDoc struct {
	pdf      *fpdf.Fpdf
	fontName string
	tr       func(string) string
}

// Render 견적서 PDF 생성
//
// A4 세로, 여백 15mm. 제목 아래에 수신/견적일자(좌)와 공급자 정보(우)를
// 나란히 배치하고 합계금액, 상품 상세, 직인 순으로 그린다
func (r *PDFRenderer) Render(q *Quotation) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	doc := &pdfDoc{pdf: pdf, fontName: "Helvetica", tr: func(s string) string { return s }}
	if len(r.font.Data) > 0 {
		pdf.AddUTF8FontFromBytes(r.font.Name, "", r.font.Data)
		doc.fontName = r.font.Name
	} else {
		// 한글 폰트가 없으면 내장 폰트 문자표로 근사 변환
		doc.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()

	doc.drawTitle()
	doc.drawInfoTables(q)
	doc.drawLeadText()
	doc.drawTotalRow(q)
	doc.drawItemTable(q)
	doc.drawSeal(210-pageMargin-sealSize, 297-pageMargin-sealSize-10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("견적서 PDF 생성 실패: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *pdfDoc) drawTitle() {
	d.pdf.SetFont(d.fontName, "", 24)
	d.pdf.CellFormat(0, 12, d.tr("견  적  서"), "", 1, "C", false, 0, "")
	d.pdf.Ln(6)
}

// drawInfoTables 수신자 정보(좌)와 공급자 정보(우)
func (d *pdfDoc) drawInfoTables(q *Quotation) {
	top := d.pdf.GetY()
	d.pdf.SetFont(d.fontName, "", 9)

	leftRows := [][2]string{
		{"수신", q.CustomerName},
		{"견적일자", q.DateLabel()},
	}
	d.pdf.SetXY(pageMargin, top)
	for _, row := range leftRows {
		d.infoRow(pageMargin, row[0], row[1])
	}

	rightRows := [][2]string{
		{"상호", CompanyName},
		{"사업자번호", CompanyBizNumber},
		{"대표자", CompanyCEO},
		{"주소", CompanyAddress},
		{"업태", CompanyBizType},
		{"종목", CompanyBizItem},
		{"사업자계좌번호", CompanyBankAcct},
		{"전화번호", CompanyPhone},
	}
	rightX := pageMargin + infoLabelWidth + infoValueWidth
	d.pdf.SetXY(rightX, top)
	for _, row := range rightRows {
		d.infoRow(rightX, row[0], row[1])
	}

	d.pdf.SetXY(pageMargin, top+float64(len(rightRows))*infoRowHeight)
	d.pdf.Ln(4)
}

// infoRow 라벨 칸은 회색 배경, 값 칸은 흰 배경의 한 행
func (d *pdfDoc) infoRow(x float64, label, value string) {
	y := d.pdf.GetY()
	d.pdf.SetXY(x, y)
	d.pdf.SetFillColor(246, 246, 246)
	d.pdf.CellFormat(infoLabelWidth, infoRowHeight, d.tr(label), "1", 0, "C", true, 0, "")

	// 긴 주소는 글자 크기를 줄여 한 칸에 담는다
	size := 9.0
	for size > 5 && d.pdf.GetStringWidth(d.tr(value)) > infoValueWidth-3 {
		size -= 0.5
		d.pdf.SetFontSize(size)
	}
	d.pdf.CellFormat(infoValueWidth, infoRowHeight, d.tr(value), "1", 0, "C", false, 0, "")
	d.pdf.SetFontSize(9)
	d.pdf.SetXY(x, y+infoRowHeight)
}

func (d *pdfDoc) drawLeadText() {
	d.pdf.SetX(pageMargin)
	d.pdf.SetFont(d.fontName, "", 10)
	d.pdf.CellFormat(0, 6, d.tr("아래와 같이 견적 합니다"), "", 1, "L", false, 0, "")
	d.pdf.Ln(3)
}

// drawTotalRow 합계금액과 한글 금액 표기
// 메일 본문의 총 가격과 같은 공급가액 기준 금액을 쓴다
func (d *pdfDoc) drawTotalRow(q *Quotation) {
	total := q.Price.TotalPrice

	d.pdf.SetX(pageMargin)
	d.pdf.SetFont(d.fontName, "", 14)
	d.pdf.CellFormat(totalColWidths[0], totalRowHeight, d.tr("합계금액"), "1", 0, "C", false, 0, "")
	d.pdf.SetFontSize(16)
	d.pdf.CellFormat(totalColWidths[1], totalRowHeight, d.tr("₩ "+korean.FormatComma(total)), "1", 0, "C", false, 0, "")
	d.pdf.SetFontSize(14)
	d.pdf.CellFormat(totalColWidths[2], totalRowHeight, d.tr("일금"), "1", 0, "C", false, 0, "")
	d.pdf.SetFontSize(12)
	d.pdf.CellFormat(totalColWidths[3], totalRowHeight, d.tr("("+korean.ToKoreanNumeral(total)+"원)"), "1", 1, "C", false, 0, "")
	d.pdf.Ln(3)
}

// drawItemTable 상품 상세 (헤더 + 상품 행 + 빈 행)
func (d *pdfDoc) drawItemTable(q *Quotation) {
	headers := []string{"상품명", "단가적용구간", "규격", "수량", "단가", "공급가액", "세액", "비고"}

	d.pdf.SetX(pageMargin)
	d.pdf.SetFont(d.fontName, "", 9)
	d.pdf.SetFillColor(246, 246, 246)
	for i, h := range headers {
		d.pdf.CellFormat(itemColWidths[i], itemRowHeight, d.tr(h), "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)

	cells := []string{
		q.ProductName,
		fmt.Sprintf("%d페이지", q.Pages),
		q.PaperSize,
		fmt.Sprintf("%d", q.Quantity),
		"₩" + korean.FormatComma(q.Price.UnitPrice),
		"₩" + korean.FormatComma(q.Price.TotalPrice),
		"₩" + korean.FormatComma(q.Price.TaxAmount),
		"",
	}
	d.pdf.SetX(pageMargin)
	for i, cell := range cells {
		align := "C"
		if i == 0 {
			align = "L"
		}
		d.pdf.CellFormat(itemColWidths[i], itemRowHeight, d.tr(cell), "1", 0, align, false, 0, "")
	}
	d.pdf.Ln(-1)

	for r := 0; r < itemFillerRows; r++ {
		d.pdf.SetX(pageMargin)
		for i := range itemColWidths {
			d.pdf.CellFormat(itemColWidths[i], itemRowHeight, "", "1", 0, "C", false, 0, "")
		}
		d.pdf.Ln(-1)
	}
}
