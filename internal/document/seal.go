package document

// 직인 규격 (mm)
const (
	sealSize             = 30.0
	sealOuterStrokeWidth = 3.0
	sealInnerStrokeWidth = 1.0
)

// drawSeal 직인을 그린다
//
// x, y는 직인이 들어갈 정사각형 영역의 좌상단 좌표. 빨간 동심원
// 두 개 안에 상호를 위, 대표자명을 아래에 배치한다
func (d *pdfDoc) drawSeal(x, y float64) {
	cx := x + sealSize/2
	cy := y + sealSize/2

	d.pdf.SetDrawColor(220, 53, 69)
	d.pdf.SetTextColor(220, 53, 69)

	d.pdf.SetLineWidth(sealOuterStrokeWidth)
	d.pdf.Circle(cx, cy, sealSize/2-1, "D")

	d.pdf.SetLineWidth(sealInnerStrokeWidth)
	d.pdf.Circle(cx, cy, sealSize/2-3, "D")

	d.pdf.SetFont(d.fontName, "", 10)
	d.pdf.SetXY(x, cy-5.5)
	d.pdf.CellFormat(sealSize, 4, d.tr(CompanyName), "", 0, "C", false, 0, "")

	d.pdf.SetFont(d.fontName, "", 8)
	d.pdf.SetXY(x, cy+1.5)
	d.pdf.CellFormat(sealSize, 4, d.tr(CompanyCEO), "", 0, "C", false, 0, "")

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetLineWidth(0.2)
}
