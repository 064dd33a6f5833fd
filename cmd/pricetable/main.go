package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/onnuriprint/onnuriprint-backend/internal/app/model"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
)

// 단가표를 엑셀 파일로 내보낸다 (매장 게시용)
func main() {
	outPath := "단가표.xlsx"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	table := pricing.DefaultTable()

	f := excelize.NewFile()
	defer f.Close()

	if err := writePrintSheet(f, table); err != nil {
		log.Fatal("출력 단가 시트 작성 실패:", err)
	}
	if err := writeBindingSheet(f, table); err != nil {
		log.Fatal("제본 단가 시트 작성 실패:", err)
	}

	// excelize 기본 시트 제거
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(outPath); err != nil {
		log.Fatal("파일 저장 실패:", err)
	}
	fmt.Printf("단가표 저장 완료: %s\n", outPath)
}

func writePrintSheet(f *excelize.File, table *pricing.Table) error {
	const sheet = "출력단가"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"총 페이지 구간", "출력 방식", "단면(원)", "양면(원)"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	printTypes := []model.PrintType{
		model.PrintBlackWhite,
		model.PrintLaserColor,
		model.PrintInkColor,
	}

	rowIdx := 2
	var lower int64 = 1
	for _, bracket := range table.PrintBrackets {
		label := bracketLabel(lower, bracket.MaxTotalPages)
		for _, pt := range printTypes {
			rate := bracket.Rates[pt]
			row := []interface{}{label, model.PrintTypeLabel(pt), rate.Single, rate.Double}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
			rowIdx++
		}
		lower = bracket.MaxTotalPages + 1
	}
	return nil
}

func writeBindingSheet(f *excelize.File, table *pricing.Table) error {
	const sheet = "제본단가"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"제본 방식", "수량 구간", "부당 단가(원)"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	bindingTypes := []model.BindingType{
		model.BindingRing,
		model.BindingPerfect,
		model.BindingSaddle,
		model.BindingFolding,
	}

	rowIdx := 2
	for _, bt := range bindingTypes {
		var lower int64 = 1
		for _, tier := range table.BindingTiers[bt] {
			row := []interface{}{
				model.BindingTypeLabel(bt),
				bracketLabel(lower, tier.MaxQuantity),
				tier.UnitPrice,
			}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
			rowIdx++
			lower = tier.MaxQuantity + 1
		}
	}
	return nil
}

func bracketLabel(lower, upper int64) string {
	if upper == 0 {
		return fmt.Sprintf("%d 이상", lower)
	}
	return fmt.Sprintf("%d ~ %d", lower, upper)
}
