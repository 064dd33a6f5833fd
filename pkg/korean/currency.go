package korean

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var wonPrinter = message.NewPrinter(language.Korean)

// FormatComma 정수를 천 단위 콤마 표기로 변환 (1234567 → "1,234,567")
func FormatComma(n int64) string {
	return wonPrinter.Sprintf("%d", n)
}

// FormatWon 원화 금액 표기 (1234567 → "1,234,567원")
func FormatWon(n int64) string {
	return FormatComma(n) + "원"
}
