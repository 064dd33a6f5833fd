package korean

import "strconv"

// 한자어 수사 구성 요소
var (
	digitWords     = []string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	smallUnitWords = []string{"", "십", "백", "천"}
	bigUnitWords   = []string{"", "만", "억", "조"}
)

// ToKoreanNumeral 음이 아닌 정수를 한자어 수사 문자열로 변환
// 합계금액의 "일금 ○○○원정" 표기에 사용한다
//
// 자릿수를 일의 자리부터 훑으면서 4자리 묶음 내 위치(십/백/천)와
// 묶음 단위(만/억/조)를 붙인다. "일"은 십/백/천 앞에서는 생략하고
// (10 → "십"), 만/억/조 묶음 경계에서는 유지한다 (10000 → "일만")
func ToKoreanNumeral(n int64) string {
	if n == 0 {
		return "영"
	}
	if n < 0 {
		return ""
	}

	digits := strconv.FormatInt(n, 10)
	var parts []string
	lastGroup := -1

	// 일의 자리부터 역순으로 처리한 뒤 마지막에 뒤집는다
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i] - '0'
		if d == 0 {
			continue
		}

		// 묶음 단위는 해당 묶음에서 처음 만나는 0이 아닌 자리에서 붙인다
		// (20500처럼 묶음 첫 자리가 0이어도 "만"이 빠지지 않도록)
		if group := i / 4; group > 0 && group != lastGroup && group < len(bigUnitWords) {
			parts = append(parts, bigUnitWords[group])
		}
		lastGroup = i / 4

		smallIdx := i % 4
		if smallIdx > 0 {
			parts = append(parts, smallUnitWords[smallIdx])
		}

		if d != 1 || smallIdx == 0 {
			parts = append(parts, digitWords[d])
		}
	}

	var out string
	for i := len(parts) - 1; i >= 0; i-- {
		out += parts[i]
	}
	return out
}
