package document

import (
	"os"

	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
)

// KoreanFont 견적서에 쓸 한글 TTF 폰트
// Data가 nil이면 등록된 한글 폰트가 없다는 뜻이다
type KoreanFont struct {
	Name string
	Data []byte
}

// LoadKoreanFont 후보 경로에서 한글 폰트를 찾아 로드
//
// 첫 번째로 읽히는 TTF를 사용하고, 하나도 없으면 nil Data로 반환한다.
// 폰트가 없어도 견적서 생성은 실패하지 않는다 (라틴 폰트로 대체)
func LoadKoreanFont(candidatePaths []string) *KoreanFont {
	for _, path := range candidatePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		logger.Info("한글 폰트 로드 완료", map[string]interface{}{
			"path": path,
			"size": len(data),
		})
		return &KoreanFont{Name: "Korean", Data: data}
	}

	logger.Warn("한글 폰트를 찾을 수 없어 기본 폰트로 대체합니다", map[string]interface{}{
		"candidates": len(candidatePaths),
	})
	return &KoreanFont{}
}
