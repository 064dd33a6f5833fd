package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 에러를 파싱하여 사용자 친화적인 메시지와 코드로 변환
// 보안상 민감한 정보는 숨기되, 사용자가 문제를 해결할 수 있는 정보 제공
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errStrLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// PostgreSQL unique constraint violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "이미 등록된 정보입니다",
		}
	}

	// 연결 오류
	if strings.Contains(errStrLower, "connection refused") || strings.Contains(errStrLower, "connection reset") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "일시적인 서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요",
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "order":
		return "주문을 찾을 수 없습니다"
	case "lead":
		return "고객 정보를 찾을 수 없습니다"
	default:
		return "요청한 정보를 찾을 수 없습니다"
	}
}
