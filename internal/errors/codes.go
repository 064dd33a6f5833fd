package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"  // 접근 권한 없음
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // 범위 초과
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // 리소스 없음
	ResourceConflict = "RESOURCE_CONFLICT"  // 충돌

	// ==================== 견적 (QUOTE_) ====================
	QuoteComputeFailed  = "QUOTE_COMPUTE_FAILED"  // 견적 계산 실패
	QuoteDocumentFailed = "QUOTE_DOCUMENT_FAILED" // 견적서 생성 실패
	QuoteEmailFailed    = "QUOTE_EMAIL_FAILED"    // 견적 메일 발송 실패
	QuoteEmailThrottled = "QUOTE_EMAIL_THROTTLED" // 견적 메일 발송 제한

	// ==================== 주문 (ORDER_) ====================
	OrderNotFound     = "ORDER_NOT_FOUND"     // 주문 없음
	OrderCreateFailed = "ORDER_CREATE_FAILED" // 주문 생성 실패

	// ==================== 리드 (LEAD_) ====================
	LeadNotFound   = "LEAD_NOT_FOUND"   // 리드 없음
	LeadSaveFailed = "LEAD_SAVE_FAILED" // 리드 저장 실패

	// ==================== 시스템 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
)
