package util

import (
	"golang.org/x/crypto/bcrypt"
)

// 관리자 계정 비밀번호 해시 비용
const bcryptCost = 12

// HashPassword 비밀번호를 bcrypt 해시로 변환
// ADMIN_PASSWORD_HASH 환경 변수 값 생성에 사용한다
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword 입력한 비밀번호가 저장된 해시와 일치하는지 확인
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
