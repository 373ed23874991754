package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 저장된 값이 평문인 레거시 데이터가 남아 있어
// 먼저 평문 비교를 시도하고, 실패하면 bcrypt 해시($2 접두사)로 비교한다.
func VerifyPassword(password, stored string) bool {
	if stored == "" {
		return false
	}
	if password == stored {
		return true
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return false
}
