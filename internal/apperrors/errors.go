package apperrors

import (
	"net/http"
)

// AppError 서비스 계층에서 올라오는 도메인 에러.
// 여기에 해당하지 않는 에러는 전부 500으로 처리된다.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func BadRequest() *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: "잘못된 요청입니다"}
}

func Forbidden() *AppError {
	return &AppError{Code: http.StatusForbidden, Message: "비밀번호가 틀렸습니다"}
}

func NotFound() *AppError {
	return &AppError{Code: http.StatusNotFound, Message: "존재하지 않습니다"}
}

// Conflict 답글 중복처럼 유일성 제약에 걸린 경우.
// 원 서비스와 동일하게 400으로 내려준다.
func Conflict() *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: "잘못된 요청입니다"}
}
