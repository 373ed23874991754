package models

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// PagedResponse 목록 조회 공통 응답 형식
type PagedResponse struct {
	CurrentPage    int `json:"currentPage"`
	TotalPages     int `json:"totalPages"`
	TotalItemCount int `json:"totalItemCount"`
	Data           any `json:"data"`
}
