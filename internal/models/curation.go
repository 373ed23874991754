package models

import (
	"time"
)

type Curation struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	StyleID           uint      `json:"styleId" gorm:"not null;index"`
	Nickname          string    `json:"nickname" gorm:"size:50;not null"`
	Password          string    `json:"-" gorm:"size:255;not null"`
	Content           string    `json:"content" gorm:"type:text;not null"`
	Trendy            int       `json:"trendy" gorm:"not null"`
	Personality       int       `json:"personality" gorm:"not null"`
	Practicality      int       `json:"practicality" gorm:"not null"`
	CostEffectiveness int       `json:"costEffectiveness" gorm:"not null"`
	CreatedAt         time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt         time.Time `json:"updatedAt"`

	Style   Style    `json:"-" gorm:"foreignKey:StyleID"`
	Comment *Comment `json:"comment,omitempty" gorm:"foreignKey:CurationID"`
}

// 점수는 0도 유효한 값이므로 포인터로 받아 누락과 구분한다.
type CurationCreateRequest struct {
	Nickname          string `json:"nickname" validate:"required,max=50"`
	Password          string `json:"password" validate:"required"`
	Content           string `json:"content" validate:"required"`
	Trendy            *int   `json:"trendy" validate:"required,min=0,max=10"`
	Personality       *int   `json:"personality" validate:"required,min=0,max=10"`
	Practicality      *int   `json:"practicality" validate:"required,min=0,max=10"`
	CostEffectiveness *int   `json:"costEffectiveness" validate:"required,min=0,max=10"`
}

type CurationUpdateRequest struct {
	Password          string  `json:"password" validate:"required"`
	Content           *string `json:"content"`
	Trendy            *int    `json:"trendy" validate:"omitempty,min=0,max=10"`
	Personality       *int    `json:"personality" validate:"omitempty,min=0,max=10"`
	Practicality      *int    `json:"practicality" validate:"omitempty,min=0,max=10"`
	CostEffectiveness *int    `json:"costEffectiveness" validate:"omitempty,min=0,max=10"`
}

type CurationListRequest struct {
	Page     int    `form:"page" validate:"min=0"`
	PageSize int    `form:"pageSize" validate:"min=0,max=100"`
	SearchBy string `form:"searchBy" validate:"omitempty,oneof=nickname content"`
	Keyword  string `form:"keyword"`
}

type CurationResponse struct {
	ID                uint      `json:"id"`
	Nickname          string    `json:"nickname"`
	Content           string    `json:"content"`
	Trendy            int       `json:"trendy"`
	Personality       int       `json:"personality"`
	Practicality      int       `json:"practicality"`
	CostEffectiveness int       `json:"costEffectiveness"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CurationListItem 목록 조회 시 최신 답글 하나를 함께 내려준다.
// 답글이 없으면 빈 객체가 된다.
type CurationListItem struct {
	CurationResponse
	Comment any `json:"comment"`
}
