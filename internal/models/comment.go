package models

import (
	"time"
)

// Comment 큐레이션에 대한 스타일 작성자의 답글.
// curation_id의 unique 인덱스가 큐레이션당 답글 하나를 보장한다.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CurationID uint      `json:"curationId" gorm:"not null;uniqueIndex"`
	Nickname   string    `json:"nickname" gorm:"size:50;not null"`
	Password   string    `json:"-" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CommentCreateRequest struct {
	Content  string `json:"content" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type CommentUpdateRequest struct {
	Content  string `json:"content" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
