package models

import (
	"time"
)

type Style struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Content       string    `json:"content" gorm:"type:text"`
	Nickname      string    `json:"nickname" gorm:"size:50;not null"`
	Password      string    `json:"-" gorm:"size:255;not null"`
	ViewCount     int       `json:"viewCount" gorm:"default:0"`
	CurationCount int       `json:"curationCount" gorm:"default:0"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// 연관
	Categories []Category `json:"categories,omitempty" gorm:"foreignKey:StyleID"`
	Images     []Image    `json:"images,omitempty" gorm:"foreignKey:StyleID"`
	Tags       []Tag      `json:"tags,omitempty" gorm:"many2many:style_tags;"`
	Curations  []Curation `json:"curations,omitempty" gorm:"foreignKey:StyleID"`
}

// Category 스타일을 구성하는 아이템 하나 (상의/하의/신발 등)
type Category struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	StyleID uint   `json:"-" gorm:"not null;index"`
	Type    string `json:"type" gorm:"size:20;not null"`
	Name    string `json:"name" gorm:"size:100;not null"`
	Brand   string `json:"brand" gorm:"size:100"`
	Price   int    `json:"price" gorm:"default:0"`
}

// Image 업로드된 이미지의 URL만 보관한다. 첫 번째 이미지가 썸네일이다.
type Image struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	StyleID  uint   `json:"-" gorm:"not null;index"`
	URL      string `json:"url" gorm:"size:500;not null"`
	Position int    `json:"-" gorm:"default:0"`
}

type CategoryInput struct {
	Type  string `json:"type" validate:"required,categorytype"`
	Name  string `json:"name" validate:"required,max=100"`
	Brand string `json:"brand" validate:"max=100"`
	Price int    `json:"price" validate:"min=0"`
}

type StyleCreateRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Title      string          `json:"title" validate:"required,max=255"`
	Nickname   string          `json:"nickname" validate:"required,max=50"`
	Password   string          `json:"password" validate:"required"`
	Content    string          `json:"content" validate:"required"`
	Description string         `json:"description"`
	Categories []CategoryInput `json:"categories" validate:"dive"`
	Tags       []string        `json:"tags" validate:"max=10,dive,required,max=50"`
	ImageURLs  []string        `json:"imageUrls" validate:"dive,required,max=500"`
}

type StyleUpdateRequest struct {
	Password    string           `json:"password" validate:"required"`
	Name        *string          `json:"name" validate:"omitempty,max=100"`
	Title       *string          `json:"title" validate:"omitempty,max=255"`
	Nickname    *string          `json:"nickname" validate:"omitempty,max=50"`
	Content     *string          `json:"content"`
	Description *string          `json:"description"`
	Categories  *[]CategoryInput `json:"categories" validate:"omitempty,dive"`
	Tags        *[]string        `json:"tags" validate:"omitempty,max=10,dive,required,max=50"`
	ImageURLs   *[]string        `json:"imageUrls" validate:"omitempty,dive,required,max=500"`
}

type StyleListRequest struct {
	Page     int    `form:"page" validate:"min=0"`
	PageSize int    `form:"pageSize" validate:"min=0,max=100"`
	SearchBy string `form:"searchBy" validate:"omitempty,oneof=title nickname description tag"`
	Keyword  string `form:"keyword"`
	SortBy   string `form:"sortBy" validate:"omitempty,oneof=latest mostViewed mostCurated"`
}

// StyleResponse 비밀번호를 제외하고, 태그는 이름 배열로 내려준다.
type StyleResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Content       string          `json:"content"`
	Nickname      string          `json:"nickname"`
	ViewCount     int             `json:"viewCount"`
	CurationCount int             `json:"curationCount"`
	Categories    []CategoryInput `json:"categories"`
	Tags          []string        `json:"tags"`
	ImageURLs     []string        `json:"imageUrls"`
	Thumbnail     string          `json:"thumbnail,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
