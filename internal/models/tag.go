package models

import (
	"time"
)

// Tag 스타일이 참조할 때마다 count가 1씩 오르내린다. 0 아래로는 내려가지 않는다.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Count     int       `json:"count" gorm:"default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Styles []Style `json:"-" gorm:"many2many:style_tags;"`
}

func (Tag) TableName() string {
	return "tags"
}
