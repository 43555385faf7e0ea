package models

import (
	"time"
)

type Trip struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Slug        string  `gorm:"size:255;not null;unique" json:"slug"`
	Country     string  `gorm:"size:50;not null" json:"country"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    string  `gorm:"size:100" json:"duration"`
	Thumbnail   string  `gorm:"size:512" json:"thumbnail"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
