package models

import (
	"time"
)

type Review struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Rating      int    `gorm:"not null" json:"rating"`
	Description string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
