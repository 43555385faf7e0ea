package models

import (
	"time"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three persistable
// booking states. Admins may write any of them at any time; there is no
// further transition constraint.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       *uint   `json:"user_id"` // nil for anonymous bookings
	TripID       uint    `gorm:"not null" json:"trip_id"`
	FullName     string  `gorm:"size:255;not null" json:"full_name"`
	Email        string  `gorm:"size:255;not null" json:"email"`
	Phone        string  `gorm:"size:50;not null" json:"phone"`
	Participants int     `gorm:"not null" json:"participants"`
	TotalPrice   float64 `gorm:"not null" json:"total_price"`
	BookingDate  string  `gorm:"size:50;not null" json:"booking_date"`
	Status       string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	Trip Trip  `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
