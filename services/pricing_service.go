package services

import (
	"errors"
	"math"
)

// groupDiscountRate is the per-additional-participant discount applied to
// the whole group total: each participant beyond the first compounds a 5%
// discount factor onto the naive unitPrice * n product.
const groupDiscountRate = 0.05

var (
	ErrInvalidParticipants = errors.New("participants cannot be less than 1")
	ErrInvalidUnitPrice    = errors.New("unit price must be positive")
)

// TotalPrice computes the payable total for a booking. A single participant
// pays exactly unitPrice; a group of n pays unitPrice * n * 0.95^(n-1).
// The result is kept at full precision; rounding to the currency's minor
// unit happens at presentation time only.
func TotalPrice(unitPrice float64, participants int) (float64, error) {
	if participants < 1 {
		return 0, ErrInvalidParticipants
	}
	if unitPrice <= 0 {
		return 0, ErrInvalidUnitPrice
	}
	if participants == 1 {
		return unitPrice, nil
	}

	factor := math.Pow(1-groupDiscountRate, float64(participants-1))
	return unitPrice * float64(participants) * factor, nil
}
