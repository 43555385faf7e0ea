package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPriceSingleParticipant(t *testing.T) {
	total, err := TotalPrice(1000, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, total, "a single participant pays exactly the unit price")
}

func TestTotalPriceGroupDiscount(t *testing.T) {
	// 1000 * 3 * 0.95^2 = 2707.50
	total, err := TotalPrice(1000, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2707.50, total, 1e-9)
}

func TestTotalPriceMonotonic(t *testing.T) {
	const unitPrice = 499.99

	prev, err := TotalPrice(unitPrice, 1)
	require.NoError(t, err)
	prevMarginal := prev

	for n := 2; n <= 12; n++ {
		total, err := TotalPrice(unitPrice, n)
		require.NoError(t, err)

		assert.Greater(t, total, prev, "total must grow with participants (n=%d)", n)

		marginal := total - prev
		assert.Less(t, marginal, prevMarginal, "marginal price must shrink (n=%d)", n)

		prev = total
		prevMarginal = marginal
	}
}

func TestTotalPriceRejectsBadInput(t *testing.T) {
	_, err := TotalPrice(1000, 0)
	assert.ErrorIs(t, err, ErrInvalidParticipants)

	_, err = TotalPrice(1000, -3)
	assert.ErrorIs(t, err, ErrInvalidParticipants)

	_, err = TotalPrice(0, 2)
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)

	_, err = TotalPrice(-50, 2)
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)
}
