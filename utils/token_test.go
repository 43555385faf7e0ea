package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujjwalnp/ZenithTREKS/models"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		ID:    42,
		Name:  "Pema Sherpa",
		Email: "pema@example.com",
		Role:  models.RoleAdmin,
	}

	token, err := CreateToken(user, testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "pema@example.com", claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, "Pema Sherpa", claims["name"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(TokenTTL).Unix(), int64(exp), 5,
		"credential must expire 7 days out")
}

func TestParseTokenRejectsBadSecret(t *testing.T) {
	token, err := CreateToken(models.User{ID: 1, Role: models.RoleUser}, testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}
