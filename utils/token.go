package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ujjwalnp/ZenithTREKS/models"
)

// AuthCookieName is the cookie carrying the signed session token.
const AuthCookieName = "auth_token"

// TokenTTL is how long an issued session credential stays valid.
const TokenTTL = 7 * 24 * time.Hour

// CreateToken signs a session credential for the given user.
func CreateToken(user models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"name":    user.Name,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies a session credential and returns its claims, or an
// error if the token is missing, malformed, expired or badly signed.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
