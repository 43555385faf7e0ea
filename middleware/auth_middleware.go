package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/ujjwalnp/ZenithTREKS/configs"
	"github.com/ujjwalnp/ZenithTREKS/models"
	"github.com/ujjwalnp/ZenithTREKS/utils"
)

// Protected requires a valid session cookie on the request.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  []byte(config.Config("JWT_SECRET")),
		TokenLookup: "cookie:" + utils.AuthCookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Unauthorized"})
		},
	})
}

// OptionalAuth attaches session claims when a valid cookie is present but
// never rejects the request. Booking creation is open to anonymous
// visitors yet records the user when one is signed in.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(utils.AuthCookieName)
		if token != "" {
			if claims, err := utils.ParseToken(token, config.Config("JWT_SECRET")); err == nil {
				c.Locals("user", claims)
			}
		}
		return c.Next()
	}
}

// AdminRequired gates mutation endpoints on the admin role. It is the one
// place the role claim is inspected.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := SessionClaims(c)
		if claims == nil || claims["role"] != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}

// SessionClaims returns the verified session claims for the request, or
// nil for anonymous callers. It understands both the jwtware token set by
// Protected and the bare claims set by OptionalAuth.
func SessionClaims(c *fiber.Ctx) jwt.MapClaims {
	switch v := c.Locals("user").(type) {
	case *jwt.Token:
		if claims, ok := v.Claims.(jwt.MapClaims); ok {
			return claims
		}
	case jwt.MapClaims:
		return v
	}
	return nil
}

// SessionUserID extracts the numeric user id from the session claims.
func SessionUserID(c *fiber.Ctx) (uint, bool) {
	claims := SessionClaims(c)
	if claims == nil {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}
