package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool
}

type claims struct {
	OrgID string `json:"org_id"`
	jwt.RegisteredClaims
}

// AuthJWT verifies the bearer token and puts user_id + org_id into Locals.
// Issuing tokens is the auth provider's job; this service only verifies.
func AuthJWT(opts AuthJWTOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := tokenFromRequest(c, opts.AllowCookieFallback)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		var cl claims
		token, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return []byte(opts.Secret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		if strings.TrimSpace(cl.OrgID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "org_id missing in token")
		}

		c.Locals("user_id", cl.Subject)
		c.Locals("org_id", cl.OrgID)
		return c.Next()
	}
}

func tokenFromRequest(c *fiber.Ctx, cookieFallback bool) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookieFallback {
		return strings.TrimSpace(c.Cookies("access_token"))
	}
	return ""
}
