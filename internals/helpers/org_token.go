package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" not found in token")
	}

	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" empty in token")
		}
		return uuid.Parse(strings.TrimSpace(t))
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key+" format in token")
}

// GetOrgIDFromToken returns the organization the request is scoped to.
// Every query in every controller must filter on this id.
func GetOrgIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "org_id")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "user_id")
}
