package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the caller. With a secret configured the bearer
// token decides and a conflicting userId query answers 404, so callers
// cannot probe other users. Without a secret the userId query is trusted.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	queryUserID, hasQueryUser, err := parseUserIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if !handler.authEnabled() {
		if !hasQueryUser {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		c.Locals(contextUserIDKey, queryUserID)
		return c.Next()
	}

	userID, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if hasQueryUser && queryUserID != userID {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}

func parseUserIDQuery(c *fiber.Ctx) (uint, bool, error) {
	raw := strings.TrimSpace(c.Query(userIDQueryParam))
	if raw == "" {
		return 0, false, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, false, strconv.ErrSyntax
	}
	return uint(parsed), true, nil
}
