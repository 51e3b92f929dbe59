package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/service/auth"
)

const UserContextKey = "user"

// AuthRequired resolves the bearer token against the stored session and
// stashes the acting user in locals. Everything downstream takes the user
// explicitly; nothing re-derives it from storage.
func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		user, err := authService.CurrentUserFromToken(c.Context(), parts[1])
		if err != nil {
			return err
		}
		if user == nil {
			return Unauthorized("Invalid or expired session")
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
