package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/middleware"
	"github.com/sukhraj1322/short-video-platform/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input domain.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.authService.Signup(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, token, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Session reports whether anyone is logged in, without requiring a token.
// Clients use it to decide between the signed-in and signed-out shells.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	authenticated, err := h.authService.IsAuthenticated(c.Context())
	if err != nil {
		return err
	}
	if !authenticated {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	user, err := h.authService.CurrentUser(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"authenticated": user != nil, "user": user})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("Not authenticated")
	}
	return c.JSON(fiber.Map{"user": user})
}
