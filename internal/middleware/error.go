package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sukhraj1322/short-video-platform/internal/errs"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler maps the error taxonomy to HTTP responses. Anything outside
// the taxonomy surfaces as a generic 500; no failure is terminal to the
// process.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	switch {
	case errors.Is(err, errs.ErrAlreadyExists):
		code, errorCode, message = fiber.StatusConflict, "ALREADY_EXISTS", err.Error()
	case errors.Is(err, errs.ErrInvalidCredentials):
		// Deliberately generic: the same body for unknown username and
		// wrong password.
		code, errorCode, message = fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password"
	case errors.Is(err, errs.ErrPermissionDenied):
		code, errorCode, message = fiber.StatusForbidden, "PERMISSION_DENIED", "Permission denied"
	case errors.Is(err, errs.ErrNotFound):
		code, errorCode, message = fiber.StatusNotFound, "NOT_FOUND", "Not found"
	case errors.Is(err, errs.ErrEmptyComment):
		code, errorCode, message = fiber.StatusBadRequest, "BAD_REQUEST", err.Error()
	case errors.Is(err, errs.ErrUploadFailed):
		code, errorCode, message = fiber.StatusBadGateway, "UPLOAD_FAILED", err.Error()
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			errorCode = codeName(code)
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func codeName(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}
