package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// APIResponse is the uniform envelope returned by every endpoint.
// Success is derived from StatusCode and is true iff StatusCode < 400.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorResponse is the envelope written on failure.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// Respond writes a success envelope with the given status, payload and message.
func Respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(APIResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < fiber.StatusBadRequest,
	})
}

// RespondWithError writes an error envelope. If err is an *AppError its
// status takes precedence over the supplied one so services can dictate
// the taxonomy (400/401/403/404/500) without handlers re-mapping it.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	message := "Internal server error"

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Status != 0 {
			status = appErr.Status
		}
		message = appErr.Message
	} else if err != nil {
		message = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		StatusCode: status,
		Message:    message,
		Success:    false,
	})
}
