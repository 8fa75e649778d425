package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/pkg/logger"
)

// ErrorHandler responde los errores no manejados por los handlers con dto.ErrorResponse.
// Los 5xx no exponen el detalle del error al cliente.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			message = fe.Message
		}
	}
	if code >= fiber.StatusInternalServerError {
		logger.FromContext(c.UserContext()).Error().Err(err).Msg("error no manejado")
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: message})
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "BAD_REQUEST"
}

// storageError registra err en el logger de la petición y responde 500 con un mensaje genérico.
func storageError(c *fiber.Ctx, err error, message string) error {
	logger.FromContext(c.UserContext()).Error().Err(err).Msg(message)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
}

// paramID lee :id como entero; responde 400 si no lo es.
func paramID(c *fiber.Ctx) (int64, bool, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id must be an integer"})
	}
	return int64(id), true, nil
}
