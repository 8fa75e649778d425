package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/domain"
	"github.com/tablesprint/catalog-api/pkg/jwt"
)

// LocalUserID key de Locals con el id del usuario autenticado.
const LocalUserID = "user_id"

// AuthMiddleware valida el token JWT del header Authorization ("Bearer <token>" o el token solo)
// y guarda el UserID en c.Locals. Sin token responde 403; token inválido o expirado, 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authenticate(jwtSecret, c.Get(fiber.HeaderAuthorization))
		switch {
		case errors.Is(err, domain.ErrTokenRequired):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token required"})
		case err != nil:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Unauthorized"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// authenticate devuelve domain.ErrTokenRequired sin token y domain.ErrUnauthorized
// si el token no es válido.
func authenticate(jwtSecret, header string) (int64, error) {
	tokenString := bearerToken(header)
	if tokenString == "" {
		return 0, domain.ErrTokenRequired
	}
	userID, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "Bearer") {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth); 0 si no hay.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}
