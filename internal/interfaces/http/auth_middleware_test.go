package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tablesprint/catalog-api/internal/interfaces/http"
	pkgjwt "github.com/tablesprint/catalog-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(17)
	testIssuer    = "catalog-api-test"
)

// buildMiddlewareApp construye una aplicación Fiber mínima con AuthMiddleware
// y un handler que devuelve el user id cargado en Locals.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, pkgjwt.DefaultTTL)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna403(t *testing.T) {
	resp := doRequest(t, buildMiddlewareApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token required")
}

func TestAuthMiddleware_BearerVacio_Retorna403(t *testing.T) {
	resp := doRequest(t, buildMiddlewareApp(), "Bearer   ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	resp := doRequest(t, buildMiddlewareApp(), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.GenerateAt(testJWTSecret, testUserID, testIssuer, pkgjwt.DefaultTTL, time.Now().Add(-61*time.Minute))
	require.NoError(t, err)

	resp := doRequest(t, buildMiddlewareApp(), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_OtroSecret_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testIssuer, pkgjwt.DefaultTTL)
	require.NoError(t, err)

	resp := doRequest(t, buildMiddlewareApp(), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeUserID(t *testing.T) {
	for name, header := range map[string]string{
		"bearer":    "Bearer " + validToken(t),
		"minúscula": "bearer " + validToken(t),
		"sin tipo":  validToken(t),
	} {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, buildMiddlewareApp(), header)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			var body map[string]int64
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, testUserID, body["user_id"])
		})
	}
}
