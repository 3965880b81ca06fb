package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers
)

// ContextKeyAPIKey is where the raw bearer credential is stored on the Echo
// context for downstream handlers.
const ContextKeyAPIKey = "api_key"

// BearerKey returns an Echo middleware that extracts an opaque bearer
// credential from the Authorization header. It enforces only the
// `Bearer <token>` shape; resolving the token against the store is the
// handler's job, because the handler also needs the key record to bump its
// usage counter. Requests without a well-formed credential are rejected
// with 401 before any handler runs.
func BearerKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing or malformed credential"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if raw == "" || strings.ContainsAny(raw, " \t") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing or malformed credential"})
			}
			// Hand the raw token to the handler; it stays opaque here.
			c.Set(ContextKeyAPIKey, raw)
			return next(c)
		}
	}
}
