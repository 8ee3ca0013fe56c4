package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const apiKeyHeader = "X-API-Key"

// APIKey returns middleware enforcing a static API key header.
// An empty key disables the check. Paths in skip are always allowed
// (health and metrics endpoints).
func APIKey(key string, skip ...string) echo.MiddlewareFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return next(c)
			}
			if _, ok := skipped[c.Request().URL.Path]; ok {
				return next(c)
			}

			got := c.Request().Header.Get(apiKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  http.StatusUnauthorized,
					"message": "Unauthorized",
					"data":    "invalid api key",
				})
			}
			return next(c)
		}
	}
}
