package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

func (cfg CORSConfig) wildcard() bool {
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (cfg CORSConfig) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, o := range cfg.AllowOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS returns CORS middleware for the configured origin allowlist. Requests
// from origins outside the list pass through without CORS headers; preflight
// OPTIONS requests are answered directly.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			h := c.Response().Header()

			// Responses differ per origin unless every origin is allowed.
			if !cfg.wildcard() {
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			}

			if !cfg.originAllowed(origin) {
				if origin == "" && cfg.wildcard() {
					h.Set(echo.HeaderAccessControlAllowOrigin, "*")
				}
				return next(c)
			}

			h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			if allowMethods != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			}
			if allowHeaders != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			}

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
