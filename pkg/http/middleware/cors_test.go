package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func corsServer(origins []string) *echo.Echo {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	return e
}

func TestCORSAllowedOrigin(t *testing.T) {
	e := corsServer([]string{"https://app.example"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://app.example" {
		t.Errorf("allow-origin = %q", got)
	}
	if got := rec.Header().Get(echo.HeaderVary); got != echo.HeaderOrigin {
		t.Errorf("vary = %q, want %q", got, echo.HeaderOrigin)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	e := corsServer([]string{"https://app.example"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Request still served, but without CORS grants.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Errorf("allow-origin = %q, want empty", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	e := corsServer([]string{"*"})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://anywhere.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "https://anywhere.example" {
		t.Errorf("allow-origin = %q", got)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowMethods); got == "" {
		t.Errorf("allow-methods missing")
	}
}
