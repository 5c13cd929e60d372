package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func record(t *testing.T, write func(c echo.Context) error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := write(c); err != nil {
		t.Fatalf("write: %v", err)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return rec, body
}

func TestAppErrorResponseUnavailable(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return AppErrorResponse(c, UnavailableError("houses unavailable"))
	})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body.Error != "houses unavailable" {
		t.Fatalf("error = %q", body.Error)
	}
	if len(body.Details) != 1 || body.Details[0].Code != "ERR_UNAVAILABLE" {
		t.Fatalf("details = %+v", body.Details)
	}
}

func TestAppErrorResponseWrapped(t *testing.T) {
	cause := errors.New("marshal blew up")
	appErr := InternalError("internal error").WithError(cause)

	if !errors.Is(appErr, cause) {
		t.Fatalf("wrapped cause should unwrap")
	}
	if appErr.Error() != "internal error: marshal blew up" {
		t.Fatalf("Error() = %q", appErr.Error())
	}

	// Wrapping must survive another fmt layer on the way to the writer.
	rec, body := record(t, func(c echo.Context) error {
		return AppErrorResponse(c, fmt.Errorf("houses: %w", appErr))
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if len(body.Details) != 1 || body.Details[0].Code != "ERR_INTERNAL" {
		t.Fatalf("details = %+v", body.Details)
	}
}

func TestAppErrorResponsePlainError(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return AppErrorResponse(c, errors.New("something else"))
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if body.Error != "internal error" {
		t.Fatalf("error = %q, internal detail must not leak", body.Error)
	}
	if len(body.Details) != 0 {
		t.Fatalf("details = %+v", body.Details)
	}
}
