package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentbridge/platform-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrMissingToken, http.StatusUnauthorized, "no token provided"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{fmt.Errorf("%w: expired", domain.ErrInvalidToken), http.StatusUnauthorized, "invalid token"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "invalid token"},
		{domain.ErrForbidden, http.StatusForbidden, "insufficient permissions"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{fmt.Errorf("%w: email is required", domain.ErrInvalidInput), http.StatusBadRequest, "invalid input: email is required"},
		{echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method not allowed"},
		{errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
			continue
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Error != tc.msg {
			t.Errorf("%v: expected message %q, got %q", tc.err, tc.msg, body.Error)
		}
	}
}

func TestHTTPErrorHandler_DenialsAreNotErrors(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	for _, err := range []error{domain.ErrMissingToken, domain.ErrInvalidToken, domain.ErrForbidden, domain.ErrInvalidCredentials} {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		NewHTTPErrorHandler(log)(err, c)
	}

	if strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("auth denials must not be logged at error level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"info"`) {
		t.Fatalf("expected denials logged at info, got %s", buf.String())
	}
}

func TestHTTPErrorHandler_UnexpectedIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	NewHTTPErrorHandler(log)(errors.New("dial tcp: refused"), c)

	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "dial tcp: refused") {
		t.Fatalf("expected error log with cause, got %s", buf.String())
	}
	if strings.Contains(rec.Body.String(), "dial tcp") {
		t.Fatalf("internal detail leaked to client: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
}
