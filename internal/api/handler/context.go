package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/platform-api/internal/api/middleware"
	"github.com/talentbridge/platform-api/internal/core/domain"
)

// ctxIdentity returns the user attached by the Auth middleware. A handler
// reached without it was mounted on an unguarded route.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	u, ok := middleware.Identity(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return u, nil
}

// bindAndValidate decodes the body into req and runs the registered
// validator. Both failures surface as domain.ErrInvalidInput.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrInvalidInput)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
