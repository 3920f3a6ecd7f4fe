package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// EmployerHandler serves routes reserved for employer accounts. Profile
// persistence lives elsewhere; this only exposes the caller's identity.
type EmployerHandler struct{}

func NewEmployerHandler() *EmployerHandler {
	return &EmployerHandler{}
}

// Me returns the authenticated employer.
//
// @Summary      Current employer
// @Tags         employers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Router       /api/employers/me [get]
func (h *EmployerHandler) Me(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}
