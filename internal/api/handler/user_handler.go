package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/platform-api/internal/api/middleware"
	"github.com/talentbridge/platform-api/internal/core/domain"
	"github.com/talentbridge/platform-api/internal/core/ports"
)

// UserHandler serves the admin identity routes.
type UserHandler struct {
	users ports.UserService
	audit ports.AuditRecorder
}

func NewUserHandler(users ports.UserService, audit ports.AuditRecorder) *UserHandler {
	return &UserHandler{users: users, audit: middleware.RecorderOrNop(audit)}
}

// Get returns a user by id.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Delete soft-deletes a user. Its outstanding tokens stop working on the
// next request.
//
// @Summary      Deactivate user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	admin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.users.Deactivate(c.Request().Context(), id); err != nil {
		return err
	}

	ev := middleware.AuditEvent(c, domain.AuditDeactivate, "success", "")
	ev.UserID = admin.ID
	ev.Reason = "target=" + id
	h.audit.Record(ev)

	return c.NoContent(http.StatusNoContent)
}
