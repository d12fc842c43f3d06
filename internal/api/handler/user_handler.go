package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/GafnerMendes/contracts-api/internal/core/domain"
	"github.com/GafnerMendes/contracts-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userListResponse struct {
	Data []domain.PublicUser `json:"data"`
}

// List returns all users sanitized. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users := h.userService.List(c.Request().Context())
	return c.JSON(http.StatusOK, userListResponse{Data: users})
}
