package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// スタッフ管理。adminロールのグループに登録される。
type AdminUserHandler struct {
	uc *usecase.UserUsecase
}

func NewAdminUserHandler(uc *usecase.UserUsecase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

func (h *AdminUserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.list)
	g.POST("/users", h.create)
	g.PATCH("/users/:id/role", h.updateRole)
	g.DELETE("/users/:id", h.disable)
}

func (h *AdminUserHandler) list(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func (h *AdminUserHandler) create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	user, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

func (h *AdminUserHandler) updateRole(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	if err := h.uc.UpdateRole(c.Request().Context(), actor, c.Param("id"), req.Role); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminUserHandler) disable(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	if err := h.uc.Disable(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
