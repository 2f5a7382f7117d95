package handler

import (
	"net/http"

	"storeapi/internal/domain/model"
	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminSettingsHandler struct {
	uc *usecase.SettingsUsecase
}

func NewAdminSettingsHandler(uc *usecase.SettingsUsecase) *AdminSettingsHandler {
	return &AdminSettingsHandler{uc: uc}
}

func (h *AdminSettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.get)
	g.PUT("/settings", h.update)
}

func (h *AdminSettingsHandler) get(c echo.Context) error {
	s, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *AdminSettingsHandler) update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req model.SiteSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	if err := h.uc.Update(c.Request().Context(), actor, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
