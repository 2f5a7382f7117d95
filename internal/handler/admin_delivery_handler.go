package handler

import (
	"net/http"
	"strconv"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminDeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

func NewAdminDeliveryHandler(uc *usecase.DeliveryUsecase) *AdminDeliveryHandler {
	return &AdminDeliveryHandler{uc: uc}
}

func (h *AdminDeliveryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/delivery-zones", h.list)
	g.PUT("/delivery-zones", h.replaceAll)
	g.PUT("/delivery-zones/:id", h.update)
	g.POST("/delivery-zones/initialize", h.initialize)
}

func (h *AdminDeliveryHandler) list(c echo.Context) error {
	zones, err := h.uc.ListZones(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, zones)
}

func (h *AdminDeliveryHandler) update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid id"))
	}

	var req usecase.ZoneInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	if err := h.uc.UpdateZone(c.Request().Context(), actor, id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminDeliveryHandler) replaceAll(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req []usecase.ZoneInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	if err := h.uc.ReplaceZones(c.Request().Context(), actor, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminDeliveryHandler) initialize(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	n, err := h.uc.Initialize(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int{"created": n})
}
