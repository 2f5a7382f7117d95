package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/orders", h.list)
	g.GET("/orders/:id", h.detail)
	g.PATCH("/orders/:id/status", h.updateStatus)
	g.PATCH("/orders/:id/delivery-status", h.updateDeliveryStatus)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.AdminOrderListInput{
		Status:      c.QueryParam("status"),
		Source:      c.QueryParam("source"),
		Q:           c.QueryParam("q"),
		CreatedFrom: c.QueryParam("from"),
		CreatedTo:   c.QueryParam("to"),
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 20),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	o, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	err := h.uc.UpdateStatus(c.Request().Context(), actor, c.Param("id"), usecase.AdminUpdateOrderStatusInput{
		Status: req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type UpdateDeliveryStatusRequest struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

func (h *AdminOrderHandler) updateDeliveryStatus(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req UpdateDeliveryStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	err := h.uc.UpdateDeliveryStatus(c.Request().Context(), actor, c.Param("id"), usecase.AdminUpdateDeliveryStatusInput{
		DeliveryStatus: req.DeliveryStatus,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
