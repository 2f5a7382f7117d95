package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 公開の配送料金表。チェックアウト画面が配送料の表示に使う。
type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

func (h *DeliveryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/delivery-zones", h.list)
}

func (h *DeliveryHandler) list(c echo.Context) error {
	zones, err := h.uc.ListZones(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, zones)
}
