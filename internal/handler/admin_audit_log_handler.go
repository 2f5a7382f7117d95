package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminAuditLogHandler struct {
	uc *usecase.AuditLogUsecase
}

func NewAdminAuditLogHandler(uc *usecase.AuditLogUsecase) *AdminAuditLogHandler {
	return &AdminAuditLogHandler{uc: uc}
}

func (h *AdminAuditLogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/audit-logs", h.list)
}

func (h *AdminAuditLogHandler) list(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), usecase.AuditLogListInput{
		ActorID:     c.QueryParam("actorId"),
		ActorType:   c.QueryParam("actorType"),
		Action:      c.QueryParam("action"),
		TargetType:  c.QueryParam("targetType"),
		TargetID:    c.QueryParam("targetId"),
		CreatedFrom: c.QueryParam("from"),
		CreatedTo:   c.QueryParam("to"),
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 50),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
