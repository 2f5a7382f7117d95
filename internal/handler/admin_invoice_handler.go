package handler

import (
	"fmt"
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminInvoiceHandler struct {
	uc *usecase.InvoiceUsecase
}

func NewAdminInvoiceHandler(uc *usecase.InvoiceUsecase) *AdminInvoiceHandler {
	return &AdminInvoiceHandler{uc: uc}
}

func (h *AdminInvoiceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/invoices", h.list)
	g.GET("/invoices/:id", h.detail)
	g.GET("/invoices/:id/pdf", h.pdf)
	g.POST("/orders/:orderId/invoice", h.generate)
}

func (h *AdminInvoiceHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.InvoiceListInput{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminInvoiceHandler) detail(c echo.Context) error {
	inv, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *AdminInvoiceHandler) generate(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	inv, err := h.uc.Generate(c.Request().Context(), actor, c.Param("orderId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *AdminInvoiceHandler) pdf(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	data, inv, err := h.uc.RenderPDF(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pdf"`, inv.InvoiceNumber))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
