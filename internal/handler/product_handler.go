package handler

import (
	"net/http"
	"strconv"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 公開カタログ。認証なし、activeな商品だけ。
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 20),
		Q:       c.QueryParam("q"),
		BrandID: c.QueryParam("brand"),
		Sort:    c.QueryParam("sort"),
	}
	if v := c.QueryParam("min_price"); v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errJSON("invalid min_price"))
		}
		in.MinPrice = &p
	}
	if v := c.QueryParam("max_price"); v != "" {
		p, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errJSON("invalid max_price"))
		}
		in.MaxPrice = &p
	}

	out, err := h.uc.ListPublicProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProductDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
