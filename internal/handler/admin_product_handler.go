package handler

import (
	"net/http"
	"strconv"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

func (h *AdminProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.remove)
}

type AdminSaveProductRequest struct {
	Name        string                      `json:"name"`
	Slug        string                      `json:"slug"`
	BrandID     string                      `json:"brandId"`
	Price       int64                       `json:"price"`
	Description string                      `json:"description"`
	IsActive    bool                        `json:"isActive"`
	Colors      []usecase.ProductColorInput `json:"colors"`
}

func (h *AdminProductHandler) list(c echo.Context) error {
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

	out, err := h.uc.AdminListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req AdminSaveProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	id, err := h.uc.AdminCreateProduct(c.Request().Context(), actor, saveProductInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *AdminProductHandler) update(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	var req AdminSaveProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	if err := h.uc.AdminUpdateProduct(c.Request().Context(), actor, c.Param("id"), saveProductInput(req)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminProductHandler) remove(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func saveProductInput(req AdminSaveProductRequest) usecase.AdminSaveProductInput {
	return usecase.AdminSaveProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		BrandID:     req.BrandID,
		Price:       req.Price,
		Description: req.Description,
		IsActive:    req.IsActive,
		Colors:      req.Colors,
	}
}
