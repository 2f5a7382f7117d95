package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ブランド・カラー・サイズの辞書管理
type AdminCatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewAdminCatalogHandler(uc *usecase.CatalogUsecase) *AdminCatalogHandler {
	return &AdminCatalogHandler{uc: uc}
}

func (h *AdminCatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/brands", h.listBrands)
	g.POST("/brands", h.createBrand)
	g.PUT("/brands/:id", h.updateBrand)
	g.DELETE("/brands/:id", h.disableBrand)

	g.GET("/colors", h.listColors)
	g.POST("/colors", h.createColor)
	g.PUT("/colors/:id", h.updateColor)
	g.DELETE("/colors/:id", h.disableColor)

	g.GET("/sizes", h.listSizes)
	g.POST("/sizes", h.createSize)
	g.PUT("/sizes/:id", h.updateSize)
	g.DELETE("/sizes/:id", h.disableSize)
}

// 公開側は activeOnly で辞書を読む
func (h *AdminCatalogHandler) RegisterPublicRoutes(e *echo.Echo) {
	e.GET("/brands", func(c echo.Context) error {
		items, err := h.uc.ListBrands(c.Request().Context(), true)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	})
	e.GET("/colors", func(c echo.Context) error {
		items, err := h.uc.ListColors(c.Request().Context(), true)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	})
	e.GET("/sizes", func(c echo.Context) error {
		items, err := h.uc.ListSizes(c.Request().Context(), true)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	})
}

/* ===== Brand ===== */

type SaveBrandRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

func (h *AdminCatalogHandler) listBrands(c echo.Context) error {
	items, err := h.uc.ListBrands(c.Request().Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminCatalogHandler) createBrand(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	var req SaveBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	id, err := h.uc.CreateBrand(c.Request().Context(), actor, usecase.SaveBrandInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Logo:        req.Logo,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *AdminCatalogHandler) updateBrand(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	var req SaveBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	err := h.uc.UpdateBrand(c.Request().Context(), actor, c.Param("id"), usecase.SaveBrandInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Logo:        req.Logo,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCatalogHandler) disableBrand(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	if err := h.uc.DisableBrand(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

/* ===== Color ===== */

type SaveColorRequest struct {
	Name     string `json:"name"`
	HexCode  string `json:"hexCode"`
	IsActive bool   `json:"isActive"`
	Position int    `json:"position"`
}

func (h *AdminCatalogHandler) listColors(c echo.Context) error {
	items, err := h.uc.ListColors(c.Request().Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminCatalogHandler) createColor(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	var req SaveColorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	id, err := h.uc.CreateColor(c.Request().Context(), actor, usecase.SaveColorInput{
		Name:     req.Name,
		HexCode:  req.HexCode,
		IsActive: req.IsActive,
		Position: req.Position,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *AdminCatalogHandler) updateColor(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	var req SaveColorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	err := h.uc.UpdateColor(c.Request().Context(), actor, c.Param("id"), usecase.SaveColorInput{
		Name:     req.Name,
		HexCode:  req.HexCode,
		IsActive: req.IsActive,
		Position: req.Position,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCatalogHandler) disableColor(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	if err := h.uc.DisableColor(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

/* ===== Size ===== */

type SaveSizeRequest struct {
	Value    int  `json:"value"`
	IsActive bool `json:"isActive"`
	Position int  `json:"position"`
}

func (h *AdminCatalogHandler) listSizes(c echo.Context) error {
	items, err := h.uc.ListSizes(c.Request().Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminCatalogHandler) createSize(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	var req SaveSizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	id, err := h.uc.CreateSize(c.Request().Context(), actor, usecase.SaveSizeInput{
		Value:    req.Value,
		IsActive: req.IsActive,
		Position: req.Position,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (h *AdminCatalogHandler) updateSize(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	var req SaveSizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	err := h.uc.UpdateSize(c.Request().Context(), actor, c.Param("id"), usecase.SaveSizeInput{
		Value:    req.Value,
		IsActive: req.IsActive,
		Position: req.Position,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCatalogHandler) disableSize(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errJSON("unauthorized"))
	}
	if err := h.uc.DisableSize(c.Request().Context(), actor, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
