package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	brandRepo   repo.BrandRepository
	audit       *AuditRecorder
	idGen       IDGenerator
	clock       Clock
}

func NewProductUsecase(
	productRepo repo.ProductRepository,
	brandRepo repo.BrandRepository,
	audit *AuditRecorder,
	idGen IDGenerator,
	clock Clock,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		audit:       audit,
		idGen:       idGen,
		clock:       clock,
	}
}

type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	BrandID  string
	MinPrice *int64
	MaxPrice *int64
	Sort     string

	IncludeInactive bool
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	in.IncludeInactive = false
	return u.list(ctx, in)
}

func (u *ProductUsecase) AdminListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	in.IncludeInactive = true
	return u.list(ctx, in)
}

func (u *ProductUsecase) list(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewValidationError("invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewValidationError("invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewValidationError("q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewValidationError("min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewValidationError("max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewValidationError("min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewValidationError("invalid sort")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:            in.Page,
		Limit:           in.Limit,
		Q:               strings.TrimSpace(in.Q),
		BrandID:         in.BrandID,
		MinPrice:        in.MinPrice,
		MaxPrice:        in.MaxPrice,
		Sort:            in.Sort,
		IncludeInactive: in.IncludeInactive,
	})
	if err != nil {
		return ProductListOutput{}, err
	}

	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewValidationError("invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return model.Product{}, err
	}

	if !p.IsActive {
		return model.Product{}, &NotFoundError{Resource: "product"}
	}
	return p, nil
}

type ProductSizeInput struct {
	Size  int   `json:"size"`
	Stock int64 `json:"stock"`
}

type ProductColorInput struct {
	ColorID string                    `json:"colorId"`
	Name    string                    `json:"name"`
	HexCode string                    `json:"hexCode"`
	Images  []model.ProductColorImage `json:"images"`
	Sizes   []ProductSizeInput        `json:"sizes"`
}

type AdminSaveProductInput struct {
	Name        string
	Slug        string
	BrandID     string
	Price       int64
	Description string
	IsActive    bool
	Colors      []ProductColorInput
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, actor Actor, in AdminSaveProductInput) (string, error) {
	if actor.ID == "" {
		return "", NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := validateSaveProduct(in); err != nil {
		return "", err
	}

	brandName, err := u.resolveBrandName(ctx, in.BrandID)
	if err != nil {
		return "", err
	}

	now := u.clock.Now()
	p := model.Product{
		ID:          u.idGen.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugOrName(in.Slug, in.Name),
		BrandID:     in.BrandID,
		BrandName:   brandName,
		Price:       in.Price,
		Description: in.Description,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		Colors:      buildColors(in.Colors),
	}

	if err := u.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return "", NewValidationError("slug already in use")
		}
		return "", err
	}

	details := fmt.Sprintf(`{"name":%q}`, p.Name)
	u.audit.RecordActor(ctx, actor, model.AuditActionProductCreate, model.TargetTypeProduct, p.ID, details)
	return p.ID, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, actor Actor, productID string, in AdminSaveProductInput) error {
	if actor.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return NewValidationError("invalid product id")
	}
	if err := validateSaveProduct(in); err != nil {
		return err
	}

	brandName, err := u.resolveBrandName(ctx, in.BrandID)
	if err != nil {
		return err
	}

	p := model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugOrName(in.Slug, in.Name),
		BrandID:     in.BrandID,
		BrandName:   brandName,
		Price:       in.Price,
		Description: in.Description,
		IsActive:    in.IsActive,
		UpdatedAt:   u.clock.Now(),
		Colors:      buildColors(in.Colors),
	}

	err = u.productRepo.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "product"}
	}
	if errors.Is(err, repo.ErrConflict) {
		return NewValidationError("slug already in use")
	}
	if err != nil {
		return err
	}

	details := fmt.Sprintf(`{"name":%q}`, p.Name)
	u.audit.RecordActor(ctx, actor, model.AuditActionProductUpdate, model.TargetTypeProduct, productID, details)
	return nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, actor Actor, productID string) error {
	if actor.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return NewValidationError("invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "product"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionProductDelete, model.TargetTypeProduct, productID, "")
	return nil
}

func validateSaveProduct(in AdminSaveProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name required")
	}
	if in.Price < 0 {
		return NewValidationError("price must be >= 0")
	}

	seenColors := map[string]bool{}
	for _, c := range in.Colors {
		if strings.TrimSpace(c.ColorID) == "" {
			return NewValidationError("colorId required")
		}
		if seenColors[c.ColorID] {
			return NewValidationError("duplicate colorId: " + c.ColorID)
		}
		seenColors[c.ColorID] = true

		seenSizes := map[int]bool{}
		for _, s := range c.Sizes {
			if seenSizes[s.Size] {
				return NewValidationError(fmt.Sprintf("duplicate size %d for color %s", s.Size, c.ColorID))
			}
			seenSizes[s.Size] = true

			if s.Stock < 0 {
				return NewValidationError("stock must be >= 0")
			}
		}
	}
	return nil
}

func (u *ProductUsecase) resolveBrandName(ctx context.Context, brandID string) (string, error) {
	if brandID == "" {
		return "", nil
	}
	b, err := u.brandRepo.FindByID(ctx, brandID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", NewValidationError("unknown brand")
	}
	if err != nil {
		return "", err
	}
	return b.Name, nil
}

func buildColors(in []ProductColorInput) []model.ProductColor {
	colors := make([]model.ProductColor, 0, len(in))
	for i, c := range in {
		sizes := make([]model.ProductSizeStock, 0, len(c.Sizes))
		for _, s := range c.Sizes {
			sizes = append(sizes, model.ProductSizeStock{Size: s.Size, Stock: s.Stock})
		}
		colors = append(colors, model.ProductColor{
			ColorID:  c.ColorID,
			Name:     c.Name,
			HexCode:  c.HexCode,
			Position: i,
			Images:   c.Images,
			Sizes:    sizes,
		})
	}
	return colors
}

func slugOrName(slug string, name string) string {
	s := strings.TrimSpace(slug)
	if s == "" {
		s = strings.TrimSpace(name)
	}
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, " ", "-")
}
