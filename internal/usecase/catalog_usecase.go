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

// CatalogUsecase はブランド・カラー・サイズの辞書を管理する。
// 商品から参照されている可能性があるので、削除ではなく無効化する。
type CatalogUsecase struct {
	brandRepo repo.BrandRepository
	colorRepo repo.ShoeColorRepository
	sizeRepo  repo.ShoeSizeRepository
	audit     *AuditRecorder
	idGen     IDGenerator
}

func NewCatalogUsecase(
	brandRepo repo.BrandRepository,
	colorRepo repo.ShoeColorRepository,
	sizeRepo repo.ShoeSizeRepository,
	audit *AuditRecorder,
	idGen IDGenerator,
) *CatalogUsecase {
	return &CatalogUsecase{
		brandRepo: brandRepo,
		colorRepo: colorRepo,
		sizeRepo:  sizeRepo,
		audit:     audit,
		idGen:     idGen,
	}
}

func requireActor(actor Actor) error {
	if actor.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return nil
}

/* ===== Brand ===== */

func (u *CatalogUsecase) ListBrands(ctx context.Context, activeOnly bool) ([]model.Brand, error) {
	return u.brandRepo.List(ctx, activeOnly)
}

type SaveBrandInput struct {
	Name        string
	Slug        string
	Logo        string
	Description string
	IsActive    bool
}

func (u *CatalogUsecase) CreateBrand(ctx context.Context, actor Actor, in SaveBrandInput) (string, error) {
	if err := requireActor(actor); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.Name) == "" {
		return "", NewValidationError("name required")
	}

	b := model.Brand{
		ID:          u.idGen.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugOrName(in.Slug, in.Name),
		Logo:        in.Logo,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if err := u.brandRepo.Create(ctx, b); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return "", NewValidationError("slug already in use")
		}
		return "", err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionBrandCreate, model.TargetTypeBrand, b.ID, fmt.Sprintf(`{"name":%q}`, b.Name))
	return b.ID, nil
}

func (u *CatalogUsecase) UpdateBrand(ctx context.Context, actor Actor, brandID string, in SaveBrandInput) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name required")
	}

	b := model.Brand{
		ID:          brandID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        slugOrName(in.Slug, in.Name),
		Logo:        in.Logo,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	err := u.brandRepo.Update(ctx, b)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "brand"}
	}
	if errors.Is(err, repo.ErrConflict) {
		return NewValidationError("slug already in use")
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionBrandUpdate, model.TargetTypeBrand, brandID, fmt.Sprintf(`{"name":%q}`, b.Name))
	return nil
}

func (u *CatalogUsecase) DisableBrand(ctx context.Context, actor Actor, brandID string) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := u.brandRepo.SetActive(ctx, brandID, false)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "brand"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionBrandDisable, model.TargetTypeBrand, brandID, "")
	return nil
}

/* ===== ShoeColor ===== */

func (u *CatalogUsecase) ListColors(ctx context.Context, activeOnly bool) ([]model.ShoeColor, error) {
	return u.colorRepo.List(ctx, activeOnly)
}

type SaveColorInput struct {
	Name     string
	HexCode  string
	IsActive bool
	Position int
}

func (u *CatalogUsecase) CreateColor(ctx context.Context, actor Actor, in SaveColorInput) (string, error) {
	if err := requireActor(actor); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.Name) == "" {
		return "", NewValidationError("name required")
	}

	c := model.ShoeColor{
		ID:       u.idGen.NewID(),
		Name:     strings.TrimSpace(in.Name),
		HexCode:  in.HexCode,
		IsActive: in.IsActive,
		Position: in.Position,
	}
	if err := u.colorRepo.Create(ctx, c); err != nil {
		return "", err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionColorCreate, model.TargetTypeColor, c.ID, fmt.Sprintf(`{"name":%q}`, c.Name))
	return c.ID, nil
}

func (u *CatalogUsecase) UpdateColor(ctx context.Context, actor Actor, colorID string, in SaveColorInput) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewValidationError("name required")
	}

	c := model.ShoeColor{
		ID:       colorID,
		Name:     strings.TrimSpace(in.Name),
		HexCode:  in.HexCode,
		IsActive: in.IsActive,
		Position: in.Position,
	}
	err := u.colorRepo.Update(ctx, c)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "color"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionColorUpdate, model.TargetTypeColor, colorID, fmt.Sprintf(`{"name":%q}`, c.Name))
	return nil
}

func (u *CatalogUsecase) DisableColor(ctx context.Context, actor Actor, colorID string) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := u.colorRepo.SetActive(ctx, colorID, false)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "color"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionColorDisable, model.TargetTypeColor, colorID, "")
	return nil
}

/* ===== ShoeSize ===== */

func (u *CatalogUsecase) ListSizes(ctx context.Context, activeOnly bool) ([]model.ShoeSize, error) {
	return u.sizeRepo.List(ctx, activeOnly)
}

type SaveSizeInput struct {
	Value    int
	IsActive bool
	Position int
}

func (u *CatalogUsecase) CreateSize(ctx context.Context, actor Actor, in SaveSizeInput) (string, error) {
	if err := requireActor(actor); err != nil {
		return "", err
	}
	if in.Value <= 0 {
		return "", NewValidationError("value must be > 0")
	}

	s := model.ShoeSize{
		ID:       u.idGen.NewID(),
		Value:    in.Value,
		IsActive: in.IsActive,
		Position: in.Position,
	}
	if err := u.sizeRepo.Create(ctx, s); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return "", NewValidationError("size already exists")
		}
		return "", err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionSizeCreate, model.TargetTypeSize, s.ID, fmt.Sprintf(`{"value":%d}`, s.Value))
	return s.ID, nil
}

func (u *CatalogUsecase) UpdateSize(ctx context.Context, actor Actor, sizeID string, in SaveSizeInput) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if in.Value <= 0 {
		return NewValidationError("value must be > 0")
	}

	s := model.ShoeSize{
		ID:       sizeID,
		Value:    in.Value,
		IsActive: in.IsActive,
		Position: in.Position,
	}
	err := u.sizeRepo.Update(ctx, s)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "size"}
	}
	if errors.Is(err, repo.ErrConflict) {
		return NewValidationError("size already exists")
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionSizeUpdate, model.TargetTypeSize, sizeID, fmt.Sprintf(`{"value":%d}`, s.Value))
	return nil
}

func (u *CatalogUsecase) DisableSize(ctx context.Context, actor Actor, sizeID string) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := u.sizeRepo.SetActive(ctx, sizeID, false)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "size"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionSizeDisable, model.TargetTypeSize, sizeID, "")
	return nil
}
