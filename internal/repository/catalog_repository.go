package repository

import (
	"context"

	"storeapi/internal/domain/model"
)

type BrandRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Brand, error)
	FindByID(ctx context.Context, brandID string) (model.Brand, error)
	Create(ctx context.Context, b model.Brand) error
	Update(ctx context.Context, b model.Brand) error
	SetActive(ctx context.Context, brandID string, active bool) error
}

type ShoeColorRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.ShoeColor, error)
	FindByID(ctx context.Context, colorID string) (model.ShoeColor, error)
	Create(ctx context.Context, c model.ShoeColor) error
	Update(ctx context.Context, c model.ShoeColor) error
	SetActive(ctx context.Context, colorID string, active bool) error
}

type ShoeSizeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.ShoeSize, error)
	FindByID(ctx context.Context, sizeID string) (model.ShoeSize, error)
	Create(ctx context.Context, s model.ShoeSize) error
	Update(ctx context.Context, s model.ShoeSize) error
	SetActive(ctx context.Context, sizeID string, active bool) error
}
