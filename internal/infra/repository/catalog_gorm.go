package repository

import (
	"context"
	"errors"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

type BrandGormRepository struct {
	db *gorm.DB
}

func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context, activeOnly bool) ([]model.Brand, error) {
	q := r.db.WithContext(ctx).Model(&model.Brand{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var brands []model.Brand
	if err := q.Order("name asc").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandGormRepository) FindByID(ctx context.Context, brandID string) (model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).Where("id = ?", brandID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (r *BrandGormRepository) Create(ctx context.Context, b model.Brand) error {
	err := r.db.WithContext(ctx).Create(&b).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrConflict
	}
	return err
}

func (r *BrandGormRepository) Update(ctx context.Context, b model.Brand) error {
	res := r.db.WithContext(ctx).Model(&model.Brand{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"name":        b.Name,
			"slug":        b.Slug,
			"logo":        b.Logo,
			"description": b.Description,
			"is_active":   b.IsActive,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return repo.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) SetActive(ctx context.Context, brandID string, active bool) error {
	return setActiveByID(ctx, r.db, &model.Brand{}, brandID, active)
}

type ShoeColorGormRepository struct {
	db *gorm.DB
}

func NewShoeColorGormRepository(db *gorm.DB) *ShoeColorGormRepository {
	return &ShoeColorGormRepository{db: db}
}

func (r *ShoeColorGormRepository) List(ctx context.Context, activeOnly bool) ([]model.ShoeColor, error) {
	q := r.db.WithContext(ctx).Model(&model.ShoeColor{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var colors []model.ShoeColor
	if err := q.Order("position asc").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *ShoeColorGormRepository) FindByID(ctx context.Context, colorID string) (model.ShoeColor, error) {
	var c model.ShoeColor
	err := r.db.WithContext(ctx).Where("id = ?", colorID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShoeColor{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShoeColor{}, err
	}
	return c, nil
}

func (r *ShoeColorGormRepository) Create(ctx context.Context, c model.ShoeColor) error {
	return r.db.WithContext(ctx).Create(&c).Error
}

func (r *ShoeColorGormRepository) Update(ctx context.Context, c model.ShoeColor) error {
	res := r.db.WithContext(ctx).Model(&model.ShoeColor{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":      c.Name,
			"hex_code":  c.HexCode,
			"is_active": c.IsActive,
			"position":  c.Position,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShoeColorGormRepository) SetActive(ctx context.Context, colorID string, active bool) error {
	return setActiveByID(ctx, r.db, &model.ShoeColor{}, colorID, active)
}

type ShoeSizeGormRepository struct {
	db *gorm.DB
}

func NewShoeSizeGormRepository(db *gorm.DB) *ShoeSizeGormRepository {
	return &ShoeSizeGormRepository{db: db}
}

func (r *ShoeSizeGormRepository) List(ctx context.Context, activeOnly bool) ([]model.ShoeSize, error) {
	q := r.db.WithContext(ctx).Model(&model.ShoeSize{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var sizes []model.ShoeSize
	if err := q.Order("value asc").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *ShoeSizeGormRepository) FindByID(ctx context.Context, sizeID string) (model.ShoeSize, error) {
	var s model.ShoeSize
	err := r.db.WithContext(ctx).Where("id = ?", sizeID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShoeSize{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShoeSize{}, err
	}
	return s, nil
}

func (r *ShoeSizeGormRepository) Create(ctx context.Context, s model.ShoeSize) error {
	err := r.db.WithContext(ctx).Create(&s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrConflict
	}
	return err
}

func (r *ShoeSizeGormRepository) Update(ctx context.Context, s model.ShoeSize) error {
	res := r.db.WithContext(ctx).Model(&model.ShoeSize{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"value":     s.Value,
			"is_active": s.IsActive,
			"position":  s.Position,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return repo.ErrConflict
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShoeSizeGormRepository) SetActive(ctx context.Context, sizeID string, active bool) error {
	return setActiveByID(ctx, r.db, &model.ShoeSize{}, sizeID, active)
}

func setActiveByID(ctx context.Context, db *gorm.DB, m interface{}, id string, active bool) error {
	res := db.WithContext(ctx).Model(m).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
