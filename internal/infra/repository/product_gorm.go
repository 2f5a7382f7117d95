package repository

import (
	"context"
	"encoding/json"
	"errors"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Product{})

	if !q.IncludeInactive {
		base = base.Where("is_active = ?", true)
	}
	if q.Q != "" {
		base = base.Where("name ILIKE ?", "%"+q.Q+"%")
	}
	if q.BrandID != "" {
		base = base.Where("brand_id = ?", q.BrandID)
	}
	if q.MinPrice != nil {
		base = base.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		base = base.Where("price <= ?", *q.MaxPrice)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.Sort {
	case "price_asc":
		base = base.Order("price asc")
	case "price_desc":
		base = base.Order("price desc")
	default:
		base = base.Order("created_at desc")
	}

	offset := (q.Page - 1) * q.Limit
	var items []model.Product
	if err := base.Limit(q.Limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	for i := range items {
		if err := r.loadColors(ctx, &items[i]); err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	if err := r.loadColors(ctx, &p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) error {
	if err := r.db.WithContext(ctx).Omit("Colors").Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repo.ErrConflict
		}
		return err
	}
	return r.saveColors(ctx, p)
}

// Update は商品本体を更新し、カラー・サイズ構成を丸ごと入れ替える
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"slug":        p.Slug,
			"brand_id":    p.BrandID,
			"brand_name":  p.BrandName,
			"price":       p.Price,
			"description": p.Description,
			"is_active":   p.IsActive,
			"updated_at":  p.UpdatedAt,
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

	if err := r.deleteColors(ctx, p.ID); err != nil {
		return err
	}
	return r.saveColors(ctx, p)
}

func (r *ProductGormRepository) SoftDelete(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// loadColors はカラー行・画像JSON・サイズ在庫行を商品に組み立てる
func (r *ProductGormRepository) loadColors(ctx context.Context, p *model.Product) error {
	var colors []model.ProductColor
	err := r.db.WithContext(ctx).
		Where("product_id = ?", p.ID).
		Order("position asc, id asc").
		Find(&colors).Error
	if err != nil {
		return err
	}

	var stocks []model.ProductSizeStock
	err = r.db.WithContext(ctx).
		Where("product_id = ?", p.ID).
		Order("size asc").
		Find(&stocks).Error
	if err != nil {
		return err
	}

	for i := range colors {
		c := &colors[i]

		c.Images = []model.ProductColorImage{}
		if c.ImagesJSON != "" {
			if err := json.Unmarshal([]byte(c.ImagesJSON), &c.Images); err != nil {
				return err
			}
		}

		c.Sizes = []model.ProductSizeStock{}
		for _, s := range stocks {
			if s.ColorID == c.ColorID {
				c.Sizes = append(c.Sizes, s)
			}
		}
	}

	p.Colors = colors
	return nil
}

func (r *ProductGormRepository) saveColors(ctx context.Context, p model.Product) error {
	for i, c := range p.Colors {
		imagesJSON, err := json.Marshal(c.Images)
		if err != nil {
			return err
		}

		row := model.ProductColor{
			ProductID:  p.ID,
			ColorID:    c.ColorID,
			Name:       c.Name,
			HexCode:    c.HexCode,
			Position:   i,
			ImagesJSON: string(imagesJSON),
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}

		for _, s := range c.Sizes {
			stock := model.ProductSizeStock{
				ProductID: p.ID,
				ColorID:   c.ColorID,
				Size:      s.Size,
				Stock:     s.Stock,
			}
			if err := r.db.WithContext(ctx).Create(&stock).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return repo.ErrConflict
				}
				return err
			}
		}
	}
	return nil
}

func (r *ProductGormRepository) deleteColors(ctx context.Context, productID string) error {
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductColor{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductSizeStock{}).Error
}
