package repository

import (
	"context"
	"errors"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// 在庫が足りるときだけ減らす。
// チェックと減算を1つのUPDATEで行うので、同じ変種への同時注文でも売り越さない。
func (r *StockGormRepository) DecreaseIfEnough(ctx context.Context, productID string, colorID string, size int, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ProductSizeStock{}).
		Where("product_id = ? AND color_id = ? AND size = ? AND stock >= ?", productID, colorID, size, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）
func (r *StockGormRepository) Increase(ctx context.Context, productID string, colorID string, size int, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProductSizeStock{}).
		Where("product_id = ? AND color_id = ? AND size = ?", productID, colorID, size).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StockGormRepository) Get(ctx context.Context, productID string, colorID string, size int) (int64, error) {
	var row model.ProductSizeStock
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND color_id = ? AND size = ?", productID, colorID, size).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, repo.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return row.Stock, nil
}
