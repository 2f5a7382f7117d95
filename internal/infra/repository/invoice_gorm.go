package repository

import (
	"context"
	"errors"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) Create(ctx context.Context, inv model.Invoice) error {
	err := r.db.WithContext(ctx).Create(&inv).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrConflict
	}
	return err
}

func (r *InvoiceGormRepository) FindByID(ctx context.Context, invoiceID string) (model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where("id = ?", invoiceID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Invoice{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) FindByOrderID(ctx context.Context, orderID string) (model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Invoice{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceGormRepository) List(ctx context.Context, f repo.InvoiceListFilter) ([]model.Invoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Invoice{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	var items []model.Invoice
	err := q.Order("created_at desc").
		Limit(f.Limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
