package repository

import (
	"context"
	"errors"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
)

type DeliveryZoneGormRepository struct {
	db *gorm.DB
}

func NewDeliveryZoneGormRepository(db *gorm.DB) *DeliveryZoneGormRepository {
	return &DeliveryZoneGormRepository{db: db}
}

func (r *DeliveryZoneGormRepository) List(ctx context.Context) ([]model.DeliveryZone, error) {
	var zones []model.DeliveryZone
	if err := r.db.WithContext(ctx).Order("wilaya asc, city asc").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *DeliveryZoneGormRepository) FindByID(ctx context.Context, zoneID int64) (model.DeliveryZone, error) {
	var z model.DeliveryZone
	err := r.db.WithContext(ctx).Where("id = ?", zoneID).First(&z).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DeliveryZone{}, repo.ErrNotFound
	}
	if err != nil {
		return model.DeliveryZone{}, err
	}
	return z, nil
}

func (r *DeliveryZoneGormRepository) Update(ctx context.Context, z model.DeliveryZone) error {
	res := r.db.WithContext(ctx).Model(&model.DeliveryZone{}).
		Where("id = ?", z.ID).
		Updates(map[string]interface{}{
			"wilaya":         z.Wilaya,
			"city":           z.City,
			"zone":           z.Zone,
			"delay_days":     z.DelayDays,
			"home_price":     z.HomePrice,
			"stopdesk_price": z.StopdeskPrice,
			"return_price":   z.ReturnPrice,
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

// ReplaceAll は料金表を丸ごと入れ替える
func (r *DeliveryZoneGormRepository) ReplaceAll(ctx context.Context, zones []model.DeliveryZone) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.DeliveryZone{}).Error; err != nil {
			return err
		}
		for i := range zones {
			zones[i].ID = 0
			if err := tx.Create(&zones[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DeliveryZoneGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.DeliveryZone{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
