package repository

import (
	"context"
	"errors"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (model.SettingsRecord, error) {
	var rec model.SettingsRecord
	err := r.db.WithContext(ctx).Where("id = ?", 1).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SettingsRecord{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SettingsRecord{}, err
	}
	return rec, nil
}

func (r *SettingsGormRepository) Save(ctx context.Context, rec model.SettingsRecord) error {
	rec.ID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data_json", "updated_at"}),
		}).
		Create(&rec).Error
}
