package repository

import (
	"context"

	"storeapi/internal/domain/model"
)

type SettingsRepository interface {
	//未保存ならErrNotFound
	Get(ctx context.Context) (model.SettingsRecord, error)

	Save(ctx context.Context, rec model.SettingsRecord) error
}
