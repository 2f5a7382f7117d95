package repository

import (
	"context"

	"storeapi/internal/domain/model"
)

type DeliveryZoneRepository interface {
	List(ctx context.Context) ([]model.DeliveryZone, error)
	FindByID(ctx context.Context, zoneID int64) (model.DeliveryZone, error)
	Update(ctx context.Context, z model.DeliveryZone) error

	//料金表の一括入れ替え
	ReplaceAll(ctx context.Context, zones []model.DeliveryZone) error

	Count(ctx context.Context) (int64, error)
}
