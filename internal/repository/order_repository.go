package repository

import (
	"context"
	"time"

	"storeapi/internal/domain/model"
)

type OrderListFilter struct {
	Status      *model.OrderStatus
	Source      *model.OrderSource
	Q           string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	Limit       int
}

type OrderRepository interface {
	//order_numberが衝突したらErrConflictを返す
	Create(ctx context.Context, o model.Order) error

	FindByID(ctx context.Context, orderID string) (model.Order, error)

	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)

	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error

	UpdateDeliveryStatus(ctx context.Context, orderID string, status model.DeliveryStatus) error
}
