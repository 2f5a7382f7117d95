package repository

import (
	"context"
	"time"

	"storeapi/internal/domain/model"
)

// 監査ログの絞り込み条件
type AuditLogFilter struct {
	ActorID     string
	ActorType   *model.ActorType
	Action      *model.AuditAction
	TargetType  *model.TargetType
	TargetID    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// 追記専用。UpdateやDeleteは存在しない。
type AuditLogRepository interface {
	Create(ctx context.Context, entry model.AuditLog) error

	List(ctx context.Context, filter AuditLogFilter) ([]model.AuditLog, error)
}
