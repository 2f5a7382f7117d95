package usecase

import (
	"context"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"

	"github.com/labstack/gommon/log"
)

// AuditRecorder は監査ログをベストエフォートで書く。
// 書き込み失敗はログに残すだけで、呼び出し元の処理は絶対に失敗させない。
type AuditRecorder struct {
	auditRepo repo.AuditLogRepository
	idGen     IDGenerator
	clock     Clock
	logger    *log.Logger
}

func NewAuditRecorder(auditRepo repo.AuditLogRepository, idGen IDGenerator, clock Clock, logger *log.Logger) *AuditRecorder {
	return &AuditRecorder{
		auditRepo: auditRepo,
		idGen:     idGen,
		clock:     clock,
		logger:    logger,
	}
}

func (a *AuditRecorder) Record(ctx context.Context, entry model.AuditLog) {
	entry.ID = a.idGen.NewID()
	entry.CreatedAt = a.clock.Now()

	if err := a.auditRepo.Create(ctx, entry); err != nil {
		a.logger.Errorf("audit log write failed: action=%s target=%s/%s: %v",
			entry.Action, entry.TargetType, entry.TargetID, err)
	}
}

// RecordActor はスタッフ操作のエントリを組み立てて書く
func (a *AuditRecorder) RecordActor(ctx context.Context, actor Actor, action model.AuditAction, targetType model.TargetType, targetID string, detailsJSON string) {
	a.Record(ctx, model.AuditLog{
		ActorType:   actor.actorType(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		DetailsJSON: detailsJSON,
	})
}
