package usecase

import (
	"context"
	"strings"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

type AuditLogListInput struct {
	ActorID     string
	ActorType   string
	Action      string
	TargetType  string
	TargetID    string
	CreatedFrom string
	CreatedTo   string
	Page        int
	Limit       int
}

func (u *AuditLogUsecase) List(ctx context.Context, in AuditLogListInput) ([]model.AuditLog, error) {
	if in.Page < 1 {
		return nil, NewValidationError("invalid page")
	}
	if in.Limit < 1 || in.Limit > 200 {
		return nil, NewValidationError("invalid limit")
	}

	f := repo.AuditLogFilter{
		ActorID:  strings.TrimSpace(in.ActorID),
		TargetID: strings.TrimSpace(in.TargetID),
		Limit:    in.Limit,
		Offset:   (in.Page - 1) * in.Limit,
	}

	if in.ActorType != "" {
		at := model.ActorType(in.ActorType)
		switch at {
		case model.ActorTypeAdmin, model.ActorTypeWorker, model.ActorTypeCustomer:
			f.ActorType = &at
		default:
			return nil, NewValidationError("invalid actorType")
		}
	}
	if in.Action != "" {
		a := model.AuditAction(in.Action)
		f.Action = &a
	}
	if in.TargetType != "" {
		tt := model.TargetType(in.TargetType)
		f.TargetType = &tt
	}
	if t, ok := parseDateTimeRFC3339(in.CreatedFrom); ok {
		f.CreatedFrom = t
	}
	if t, ok := parseDateTimeRFC3339(in.CreatedTo); ok {
		f.CreatedTo = t
	}

	return u.auditRepo.List(ctx, f)
}
