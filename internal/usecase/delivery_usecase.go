package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

type DeliveryUsecase struct {
	zoneRepo repo.DeliveryZoneRepository
	audit    *AuditRecorder
}

func NewDeliveryUsecase(zoneRepo repo.DeliveryZoneRepository, audit *AuditRecorder) *DeliveryUsecase {
	return &DeliveryUsecase{zoneRepo: zoneRepo, audit: audit}
}

// 公開側。ストアフロントが配送料の計算に使う。
func (u *DeliveryUsecase) ListZones(ctx context.Context) ([]model.DeliveryZone, error) {
	return u.zoneRepo.List(ctx)
}

type ZoneInput struct {
	Wilaya        string `json:"wilaya"`
	City          string `json:"city"`
	Zone          int    `json:"zone"`
	DelayDays     int    `json:"delay"`
	HomePrice     int64  `json:"home"`
	StopdeskPrice int64  `json:"stopdesk"`
	ReturnPrice   int64  `json:"return"`
}

func (u *DeliveryUsecase) UpdateZone(ctx context.Context, actor Actor, zoneID int64, in ZoneInput) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if zoneID <= 0 {
		return NewValidationError("invalid id")
	}
	if err := validateZone(in); err != nil {
		return err
	}

	z := zoneFromInput(in)
	z.ID = zoneID

	err := u.zoneRepo.Update(ctx, z)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "delivery zone"}
	}
	if errors.Is(err, repo.ErrConflict) {
		return NewValidationError("zone already exists for this area")
	}
	if err != nil {
		return err
	}

	details := fmt.Sprintf(`{"wilaya":%q,"city":%q}`, z.Wilaya, z.City)
	u.audit.RecordActor(ctx, actor, model.AuditActionDeliveryUpdate, model.TargetTypeDelivery, fmt.Sprintf("%d", zoneID), details)
	return nil
}

// 料金表の一括入れ替え
func (u *DeliveryUsecase) ReplaceZones(ctx context.Context, actor Actor, in []ZoneInput) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if len(in) == 0 {
		return NewValidationError("zones required")
	}

	zones := make([]model.DeliveryZone, 0, len(in))
	for _, z := range in {
		if err := validateZone(z); err != nil {
			return err
		}
		zones = append(zones, zoneFromInput(z))
	}

	if err := u.zoneRepo.ReplaceAll(ctx, zones); err != nil {
		return err
	}

	details := fmt.Sprintf(`{"zones":%d}`, len(zones))
	u.audit.RecordActor(ctx, actor, model.AuditActionDeliveryUpdate, model.TargetTypeDelivery, "all", details)
	return nil
}

// Initialize は空の料金表にデフォルトを投入する。すでにあれば何もしない。
func (u *DeliveryUsecase) Initialize(ctx context.Context, actor Actor) (int, error) {
	if err := requireActor(actor); err != nil {
		return 0, err
	}

	n, err := u.zoneRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, NewValidationError("delivery zones already initialized")
	}

	zones := DefaultDeliveryZones()
	if err := u.zoneRepo.ReplaceAll(ctx, zones); err != nil {
		return 0, err
	}

	details := fmt.Sprintf(`{"zones":%d}`, len(zones))
	u.audit.RecordActor(ctx, actor, model.AuditActionDeliveryInitialize, model.TargetTypeDelivery, "all", details)
	return len(zones), nil
}

func validateZone(in ZoneInput) error {
	if strings.TrimSpace(in.Wilaya) == "" {
		return NewValidationError("wilaya required")
	}
	if in.HomePrice < 0 || in.StopdeskPrice < 0 || in.ReturnPrice < 0 {
		return NewValidationError("prices must be >= 0")
	}
	if in.DelayDays < 0 {
		return NewValidationError("delay must be >= 0")
	}
	return nil
}

func zoneFromInput(in ZoneInput) model.DeliveryZone {
	return model.DeliveryZone{
		Wilaya:        strings.TrimSpace(in.Wilaya),
		City:          strings.TrimSpace(in.City),
		Zone:          in.Zone,
		DelayDays:     in.DelayDays,
		HomePrice:     in.HomePrice,
		StopdeskPrice: in.StopdeskPrice,
		ReturnPrice:   in.ReturnPrice,
	}
}
