package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

type SettingsUsecase struct {
	settingsRepo repo.SettingsRepository
	audit        *AuditRecorder
}

func NewSettingsUsecase(settingsRepo repo.SettingsRepository, audit *AuditRecorder) *SettingsUsecase {
	return &SettingsUsecase{settingsRepo: settingsRepo, audit: audit}
}

// 未保存ならデフォルトを返す。公開側・管理側の両方から呼ばれる。
func (u *SettingsUsecase) Get(ctx context.Context) (model.SiteSettings, error) {
	rec, err := u.settingsRepo.Get(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return defaultSiteSettings(), nil
	}
	if err != nil {
		return model.SiteSettings{}, err
	}

	var s model.SiteSettings
	if err := json.Unmarshal([]byte(rec.DataJSON), &s); err != nil {
		//壊れたレコードを読んでも落とさない
		return defaultSiteSettings(), nil
	}
	return s, nil
}

func (u *SettingsUsecase) Update(ctx context.Context, actor Actor, in model.SiteSettings) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if strings.TrimSpace(in.SiteName) == "" {
		return NewValidationError("siteName required")
	}

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}

	if err := u.settingsRepo.Save(ctx, model.SettingsRecord{ID: 1, DataJSON: string(data)}); err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionSettingsUpdate, model.TargetTypeSettings, "site", "")
	return nil
}

func defaultSiteSettings() model.SiteSettings {
	return model.SiteSettings{
		SiteName: "Store",
		Hero: model.HeroSettings{
			Title:    "Welcome",
			Type:     "image",
			CtaLabel: "Order now",
		},
	}
}
