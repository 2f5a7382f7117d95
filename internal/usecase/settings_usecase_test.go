package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
	"storeapi/internal/usecase"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SettingsRepoMock struct{ mock.Mock }

func (m *SettingsRepoMock) Get(ctx context.Context) (model.SettingsRecord, error) {
	args := m.Called(ctx)
	rec, _ := args.Get(0).(model.SettingsRecord)
	return rec, args.Error(1)
}

func (m *SettingsRepoMock) Save(ctx context.Context, rec model.SettingsRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func newSettingsUsecase(settingsRepo *SettingsRepoMock, auditRepo *memAuditRepo) *usecase.SettingsUsecase {
	logger := log.New("test")
	logger.SetLevel(log.OFF)
	audit := usecase.NewAuditRecorder(auditRepo, &seqIDGen{}, &fixedClock{t: time.Unix(1700000000, 0)}, logger)
	return usecase.NewSettingsUsecase(settingsRepo, audit)
}

// 未保存でもストアフロントが描画できるようデフォルトを返す
func TestSettingsUsecase_Get_DefaultsWhenMissing(t *testing.T) {
	settingsRepo := new(SettingsRepoMock)
	uc := newSettingsUsecase(settingsRepo, &memAuditRepo{})

	settingsRepo.On("Get", mock.Anything).Return(model.SettingsRecord{}, repo.ErrNotFound)

	s, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Store", s.SiteName)
	assert.Equal(t, "Welcome", s.Hero.Title)
}

// JSONが壊れていてもエラーにせずデフォルトへ倒す
func TestSettingsUsecase_Get_DefaultsWhenCorrupt(t *testing.T) {
	settingsRepo := new(SettingsRepoMock)
	uc := newSettingsUsecase(settingsRepo, &memAuditRepo{})

	settingsRepo.On("Get", mock.Anything).Return(model.SettingsRecord{ID: 1, DataJSON: "{not json"}, nil)

	s, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Store", s.SiteName)
}

func TestSettingsUsecase_Get_Saved(t *testing.T) {
	settingsRepo := new(SettingsRepoMock)
	uc := newSettingsUsecase(settingsRepo, &memAuditRepo{})

	saved := model.SiteSettings{SiteName: "Kicks DZ", Hero: model.HeroSettings{Title: "New drop"}}
	data, err := json.Marshal(saved)
	require.NoError(t, err)
	settingsRepo.On("Get", mock.Anything).Return(model.SettingsRecord{ID: 1, DataJSON: string(data)}, nil)

	s, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kicks DZ", s.SiteName)
	assert.Equal(t, "New drop", s.Hero.Title)
}

func TestSettingsUsecase_Update_RequiresSiteName(t *testing.T) {
	uc := newSettingsUsecase(new(SettingsRepoMock), &memAuditRepo{})

	err := uc.Update(context.Background(), staffActor(), model.SiteSettings{SiteName: " "})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestSettingsUsecase_Update_SavesAndAudits(t *testing.T) {
	ctx := context.Background()
	settingsRepo := new(SettingsRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newSettingsUsecase(settingsRepo, auditRepo)

	settingsRepo.On("Save", mock.Anything, mock.MatchedBy(func(rec model.SettingsRecord) bool {
		var s model.SiteSettings
		if err := json.Unmarshal([]byte(rec.DataJSON), &s); err != nil {
			return false
		}
		return rec.ID == 1 && s.SiteName == "Kicks DZ"
	})).Return(nil)

	err := uc.Update(ctx, staffActor(), model.SiteSettings{SiteName: "Kicks DZ"})
	require.NoError(t, err)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionSettingsUpdate, logs[0].Action)
	assert.Equal(t, "site", logs[0].TargetID)
	settingsRepo.AssertExpectations(t)
}
