package usecase_test

import (
	"context"
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

type DelivZoneRepoMock struct{ mock.Mock }

func (m *DelivZoneRepoMock) List(ctx context.Context) ([]model.DeliveryZone, error) {
	args := m.Called(ctx)
	zones, _ := args.Get(0).([]model.DeliveryZone)
	return zones, args.Error(1)
}

func (m *DelivZoneRepoMock) FindByID(ctx context.Context, zoneID int64) (model.DeliveryZone, error) {
	args := m.Called(ctx, zoneID)
	z, _ := args.Get(0).(model.DeliveryZone)
	return z, args.Error(1)
}

func (m *DelivZoneRepoMock) Update(ctx context.Context, z model.DeliveryZone) error {
	args := m.Called(ctx, z)
	return args.Error(0)
}

func (m *DelivZoneRepoMock) ReplaceAll(ctx context.Context, zones []model.DeliveryZone) error {
	args := m.Called(ctx, zones)
	return args.Error(0)
}

func (m *DelivZoneRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newDeliveryUsecase(zoneRepo *DelivZoneRepoMock, auditRepo *memAuditRepo) *usecase.DeliveryUsecase {
	logger := log.New("test")
	logger.SetLevel(log.OFF)
	audit := usecase.NewAuditRecorder(auditRepo, &seqIDGen{}, &fixedClock{t: time.Unix(1700000000, 0)}, logger)
	return usecase.NewDeliveryUsecase(zoneRepo, audit)
}

func validZoneInput() usecase.ZoneInput {
	return usecase.ZoneInput{
		Wilaya:        "Alger",
		City:          "Hydra",
		Zone:          1,
		DelayDays:     1,
		HomePrice:     400,
		StopdeskPrice: 250,
		ReturnPrice:   200,
	}
}

func TestDeliveryUsecase_UpdateZone_Success(t *testing.T) {
	ctx := context.Background()
	zoneRepo := new(DelivZoneRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newDeliveryUsecase(zoneRepo, auditRepo)

	zoneRepo.On("Update", mock.Anything, mock.MatchedBy(func(z model.DeliveryZone) bool {
		return z.ID == 7 && z.Wilaya == "Alger" && z.HomePrice == 400
	})).Return(nil)

	err := uc.UpdateZone(ctx, staffActor(), 7, validZoneInput())
	require.NoError(t, err)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionDeliveryUpdate, logs[0].Action)
	assert.Equal(t, "7", logs[0].TargetID)
	zoneRepo.AssertExpectations(t)
}

func TestDeliveryUsecase_UpdateZone_NotFound(t *testing.T) {
	zoneRepo := new(DelivZoneRepoMock)
	uc := newDeliveryUsecase(zoneRepo, &memAuditRepo{})

	zoneRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.UpdateZone(context.Background(), staffActor(), 99, validZoneInput())

	var nf *usecase.NotFoundError
	require.ErrorAs(t, err, &nf)
}

// ウィラヤ＋都市の組み合わせが既存とぶつかったら400
func TestDeliveryUsecase_UpdateZone_DuplicateArea(t *testing.T) {
	zoneRepo := new(DelivZoneRepoMock)
	uc := newDeliveryUsecase(zoneRepo, &memAuditRepo{})

	zoneRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	err := uc.UpdateZone(context.Background(), staffActor(), 7, validZoneInput())

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "zone already exists for this area", ve.Message)
}

func TestDeliveryUsecase_UpdateZone_MissingWilaya(t *testing.T) {
	uc := newDeliveryUsecase(new(DelivZoneRepoMock), &memAuditRepo{})

	in := validZoneInput()
	in.Wilaya = "  "
	err := uc.UpdateZone(context.Background(), staffActor(), 7, in)

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "wilaya required", ve.Message)
}

func TestDeliveryUsecase_UpdateZone_NegativePrice(t *testing.T) {
	uc := newDeliveryUsecase(new(DelivZoneRepoMock), &memAuditRepo{})

	in := validZoneInput()
	in.StopdeskPrice = -1
	err := uc.UpdateZone(context.Background(), staffActor(), 7, in)

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestDeliveryUsecase_ReplaceZones_Empty(t *testing.T) {
	uc := newDeliveryUsecase(new(DelivZoneRepoMock), &memAuditRepo{})

	err := uc.ReplaceZones(context.Background(), staffActor(), nil)

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestDeliveryUsecase_Initialize_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	zoneRepo := new(DelivZoneRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newDeliveryUsecase(zoneRepo, auditRepo)

	zoneRepo.On("Count", mock.Anything).Return(int64(0), nil)
	zoneRepo.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(zones []model.DeliveryZone) bool {
		//48ウィラヤ全部
		return len(zones) == 48 && zones[0].Wilaya != ""
	})).Return(nil)

	n, err := uc.Initialize(ctx, staffActor())
	require.NoError(t, err)
	assert.Equal(t, 48, n)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionDeliveryInitialize, logs[0].Action)
	zoneRepo.AssertExpectations(t)
}

func TestDeliveryUsecase_Initialize_AlreadyInitialized(t *testing.T) {
	zoneRepo := new(DelivZoneRepoMock)
	uc := newDeliveryUsecase(zoneRepo, &memAuditRepo{})

	zoneRepo.On("Count", mock.Anything).Return(int64(48), nil)

	_, err := uc.Initialize(context.Background(), staffActor())

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "delivery zones already initialized", ve.Message)
	zoneRepo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}
