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

// =====================
// TxManager / TxRepos mocks（Admin向け：衝突回避の命名）
// =====================

// AdminTxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type AdminTxManagerMock struct {
	Repos repo.TxRepos
}

func (m *AdminTxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.Repos)
}

type AdminTxReposMock struct {
	orders repo.OrderRepository
	stock  repo.StockRepository
}

func (r *AdminTxReposMock) Orders() repo.OrderRepository     { return r.orders }
func (r *AdminTxReposMock) Stock() repo.StockRepository      { return r.stock }
func (r *AdminTxReposMock) Products() repo.ProductRepository { return nil }
func (r *AdminTxReposMock) Invoices() repo.InvoiceRepository { return nil }

type AdminOrderRepoMock struct{ mock.Mock }

func (m *AdminOrderRepoMock) Create(ctx context.Context, o model.Order) error {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *AdminOrderRepoMock) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *AdminOrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *AdminOrderRepoMock) UpdateDeliveryStatus(ctx context.Context, orderID string, status model.DeliveryStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type AdminStockRepoMock struct{ mock.Mock }

func (m *AdminStockRepoMock) DecreaseIfEnough(ctx context.Context, productID string, colorID string, size int, qty int64) (bool, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminStockRepoMock) Increase(ctx context.Context, productID string, colorID string, size int, qty int64) error {
	args := m.Called(ctx, productID, colorID, size, qty)
	return args.Error(0)
}

func (m *AdminStockRepoMock) Get(ctx context.Context, productID string, colorID string, size int) (int64, error) {
	panic("not used in AdminOrderUsecase tests")
}

func newAdminOrderUsecase(orders *AdminOrderRepoMock, stock *AdminStockRepoMock, auditRepo *memAuditRepo) *usecase.AdminOrderUsecase {
	logger := log.New("test")
	logger.SetLevel(log.OFF)

	tx := &AdminTxManagerMock{Repos: &AdminTxReposMock{orders: orders, stock: stock}}
	audit := usecase.NewAuditRecorder(auditRepo, &seqIDGen{}, &fixedClock{t: time.Unix(1700000000, 0)}, logger)
	return usecase.NewAdminOrderUsecase(tx, audit)
}

func staffActor() usecase.Actor {
	return usecase.Actor{ID: "U1", Name: "Admin A", Role: model.RoleAdmin}
}

func TestAdminOrderUsecase_UpdateStatus_CancelRestocks(t *testing.T) {
	ctx := context.Background()
	orders := new(AdminOrderRepoMock)
	stock := new(AdminStockRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newAdminOrderUsecase(orders, stock, auditRepo)

	existing := model.Order{
		ID: "O1", Status: model.OrderStatusConfirmed,
		ProductID: "P1", ColorID: "red", Size: 42, Quantity: 2,
	}
	orders.On("FindByID", mock.Anything, "O1").Return(existing, nil)
	stock.On("Increase", mock.Anything, "P1", "red", 42, int64(2)).Return(nil)
	orders.On("UpdateStatus", mock.Anything, "O1", model.OrderStatusCancelled).Return(nil)

	err := uc.UpdateStatus(ctx, staffActor(), "O1", usecase.AdminUpdateOrderStatusInput{Status: "cancelled"})
	require.NoError(t, err)

	orders.AssertExpectations(t)
	stock.AssertExpectations(t)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionOrderStatusUpdate, logs[0].Action)
	assert.Equal(t, `{"before":"confirmed","after":"cancelled"}`, logs[0].DetailsJSON)
	assert.Equal(t, "U1", logs[0].ActorID)
}

func TestAdminOrderUsecase_UpdateStatus_NonCancelDoesNotRestock(t *testing.T) {
	orders := new(AdminOrderRepoMock)
	stock := new(AdminStockRepoMock)
	uc := newAdminOrderUsecase(orders, stock, &memAuditRepo{})

	orders.On("FindByID", mock.Anything, "O1").Return(model.Order{ID: "O1", Status: model.OrderStatusNew}, nil)
	orders.On("UpdateStatus", mock.Anything, "O1", model.OrderStatusConfirmed).Return(nil)

	err := uc.UpdateStatus(context.Background(), staffActor(), "O1", usecase.AdminUpdateOrderStatusInput{Status: "confirmed"})
	require.NoError(t, err)

	stock.AssertNotCalled(t, "Increase", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_CancelledIsTerminal(t *testing.T) {
	orders := new(AdminOrderRepoMock)
	stock := new(AdminStockRepoMock)
	uc := newAdminOrderUsecase(orders, stock, &memAuditRepo{})

	orders.On("FindByID", mock.Anything, "O1").Return(model.Order{ID: "O1", Status: model.OrderStatusCancelled}, nil)

	err := uc.UpdateStatus(context.Background(), staffActor(), "O1", usecase.AdminUpdateOrderStatusInput{Status: "confirmed"})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	ctx := context.Background()
	orders := new(AdminOrderRepoMock)
	stock := new(AdminStockRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newAdminOrderUsecase(orders, stock, auditRepo)

	orders.On("FindByID", mock.Anything, "O1").Return(model.Order{ID: "O1", Status: model.OrderStatusNew}, nil)

	err := uc.UpdateStatus(ctx, staffActor(), "O1", usecase.AdminUpdateOrderStatusInput{Status: "new"})
	require.NoError(t, err)

	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	//変更なしなら監査ログも書かない
	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	assert.Len(t, logs, 0)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := newAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminStockRepoMock), &memAuditRepo{})

	err := uc.UpdateStatus(context.Background(), staffActor(), "O1", usecase.AdminUpdateOrderStatusInput{Status: "shipped"})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	orders := new(AdminOrderRepoMock)
	uc := newAdminOrderUsecase(orders, new(AdminStockRepoMock), &memAuditRepo{})

	orders.On("FindByID", mock.Anything, "missing").Return(model.Order{}, repo.ErrNotFound)

	err := uc.UpdateStatus(context.Background(), staffActor(), "missing", usecase.AdminUpdateOrderStatusInput{Status: "confirmed"})

	var nf *usecase.NotFoundError
	require.ErrorAs(t, err, &nf)
}

// 変種が消えていても在庫戻しの失敗でキャンセルは止めない
func TestAdminOrderUsecase_UpdateStatus_CancelToleratesMissingVariant(t *testing.T) {
	orders := new(AdminOrderRepoMock)
	stock := new(AdminStockRepoMock)
	uc := newAdminOrderUsecase(orders, stock, &memAuditRepo{})

	existing := model.Order{ID: "O1", Status: model.OrderStatusNew, ProductID: "P1", ColorID: "red", Size: 42, Quantity: 1}
	orders.On("FindByID", mock.Anything, "O1").Return(existing, nil)
	stock.On("Increase", mock.Anything, "P1", "red", 42, int64(1)).Return(repo.ErrNotFound)
	orders.On("UpdateStatus", mock.Anything, "O1", model.OrderStatusCancelled).Return(nil)

	err := uc.UpdateStatus(context.Background(), staffActor(), "O1", usecase.AdminUpdateOrderStatusInput{Status: "cancelled"})
	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateDeliveryStatus(t *testing.T) {
	ctx := context.Background()
	orders := new(AdminOrderRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newAdminOrderUsecase(orders, new(AdminStockRepoMock), auditRepo)

	orders.On("UpdateDeliveryStatus", mock.Anything, "O1", model.DeliveryStatusShipped).Return(nil)

	err := uc.UpdateDeliveryStatus(ctx, staffActor(), "O1", usecase.AdminUpdateDeliveryStatusInput{DeliveryStatus: "shipped"})
	require.NoError(t, err)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionOrderUpdate, logs[0].Action)
}

func TestAdminOrderUsecase_UpdateDeliveryStatus_Invalid(t *testing.T) {
	uc := newAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminStockRepoMock), &memAuditRepo{})

	err := uc.UpdateDeliveryStatus(context.Background(), staffActor(), "O1", usecase.AdminUpdateDeliveryStatusInput{DeliveryStatus: "lost"})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestAdminOrderUsecase_List_FilterValidation(t *testing.T) {
	uc := newAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminStockRepoMock), &memAuditRepo{})

	_, err := uc.List(context.Background(), usecase.AdminOrderListInput{Page: 0, Limit: 20})
	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = uc.List(context.Background(), usecase.AdminOrderListInput{Page: 1, Limit: 20, Status: "bogus"})
	require.ErrorAs(t, err, &ve)
}

func TestAdminOrderUsecase_List_Success(t *testing.T) {
	orders := new(AdminOrderRepoMock)
	uc := newAdminOrderUsecase(orders, new(AdminStockRepoMock), &memAuditRepo{})

	st := model.OrderStatusNew
	want := repo.OrderListFilter{Status: &st, Page: 1, Limit: 20}
	orders.On("List", mock.Anything, want).Return([]model.Order{{ID: "O1"}}, int64(1), nil)

	out, err := uc.List(context.Background(), usecase.AdminOrderListInput{Page: 1, Limit: 20, Status: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	orders.AssertExpectations(t)
}
