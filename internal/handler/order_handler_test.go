package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storeapi/internal/domain/model"
	"storeapi/internal/handler"
	repo "storeapi/internal/repository"
	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// チェックアウト1本分の軽量フェイク。
// 在庫不足は事前チェックで弾かれるケースしか扱わないので、ロールバックは持たない。
// =====================

type checkoutStore struct {
	product model.Product
	stock   map[int]int64
	orders  []model.Order
	audits  []model.AuditLog
}

func testStore() *checkoutStore {
	return &checkoutStore{
		product: model.Product{
			ID: "P1", Name: "Air Runner", Price: 9000, IsActive: true,
			Colors: []model.ProductColor{
				{ColorID: "red", Name: "Red", Sizes: []model.ProductSizeStock{{Size: 42, Stock: 2}}},
			},
		},
		stock: map[int]int64{42: 2},
	}
}

type checkoutTx struct{ s *checkoutStore }

func (t *checkoutTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t)
}

func (t *checkoutTx) Orders() repo.OrderRepository     { return &fakeOrderRepo{s: t.s} }
func (t *checkoutTx) Products() repo.ProductRepository { return &fakeProductRepo{s: t.s} }
func (t *checkoutTx) Stock() repo.StockRepository      { return &fakeStockRepo{s: t.s} }
func (t *checkoutTx) Invoices() repo.InvoiceRepository { return nil }

type fakeProductRepo struct{ s *checkoutStore }

func (r *fakeProductRepo) FindByID(ctx context.Context, productID string) (model.Product, error) {
	if productID != r.s.product.ID {
		return model.Product{}, repo.ErrNotFound
	}
	return r.s.product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used")
}
func (r *fakeProductRepo) Create(ctx context.Context, p model.Product) error { panic("not used") }
func (r *fakeProductRepo) Update(ctx context.Context, p model.Product) error { panic("not used") }
func (r *fakeProductRepo) SoftDelete(ctx context.Context, productID string) error {
	panic("not used")
}

type fakeOrderRepo struct{ s *checkoutStore }

func (r *fakeOrderRepo) Create(ctx context.Context, o model.Order) error {
	r.s.orders = append(r.s.orders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	panic("not used")
}
func (r *fakeOrderRepo) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	panic("not used")
}
func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	panic("not used")
}
func (r *fakeOrderRepo) UpdateDeliveryStatus(ctx context.Context, orderID string, status model.DeliveryStatus) error {
	panic("not used")
}

type fakeStockRepo struct{ s *checkoutStore }

func (r *fakeStockRepo) DecreaseIfEnough(ctx context.Context, productID string, colorID string, size int, qty int64) (bool, error) {
	if r.s.stock[size] < qty {
		return false, nil
	}
	r.s.stock[size] -= qty
	return true, nil
}

func (r *fakeStockRepo) Increase(ctx context.Context, productID string, colorID string, size int, qty int64) error {
	r.s.stock[size] += qty
	return nil
}

func (r *fakeStockRepo) Get(ctx context.Context, productID string, colorID string, size int) (int64, error) {
	return r.s.stock[size], nil
}

type auditSink struct{ s *checkoutStore }

func (a auditSink) Create(ctx context.Context, entry model.AuditLog) error {
	a.s.audits = append(a.s.audits, entry)
	return nil
}

func (a auditSink) List(ctx context.Context, f repo.AuditLogFilter) ([]model.AuditLog, error) {
	return a.s.audits, nil
}

type clockStub struct{}

func (clockStub) Now() time.Time { return time.Unix(1700000000, 0) }

type idStub struct{ n int }

func (g *idStub) NewID() string {
	g.n++
	return "id-" + strings.Repeat("x", g.n)
}

func newCheckoutEcho(t *testing.T, store *checkoutStore) *echo.Echo {
	t.Helper()

	logger := log.New("test")
	logger.SetLevel(log.OFF)

	tx := &checkoutTx{s: store}
	audit := usecase.NewAuditRecorder(auditSink{s: store}, &idStub{}, clockStub{}, logger)
	uc := usecase.NewOrderUsecase(tx, audit, usecase.NewNumberGenerator("ORD"), &idStub{}, clockStub{}, nil)

	e := echo.New()
	handler.NewOrderHandler(uc).RegisterRoutes(e)
	return e
}

const checkoutBody = `{
	"product": {"id": "P1"},
	"variant": {"colorId": "red", "size": %s},
	"quantity": %d,
	"customer": {"fullName": "Amine B", "phone": "0555123456", "wilaya": "Alger", "city": "Hydra", "addressDetails": "Rue 12"},
	"delivery": {"type": "home", "price": 400, "delay": 1},
	"total": 18400
}`

func checkoutJSON(size string, qty string) string {
	body := strings.Replace(checkoutBody, "%s", size, 1)
	return strings.Replace(body, "%d", qty, 1)
}

func postOrder(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_Create_Success(t *testing.T) {
	store := testStore()
	e := newCheckoutEcho(t, store)

	rec := postOrder(e, checkoutJSON("42", "2"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.OrderID)
	assert.Contains(t, resp.OrderNumber, "ORD-")
	assert.Equal(t, int64(0), store.stock[42])
	require.Len(t, store.orders, 1)
	assert.Equal(t, model.OrderSourceWebsite, store.orders[0].Source)
}

// サイズが文字列"42"でも数値42と同じに扱う
func TestOrderHandler_Create_StringSizeAccepted(t *testing.T) {
	store := testStore()
	e := newCheckoutEcho(t, store)

	rec := postOrder(e, checkoutJSON(`"42"`, "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), store.stock[42])
}

func TestOrderHandler_Create_MissingSize(t *testing.T) {
	e := newCheckoutEcho(t, testStore())

	body := `{
		"product": {"id": "P1"},
		"variant": {"colorId": "red"},
		"quantity": 1,
		"customer": {"fullName": "A", "phone": "1", "wilaya": "Alger", "addressDetails": "x"},
		"delivery": {"type": "home", "price": 400},
		"total": 9400
	}`
	rec := postOrder(e, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "size required", resp.Error)
}

// 数量はトップレベルのフィールド。variantの中に入れても読まれない。
func TestOrderHandler_Create_QuantityMustBeTopLevel(t *testing.T) {
	store := testStore()
	e := newCheckoutEcho(t, store)

	body := `{
		"product": {"id": "P1"},
		"variant": {"colorId": "red", "size": 42, "quantity": 2},
		"customer": {"fullName": "Amine B", "phone": "0555123456", "wilaya": "Alger", "addressDetails": "Rue 12"},
		"delivery": {"type": "home", "price": 400},
		"total": 18400
	}`
	rec := postOrder(e, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "quantity must be > 0", resp.Error)
	assert.Equal(t, int64(2), store.stock[42])
}

func TestOrderHandler_Create_UnknownProduct(t *testing.T) {
	e := newCheckoutEcho(t, testStore())

	body := strings.Replace(checkoutJSON("42", "1"), `"id": "P1"`, `"id": "nope"`, 1)
	rec := postOrder(e, body)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "product not found", resp.Error)
}

func TestOrderHandler_Create_InsufficientStock(t *testing.T) {
	store := testStore()
	e := newCheckoutEcho(t, store)

	rec := postOrder(e, checkoutJSON("42", "5"))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "only 2 items available", resp.Error)
	//拒否された注文は在庫を減らさない
	assert.Equal(t, int64(2), store.stock[42])
	assert.Len(t, store.orders, 0)
}

func TestOrderHandler_Create_InvalidBody(t *testing.T) {
	e := newCheckoutEcho(t, testStore())

	rec := postOrder(e, `{"product":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
