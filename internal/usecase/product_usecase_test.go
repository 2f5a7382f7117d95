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
// Mocks（Product向け：衝突回避の命名）
// =====================

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProdProductRepoMock) SoftDelete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type ProdBrandRepoMock struct{ mock.Mock }

func (m *ProdBrandRepoMock) List(ctx context.Context, activeOnly bool) ([]model.Brand, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdBrandRepoMock) FindByID(ctx context.Context, brandID string) (model.Brand, error) {
	args := m.Called(ctx, brandID)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *ProdBrandRepoMock) Create(ctx context.Context, b model.Brand) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdBrandRepoMock) Update(ctx context.Context, b model.Brand) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdBrandRepoMock) SetActive(ctx context.Context, brandID string, active bool) error {
	panic("not used in ProductUsecase tests")
}

func newProductUsecase(pRepo *ProdProductRepoMock, bRepo *ProdBrandRepoMock, auditRepo *memAuditRepo) *usecase.ProductUsecase {
	logger := log.New("test")
	logger.SetLevel(log.OFF)
	audit := usecase.NewAuditRecorder(auditRepo, &seqIDGen{}, &fixedClock{t: time.Unix(1700000000, 0)}, logger)
	return usecase.NewProductUsecase(pRepo, bRepo, audit, &seqIDGen{}, &fixedClock{t: time.Unix(1700000000, 0)})
}

// =====================
// Public: List / Detail
// =====================

func TestProductUsecase_ListPublicProducts_InvalidPage(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid page", ve.Message)
}

func TestProductUsecase_ListPublicProducts_InvalidLimit(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestProductUsecase_ListPublicProducts_InvalidPriceRange(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	lo, hi := int64(5000), int64(1000)
	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, MinPrice: &lo, MaxPrice: &hi,
	})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestProductUsecase_ListPublicProducts_ExcludesInactive(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecase(pRepo, new(ProdBrandRepoMock), &memAuditRepo{})

	want := repo.ProductListQuery{Page: 1, Limit: 20, Sort: "new", IncludeInactive: false}
	pRepo.On("List", mock.Anything, want).Return([]model.Product{{ID: "P1"}}, int64(1), nil)

	out, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Sort: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminListProducts_IncludesInactive(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecase(pRepo, new(ProdBrandRepoMock), &memAuditRepo{})

	want := repo.ProductListQuery{Page: 1, Limit: 20, IncludeInactive: true}
	pRepo.On("List", mock.Anything, want).Return([]model.Product{}, int64(0), nil)

	_, err := uc.AdminListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20})
	require.NoError(t, err)
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProductDetail_NotFound_WhenInactive(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecase(pRepo, new(ProdBrandRepoMock), &memAuditRepo{})

	pRepo.On("FindByID", mock.Anything, "P1").Return(model.Product{ID: "P1", IsActive: false}, nil)

	_, err := uc.GetProductDetail(context.Background(), "P1")

	var nf *usecase.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestProductUsecase_GetProductDetail_NotFound_WhenRepoNotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := newProductUsecase(pRepo, new(ProdBrandRepoMock), &memAuditRepo{})

	pRepo.On("FindByID", mock.Anything, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), "missing")

	var nf *usecase.NotFoundError
	require.ErrorAs(t, err, &nf)
}

// =====================
// Admin: Create / Update / Delete
// =====================

func TestProductUsecase_AdminCreateProduct_Unauthorized(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	_, err := uc.AdminCreateProduct(context.Background(), usecase.Actor{}, usecase.AdminSaveProductInput{Name: "x"})

	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 401, he.Status)
}

func TestProductUsecase_AdminCreateProduct_DuplicateColorRejected(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	_, err := uc.AdminCreateProduct(context.Background(), staffActor(), usecase.AdminSaveProductInput{
		Name:  "Shoe",
		Price: 100,
		Colors: []usecase.ProductColorInput{
			{ColorID: "red"},
			{ColorID: "red"},
		},
	})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "duplicate colorId")
}

func TestProductUsecase_AdminCreateProduct_DuplicateSizeRejected(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	_, err := uc.AdminCreateProduct(context.Background(), staffActor(), usecase.AdminSaveProductInput{
		Name:  "Shoe",
		Price: 100,
		Colors: []usecase.ProductColorInput{
			{ColorID: "red", Sizes: []usecase.ProductSizeInput{{Size: 42}, {Size: 42}}},
		},
	})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestProductUsecase_AdminCreateProduct_NegativeStockRejected(t *testing.T) {
	uc := newProductUsecase(new(ProdProductRepoMock), new(ProdBrandRepoMock), &memAuditRepo{})

	_, err := uc.AdminCreateProduct(context.Background(), staffActor(), usecase.AdminSaveProductInput{
		Name:  "Shoe",
		Price: 100,
		Colors: []usecase.ProductColorInput{
			{ColorID: "red", Sizes: []usecase.ProductSizeInput{{Size: 42, Stock: -1}}},
		},
	})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "stock must be >= 0", ve.Message)
}

func TestProductUsecase_AdminCreateProduct_Success(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProdProductRepoMock)
	bRepo := new(ProdBrandRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newProductUsecase(pRepo, bRepo, auditRepo)

	bRepo.On("FindByID", mock.Anything, "B1").Return(model.Brand{ID: "B1", Name: "Nike"}, nil)
	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Air Max" && p.BrandName == "Nike" && p.Slug == "air-max" && len(p.Colors) == 1
	})).Return(nil)

	id, err := uc.AdminCreateProduct(ctx, staffActor(), usecase.AdminSaveProductInput{
		Name:    "Air Max",
		BrandID: "B1",
		Price:   12000,
		Colors: []usecase.ProductColorInput{
			{ColorID: "red", Name: "Red", Sizes: []usecase.ProductSizeInput{{Size: 42, Stock: 5}}},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionProductCreate, logs[0].Action)

	pRepo.AssertExpectations(t)
	bRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminCreateProduct_UnknownBrand(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	bRepo := new(ProdBrandRepoMock)
	uc := newProductUsecase(pRepo, bRepo, &memAuditRepo{})

	bRepo.On("FindByID", mock.Anything, "nope").Return(model.Brand{}, repo.ErrNotFound)

	_, err := uc.AdminCreateProduct(context.Background(), staffActor(), usecase.AdminSaveProductInput{
		Name: "Shoe", BrandID: "nope", Price: 100,
	})

	var ve *usecase.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "unknown brand", ve.Message)
}

func TestProductUsecase_AdminDeleteProduct_Audited(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProdProductRepoMock)
	auditRepo := &memAuditRepo{}
	uc := newProductUsecase(pRepo, new(ProdBrandRepoMock), auditRepo)

	pRepo.On("SoftDelete", mock.Anything, "P1").Return(nil)

	err := uc.AdminDeleteProduct(ctx, staffActor(), "P1")
	require.NoError(t, err)

	logs, _ := auditRepo.List(ctx, repo.AuditLogFilter{})
	require.Len(t, logs, 1)
	assert.Equal(t, model.AuditActionProductDelete, logs[0].Action)
	assert.Equal(t, "P1", logs[0].TargetID)
}
