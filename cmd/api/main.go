package main

import (
	"time"

	"storeapi/internal/config"
	"storeapi/internal/domain/model"
	"storeapi/internal/handler"
	"storeapi/internal/infra/db"
	infraRepo "storeapi/internal/infra/repository"
	"storeapi/internal/metrics"
	"storeapi/internal/pdf"
	"storeapi/internal/server"
	"storeapi/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(user model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"name": user.DisplayName,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（コンテナでは環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New("api")
	logger.SetLevel(log.INFO)

	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.ShoeColor{},
		&model.ShoeSize{},
		&model.Product{},
		&model.ProductColor{},
		&model.ProductSizeStock{},
		&model.Order{},
		&model.Invoice{},
		&model.DeliveryZone{},
		&model.SettingsRecord{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	brandRepo := infraRepo.NewBrandGormRepository(gormDB)
	colorRepo := infraRepo.NewShoeColorGormRepository(gormDB)
	sizeRepo := infraRepo.NewShoeSizeGormRepository(gormDB)
	zoneRepo := infraRepo.NewDeliveryZoneGormRepository(gormDB)
	settingsRepo := infraRepo.NewSettingsGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（スタッフ作成：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 8 * time.Hour,
	}

	//番号発行（注文・請求書）
	orderNumbers := usecase.NewNumberGenerator("ORD")
	invoiceNumbers := usecase.NewNumberGenerator("INV")

	//メトリクス
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	//監査ログ（ベストエフォート）
	audit := usecase.NewAuditRecorder(auditRepo, idGen, clock, logger)

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(txManager, audit, orderNumbers, idGen, clock, m)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, audit)
	productUC := usecase.NewProductUsecase(productRepo, brandRepo, audit, idGen, clock)
	catalogUC := usecase.NewCatalogUsecase(brandRepo, colorRepo, sizeRepo, audit, idGen)
	deliveryUC := usecase.NewDeliveryUsecase(zoneRepo, audit)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo, audit)
	invoiceUC := usecase.NewInvoiceUsecase(txManager, pdf.NewInvoiceRenderer(cfg.SiteName), audit, idGen, invoiceNumbers, clock)
	authUC := usecase.NewAuthUsecase(userRepo, verifier, issuer, audit, clock)
	userUC := usecase.NewUserUsecase(userRepo, hasher, audit, idGen)
	auditLogUC := usecase.NewAuditLogUsecase(auditRepo)

	//Handler生成とルート登録
	e := server.New(cfg, m)
	server.RegisterRoutes(e, cfg, userRepo, server.Handlers{
		Order:    handler.NewOrderHandler(orderUC),
		Product:  handler.NewProductHandler(productUC),
		Delivery: handler.NewDeliveryHandler(deliveryUC),
		Settings: handler.NewSettingsHandler(settingsUC),
		Auth:     handler.NewAuthHandler(authUC),

		AdminProduct:  handler.NewAdminProductHandler(productUC),
		AdminOrder:    handler.NewAdminOrderHandler(adminOrderUC),
		AdminCatalog:  handler.NewAdminCatalogHandler(catalogUC),
		AdminDelivery: handler.NewAdminDeliveryHandler(deliveryUC),
		AdminAuditLog: handler.NewAdminAuditLogHandler(auditLogUC),
		AdminSettings: handler.NewAdminSettingsHandler(settingsUC),
		AdminInvoice:  handler.NewAdminInvoiceHandler(invoiceUC),
		AdminUser:     handler.NewAdminUserHandler(userUC),
	})

	//Server起動
	addr := ":" + cfg.Port
	logger.Fatal(e.Start(addr))
}
