package server

import (
	"storeapi/internal/config"
	"storeapi/internal/domain/model"
	"storeapi/internal/handler"
	"storeapi/internal/middleware"
	"storeapi/internal/repository"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要なhandler一式
type Handlers struct {
	Order    *handler.OrderHandler
	Product  *handler.ProductHandler
	Delivery *handler.DeliveryHandler
	Settings *handler.SettingsHandler
	Auth     *handler.AuthHandler

	AdminProduct  *handler.AdminProductHandler
	AdminOrder    *handler.AdminOrderHandler
	AdminCatalog  *handler.AdminCatalogHandler
	AdminDelivery *handler.AdminDeliveryHandler
	AdminAuditLog *handler.AdminAuditLogHandler
	AdminSettings *handler.AdminSettingsHandler
	AdminInvoice  *handler.AdminInvoiceHandler
	AdminUser     *handler.AdminUserHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	//公開API
	h.Order.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Delivery.RegisterRoutes(e)
	h.Settings.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.AdminCatalog.RegisterPublicRoutes(e)

	//管理API（admin/worker両方）
	staff := e.Group("/admin")
	staff.Use(middleware.AuthJWT(cfg))
	staff.Use(middleware.ActiveUserGuard(userRepo))
	staff.Use(middleware.RequireRoles(model.RoleAdmin, model.RoleWorker))

	h.AdminProduct.RegisterRoutes(staff)
	h.AdminOrder.RegisterRoutes(staff)
	h.AdminCatalog.RegisterRoutes(staff)
	h.AdminDelivery.RegisterRoutes(staff)
	h.AdminInvoice.RegisterRoutes(staff)
	h.AdminSettings.RegisterRoutes(staff)

	//adminだけ
	adminOnly := e.Group("/admin")
	adminOnly.Use(middleware.AuthJWT(cfg))
	adminOnly.Use(middleware.ActiveUserGuard(userRepo))
	adminOnly.Use(middleware.RequireRoles(model.RoleAdmin))

	h.AdminUser.RegisterRoutes(adminOnly)
	h.AdminAuditLog.RegisterRoutes(adminOnly)
}
