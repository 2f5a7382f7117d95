package model

import "time"

// 操作した人の種類
type ActorType string

const (
	ActorTypeAdmin    ActorType = "admin"
	ActorTypeWorker   ActorType = "worker"
	ActorTypeCustomer ActorType = "customer"
)

// 操作の種類
type AuditAction string

const (
	AuditActionUserLogin      AuditAction = "USER_LOGIN"
	AuditActionUserLogout     AuditAction = "USER_LOGOUT"
	AuditActionUserCreate     AuditAction = "USER_CREATE"
	AuditActionUserRoleUpdate AuditAction = "USER_ROLE_UPDATE"
	AuditActionUserDisable    AuditAction = "USER_DISABLE"

	AuditActionProductCreate AuditAction = "PRODUCT_CREATE"
	AuditActionProductUpdate AuditAction = "PRODUCT_UPDATE"
	AuditActionProductDelete AuditAction = "PRODUCT_DELETE"

	AuditActionBrandCreate  AuditAction = "BRAND_CREATE"
	AuditActionBrandUpdate  AuditAction = "BRAND_UPDATE"
	AuditActionBrandDisable AuditAction = "BRAND_DISABLE"

	AuditActionSizeCreate  AuditAction = "SIZE_CREATE"
	AuditActionSizeUpdate  AuditAction = "SIZE_UPDATE"
	AuditActionSizeDisable AuditAction = "SIZE_DISABLE"

	AuditActionColorCreate  AuditAction = "COLOR_CREATE"
	AuditActionColorUpdate  AuditAction = "COLOR_UPDATE"
	AuditActionColorDisable AuditAction = "COLOR_DISABLE"

	AuditActionDeliveryUpdate     AuditAction = "DELIVERY_UPDATE"
	AuditActionDeliveryInitialize AuditAction = "DELIVERY_INITIALIZE"

	AuditActionOrderUpdate       AuditAction = "ORDER_UPDATE"
	AuditActionOrderStatusUpdate AuditAction = "ORDER_STATUS_UPDATE"

	AuditActionInvoiceGenerated  AuditAction = "INVOICE_GENERATED"
	AuditActionInvoiceDownloaded AuditAction = "INVOICE_DOWNLOADED"

	AuditActionSettingsUpdate AuditAction = "SETTINGS_UPDATE"

	//購入者による注文確定
	AuditActionCustomerOrderCreated AuditAction = "CUSTOMER_ORDER_CREATED"
)

// 何に対する操作か
type TargetType string

const (
	TargetTypeProduct  TargetType = "product"
	TargetTypeBrand    TargetType = "brand"
	TargetTypeSize     TargetType = "size"
	TargetTypeColor    TargetType = "color"
	TargetTypeOrder    TargetType = "order"
	TargetTypeInvoice  TargetType = "invoice"
	TargetTypeDelivery TargetType = "delivery"
	TargetTypeSettings TargetType = "settings"
	TargetTypeUser     TargetType = "user"
)

// 監査ログ。「誰が」「何を」「どの対象に」を残す。
// 追記専用で、更新や削除は一切しない。
type AuditLog struct {
	ID         string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ActorType  ActorType   `gorm:"type:varchar(20);not null;index" json:"actorType"`
	ActorID    string      `gorm:"type:varchar(64);not null;index" json:"actorId"`
	ActorName  string      `gorm:"type:varchar(255)" json:"actorName"`
	Action     AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`
	TargetType TargetType  `gorm:"type:varchar(30);not null;index" json:"targetType"`
	TargetID   string      `gorm:"type:varchar(64);not null;index" json:"targetId"`

	//差分などの追加情報はJSON文字列で保存する
	DetailsJSON string `gorm:"type:text" json:"details,omitempty"`

	UserAgent string    `gorm:"type:text" json:"userAgent,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"timestamp"`
}
