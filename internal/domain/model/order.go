package model

import "time"

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusPreparing DeliveryStatus = "preparing"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusReturned  DeliveryStatus = "returned"
)

type PaymentStatus string

const PaymentCashOnDelivery PaymentStatus = "cash_on_delivery"

type OrderSource string

const (
	OrderSourceWebsite  OrderSource = "website"
	OrderSourceAdmin    OrderSource = "admin"
	OrderSourceWhatsApp OrderSource = "whatsapp"
)

type DeliveryType string

const (
	DeliveryTypeHome     DeliveryType = "home"
	DeliveryTypeStopdesk DeliveryType = "stopdesk"
)

// 注文。商品・カラー・顧客情報は作成時点のスナップショットで、
// 以後はstatus系のカラムだけが更新される。
type Order struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderNumber string `gorm:"type:varchar(40);not null;uniqueIndex" json:"orderNumber"`

	ProductID    string `gorm:"type:varchar(36);not null;index" json:"productId"`
	ProductName  string `gorm:"type:varchar(255);not null" json:"productName"`
	ProductPrice int64  `gorm:"not null" json:"productPrice"`
	BrandID      string `gorm:"type:varchar(36)" json:"brandId"`
	BrandName    string `gorm:"type:varchar(255)" json:"brandName"`
	ProductImage string `gorm:"type:text" json:"productImage,omitempty"`

	ColorID   string `gorm:"type:varchar(36);not null" json:"colorId"`
	ColorName string `gorm:"type:varchar(100)" json:"colorName"`
	Size      int    `gorm:"not null" json:"size"`

	Quantity int64 `gorm:"not null" json:"quantity"`

	CustomerFullName string `gorm:"type:varchar(255);not null" json:"customerFullName"`
	CustomerPhone    string `gorm:"type:varchar(30);not null" json:"customerPhone"`
	CustomerWilaya   string `gorm:"type:varchar(100);not null" json:"customerWilaya"`
	CustomerCity     string `gorm:"type:varchar(100)" json:"customerCity"`
	CustomerAddress  string `gorm:"type:text;not null" json:"customerAddress"`

	DeliveryType      DeliveryType `gorm:"type:varchar(20);not null" json:"deliveryType"`
	DeliveryPrice     int64        `gorm:"not null" json:"deliveryPrice"`
	DeliveryDelayDays int          `gorm:"not null;default:0" json:"deliveryDelayDays"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`
	Total int64  `gorm:"not null" json:"total"`

	Status         OrderStatus    `gorm:"type:varchar(20);not null;index" json:"status"`
	DeliveryStatus DeliveryStatus `gorm:"type:varchar(20);not null;index" json:"deliveryStatus"`
	PaymentStatus  PaymentStatus  `gorm:"type:varchar(30);not null" json:"paymentStatus"`
	Source         OrderSource    `gorm:"type:varchar(20);not null;index" json:"source"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
