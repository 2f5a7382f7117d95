package model

import "time"

// 請求書。注文からの金額スナップショットを持つ。
type Invoice struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	InvoiceNumber string    `gorm:"type:varchar(40);not null;uniqueIndex" json:"invoiceNumber"`
	OrderID       string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"orderId"`
	CustomerName  string    `gorm:"type:varchar(255);not null" json:"customerName"`
	ColorName     string    `gorm:"type:varchar(100)" json:"colorName,omitempty"`
	Size          int       `gorm:"not null;default:0" json:"size,omitempty"`
	Quantity      int64     `gorm:"not null" json:"quantity"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"`
	DeliveryPrice int64     `gorm:"not null" json:"delivery"`
	Total         int64     `gorm:"not null" json:"total"`
	GeneratedBy   string    `gorm:"type:varchar(255)" json:"generatedBy"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
