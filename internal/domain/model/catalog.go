package model

import "time"

type Brand struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Logo        string    `gorm:"type:text" json:"logo,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 商品登録で選べるカラーの辞書
type ShoeColor struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	HexCode   string    `gorm:"type:varchar(10)" json:"hexCode,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Position  int       `gorm:"not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

// 商品登録で選べるサイズの辞書（36〜45）
type ShoeSize struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Value     int       `gorm:"not null;uniqueIndex" json:"value"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	Position  int       `gorm:"not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
