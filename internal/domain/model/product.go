package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	BrandID     string         `gorm:"type:varchar(36);index" json:"brandId"`
	BrandName   string         `gorm:"type:varchar(255)" json:"brandName"`
	Price       int64          `gorm:"not null" json:"price"`
	Description string         `gorm:"type:text" json:"description"`
	IsActive    bool           `gorm:"not null;default:false" json:"isActive"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	//カラーごとの画像と在庫はrepositoryが組み立てる
	Colors []ProductColor `gorm:"-" json:"colors"`
}

// 商品1件の中のカラー（colorIdは商品内で一意）
type ProductColor struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID string `gorm:"type:varchar(36);not null;index" json:"-"`
	ColorID   string `gorm:"type:varchar(36);not null" json:"colorId"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	HexCode   string `gorm:"type:varchar(10)" json:"hexCode,omitempty"`
	Position  int    `gorm:"not null;default:0" json:"-"`

	//画像リストはJSON文字列で保存する
	ImagesJSON string `gorm:"type:text" json:"-"`

	Images []ProductColorImage `gorm:"-" json:"images"`
	Sizes  []ProductSizeStock  `gorm:"-" json:"sizes"`
}

type ProductColorImage struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// カラー×サイズごとの在庫カウンター。
// 1変種=1行にして、条件付きUPDATEで減算できるようにする。
type ProductSizeStock struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID string `gorm:"type:varchar(36);not null;uniqueIndex:uniq_variant_size,priority:1" json:"-"`
	ColorID   string `gorm:"type:varchar(36);not null;uniqueIndex:uniq_variant_size,priority:2" json:"-"`
	Size      int    `gorm:"not null;uniqueIndex:uniq_variant_size,priority:3" json:"size"`
	Stock     int64  `gorm:"not null;check:stock >= 0" json:"stock"`
}
