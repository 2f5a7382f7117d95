package repository

import (
	"context"

	"storeapi/internal/domain/model"
)

type ProductListQuery struct {
	Page     int
	Limit    int
	Q        string
	BrandID  string
	MinPrice *int64
	MaxPrice *int64
	Sort     string

	//trueなら非公開商品も返す（管理画面用）
	IncludeInactive bool
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)

	//カラー・画像・サイズ在庫まで組み立てて返す
	FindByID(ctx context.Context, productID string) (model.Product, error)

	Create(ctx context.Context, p model.Product) error

	//商品本体とカラー・サイズ構成を丸ごと置き換える
	Update(ctx context.Context, p model.Product) error

	SoftDelete(ctx context.Context, productID string) error
}
