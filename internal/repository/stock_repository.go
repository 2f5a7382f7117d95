package repository

import "context"

// 変種（商品×カラー×サイズ）単位の在庫カウンター操作。
// チェックと減算はDB側でアトミックに行う約束。
type StockRepository interface {
	// 在庫が足りるときだけ減算する。減らせたらtrue。
	DecreaseIfEnough(ctx context.Context, productID string, colorID string, size int, qty int64) (bool, error)

	// 在庫戻し（注文キャンセルなど）
	Increase(ctx context.Context, productID string, colorID string, size int, qty int64) error

	// 現在の残数
	Get(ctx context.Context, productID string, colorID string, size int) (int64, error)
}
