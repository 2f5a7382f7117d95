package repository

import "context"

// トランザクション内で使えるリポジトリの約束
type TxRepos interface {
	Orders() OrderRepository
	Products() ProductRepository
	Stock() StockRepository
	Invoices() InvoiceRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全部ロールバックされる。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
