package repository

import (
	"context"

	"storeapi/internal/domain/model"
)

type InvoiceListFilter struct {
	Page  int
	Limit int
}

type InvoiceRepository interface {
	//invoice_number/order_idが重複したらErrConflict
	Create(ctx context.Context, inv model.Invoice) error

	FindByID(ctx context.Context, invoiceID string) (model.Invoice, error)
	FindByOrderID(ctx context.Context, orderID string) (model.Invoice, error)
	List(ctx context.Context, f InvoiceListFilter) ([]model.Invoice, int64, error)
}
