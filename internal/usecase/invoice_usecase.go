package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

// PDFを描画する約束（実装はinternal/pdf）
type InvoiceRenderer interface {
	Render(inv model.Invoice, o model.Order) ([]byte, error)
}

type InvoiceUsecase struct {
	tx       repo.TransactionManager
	renderer InvoiceRenderer
	audit    *AuditRecorder
	idGen    IDGenerator
	numGen   NumberGenerator
	clock    Clock
}

func NewInvoiceUsecase(
	tx repo.TransactionManager,
	renderer InvoiceRenderer,
	audit *AuditRecorder,
	idGen IDGenerator,
	numGen NumberGenerator,
	clock Clock,
) *InvoiceUsecase {
	return &InvoiceUsecase{
		tx:       tx,
		renderer: renderer,
		audit:    audit,
		idGen:    idGen,
		numGen:   numGen,
		clock:    clock,
	}
}

const maxInvoiceNumberAttempts = 3

// Generate は注文に対する請求書を作る。すでにあれば既存を返す（冪等）。
func (u *InvoiceUsecase) Generate(ctx context.Context, actor Actor, orderID string) (model.Invoice, error) {
	if err := requireActor(actor); err != nil {
		return model.Invoice{}, err
	}
	if strings.TrimSpace(orderID) == "" {
		return model.Invoice{}, NewValidationError("invalid order id")
	}

	var inv model.Invoice
	created := false

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		existing, err := r.Invoices().FindByOrderID(ctx, orderID)
		if err == nil {
			inv = existing
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return err
		}
		if o.Status == model.OrderStatusCancelled {
			return NewValidationError("cannot invoice a cancelled order")
		}

		subtotal := o.ProductPrice * o.Quantity

		candidate := model.Invoice{
			ID:            u.idGen.NewID(),
			OrderID:       o.ID,
			CustomerName:  o.CustomerFullName,
			ColorName:     o.ColorName,
			Size:          o.Size,
			Quantity:      o.Quantity,
			Subtotal:      subtotal,
			DeliveryPrice: o.DeliveryPrice,
			Total:         o.Total,
			GeneratedBy:   actor.Name,
		}

		//請求書番号はDBのユニーク制約で守り、衝突したら振り直す
		for attempt := 0; attempt < maxInvoiceNumberAttempts; attempt++ {
			candidate.InvoiceNumber = u.numGen.Next(u.clock.Now())
			err = r.Invoices().Create(ctx, candidate)
			if err == nil {
				inv = candidate
				created = true
				return nil
			}
			if !errors.Is(err, repo.ErrConflict) {
				return err
			}
		}
		return fmt.Errorf("invoice number collision persisted after %d attempts: %w", maxInvoiceNumberAttempts, err)
	})
	if err != nil {
		return model.Invoice{}, err
	}

	if created {
		details := fmt.Sprintf(`{"invoiceNumber":%q,"orderId":%q}`, inv.InvoiceNumber, inv.OrderID)
		u.audit.RecordActor(ctx, actor, model.AuditActionInvoiceGenerated, model.TargetTypeInvoice, inv.ID, details)
	}
	return inv, nil
}

type InvoiceListInput struct {
	Page  int
	Limit int
}

type InvoiceListOutput struct {
	Items []model.Invoice `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *InvoiceUsecase) List(ctx context.Context, in InvoiceListInput) (InvoiceListOutput, error) {
	if in.Page < 1 {
		return InvoiceListOutput{}, NewValidationError("invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return InvoiceListOutput{}, NewValidationError("invalid limit")
	}

	var out InvoiceListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, total, err := r.Invoices().List(ctx, repo.InvoiceListFilter{Page: in.Page, Limit: in.Limit})
		if err != nil {
			return err
		}
		out = InvoiceListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}
		return nil
	})
	if err != nil {
		return InvoiceListOutput{}, err
	}
	return out, nil
}

func (u *InvoiceUsecase) Get(ctx context.Context, invoiceID string) (model.Invoice, error) {
	if strings.TrimSpace(invoiceID) == "" {
		return model.Invoice{}, NewValidationError("invalid id")
	}

	var inv model.Invoice
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		found, err := r.Invoices().FindByID(ctx, invoiceID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "invoice"}
		}
		if err != nil {
			return err
		}
		inv = found
		return nil
	})
	if err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

// RenderPDF は請求書とその注文を読み直してPDFにする
func (u *InvoiceUsecase) RenderPDF(ctx context.Context, actor Actor, invoiceID string) ([]byte, model.Invoice, error) {
	if err := requireActor(actor); err != nil {
		return nil, model.Invoice{}, err
	}

	inv, err := u.Get(ctx, invoiceID)
	if err != nil {
		return nil, model.Invoice{}, err
	}

	var o model.Order
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		found, err := r.Orders().FindByID(ctx, inv.OrderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return err
		}
		o = found
		return nil
	})
	if err != nil {
		return nil, model.Invoice{}, err
	}

	pdf, err := u.renderer.Render(inv, o)
	if err != nil {
		return nil, model.Invoice{}, err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionInvoiceDownloaded, model.TargetTypeInvoice, inv.ID, "")
	return pdf, inv, nil
}
