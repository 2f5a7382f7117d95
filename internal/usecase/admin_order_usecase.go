package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

type AdminOrderUsecase struct {
	tx    repo.TransactionManager
	audit *AuditRecorder
}

func NewAdminOrderUsecase(tx repo.TransactionManager, audit *AuditRecorder) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx, audit: audit}
}

type AdminOrderListInput struct {
	Status      string
	Source      string
	Q           string
	CreatedFrom string
	CreatedTo   string
	Page        int
	Limit       int
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, in AdminOrderListInput) (OrderListOutput, error) {
	if in.Page < 1 {
		return OrderListOutput{}, NewValidationError("invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return OrderListOutput{}, NewValidationError("invalid limit")
	}

	f := repo.OrderListFilter{
		Q:     strings.TrimSpace(in.Q),
		Page:  in.Page,
		Limit: in.Limit,
	}

	if in.Status != "" {
		st, ok := parseOrderStatus(in.Status)
		if !ok {
			return OrderListOutput{}, NewValidationError("invalid status")
		}
		f.Status = &st
	}
	if in.Source != "" {
		src := model.OrderSource(in.Source)
		switch src {
		case model.OrderSourceWebsite, model.OrderSourceAdmin, model.OrderSourceWhatsApp:
			f.Source = &src
		default:
			return OrderListOutput{}, NewValidationError("invalid source")
		}
	}
	if t, ok := parseDateTimeRFC3339(in.CreatedFrom); ok {
		f.CreatedFrom = t
	}
	if t, ok := parseDateTimeRFC3339(in.CreatedTo); ok {
		f.CreatedTo = t
	}

	var out OrderListOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, total, err := r.Orders().List(ctx, f)
		if err != nil {
			return err
		}
		out = OrderListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}
		return nil
	})
	if err != nil {
		return OrderListOutput{}, err
	}
	return out, nil
}

func (u *AdminOrderUsecase) Get(ctx context.Context, orderID string) (model.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return model.Order{}, NewValidationError("invalid id")
	}

	var o model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		found, err := r.Orders().FindByID(ctx, orderID)
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
		return model.Order{}, err
	}
	return o, nil
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// ステータス更新。cancelledにするときは在庫を戻す。
// スナップショット項目（商品・顧客・金額）は一切触らない。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actor Actor, orderID string, in AdminUpdateOrderStatusInput) error {
	if actor.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(orderID) == "" {
		return NewValidationError("invalid id")
	}

	newStatus, ok := parseOrderStatus(strings.TrimSpace(in.Status))
	if !ok {
		return NewValidationError("invalid status")
	}

	var before model.OrderStatus

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "order"}
		}
		if err != nil {
			return err
		}

		//すでに同じなら何もしない
		if o.Status == newStatus {
			before = o.Status
			return nil
		}
		//キャンセル済みは終端
		if o.Status == model.OrderStatusCancelled {
			return NewValidationError("cannot change cancelled order")
		}

		//キャンセル時だけ在庫を戻す
		if newStatus == model.OrderStatusCancelled {
			if err := r.Stock().Increase(ctx, o.ProductID, o.ColorID, o.Size, o.Quantity); err != nil {
				//変種がすでに消えていても注文のキャンセル自体は通す
				if !errors.Is(err, repo.ErrNotFound) {
					return err
				}
			}
		}

		before = o.Status
		if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "order"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if before != newStatus {
		details := fmt.Sprintf(`{"before":%q,"after":%q}`, before, newStatus)
		u.audit.RecordActor(ctx, actor, model.AuditActionOrderStatusUpdate, model.TargetTypeOrder, orderID, details)
	}
	return nil
}

type AdminUpdateDeliveryStatusInput struct {
	DeliveryStatus string
}

func (u *AdminOrderUsecase) UpdateDeliveryStatus(ctx context.Context, actor Actor, orderID string, in AdminUpdateDeliveryStatusInput) error {
	if actor.ID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(orderID) == "" {
		return NewValidationError("invalid id")
	}

	ds := model.DeliveryStatus(strings.TrimSpace(in.DeliveryStatus))
	switch ds {
	case model.DeliveryStatusPending, model.DeliveryStatusPreparing, model.DeliveryStatusShipped,
		model.DeliveryStatusDelivered, model.DeliveryStatusReturned:
	default:
		return NewValidationError("invalid delivery status")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().UpdateDeliveryStatus(ctx, orderID, ds); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return &NotFoundError{Resource: "order"}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	details := fmt.Sprintf(`{"deliveryStatus":%q}`, ds)
	u.audit.RecordActor(ctx, actor, model.AuditActionOrderUpdate, model.TargetTypeOrder, orderID, details)
	return nil
}

func parseOrderStatus(s string) (model.OrderStatus, bool) {
	st := model.OrderStatus(s)
	switch st {
	case model.OrderStatusNew, model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusCancelled:
		return st, true
	default:
		return "", false
	}
}

// 期間パラメータ用。handlerから文字列のまま受けてここでparseする。
func parseDateTimeRFC3339(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
