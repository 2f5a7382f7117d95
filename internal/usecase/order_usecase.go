package usecase

import (
	"context"
	"errors"
	"strings"

	"storeapi/internal/domain/model"
	"storeapi/internal/metrics"
	repo "storeapi/internal/repository"
)

// 注文番号が衝突したときの再発行の上限
const maxOrderNumberAttempts = 3

// OrderUsecase は購入者のチェックアウトを処理する。
// 在庫の確認と減算は変種ごとの在庫行への条件付きUPDATEで行うので、
// 同じ変種への同時注文が重なっても売り越さない。
type OrderUsecase struct {
	tx           repo.TransactionManager
	audit        *AuditRecorder
	orderNumbers NumberGenerator
	idGen        IDGenerator
	clock        Clock
	metrics      *metrics.Metrics
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	audit *AuditRecorder,
	orderNumbers NumberGenerator,
	idGen IDGenerator,
	clock Clock,
	m *metrics.Metrics,
) *OrderUsecase {
	return &OrderUsecase{
		tx:           tx,
		audit:        audit,
		orderNumbers: orderNumbers,
		idGen:        idGen,
		clock:        clock,
		metrics:      m,
	}
}

type CustomerInput struct {
	FullName       string
	Phone          string
	Wilaya         string
	City           string
	AddressDetails string
}

type DeliverySelectionInput struct {
	Type      string
	Price     int64
	DelayDays int
}

type PlaceOrderInput struct {
	ProductID string
	ColorID   string

	//サイズはクライアントが文字列で送ることがあるので数値化済みで受け取る
	Size    float64
	SizeSet bool

	Quantity int64
	Customer CustomerInput
	Delivery DeliverySelectionInput
	Notes    string

	//配送料・合計はクライアント計算の値をそのまま信じる（料金表との突き合わせはしない）
	Total int64

	Source    model.OrderSource
	UserAgent string
}

type OrderConfirmation struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderConfirmation, error) {
	if err := validatePlaceOrder(in); err != nil {
		u.countRejection(err)
		return OrderConfirmation{}, err
	}

	var out OrderConfirmation
	var placed model.Order

	//Postgresは一意制約違反の時点でトランザクションを中断するので、
	//注文番号が衝突したら同じトランザクション内で再INSERTはできない。
	//衝突時は新しい番号でトランザクションごとやり直す。
	var err error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		err = u.placeOrderTx(ctx, in, &out, &placed)
		if !errors.Is(err, repo.ErrConflict) {
			break
		}
	}
	if errors.Is(err, repo.ErrConflict) {
		err = errors.New("order number conflict not resolved")
	}

	if err != nil {
		u.countRejection(err)
		return OrderConfirmation{}, err
	}

	//監査ログは注文確定後のベストエフォート。失敗しても注文は成立している。
	u.audit.Record(ctx, model.AuditLog{
		ActorType:  model.ActorTypeCustomer,
		ActorID:    "anonymous",
		ActorName:  placed.CustomerFullName,
		Action:     model.AuditActionCustomerOrderCreated,
		TargetType: model.TargetTypeOrder,
		TargetID:   placed.ID,
		UserAgent:  in.UserAgent,
	})

	if u.metrics != nil {
		u.metrics.OrderPlaced()
	}
	return out, nil
}

func (u *OrderUsecase) placeOrderTx(ctx context.Context, in PlaceOrderInput, out *OrderConfirmation, placed *model.Order) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//商品を取得
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return &NotFoundError{Resource: "product"}
		}
		if err != nil {
			return err
		}
		if !p.IsActive {
			return &NotFoundError{Resource: "product"}
		}

		//カラーを探す
		color := findColor(p, in.ColorID)
		if color == nil {
			return &InvalidSelectionError{Selection: "color"}
		}

		//サイズを探す（数値で比較。"42"と42は同じ扱い）
		sizeEntry := findSize(color, in.Size)
		if sizeEntry == nil {
			return &InvalidSelectionError{Selection: "size"}
		}

		if sizeEntry.Stock < in.Quantity {
			return &InsufficientStockError{Available: sizeEntry.Stock}
		}

		//スナップショットを組み立てる。商品情報はDBの値を使う。
		now := u.clock.Now()
		o := model.Order{
			ID: u.idGen.NewID(),

			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			BrandID:      p.BrandID,
			BrandName:    p.BrandName,
			ProductImage: firstImageURL(color),

			ColorID:   color.ColorID,
			ColorName: color.Name,
			Size:      sizeEntry.Size,

			Quantity: in.Quantity,

			CustomerFullName: strings.TrimSpace(in.Customer.FullName),
			CustomerPhone:    strings.TrimSpace(in.Customer.Phone),
			CustomerWilaya:   strings.TrimSpace(in.Customer.Wilaya),
			CustomerCity:     strings.TrimSpace(in.Customer.City),
			CustomerAddress:  strings.TrimSpace(in.Customer.AddressDetails),

			DeliveryType:      deliveryType(in.Delivery.Type),
			DeliveryPrice:     in.Delivery.Price,
			DeliveryDelayDays: in.Delivery.DelayDays,

			Notes: in.Notes,
			Total: in.Total,

			Status:         model.OrderStatusNew,
			DeliveryStatus: model.DeliveryStatusPending,
			PaymentStatus:  model.PaymentCashOnDelivery,
			Source:         orderSource(in.Source),

			CreatedAt: now,
			UpdatedAt: now,
		}

		//衝突したらErrConflictをそのまま返し、呼び出し側が新しい番号でやり直す
		o.OrderNumber = u.orderNumbers.Next(now)
		if err := r.Orders().Create(ctx, o); err != nil {
			return err
		}

		//在庫減算。条件付きUPDATEなので確認と減算の間に割り込まれない。
		//失敗したらここまでの注文作成ごとロールバックされる。
		ok, err := r.Stock().DecreaseIfEnough(ctx, p.ID, color.ColorID, sizeEntry.Size, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			avail, err := r.Stock().Get(ctx, p.ID, color.ColorID, sizeEntry.Size)
			if err != nil {
				return err
			}
			return &InsufficientStockError{Available: avail}
		}

		*placed = o
		*out = OrderConfirmation{OrderID: o.ID, OrderNumber: o.OrderNumber}
		return nil
	})
}

func validatePlaceOrder(in PlaceOrderInput) error {
	if strings.TrimSpace(in.ProductID) == "" {
		return NewValidationError("product id required")
	}
	if strings.TrimSpace(in.ColorID) == "" {
		return NewValidationError("color required")
	}
	if !in.SizeSet {
		return NewValidationError("size required")
	}
	if strings.TrimSpace(in.Customer.FullName) == "" {
		return NewValidationError("full name required")
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		return NewValidationError("phone required")
	}
	if strings.TrimSpace(in.Customer.Wilaya) == "" {
		return NewValidationError("wilaya required")
	}
	if strings.TrimSpace(in.Customer.AddressDetails) == "" {
		return NewValidationError("address required")
	}
	if in.Quantity <= 0 {
		return NewValidationError("quantity must be > 0")
	}
	return nil
}

func findColor(p model.Product, colorID string) *model.ProductColor {
	for i := range p.Colors {
		if p.Colors[i].ColorID == colorID {
			return &p.Colors[i]
		}
	}
	return nil
}

func findSize(c *model.ProductColor, size float64) *model.ProductSizeStock {
	for i := range c.Sizes {
		if float64(c.Sizes[i].Size) == size {
			return &c.Sizes[i]
		}
	}
	return nil
}

func firstImageURL(c *model.ProductColor) string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0].URL
}

func deliveryType(t string) model.DeliveryType {
	if t == string(model.DeliveryTypeStopdesk) {
		return model.DeliveryTypeStopdesk
	}
	return model.DeliveryTypeHome
}

func orderSource(s model.OrderSource) model.OrderSource {
	switch s {
	case model.OrderSourceAdmin, model.OrderSourceWhatsApp:
		return s
	default:
		return model.OrderSourceWebsite
	}
}

func (u *OrderUsecase) countRejection(err error) {
	if u.metrics == nil {
		return
	}

	var (
		ve *ValidationError
		nf *NotFoundError
		is *InvalidSelectionError
		st *InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		u.metrics.OrderRejected("validation")
	case errors.As(err, &nf):
		u.metrics.OrderRejected("not_found")
	case errors.As(err, &is):
		u.metrics.OrderRejected("invalid_selection")
	case errors.As(err, &st):
		u.metrics.OrderRejected("out_of_stock")
	default:
		u.metrics.OrderRejected("internal")
	}
}
