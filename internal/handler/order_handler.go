package handler

import (
	"net/http"

	"storeapi/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
}

type checkoutProduct struct {
	ID string `json:"id"`
}

type checkoutVariant struct {
	ColorID string     `json:"colorId"`
	Size    flexNumber `json:"size"`
}

type checkoutCustomer struct {
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	Wilaya         string `json:"wilaya"`
	City           string `json:"city"`
	AddressDetails string `json:"addressDetails"`
}

type checkoutDelivery struct {
	Type      string `json:"type"`
	Price     int64  `json:"price"`
	DelayDays int    `json:"delay"`
}

type CheckoutRequest struct {
	Product  checkoutProduct  `json:"product"`
	Variant  checkoutVariant  `json:"variant"`
	Quantity int64            `json:"quantity"`
	Customer checkoutCustomer `json:"customer"`
	Delivery checkoutDelivery `json:"delivery"`
	Notes    string           `json:"notes"`
	Total    int64            `json:"total"`
}

type CheckoutResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		ProductID: req.Product.ID,
		ColorID:   req.Variant.ColorID,
		Size:      req.Variant.Size.Value,
		SizeSet:   req.Variant.Size.Set,
		Quantity:  req.Quantity,
		Customer: usecase.CustomerInput{
			FullName:       req.Customer.FullName,
			Phone:          req.Customer.Phone,
			Wilaya:         req.Customer.Wilaya,
			City:           req.Customer.City,
			AddressDetails: req.Customer.AddressDetails,
		},
		Delivery: usecase.DeliverySelectionInput{
			Type:      req.Delivery.Type,
			Price:     req.Delivery.Price,
			DelayDays: req.Delivery.DelayDays,
		},
		Notes:     req.Notes,
		Total:     req.Total,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutResponse{
		Success:     true,
		OrderID:     out.OrderID,
		OrderNumber: out.OrderNumber,
	})
}
