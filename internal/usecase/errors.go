package usecase

import (
	"errors"
	"fmt"
)

// 入力が欠けている・壊れている（400）
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// 参照先が存在しない（404）
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// 商品に存在しないカラー・サイズの組み合わせ（400、クライアントのカタログが古い）
type InvalidSelectionError struct {
	Selection string
}

func (e *InvalidSelectionError) Error() string {
	return e.Selection + " not found"
}

// 在庫不足（400）。残数を持たせて、クライアントが数量を下げて再注文できるようにする。
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available", e.Available)
}

// 401/403など上の分類に収まらないものに使う
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
