package repository

import "errors"

var ErrNotFound = errors.New("not found")

// 一意制約違反（注文番号や請求書番号の衝突など）
var ErrConflict = errors.New("conflict")
