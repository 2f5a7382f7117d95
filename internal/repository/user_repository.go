package repository

import (
	"context"
	"time"

	"storeapi/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	List(ctx context.Context) ([]model.User, error)

	//emailが重複したらErrConflict
	Create(ctx context.Context, u model.User) error

	UpdateRole(ctx context.Context, userID string, role model.Role) error
	SetActive(ctx context.Context, userID string, active bool) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
