package usecase

import (
	"time"

	"storeapi/internal/domain/model"
)

// IDを発行する約束（本番はUUID）
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// パスワードをハッシュ化する約束
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// アクセストークンを発行する約束
type AccessTokenIssuer interface {
	Issue(user model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

// 操作者。監査ログのactorに入る。
type Actor struct {
	ID   string
	Name string
	Role model.Role
}

func (a Actor) actorType() model.ActorType {
	if a.Role == model.RoleAdmin {
		return model.ActorTypeAdmin
	}
	return model.ActorTypeWorker
}
