package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storeapi/internal/domain/model"
	repo "storeapi/internal/repository"
)

type AuthUsecase struct {
	userRepo repo.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	audit    *AuditRecorder
	clock    Clock
}

func NewAuthUsecase(
	userRepo repo.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	audit *AuditRecorder,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		audit:    audit,
		clock:    clock,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"accessToken"`
	ExpiresIn   int        `json:"expiresIn"`
}

// ログイン処理を実行する
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return out, NewValidationError("email and password required")
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			//存在しないemailとパスワード違いは区別させない
			return out, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return out, err
	}

	//停止ユーザーはログイン不可
	if !user.IsActive {
		return out, NewHTTPError(http.StatusForbidden, "account disabled")
	}

	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user, now)
	if err != nil {
		return out, err
	}

	//最終ログイン時刻はベストエフォート
	if err := u.userRepo.UpdateLastLogin(ctx, user.ID, now); err == nil {
		user.LastLoginAt = &now
	}

	u.audit.Record(ctx, model.AuditLog{
		ActorType:  actorTypeForRole(user.Role),
		ActorID:    user.ID,
		ActorName:  user.DisplayName,
		Action:     model.AuditActionUserLogin,
		TargetType: model.TargetTypeUser,
		TargetID:   user.ID,
	})

	user.PasswordHash = ""
	out.User = user
	out.AccessToken = token
	out.ExpiresIn = int(expiresAt.Sub(now).Seconds())
	return out, nil
}

func actorTypeForRole(r model.Role) model.ActorType {
	if r == model.RoleAdmin {
		return model.ActorTypeAdmin
	}
	return model.ActorTypeWorker
}

/* ===== スタッフ管理（adminのみ、handler側でガード） ===== */

type UserUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
	audit    *AuditRecorder
	idGen    IDGenerator
}

func NewUserUsecase(userRepo repo.UserRepository, hasher PasswordHasher, audit *AuditRecorder, idGen IDGenerator) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		audit:    audit,
		idGen:    idGen,
	}
}

func (u *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

type CreateUserInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

func (u *UserUsecase) Create(ctx context.Context, actor Actor, in CreateUserInput) (model.User, error) {
	if err := requireActor(actor); err != nil {
		return model.User{}, err
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, NewValidationError("invalid email")
	}
	if len(in.Password) < 8 {
		return model.User{}, NewValidationError("password must be at least 8 characters")
	}
	if strings.TrimSpace(in.DisplayName) == "" {
		return model.User{}, NewValidationError("displayName required")
	}
	role, ok := parseRole(in.Role)
	if !ok {
		return model.User{}, NewValidationError("invalid role")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:           u.idGen.NewID(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		Role:         role,
		IsActive:     true,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.User{}, NewValidationError("email already in use")
		}
		return model.User{}, err
	}

	details := fmt.Sprintf(`{"email":%q,"role":%q}`, user.Email, user.Role)
	u.audit.RecordActor(ctx, actor, model.AuditActionUserCreate, model.TargetTypeUser, user.ID, details)

	user.PasswordHash = ""
	return user, nil
}

func (u *UserUsecase) UpdateRole(ctx context.Context, actor Actor, userID string, roleStr string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	role, ok := parseRole(roleStr)
	if !ok {
		return NewValidationError("invalid role")
	}
	//自分の権限は落とせない
	if userID == actor.ID {
		return NewValidationError("cannot change own role")
	}

	err := u.userRepo.UpdateRole(ctx, userID, role)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "user"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionUserRoleUpdate, model.TargetTypeUser, userID, fmt.Sprintf(`{"role":%q}`, role))
	return nil
}

func (u *UserUsecase) Disable(ctx context.Context, actor Actor, userID string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	//自分自身は止められない
	if userID == actor.ID {
		return NewValidationError("cannot disable own account")
	}

	err := u.userRepo.SetActive(ctx, userID, false)
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{Resource: "user"}
	}
	if err != nil {
		return err
	}

	u.audit.RecordActor(ctx, actor, model.AuditActionUserDisable, model.TargetTypeUser, userID, "")
	return nil
}

func parseRole(s string) (model.Role, bool) {
	r := model.Role(strings.TrimSpace(s))
	switch r {
	case model.RoleAdmin, model.RoleWorker:
		return r, true
	default:
		return "", false
	}
}
