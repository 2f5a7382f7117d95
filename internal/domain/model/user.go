package model

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// 管理画面にログインするスタッフ
type User struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;not null" json:"-"`
	DisplayName  string     `gorm:"type:varchar(255);not null" json:"displayName"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'worker'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
