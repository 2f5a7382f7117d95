package main

import (
	"fmt"
	"os"

	"storeapi/internal/config"
	"storeapi/internal/domain/model"
	"storeapi/internal/infra/db"
	"storeapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 開発・初回デプロイ用のシード。管理者と辞書と配送料金表を入れる。
// すでにあるものは触らない（何度流しても安全）。
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.ShoeColor{},
		&model.ShoeSize{},
		&model.DeliveryZone{},
	); err != nil {
		panic(err)
	}

	seedAdmin(gormDB)
	seedBrands(gormDB)
	seedColors(gormDB)
	seedSizes(gormDB)
	seedZones(gormDB)

	fmt.Println("seed done")
}

func seedAdmin(gormDB *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping admin")
		return
	}

	hasher := usecase.NewBcryptPasswordHasher(12)
	hash, err := hasher.Hash(password)
	if err != nil {
		panic(err)
	}

	admin := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  "Administrator",
		Role:         model.RoleAdmin,
		IsActive:     true,
	}

	//emailが既にあれば何もしない
	res := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin)
	if res.Error != nil {
		panic(res.Error)
	}
	if res.RowsAffected > 0 {
		fmt.Println("admin user created:", email)
	}
}

func seedBrands(gormDB *gorm.DB) {
	names := []string{"Nike", "Adidas", "Puma", "New Balance"}
	for _, name := range names {
		b := model.Brand{
			ID:       uuid.NewString(),
			Name:     name,
			Slug:     slug(name),
			IsActive: true,
		}
		gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&b)
	}
}

func seedColors(gormDB *gorm.DB) {
	colors := []struct {
		name string
		hex  string
	}{
		{"Black", "#000000"},
		{"White", "#ffffff"},
		{"Red", "#d32f2f"},
		{"Blue", "#1976d2"},
		{"Green", "#388e3c"},
	}
	for i, c := range colors {
		row := model.ShoeColor{
			ID:       uuid.NewString(),
			Name:     c.name,
			HexCode:  c.hex,
			IsActive: true,
			Position: i,
		}
		gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	}
}

func seedSizes(gormDB *gorm.DB) {
	for i, v := range []int{36, 37, 38, 39, 40, 41, 42, 43, 44, 45} {
		row := model.ShoeSize{
			ID:       uuid.NewString(),
			Value:    v,
			IsActive: true,
			Position: i,
		}
		gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	}
}

func seedZones(gormDB *gorm.DB) {
	var n int64
	if err := gormDB.Model(&model.DeliveryZone{}).Count(&n).Error; err != nil {
		panic(err)
	}
	if n > 0 {
		return
	}

	zones := usecase.DefaultDeliveryZones()
	if err := gormDB.Create(&zones).Error; err != nil {
		panic(err)
	}
	fmt.Printf("delivery zones created: %d\n", len(zones))
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
