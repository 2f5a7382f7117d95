package model

import "time"

// サイト設定は1行だけのレコードにJSONで保存する
type SettingsRecord struct {
	ID        int64     `gorm:"primaryKey" json:"-"`
	DataJSON  string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

type HeroSettings struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Type        string `json:"type"`
	MediaURL    string `json:"mediaUrl"`
	CtaLabel    string `json:"ctaLabel"`
	CtaWhatsApp string `json:"ctaWhatsApp"`
}

type ContactSettings struct {
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Email     string `json:"email,omitempty"`
}

type SiteSettings struct {
	SiteName       string          `json:"siteName"`
	Logo           string          `json:"logo,omitempty"`
	LogoSize       string          `json:"logoSize,omitempty"`
	PrimaryColor   string          `json:"primaryColor,omitempty"`
	SecondaryColor string          `json:"secondaryColor,omitempty"`
	Hero           HeroSettings    `json:"hero"`
	Contact        ContactSettings `json:"contact"`
}
