package model

import "time"

// 配送料金表。ウィラヤ（＋都市）ごとの料金と日数。
type DeliveryZone struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Wilaya        string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_zone_area,priority:1" json:"wilaya"`
	City          string    `gorm:"type:varchar(100);not null;default:'';uniqueIndex:uniq_zone_area,priority:2" json:"city,omitempty"`
	Zone          int       `gorm:"not null;default:0" json:"zone"`
	DelayDays     int       `gorm:"not null;default:0" json:"delay"`
	HomePrice     int64     `gorm:"not null;default:0" json:"home"`
	StopdeskPrice int64     `gorm:"not null;default:0" json:"stopdesk"`
	ReturnPrice   int64     `gorm:"not null;default:0" json:"return"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
