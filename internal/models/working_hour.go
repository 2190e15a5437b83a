package models

import "time"

type WorkingHour struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	DayOfWeek int    `json:"day_of_week"`
	IsClosed  bool   `json:"is_closed"`
	OpenTime  string `gorm:"size:8" json:"open_time"`
	CloseTime string `gorm:"size:8" json:"close_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
