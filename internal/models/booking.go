package models

import "time"

// Booking mirrors what the dashboard API returns: a naive date and time of
// day, an optional end time or duration, and denormalized display names
// kept for history next to the optional relations.
type Booking struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index:idx_bookings_salon_date" json:"salon_id"`

	Date            string  `gorm:"size:10;index:idx_bookings_salon_date" json:"date"`
	Time            string  `gorm:"size:8" json:"time"`
	EndTime         *string `gorm:"size:8" json:"end_time"`
	DurationMinutes *int    `json:"duration_minutes"`

	CustomerID   *uint     `json:"customer_id"`
	Customer     *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`
	CustomerName string    `gorm:"size:100" json:"customer_name"`

	ServiceID   *uint    `json:"service_id"`
	Service     *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`
	ServiceName string   `gorm:"size:100" json:"service_name"`

	EmployeeID   *uint     `json:"employee_id"`
	Employee     *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee,omitempty"`
	EmployeeName string    `gorm:"size:100" json:"employee_name"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
