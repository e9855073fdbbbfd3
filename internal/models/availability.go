package models

import "time"

// Availability é uma janela semanal recorrente de atendimento do negócio.
// Weekday segue a convenção do original: 0 = domingo ... 6 = sábado.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint     `gorm:"not null;index" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
