package models

import "time"

type Business struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"not null;index" json:"provider_id"`
	Provider   Provider `gorm:"foreignKey:ProviderID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider"`

	Name        string `gorm:"size:200;not null" json:"name"`
	Summary     string `gorm:"size:512" json:"summary"`
	Logo        string `gorm:"size:255" json:"logo"`
	Description string `gorm:"size:2000" json:"description"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Address     string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
