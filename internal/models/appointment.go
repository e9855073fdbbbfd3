package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	BusinessID uint     `gorm:"not null;uniqueIndex:uniq_active_appointment_slot,priority:1,where:status = 'ACTIVE'" json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"business"`

	// Slot = (business, date, time). Date é "2006-01-02", Time é "15:04",
	// sempre em UTC. O índice parcial acima garante no máximo um ACTIVE por slot.
	Date string `gorm:"size:10;not null;uniqueIndex:uniq_active_appointment_slot,priority:2" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:uniq_active_appointment_slot,priority:3" json:"time"`

	Status string `gorm:"size:10;not null;default:'ACTIVE';index:idx_appointment_date_status" json:"status"`

	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`

	Customers []AppointmentCustomer `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentCustomer liga um Customer a um Appointment (par único).
type AppointmentCustomer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null;uniqueIndex:uniq_appointment_customer,priority:1" json:"appointment_id"`

	CustomerID uint     `gorm:"not null;uniqueIndex:uniq_appointment_customer,priority:2" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"customer"`

	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
