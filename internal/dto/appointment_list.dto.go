package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	BusinessID    uint      `json:"business_id"`
	BusinessName  string    `json:"business_name"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CustomerNames []string  `json:"customer_names"`
	CreatedAt     time.Time `json:"created_at"`
}
