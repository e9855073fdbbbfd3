package models

// Customer é o perfil de quem agenda; sem vínculo fixo com nenhum negócio
type Customer struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	FullName    string `gorm:"size:200;not null" json:"full_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Preferences string `gorm:"type:text" json:"preferences"`
}
