package models

// Provider é o perfil de quem oferece serviços; chave primária é o próprio usuário
type Provider struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	BusinessName string `gorm:"size:200;not null" json:"business_name"`
	Bio          string `gorm:"size:4096" json:"bio"`
	PhoneNumber  string `gorm:"size:20" json:"phone_number"`
	Address      string `gorm:"type:text" json:"address"`
}
