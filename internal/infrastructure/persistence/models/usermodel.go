package models

type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:200;not null"`
	Email        string  `gorm:"size:200;not null;uniqueIndex"`
	Area         *string `gorm:"size:100"`
	Role         string  `gorm:"size:20;not null;index"`
	PasswordHash string  `gorm:"size:255;not null"`
	Active       bool    `gorm:"not null;default:true"`
	CreatedAt    int64   `gorm:"not null"`
	UpdatedAt    int64   `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
