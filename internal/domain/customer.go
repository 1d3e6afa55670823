package domain

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:140;not null" json:"name"`
	Email     string    `gorm:"size:140;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:60;not null" json:"phone"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	City      string    `gorm:"size:100" json:"city"`
	State     string    `gorm:"size:100" json:"state"`
	ZipCode   string    `gorm:"size:20" json:"zip_code"`
	Country   string    `gorm:"size:100;default:USA" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
