package models

import (
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FirstName string `json:"firstName" gorm:"size:150"`
	LastName  string `json:"lastName" gorm:"size:150"`

	Email       string `json:"email" gorm:"size:150"`
	Phone       string `json:"phone" gorm:"size:50"`
	Nationality string `json:"nationality" gorm:"size:100"`
	IDNumber    string `json:"idNumber" gorm:"column:id_number;size:64"`

	Preferences   string `json:"preferences" gorm:"type:text"`
	LoyaltyPoints int    `json:"loyaltyPoints" gorm:"column:loyalty_points;default:0"`
}
