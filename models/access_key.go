package models

import (
	"time"

	"gorm.io/gorm"
)

// AccessKey is a single-use onboarding token. An operator generates one for a
// prospective customer; redeeming it provisions the customer account and
// flips IsUsed exactly once.
type AccessKey struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AccessKey string `gorm:"column:access_key;uniqueIndex;size:20" json:"accessKey"`

	CustomerName  string `gorm:"column:customer_name;size:150" json:"customerName"`
	CustomerEmail string `gorm:"column:customer_email;size:150" json:"customerEmail"`
	CustomerPhone string `gorm:"column:customer_phone;size:50" json:"customerPhone,omitempty"`
	CompanyName   string `gorm:"column:company_name;size:150" json:"companyName,omitempty"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`

	IsUsed bool       `gorm:"column:is_used;default:false" json:"isUsed"`
	UsedAt *time.Time `gorm:"column:used_at" json:"usedAt,omitempty"`
}
