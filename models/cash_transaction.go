package models

import (
	"time"

	"gorm.io/gorm"
)

type CashTransactionType string

const (
	CashIncome  CashTransactionType = "income"
	CashExpense CashTransactionType = "expense"
)

func (t CashTransactionType) Valid() bool {
	return t == CashIncome || t == CashExpense
}

// CashTransaction is a manually entered ledger line, independent of
// reservations. The billing summary folds these into net income.
type CashTransaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Type        CashTransactionType `gorm:"size:16" json:"type"`
	Amount      float64             `json:"amount"`
	Category    string              `gorm:"size:100" json:"category"`
	Description string              `gorm:"type:text" json:"description,omitempty"`

	TransactionDate time.Time `gorm:"column:transaction_date" json:"transactionDate"`
}
