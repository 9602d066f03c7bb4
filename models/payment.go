package models

import (
	"time"
)

type PaymentMethod string

const (
	PayCreditCard   PaymentMethod = "credit_card"
	PayCash         PaymentMethod = "cash"
	PayDebitCard    PaymentMethod = "debit_card"
	PayBankTransfer PaymentMethod = "bank_transfer"
	PayOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCreditCard, PayCash, PayDebitCard, PayBankTransfer, PayOther:
		return true
	}
	return false
}

// Payment rows are append-only. There is no update or delete path anywhere
// in the service layer; corrections are new rows.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ReceiptCode   string `gorm:"column:receipt_code;uniqueIndex;size:64" json:"receiptCode"`
	ReservationID uint   `gorm:"index;column:reservation_id" json:"reservationId"`

	Method   PaymentMethod `gorm:"column:payment_method;size:32" json:"paymentMethod"`
	Amount   float64       `json:"amount"`
	SlipCode string        `gorm:"column:slip_code;size:64" json:"slipCode,omitempty"`
	Notes    string        `gorm:"type:text" json:"notes,omitempty"`

	PaymentDate time.Time `gorm:"column:payment_date" json:"paymentDate"`

	Reservation Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"-"`
}
