package services

import (
	"errors"
	"strings"
	"time"

	"hotel-pms-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type RecordPaymentInput struct {
	ReservationID uint
	Method        models.PaymentMethod
	Amount        float64
	SlipCode      string
	Notes         string
}

// Record appends an immutable payment row. The slip-code rule for credit
// cards is enforced here so every caller gets the same contract.
func (s *PaymentService) Record(in RecordPaymentInput) (*models.Payment, error) {
	return s.RecordTx(s.DB, in)
}

// RecordTx is Record inside a caller-owned transaction; check-in uses it so
// the payment lands atomically with the status and room mutations.
func (s *PaymentService) RecordTx(tx *gorm.DB, in RecordPaymentInput) (*models.Payment, error) {
	if !in.Method.Valid() {
		return nil, validationErr("paymentMethod", "unknown payment method "+string(in.Method))
	}
	if in.Amount < 0 {
		return nil, validationErr("amount", "amount must not be negative")
	}
	in.SlipCode = strings.TrimSpace(in.SlipCode)
	if in.Method == models.PayCreditCard && in.SlipCode == "" {
		return nil, validationErr("slipCode", "slip code is required for credit card payments")
	}

	var count int64
	if err := tx.Model(&models.Reservation{}).Where("id = ?", in.ReservationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, notFoundErr("reservation", in.ReservationID)
	}

	payment := &models.Payment{
		ReceiptCode:   "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
		ReservationID: in.ReservationID,
		Method:        in.Method,
		Amount:        in.Amount,
		SlipCode:      in.SlipCode,
		Notes:         in.Notes,
		PaymentDate:   time.Now().UTC(),
	}
	if err := tx.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("payment", id)
		}
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) ListByReservation(reservationID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.
		Where("reservation_id = ?", reservationID).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListBetween feeds the billing aggregator. Bounds are inclusive-from,
// exclusive-to.
func (s *PaymentService) ListBetween(from, to time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.
		Where("payment_date >= ? AND payment_date < ?", from, to).
		Order("payment_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
