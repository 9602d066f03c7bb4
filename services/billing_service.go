package services

import (
	"errors"
	"strings"
	"time"

	"hotel-pms-backend/models"

	"gorm.io/gorm"
)

type BillingService struct {
	DB       *gorm.DB
	Payments *PaymentService
}

func NewBillingService(db *gorm.DB, payments *PaymentService) *BillingService {
	return &BillingService{DB: db, Payments: payments}
}

type BillingSummary struct {
	TotalReservationRevenue float64 `json:"totalReservationRevenue"`
	TotalIncome             float64 `json:"totalIncome"`
	TotalExpense            float64 `json:"totalExpense"`
	NetIncome               float64 `json:"netIncome"`
}

// Summarize is pure and order-independent: it folds already-fetched rows and
// touches no storage.
func Summarize(payments []models.Payment, cashTxns []models.CashTransaction) BillingSummary {
	var summary BillingSummary
	for _, p := range payments {
		summary.TotalReservationRevenue += p.Amount
	}
	for _, t := range cashTxns {
		switch t.Type {
		case models.CashIncome:
			summary.TotalIncome += t.Amount
		case models.CashExpense:
			summary.TotalExpense += t.Amount
		}
	}
	summary.NetIncome = summary.TotalReservationRevenue + summary.TotalIncome - summary.TotalExpense
	return summary
}

// SummaryBetween loads the period's payments and cash transactions and
// delegates to Summarize. Bounds are inclusive-from, exclusive-to.
func (s *BillingService) SummaryBetween(from, to time.Time) (BillingSummary, error) {
	payments, err := s.Payments.ListBetween(from, to)
	if err != nil {
		return BillingSummary{}, err
	}

	var cashTxns []models.CashTransaction
	if err := s.DB.
		Where("transaction_date >= ? AND transaction_date < ?", from, to).
		Find(&cashTxns).Error; err != nil {
		return BillingSummary{}, err
	}

	return Summarize(payments, cashTxns), nil
}

func (s *BillingService) CreateCashTransaction(txn *models.CashTransaction) error {
	if !txn.Type.Valid() {
		return validationErr("type", "type must be income or expense")
	}
	if txn.Amount <= 0 {
		return validationErr("amount", "amount must be positive")
	}
	txn.Category = strings.TrimSpace(txn.Category)
	if txn.Category == "" {
		return validationErr("category", "category is required")
	}
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now().UTC()
	}
	return s.DB.Create(txn).Error
}

func (s *BillingService) DeleteCashTransaction(id uint) error {
	res := s.DB.Delete(&models.CashTransaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("cash transaction", id)
	}
	return nil
}

func (s *BillingService) GetCashTransaction(id uint) (*models.CashTransaction, error) {
	var txn models.CashTransaction
	if err := s.DB.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("cash transaction", id)
		}
		return nil, err
	}
	return &txn, nil
}

func (s *BillingService) ListCashTransactions(txnType models.CashTransactionType) ([]models.CashTransaction, error) {
	q := s.DB.Order("transaction_date DESC")
	if txnType != "" {
		if !txnType.Valid() {
			return nil, validationErr("type", "type must be income or expense")
		}
		q = q.Where("type = ?", txnType)
	}

	var txns []models.CashTransaction
	if err := q.Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}
