package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/models"
)

func TestSummarize(t *testing.T) {
	payments := []models.Payment{
		{Amount: 50, Method: models.PayCash},
		{Amount: 75, Method: models.PayCreditCard},
	}
	cashTxns := []models.CashTransaction{
		{Type: models.CashIncome, Amount: 20},
		{Type: models.CashExpense, Amount: 5},
	}

	got := Summarize(payments, cashTxns)
	assert.Equal(t, BillingSummary{
		TotalReservationRevenue: 125,
		TotalIncome:             20,
		TotalExpense:            5,
		NetIncome:               140,
	}, got)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, BillingSummary{}, Summarize(nil, nil))
}

func TestSummarizeOrderIndependent(t *testing.T) {
	payments := []models.Payment{{Amount: 10}, {Amount: 20}, {Amount: 30}}
	cashTxns := []models.CashTransaction{
		{Type: models.CashExpense, Amount: 7},
		{Type: models.CashIncome, Amount: 3},
	}

	forward := Summarize(payments, cashTxns)

	reversedPayments := []models.Payment{{Amount: 30}, {Amount: 20}, {Amount: 10}}
	reversedTxns := []models.CashTransaction{
		{Type: models.CashIncome, Amount: 3},
		{Type: models.CashExpense, Amount: 7},
	}
	assert.Equal(t, forward, Summarize(reversedPayments, reversedTxns))
}

func TestSummaryBetween(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)
	guest := seedGuest(t, s, "Ada", "Lovelace")
	res := seedReservation(t, s, guest.ID, room.ID, 2)

	at := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	for i, d := range []int{5, 15, 25} {
		require.NoError(t, s.DB.Create(&models.Payment{
			ReceiptCode:   "PAY-SUM" + string(rune('A'+i)),
			ReservationID: res.ID,
			Method:        models.PayCash,
			Amount:        100,
			PaymentDate:   at(d),
		}).Error)
	}
	require.NoError(t, s.Billing.CreateCashTransaction(&models.CashTransaction{
		Type: models.CashIncome, Amount: 40, Category: "minibar", TransactionDate: at(10),
	}))
	require.NoError(t, s.Billing.CreateCashTransaction(&models.CashTransaction{
		Type: models.CashExpense, Amount: 15, Category: "supplies", TransactionDate: at(12),
	}))
	// outside the window
	require.NoError(t, s.Billing.CreateCashTransaction(&models.CashTransaction{
		Type: models.CashIncome, Amount: 500, Category: "minibar", TransactionDate: at(25),
	}))

	got, err := s.Billing.SummaryBetween(at(1), at(20))
	require.NoError(t, err)
	assert.Equal(t, BillingSummary{
		TotalReservationRevenue: 200,
		TotalIncome:             40,
		TotalExpense:            15,
		NetIncome:               225,
	}, got)
}

func TestCreateCashTransactionValidation(t *testing.T) {
	s := newTestServices(t)

	tests := []struct {
		name string
		txn  models.CashTransaction
	}{
		{"unknown type", models.CashTransaction{Type: "transfer", Amount: 10, Category: "misc"}},
		{"zero amount", models.CashTransaction{Type: models.CashIncome, Amount: 0, Category: "misc"}},
		{"negative amount", models.CashTransaction{Type: models.CashExpense, Amount: -5, Category: "misc"}},
		{"missing category", models.CashTransaction{Type: models.CashIncome, Amount: 10, Category: " "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Billing.CreateCashTransaction(&tt.txn)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	t.Run("defaults date to now", func(t *testing.T) {
		txn := models.CashTransaction{Type: models.CashIncome, Amount: 10, Category: "misc"}
		require.NoError(t, s.Billing.CreateCashTransaction(&txn))
		assert.False(t, txn.TransactionDate.IsZero())
	})
}

func TestDeleteCashTransaction(t *testing.T) {
	s := newTestServices(t)

	txn := models.CashTransaction{Type: models.CashExpense, Amount: 30, Category: "laundry"}
	require.NoError(t, s.Billing.CreateCashTransaction(&txn))

	require.NoError(t, s.Billing.DeleteCashTransaction(txn.ID))

	err := s.Billing.DeleteCashTransaction(txn.ID)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestListCashTransactionsFilter(t *testing.T) {
	s := newTestServices(t)

	require.NoError(t, s.Billing.CreateCashTransaction(&models.CashTransaction{
		Type: models.CashIncome, Amount: 10, Category: "minibar",
	}))
	require.NoError(t, s.Billing.CreateCashTransaction(&models.CashTransaction{
		Type: models.CashExpense, Amount: 20, Category: "supplies",
	}))

	income, err := s.Billing.ListCashTransactions(models.CashIncome)
	require.NoError(t, err)
	assert.Len(t, income, 1)

	all, err := s.Billing.ListCashTransactions("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.Billing.ListCashTransactions("transfer")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
