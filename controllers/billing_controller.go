package controllers

import (
	"net/http"
	"time"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	BillingSvc *services.BillingService
}

func NewBillingController(svc *services.BillingService) *BillingController {
	return &BillingController{BillingSvc: svc}
}

// GET /api/billing/summary?from=2024-01-01&to=2024-02-01
// Defaults to the current month when no range is given.
func (bc *BillingController) GetSummary(c *gin.Context) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if raw := c.Query("from"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid from date")
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, ok := parseDate(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid to date")
			return
		}
		to = t
	}
	if !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "to must be after from")
		return
	}

	summary, err := bc.BillingSvc.SummaryBetween(from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/billing/transactions?type=expense
func (bc *BillingController) GetCashTransactions(c *gin.Context) {
	txns, err := bc.BillingSvc.ListCashTransactions(models.CashTransactionType(c.Query("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

// POST /api/billing/transactions
func (bc *BillingController) CreateCashTransaction(c *gin.Context) {
	var txn models.CashTransaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := bc.BillingSvc.CreateCashTransaction(&txn); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// DELETE /api/billing/transactions/:id
func (bc *BillingController) DeleteCashTransaction(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := bc.BillingSvc.DeleteCashTransaction(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
