package controllers

import (
	"net/http"
	"strconv"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentSvc *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{PaymentSvc: svc}
}

type recordPaymentPayload struct {
	ReservationID uint                 `json:"reservation_id" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Amount        float64              `json:"amount"`
	SlipCode      string               `json:"slip_code"`
	Notes         string               `json:"notes"`
}

// POST /api/payments — additional (e.g. partial) payments outside check-in
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var payload recordPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	payment, err := pc.PaymentSvc.Record(services.RecordPaymentInput{
		ReservationID: payload.ReservationID,
		Method:        payload.PaymentMethod,
		Amount:        payload.Amount,
		SlipCode:      payload.SlipCode,
		Notes:         payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GET /api/payments?reservation_id=7
func (pc *PaymentController) GetPayments(c *gin.Context) {
	raw := c.Query("reservation_id")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "reservation_id query parameter is required")
		return
	}
	reservationID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation_id")
		return
	}

	payments, err := pc.PaymentSvc.ListByReservation(uint(reservationID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GET /api/payments/:id
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	payment, err := pc.PaymentSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
