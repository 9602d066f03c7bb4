package controllers

import (
	"net/http"
	"time"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

// ---------------------------
// Payload / DTOs
// ---------------------------

type createReservationPayload struct {
	GuestID         uint   `json:"guest_id" binding:"required"`
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests"`
	SpecialRequests string `json:"special_requests"`
}

type updateReservationPayload struct {
	RoomID          *uint   `json:"room_id"`
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	NumberOfGuests  *int    `json:"number_of_guests"`
	SpecialRequests *string `json:"special_requests"`
}

type checkInPayload struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
	Amount        float64              `json:"amount"`
	SlipCode      string               `json:"slip_code"`
	Notes         string               `json:"notes"`
}

// parseDate accepts "2006-01-02" or RFC3339.
func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ---------------------------
// Handlers
// ---------------------------

// GET /api/reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.ReservationSvc.GetAllWithRelations()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reservations/:id
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, ok := parseDate(payload.CheckInDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date format")
		return
	}
	checkOut, ok := parseDate(payload.CheckOutDate)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date format")
		return
	}

	numberOfGuests := payload.NumberOfGuests
	if numberOfGuests == 0 {
		numberOfGuests = 1
	}

	res, err := rc.ReservationSvc.Create(services.CreateReservationInput{
		GuestID:         payload.GuestID,
		RoomID:          payload.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  numberOfGuests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PUT /api/reservations/:id
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	in := services.UpdateReservationInput{
		RoomID:          payload.RoomID,
		NumberOfGuests:  payload.NumberOfGuests,
		SpecialRequests: payload.SpecialRequests,
	}
	if payload.CheckInDate != nil {
		t, ok := parseDate(*payload.CheckInDate)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date format")
			return
		}
		in.CheckInDate = &t
	}
	if payload.CheckOutDate != nil {
		t, ok := parseDate(*payload.CheckOutDate)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date format")
			return
		}
		in.CheckOutDate = &t
	}

	res, err := rc.ReservationSvc.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations/:id/confirm
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.Confirm(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations/:id/cancel
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.Cancel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations/:id/no-show
func (rc *ReservationController) MarkNoShow(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.MarkNoShow(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations/:id/verify — runs the KBS identity check
func (rc *ReservationController) VerifyIdentity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.VerifyIdentity(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations/:id/checkin
func (rc *ReservationController) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	res, err := rc.ReservationSvc.CheckIn(id, services.RecordPaymentInput{
		Method:   payload.PaymentMethod,
		Amount:   payload.Amount,
		SlipCode: payload.SlipCode,
		Notes:    payload.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations/:id/checkout
func (rc *ReservationController) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.CheckOut(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
