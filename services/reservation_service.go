package services

import (
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"hotel-pms-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityVerifier is the KBS collaborator gating check-in. The production
// implementation lives in kbs_service.go; tests inject a stub.
type IdentityVerifier interface {
	Verify(guest models.Guest) (bool, error)
}

type ReservationService struct {
	DB       *gorm.DB
	Rooms    *RoomService
	Guests   *GuestService
	Payments *PaymentService
	Tasks    *HousekeepingService
	Verifier IdentityVerifier
}

func NewReservationService(
	db *gorm.DB,
	rooms *RoomService,
	guests *GuestService,
	payments *PaymentService,
	tasks *HousekeepingService,
	verifier IdentityVerifier,
) *ReservationService {
	return &ReservationService{
		DB:       db,
		Rooms:    rooms,
		Guests:   guests,
		Payments: payments,
		Tasks:    tasks,
		Verifier: verifier,
	}
}

// Nights is the billing multiplier: ceiling of the stay length in days.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

type CreateReservationInput struct {
	GuestID         uint
	RoomID          uint
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests string
}

// Create validates input, snapshots the room's current nightly rate into
// total_amount, and stores the reservation as pending. The room itself is
// untouched until confirmation.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if !in.CheckOutDate.After(in.CheckInDate) {
		return nil, validationErr("checkOutDate", "check-out must be after check-in")
	}
	if in.NumberOfGuests < 1 {
		return nil, validationErr("numberOfGuests", "at least one guest is required")
	}

	if _, err := s.Guests.GetByID(in.GuestID); err != nil {
		return nil, err
	}
	room, err := s.Rooms.GetByID(in.RoomID)
	if err != nil {
		return nil, err
	}

	nights := Nights(in.CheckInDate, in.CheckOutDate)
	res := &models.Reservation{
		ReferenceCode:   newReferenceCode(),
		GuestID:         in.GuestID,
		RoomID:          in.RoomID,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
		Nights:          nights,
		NumberOfGuests:  in.NumberOfGuests,
		TotalAmount:     room.RatePerNight * float64(nights),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		Status:          models.ReservationPending,
	}

	if err := s.DB.Create(res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

type UpdateReservationInput struct {
	RoomID          *uint
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	NumberOfGuests  *int
	SpecialRequests *string
}

// Update edits a pending or confirmed reservation. The snapshot total is
// recomputed only when dates or the room change; a later rate change on the
// room never retro-applies.
func (s *ReservationService) Update(id uint, in UpdateReservationInput) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res.Status != models.ReservationPending && res.Status != models.ReservationConfirmed {
		return nil, &PreconditionError{Entity: "reservation", ID: id,
			Message: "only pending or confirmed reservations can be edited"}
	}

	checkIn := res.CheckInDate
	checkOut := res.CheckOutDate
	roomID := res.RoomID
	recompute := false

	if in.CheckInDate != nil {
		checkIn = *in.CheckInDate
		recompute = true
	}
	if in.CheckOutDate != nil {
		checkOut = *in.CheckOutDate
		recompute = true
	}
	if in.RoomID != nil && *in.RoomID != res.RoomID {
		roomID = *in.RoomID
		recompute = true
	}
	if !checkOut.After(checkIn) {
		return nil, validationErr("checkOutDate", "check-out must be after check-in")
	}

	updates := map[string]interface{}{
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
		"room_id":        roomID,
	}
	if in.NumberOfGuests != nil {
		if *in.NumberOfGuests < 1 {
			return nil, validationErr("numberOfGuests", "at least one guest is required")
		}
		updates["number_of_guests"] = *in.NumberOfGuests
	}
	if in.SpecialRequests != nil {
		updates["special_requests"] = strings.TrimSpace(*in.SpecialRequests)
	}

	if recompute {
		room, err := s.Rooms.GetByID(roomID)
		if err != nil {
			return nil, err
		}
		nights := Nights(checkIn, checkOut)
		updates["nights"] = nights
		updates["total_amount"] = room.RatePerNight * float64(nights)
	}

	if err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// transition flips the status with a compare-and-swap on the prior status so
// two racing operators cannot both move the same reservation. extra columns
// ride along in the same UPDATE.
func (s *ReservationService) transition(tx *gorm.DB, res *models.Reservation, to models.ReservationStatus, extra map[string]interface{}) error {
	if !res.Status.CanTransitionTo(to) {
		return &InvalidTransitionError{Entity: "reservation", ID: res.ID,
			From: string(res.Status), To: string(to)}
	}

	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	q := tx.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", res.ID, res.Status).
		Updates(updates)
	if q.Error != nil {
		return q.Error
	}
	if q.RowsAffected == 0 {
		return &ConflictError{Entity: "reservation", ID: res.ID,
			Message: "reservation was modified concurrently"}
	}
	res.Status = to
	return nil
}

// Confirm moves pending -> confirmed and marks the room reserved.
func (s *ReservationService) Confirm(id uint) (*models.Reservation, error) {
	var res *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.getByIDTx(tx, id)
		if err != nil {
			return err
		}
		if err := s.transition(tx, res, models.ReservationConfirmed, nil); err != nil {
			return err
		}
		return s.Rooms.setStatusTx(tx, res.RoomID, models.RoomReserved)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel moves the reservation to cancelled and frees the room, both in one
// transaction. A second cancel fails the transition check.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	var res *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.getByIDTx(tx, id)
		if err != nil {
			return err
		}
		if err := s.transition(tx, res, models.ReservationCancelled, nil); err != nil {
			return err
		}
		return s.Rooms.setStatusTx(tx, res.RoomID, models.RoomAvailable)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// MarkNoShow moves confirmed -> no_show and frees the room.
func (s *ReservationService) MarkNoShow(id uint) (*models.Reservation, error) {
	var res *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.getByIDTx(tx, id)
		if err != nil {
			return err
		}
		if err := s.transition(tx, res, models.ReservationNoShow, nil); err != nil {
			return err
		}
		return s.Rooms.setStatusTx(tx, res.RoomID, models.RoomAvailable)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// VerifyIdentity runs the KBS check for the reservation's guest and stamps
// the result. Check-in requires the stamp.
func (s *ReservationService) VerifyIdentity(id uint) (*models.Reservation, error) {
	res, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ok, err := s.Verifier.Verify(res.Guest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &PreconditionError{Entity: "reservation", ID: id,
			Message: "identity verification was rejected"}
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).
		Update("kbs_verified_at", now).Error; err != nil {
		return nil, err
	}
	res.KBSVerifiedAt = &now
	return res, nil
}

// CheckIn transitions confirmed -> checked_in, occupies the room, and records
// the payment — all in one transaction, so a payment failure rolls back the
// room flip.
func (s *ReservationService) CheckIn(id uint, payment RecordPaymentInput) (*models.Reservation, error) {
	var res *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.getByIDTx(tx, id)
		if err != nil {
			return err
		}

		if res.KBSVerifiedAt == nil {
			return &PreconditionError{Entity: "reservation", ID: id,
				Message: "identity not verified"}
		}

		now := time.Now().UTC()
		if err := s.transition(tx, res, models.ReservationCheckedIn, map[string]interface{}{
			"checked_in_at": now,
		}); err != nil {
			return err
		}
		res.CheckedInAt = &now

		if err := s.Rooms.ClaimForStay(tx, res.RoomID); err != nil {
			return err
		}

		payment.ReservationID = id
		_, err = s.Payments.RecordTx(tx, payment)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Printf("ReservationService.CheckIn ok: reservation=%d room=%d", res.ID, res.RoomID)
	return res, nil
}

// loyaltyPointsFor is the accrual formula applied on checkout:
// one point per 10 currency units of the reservation total, floored.
func loyaltyPointsFor(totalAmount float64) int {
	if totalAmount <= 0 {
		return 0
	}
	return int(totalAmount / 10)
}

// CheckOut transitions checked_in -> checked_out, sends the room to cleaning
// with an auto-created housekeeping task, and accrues loyalty points.
func (s *ReservationService) CheckOut(id uint) (*models.Reservation, error) {
	var res *models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = s.getByIDTx(tx, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := s.transition(tx, res, models.ReservationCheckedOut, map[string]interface{}{
			"checked_out_at": now,
		}); err != nil {
			return err
		}
		res.CheckedOutAt = &now

		if err := s.Rooms.setStatusTx(tx, res.RoomID, models.RoomCleaning); err != nil {
			return err
		}

		if err := s.Tasks.createTx(tx, &models.HousekeepingTask{
			RoomID:        res.RoomID,
			TaskType:      "checkout cleaning",
			Priority:      models.PriorityNormal,
			Status:        models.TaskPending,
			ScheduledDate: &now,
			Notes:         "auto-created on checkout of " + res.ReferenceCode,
		}); err != nil {
			return err
		}

		return s.Guests.addLoyaltyPointsTx(tx, res.GuestID, loyaltyPointsFor(res.TotalAmount))
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	return s.getByIDTx(s.DB, id)
}

func (s *ReservationService) getByIDTx(tx *gorm.DB, id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := tx.Preload("Guest").Preload("Room").First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("reservation", id)
		}
		return nil, err
	}
	return &res, nil
}

func (s *ReservationService) GetAllWithRelations() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Guest").
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func newReferenceCode() string {
	// short, upper-cased reference for the front desk, e.g. "RSV-1A2B3C4D"
	return "RSV-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
