package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-pms-backend/models"
)

// newTestDB opens a per-test in-memory sqlite database. The shared-cache DSN
// keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.HotelSetting{},
		&models.AccessKey{},
		&models.Guest{},
		&models.Room{},
		&models.Reservation{},
		&models.Payment{},
		&models.HousekeepingTask{},
		&models.CashTransaction{},
	))
	return db
}

// stubVerifier replaces the KBS client in tests.
type stubVerifier struct {
	ok  bool
	err error
}

func (v stubVerifier) Verify(models.Guest) (bool, error) {
	return v.ok, v.err
}

type testServices struct {
	DB           *gorm.DB
	Rooms        *RoomService
	Guests       *GuestService
	Payments     *PaymentService
	Housekeeping *HousekeepingService
	Reservations *ReservationService
	Billing      *BillingService
	Keys         *AccessKeyService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)

	rooms := NewRoomService(db)
	guests := NewGuestService(db)
	payments := NewPaymentService(db)
	housekeeping := NewHousekeepingService(db, rooms)
	reservations := NewReservationService(db, rooms, guests, payments, housekeeping, stubVerifier{ok: true})
	billing := NewBillingService(db, payments)
	keys := NewAccessKeyService(db)

	return &testServices{
		DB:           db,
		Rooms:        rooms,
		Guests:       guests,
		Payments:     payments,
		Housekeeping: housekeeping,
		Reservations: reservations,
		Billing:      billing,
		Keys:         keys,
	}
}

func seedRoom(t *testing.T, s *testServices, number string, rate float64) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber:   number,
		RoomType:     models.RoomTypeDouble,
		Floor:        1,
		MaxOccupancy: 2,
		RatePerNight: rate,
	}
	require.NoError(t, s.Rooms.Create(room))
	return room
}

func seedGuest(t *testing.T, s *testServices, first, last string) *models.Guest {
	t.Helper()
	guest := &models.Guest{
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(first) + "@example.com",
		IDNumber:  "ID-" + first,
	}
	require.NoError(t, s.Guests.Create(guest))
	return guest
}

func seedReservation(t *testing.T, s *testServices, guestID, roomID uint, nights int) *models.Reservation {
	t.Helper()
	checkIn := time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)
	res, err := s.Reservations.Create(CreateReservationInput{
		GuestID:        guestID,
		RoomID:         roomID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkIn.AddDate(0, 0, nights),
		NumberOfGuests: 1,
	})
	require.NoError(t, err)
	return res
}
