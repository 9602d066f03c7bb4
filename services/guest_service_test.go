package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/models"
)

func TestCreateGuestValidation(t *testing.T) {
	s := newTestServices(t)

	tests := []struct {
		name  string
		guest models.Guest
		field string
	}{
		{"missing first name", models.Guest{LastName: "Lovelace"}, "firstName"},
		{"blank last name", models.Guest{FirstName: "Ada", LastName: "  "}, "lastName"},
		{"negative loyalty points", models.Guest{FirstName: "Ada", LastName: "Lovelace", LoyaltyPoints: -1}, "loyaltyPoints"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Guests.Create(&tt.guest)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestUpdateGuest(t *testing.T) {
	s := newTestServices(t)
	guest := seedGuest(t, s, "Ada", "Lovelace")

	got, err := s.Guests.Update(guest.ID, &models.Guest{
		FirstName:   "Ada",
		LastName:    "King",
		Email:       "ada@example.com",
		Nationality: "GB",
	})
	require.NoError(t, err)
	assert.Equal(t, "King", got.LastName)
	assert.Equal(t, "GB", got.Nationality)

	_, err = s.Guests.Update(9999, &models.Guest{FirstName: "X", LastName: "Y"})
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteGuestBlockedByOpenReservations(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)
	guest := seedGuest(t, s, "Ada", "Lovelace")
	res := seedReservation(t, s, guest.ID, room.ID, 2)

	err := s.Guests.Delete(guest.ID)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "guest", cerr.Entity)

	// terminal reservation unblocks the delete
	_, err = s.Reservations.Cancel(res.ID)
	require.NoError(t, err)
	require.NoError(t, s.Guests.Delete(guest.ID))

	_, err = s.Guests.GetByID(guest.ID)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestDeleteGuestNotFound(t *testing.T) {
	s := newTestServices(t)
	err := s.Guests.Delete(12345)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
}
