package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{ReservationPending, ReservationConfirmed, true},
		{ReservationPending, ReservationCancelled, true},
		{ReservationPending, ReservationCheckedIn, false},
		{ReservationPending, ReservationNoShow, false},
		{ReservationConfirmed, ReservationCheckedIn, true},
		{ReservationConfirmed, ReservationCancelled, true},
		{ReservationConfirmed, ReservationNoShow, true},
		{ReservationConfirmed, ReservationCheckedOut, false},
		{ReservationCheckedIn, ReservationCheckedOut, true},
		{ReservationCheckedIn, ReservationCancelled, false},
		{ReservationCheckedOut, ReservationCheckedIn, false},
		{ReservationCancelled, ReservationPending, false},
		{ReservationNoShow, ReservationConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestReservationStatusTerminal(t *testing.T) {
	assert.False(t, ReservationPending.Terminal())
	assert.False(t, ReservationConfirmed.Terminal())
	assert.False(t, ReservationCheckedIn.Terminal())
	assert.True(t, ReservationCheckedOut.Terminal())
	assert.True(t, ReservationCancelled.Terminal())
	assert.True(t, ReservationNoShow.Terminal())
}

func TestTaskStatusTransitions(t *testing.T) {
	tests := []struct {
		from    TaskStatus
		to      TaskStatus
		allowed bool
	}{
		{TaskPending, TaskInProgress, true},
		{TaskPending, TaskCancelled, true},
		{TaskPending, TaskCompleted, false},
		{TaskInProgress, TaskCompleted, true},
		{TaskInProgress, TaskCancelled, true},
		{TaskInProgress, TaskPending, false},
		{TaskCompleted, TaskInProgress, false},
		{TaskCancelled, TaskPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, RoomAvailable.Valid())
	assert.False(t, RoomStatus("haunted").Valid())

	assert.True(t, RoomTypePresidential.Valid())
	assert.False(t, RoomType("penthouse").Valid())

	assert.True(t, PayBankTransfer.Valid())
	assert.False(t, PaymentMethod("barter").Valid())

	assert.True(t, PriorityUrgent.Valid())
	assert.False(t, TaskPriority("whenever").Valid())

	assert.True(t, CashExpense.Valid())
	assert.False(t, CashTransactionType("transfer").Valid())
}
