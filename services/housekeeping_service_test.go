package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-pms-backend/models"
)

func seedTask(t *testing.T, s *testServices, roomID uint, taskType string) *models.HousekeepingTask {
	t.Helper()
	task := &models.HousekeepingTask{RoomID: roomID, TaskType: taskType}
	require.NoError(t, s.Housekeeping.Create(task))
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)

	task := seedTask(t, s, room.ID, "deep clean")
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, models.PriorityNormal, task.Priority)
}

func TestCreateTaskValidation(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)

	t.Run("empty task type", func(t *testing.T) {
		err := s.Housekeeping.Create(&models.HousekeepingTask{RoomID: room.ID, TaskType: "  "})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown room", func(t *testing.T) {
		err := s.Housekeeping.Create(&models.HousekeepingTask{RoomID: 9999, TaskType: "deep clean"})
		var nferr *NotFoundError
		require.ErrorAs(t, err, &nferr)
		assert.Equal(t, "room", nferr.Entity)
	})

	t.Run("cannot start in a non-pending status", func(t *testing.T) {
		err := s.Housekeeping.Create(&models.HousekeepingTask{
			RoomID: room.ID, TaskType: "deep clean", Status: models.TaskCompleted,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestAdvanceTask(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)

	t.Run("full forward path stamps completion", func(t *testing.T) {
		task := seedTask(t, s, room.ID, "towel restock")

		task, err := s.Housekeeping.Advance(task.ID, models.TaskInProgress)
		require.NoError(t, err)
		assert.Equal(t, models.TaskInProgress, task.Status)
		assert.Nil(t, task.CompletedAt)

		task, err = s.Housekeeping.Advance(task.ID, models.TaskCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.TaskCompleted, task.Status)
		require.NotNil(t, task.CompletedAt)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		task := seedTask(t, s, room.ID, "towel restock")

		_, err := s.Housekeeping.Advance(task.ID, models.TaskCompleted)
		var terr *InvalidTransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "pending", terr.From)
		assert.Equal(t, "completed", terr.To)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		task := seedTask(t, s, room.ID, "towel restock")
		_, err := s.Housekeeping.Advance(task.ID, models.TaskCancelled)
		require.NoError(t, err)

		for _, next := range []models.TaskStatus{
			models.TaskPending, models.TaskInProgress, models.TaskCompleted,
		} {
			_, err := s.Housekeeping.Advance(task.ID, next)
			var terr *InvalidTransitionError
			require.ErrorAs(t, err, &terr, "cancelled -> %s should be rejected", next)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		task := seedTask(t, s, room.ID, "towel restock")
		_, err := s.Housekeeping.Advance(task.ID, "paused")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestCleaningTaskSyncsRoom(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)
	task := seedTask(t, s, room.ID, "checkout cleaning")

	_, err := s.Housekeeping.Advance(task.ID, models.TaskInProgress)
	require.NoError(t, err)

	gotRoom, err := s.Rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomCleaning, gotRoom.Status)

	_, err = s.Housekeeping.Advance(task.ID, models.TaskCompleted)
	require.NoError(t, err)

	gotRoom, err = s.Rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, gotRoom.Status)
}

func TestCompletingCleaningLeavesReclaimedRoomAlone(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)
	task := seedTask(t, s, room.ID, "checkout cleaning")

	_, err := s.Housekeeping.Advance(task.ID, models.TaskInProgress)
	require.NoError(t, err)

	// the front desk put the room into maintenance while cleaning ran
	require.NoError(t, s.Rooms.SetStatus(room.ID, models.RoomMaintenance))

	_, err = s.Housekeeping.Advance(task.ID, models.TaskCompleted)
	require.NoError(t, err)

	gotRoom, err := s.Rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, gotRoom.Status)
}

func TestNonCleaningTaskNeverTouchesRoom(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)
	task := seedTask(t, s, room.ID, "minibar restock")

	_, err := s.Housekeeping.Advance(task.ID, models.TaskInProgress)
	require.NoError(t, err)

	gotRoom, err := s.Rooms.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, gotRoom.Status)
}

func TestUpdateTaskIgnoresStatus(t *testing.T) {
	s := newTestServices(t)
	room := seedRoom(t, s, "101", 100)
	task := seedTask(t, s, room.ID, "deep clean")

	got, err := s.Housekeeping.Update(task.ID, &models.HousekeepingTask{
		TaskType:   "deep clean",
		AssignedTo: "maria",
		Priority:   models.PriorityHigh,
		Status:     models.TaskCompleted, // must not leak through
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", got.AssignedTo)
	assert.Equal(t, models.PriorityHigh, got.Priority)
	assert.Equal(t, models.TaskPending, got.Status)
}

func TestGetAllTasksFilters(t *testing.T) {
	s := newTestServices(t)
	roomA := seedRoom(t, s, "101", 100)
	roomB := seedRoom(t, s, "102", 100)

	seedTask(t, s, roomA.ID, "deep clean")
	taskB := seedTask(t, s, roomB.ID, "deep clean")
	_, err := s.Housekeeping.Advance(taskB.ID, models.TaskInProgress)
	require.NoError(t, err)

	pending, err := s.Housekeeping.GetAll(0, models.TaskPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	forB, err := s.Housekeeping.GetAll(roomB.ID, "")
	require.NoError(t, err)
	assert.Len(t, forB, 1)

	_, err = s.Housekeeping.GetAll(0, "paused")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
