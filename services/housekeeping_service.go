package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"hotel-pms-backend/models"

	"gorm.io/gorm"
)

type HousekeepingService struct {
	DB    *gorm.DB
	Rooms *RoomService
}

func NewHousekeepingService(db *gorm.DB, rooms *RoomService) *HousekeepingService {
	return &HousekeepingService{DB: db, Rooms: rooms}
}

func (s *HousekeepingService) Create(task *models.HousekeepingTask) error {
	return s.createTx(s.DB, task)
}

func (s *HousekeepingService) createTx(tx *gorm.DB, task *models.HousekeepingTask) error {
	task.TaskType = strings.TrimSpace(task.TaskType)
	if task.TaskType == "" {
		return validationErr("taskType", "task type is required")
	}
	if task.Priority == "" {
		task.Priority = models.PriorityNormal
	}
	if !task.Priority.Valid() {
		return validationErr("priority", "unknown priority "+string(task.Priority))
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if task.Status != models.TaskPending {
		return validationErr("status", "new tasks start as pending")
	}

	var count int64
	if err := tx.Model(&models.Room{}).Where("id = ?", task.RoomID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFoundErr("room", task.RoomID)
	}

	return tx.Create(task).Error
}

// Advance moves a task along the forward-only graph. Completing a task
// stamps CompletedAt. Cleaning tasks keep the room's status in step:
// starting one sends the room to cleaning, completing one frees it again.
func (s *HousekeepingService) Advance(id uint, next models.TaskStatus) (*models.HousekeepingTask, error) {
	if !next.Valid() {
		return nil, validationErr("status", "unknown task status "+string(next))
	}

	var task *models.HousekeepingTask
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		task, err = s.getByIDTx(tx, id)
		if err != nil {
			return err
		}
		if !task.Status.CanTransitionTo(next) {
			return &InvalidTransitionError{Entity: "housekeeping task", ID: id,
				From: string(task.Status), To: string(next)}
		}

		updates := map[string]interface{}{"status": next}
		var completedAt *time.Time
		if next == models.TaskCompleted {
			now := time.Now().UTC()
			completedAt = &now
			updates["completed_at"] = now
		}

		q := tx.Model(&models.HousekeepingTask{}).
			Where("id = ? AND status = ?", id, task.Status).
			Updates(updates)
		if q.Error != nil {
			return q.Error
		}
		if q.RowsAffected == 0 {
			return &ConflictError{Entity: "housekeeping task", ID: id,
				Message: "task was modified concurrently"}
		}

		if isCleaningTask(task) {
			switch next {
			case models.TaskInProgress:
				if err := s.Rooms.setStatusTx(tx, task.RoomID, models.RoomCleaning); err != nil {
					return err
				}
			case models.TaskCompleted, models.TaskCancelled:
				// only release the room if housekeeping still holds it
				res := tx.Model(&models.Room{}).
					Where("id = ? AND status = ?", task.RoomID, models.RoomCleaning).
					Update("status", models.RoomAvailable)
				if res.Error != nil {
					return res.Error
				}
			}
		}

		task.Status = next
		task.CompletedAt = completedAt
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("HousekeepingService.Advance ok: task=%d -> %s", id, next)
	return task, nil
}

func isCleaningTask(task *models.HousekeepingTask) bool {
	return strings.Contains(strings.ToLower(task.TaskType), "clean")
}

// Update edits the non-status fields. Status moves only through Advance.
func (s *HousekeepingService) Update(id uint, patch *models.HousekeepingTask) (*models.HousekeepingTask, error) {
	task, err := s.getByIDTx(s.DB, id)
	if err != nil {
		return nil, err
	}

	patch.TaskType = strings.TrimSpace(patch.TaskType)
	if patch.TaskType == "" {
		return nil, validationErr("taskType", "task type is required")
	}
	if patch.Priority != "" && !patch.Priority.Valid() {
		return nil, validationErr("priority", "unknown priority "+string(patch.Priority))
	}

	updates := map[string]interface{}{
		"task_type":   patch.TaskType,
		"assigned_to": patch.AssignedTo,
		"notes":       patch.Notes,
	}
	if patch.Priority != "" {
		updates["priority"] = patch.Priority
	}
	if patch.ScheduledDate != nil {
		updates["scheduled_date"] = patch.ScheduledDate
	}

	if err := s.DB.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.getByIDTx(s.DB, id)
}

func (s *HousekeepingService) Delete(id uint) error {
	res := s.DB.Delete(&models.HousekeepingTask{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFoundErr("housekeeping task", id)
	}
	return nil
}

func (s *HousekeepingService) GetByID(id uint) (*models.HousekeepingTask, error) {
	return s.getByIDTx(s.DB, id)
}

func (s *HousekeepingService) getByIDTx(tx *gorm.DB, id uint) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := tx.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("housekeeping task", id)
		}
		return nil, err
	}
	return &task, nil
}

func (s *HousekeepingService) GetAll(roomID uint, status models.TaskStatus) ([]models.HousekeepingTask, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	if status != "" {
		if !status.Valid() {
			return nil, validationErr("status", "unknown task status "+string(status))
		}
		q = q.Where("status = ?", status)
	}

	var tasks []models.HousekeepingTask
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
