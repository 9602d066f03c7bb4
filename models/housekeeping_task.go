package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// Forward-only: pending must pass through in_progress before completed,
// so CompletedAt always has a matching start.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:    {TaskInProgress, TaskCancelled},
	TaskInProgress: {TaskCompleted, TaskCancelled},
}

func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type HousekeepingTask struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	TaskType string       `gorm:"column:task_type;size:100" json:"taskType"`
	Priority TaskPriority `gorm:"size:32;default:normal" json:"priority"`
	Status   TaskStatus   `gorm:"size:32;default:pending" json:"status"`

	// free text, not an admin reference
	AssignedTo    string     `gorm:"column:assigned_to;size:150" json:"assignedTo,omitempty"`
	ScheduledDate *time.Time `gorm:"column:scheduled_date" json:"scheduledDate,omitempty"`
	CompletedAt   *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
