package model

import "time"

// Task priorities.
const (
	TaskPriorityHigh   = "High"
	TaskPriorityMedium = "Medium"
	TaskPriorityLow    = "Low"
)

// Task statuses.
const (
	TaskStatusToDo       = "ToDo"
	TaskStatusInProgress = "InProgress"
	TaskStatusReview     = "Review"
	TaskStatusDone       = "Done"
)

type Task struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	DueDate        time.Time  `json:"dueDate"`
	ProjectID      uint       `json:"projectId"`
	AssignedUserID *uint      `json:"assignedUserId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}
