package domain

import (
	"context"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the two task states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID          string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	OwnerID     string    `gorm:"type:varchar(32);not null;index:idx_tasks_owner_created,priority:1;index:idx_tasks_owner_status,priority:1" json:"owner"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:500;default:''" json:"description"`
	Status      string    `gorm:"size:16;not null;default:pending;index:idx_tasks_owner_status,priority:2" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_tasks_owner_created,priority:2" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }

// TaskFilter narrows ListByOwner. Query is matched case-insensitively as a
// substring of title or description; Status is applied only when it is a
// valid state (unrecognized values mean "no status filter").
type TaskFilter struct {
	Query  string
	Status string
}

// TaskRepository finders return (nil, nil) when no row matches.
// ListByOwner orders by created_at descending.
type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	ListByOwner(ctx context.Context, ownerID string, f TaskFilter) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
}
