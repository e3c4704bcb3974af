package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/domain/apperr"
	"taskboard/pkg/utils"
	"taskboard/pkg/validate"
)

func trim(s string) string { return strings.TrimSpace(s) }

type TaskService struct {
	tasks domain.TaskRepository
}

func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the owner's tasks, newest first. query filters by
// case-insensitive substring on title or description; status filters only
// when it names a real state, anything else is ignored rather than rejected.
func (s *TaskService) List(ctx context.Context, ownerID, query, status string) ([]domain.Task, error) {
	out, err := s.tasks.ListByOwner(ctx, ownerID, domain.TaskFilter{Query: query, Status: status})
	if err != nil {
		return nil, apperr.Internal("list tasks", err)
	}
	return out, nil
}

// Create stores a task for ownerID. Status defaults to pending; an explicit
// status must name a real state. Length caps mirror the column constraints
// so a store without native enforcement behaves the same.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description, status string) (*domain.Task, error) {
	title, ok := validate.Title(title)
	if !ok {
		if title == "" {
			return nil, apperr.Validation("Please provide a task title")
		}
		return nil, apperr.Validation("Title cannot exceed 100 characters")
	}
	description, ok = validate.Description(description)
	if !ok {
		return nil, apperr.Validation("Description cannot exceed 500 characters")
	}
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) {
		return nil, apperr.Validation("Status must be either pending or completed")
	}

	t := &domain.Task{
		ID:          utils.NewID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, apperr.Internal("create task", err)
	}
	return t, nil
}

// TaskPatch carries the fields a PUT supplied. nil means "leave unchanged".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// Update applies patch to the task and refreshes updatedAt. Only the owner
// may update; anyone else gets Forbidden regardless of what the patch holds.
func (s *TaskService) Update(ctx context.Context, id, ownerID string, patch TaskPatch) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("find task", err)
	}
	if t == nil {
		return nil, apperr.NotFound("Task not found")
	}
	if t.OwnerID != ownerID {
		return nil, apperr.Forbidden("Not authorized to update this task")
	}

	if patch.Title != nil {
		title, ok := validate.Title(*patch.Title)
		if !ok {
			if title == "" {
				return nil, apperr.Validation("Please provide a task title")
			}
			return nil, apperr.Validation("Title cannot exceed 100 characters")
		}
		t.Title = title
	}
	if patch.Description != nil {
		desc, ok := validate.Description(*patch.Description)
		if !ok {
			return nil, apperr.Validation("Description cannot exceed 500 characters")
		}
		t.Description = desc
	}
	if patch.Status != nil {
		if !domain.ValidStatus(*patch.Status) {
			return nil, apperr.Validation("Status must be either pending or completed")
		}
		t.Status = *patch.Status
	}

	t.UpdatedAt = time.Now()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, apperr.Internal("update task", err)
	}
	return t, nil
}

// Delete removes the owner's task and returns nothing; the handler echoes
// the id back.
func (s *TaskService) Delete(ctx context.Context, id, ownerID string) error {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("find task", err)
	}
	if t == nil {
		return apperr.NotFound("Task not found")
	}
	if t.OwnerID != ownerID {
		return apperr.Forbidden("Not authorized to delete this task")
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return apperr.Internal("delete task", err)
	}
	return nil
}
