package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/domain/apperr"
	"taskboard/internal/repo"
)

const (
	ownerAnn = "owner-ann"
	ownerBob = "owner-bob"
)

func newTaskService() (*TaskService, *repo.MemTaskRepo) {
	r := repo.NewMemTaskRepo()
	return NewTaskService(r), r
}

// seed inserts a task with explicit timestamps, bypassing the service.
func seed(t *testing.T, r *repo.MemTaskRepo, owner, title, desc, status string, createdAt time.Time) domain.Task {
	t.Helper()
	task := domain.Task{
		ID:          "task-" + title,
		OwnerID:     owner,
		Title:       title,
		Description: desc,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, r.Create(context.Background(), &task))
	return task
}

func TestCreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService()

	task, err := svc.Create(ctx, ownerAnn, "  Buy milk  ", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, ownerAnn, task.OwnerID)
	require.Equal(t, "Buy milk", task.Title)
	require.Equal(t, "", task.Description)
	require.Equal(t, domain.StatusPending, task.Status)
	require.False(t, task.CreatedAt.IsZero())
}

func TestCreateExplicitStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService()

	task, err := svc.Create(ctx, ownerAnn, "Done already", "", domain.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, task.Status)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService()

	_, err := svc.Create(ctx, ownerAnn, "", "", "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
	require.Equal(t, "Please provide a task title", err.Error())

	_, err = svc.Create(ctx, ownerAnn, "   ", "", "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(ctx, ownerAnn, strings.Repeat("t", 101), "", "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(ctx, ownerAnn, "ok", strings.Repeat("d", 501), "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.Create(ctx, ownerAnn, "ok", "", "archived")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
	require.Equal(t, "Status must be either pending or completed", err.Error())
}

func TestCreateMultibyteTitleAtCap(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService()

	// 100 two-byte characters are within the cap; 101 are not
	task, err := svc.Create(ctx, ownerAnn, strings.Repeat("é", 100), "", "")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("é", 100), task.Title)

	_, err = svc.Create(ctx, ownerAnn, strings.Repeat("é", 101), "", "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
	require.Equal(t, "Title cannot exceed 100 characters", err.Error())
}

func TestListOwnerScopedNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()

	base := time.Now().Add(-time.Hour)
	seed(t, r, ownerAnn, "oldest", "", domain.StatusPending, base)
	seed(t, r, ownerAnn, "middle", "", domain.StatusCompleted, base.Add(time.Minute))
	seed(t, r, ownerAnn, "newest", "", domain.StatusPending, base.Add(2*time.Minute))
	seed(t, r, ownerBob, "bobs", "", domain.StatusPending, base.Add(3*time.Minute))

	tasks, err := svc.List(ctx, ownerAnn, "", "")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "newest", tasks[0].Title)
	require.Equal(t, "middle", tasks[1].Title)
	require.Equal(t, "oldest", tasks[2].Title)
	for _, task := range tasks {
		require.Equal(t, ownerAnn, task.OwnerID)
	}
}

func TestListQueryMatchesTitleOrDescription(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()

	now := time.Now()
	seed(t, r, ownerAnn, "Buy MILK", "", domain.StatusPending, now)
	seed(t, r, ownerAnn, "Call mum", "about the milk delivery", domain.StatusPending, now.Add(time.Second))
	seed(t, r, ownerAnn, "Unrelated", "", domain.StatusPending, now.Add(2*time.Second))

	tasks, err := svc.List(ctx, ownerAnn, "milk", "")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

func TestListQueryMetacharactersAreLiteral(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()

	now := time.Now()
	seed(t, r, ownerAnn, "50% off sale", "", domain.StatusPending, now)
	seed(t, r, ownerAnn, "50x off sale", "", domain.StatusPending, now.Add(time.Second))
	seed(t, r, ownerAnn, "a_b", "", domain.StatusPending, now.Add(2*time.Second))

	tasks, err := svc.List(ctx, ownerAnn, "50%", "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "50% off sale", tasks[0].Title)

	tasks, err = svc.List(ctx, ownerAnn, "a_b", "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestListStatusFilter(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()

	now := time.Now()
	seed(t, r, ownerAnn, "a", "", domain.StatusPending, now)
	seed(t, r, ownerAnn, "b", "", domain.StatusCompleted, now.Add(time.Second))

	tasks, err := svc.List(ctx, ownerAnn, "", domain.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "b", tasks[0].Title)

	// unrecognized filter values are ignored, not applied
	tasks, err = svc.List(ctx, ownerAnn, "", "archived")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()

	old := time.Now().Add(-time.Hour)
	seeded := seed(t, r, ownerAnn, "original", "desc", domain.StatusPending, old)

	newTitle := "changed"
	status := domain.StatusCompleted
	task, err := svc.Update(ctx, seeded.ID, ownerAnn, TaskPatch{Title: &newTitle, Status: &status})
	require.NoError(t, err)
	require.Equal(t, "changed", task.Title)
	require.Equal(t, "desc", task.Description, "untouched field survives")
	require.Equal(t, domain.StatusCompleted, task.Status)
	require.True(t, task.UpdatedAt.After(old), "updatedAt must be refreshed")
	require.Equal(t, old.Unix(), task.CreatedAt.Unix(), "createdAt immutable")
}

func TestUpdateErrors(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()
	seeded := seed(t, r, ownerAnn, "anns", "", domain.StatusPending, time.Now())

	_, err := svc.Update(ctx, "missing-id", ownerAnn, TaskPatch{})
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.Update(ctx, seeded.ID, ownerBob, TaskPatch{})
	require.True(t, apperr.IsKind(err, apperr.KindForbidden))

	bad := "archived"
	_, err = svc.Update(ctx, seeded.ID, ownerAnn, TaskPatch{Status: &bad})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))

	empty := "  "
	_, err = svc.Update(ctx, seeded.ID, ownerAnn, TaskPatch{Title: &empty})
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, r := newTaskService()
	seeded := seed(t, r, ownerAnn, "doomed", "", domain.StatusPending, time.Now())

	require.True(t, apperr.IsKind(svc.Delete(ctx, "missing-id", ownerAnn), apperr.KindNotFound))
	require.True(t, apperr.IsKind(svc.Delete(ctx, seeded.ID, ownerBob), apperr.KindForbidden))

	require.NoError(t, svc.Delete(ctx, seeded.ID, ownerAnn))

	tasks, err := svc.List(ctx, ownerAnn, "", "")
	require.NoError(t, err)
	require.Empty(t, tasks)
}
