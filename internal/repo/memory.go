package repo

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"taskboard/internal/domain"
)

// In-memory repositories. They back the test suites and any run that does
// not need a real database, and they enforce the same constraints the
// schema does (unique email, status enum gate at list time).

var errDuplicateEmail = errors.New("duplicate key: users.email")

// stampNew mirrors gorm's autoCreateTime/autoUpdateTime on insert.
func stampNew(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = now
	}
}

type MemUserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]domain.User)}
}

func (r *MemUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return errDuplicateEmail
		}
	}
	stampNew(&u.CreatedAt, &u.UpdatedAt)
	r.users[u.ID] = *u
	return nil
}

func (r *MemUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *MemUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

type MemTaskRepo struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

func NewMemTaskRepo() *MemTaskRepo {
	return &MemTaskRepo{tasks: make(map[string]domain.Task)}
}

func (r *MemTaskRepo) Create(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stampNew(&t.CreatedAt, &t.UpdatedAt)
	r.tasks[t.ID] = *t
	return nil
}

func (r *MemTaskRepo) FindByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tasks[id]; ok {
		cp := t
		return &cp, nil
	}
	return nil, nil
}

func (r *MemTaskRepo) ListByOwner(_ context.Context, ownerID string, f domain.TaskFilter) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Task, 0)
	for _, t := range r.tasks {
		if t.OwnerID != ownerID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			continue
		}
		if domain.ValidStatus(f.Status) && t.Status != f.Status {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemTaskRepo) Update(_ context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = *t
	return nil
}

func (r *MemTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}
