package repository

import (
	"sync"
	"time"

	"studydesk/internal/domain"
)

// TaskRepository is the process-wide, append-only task list. Every session
// reads and writes the same list.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
	now   func() time.Time
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{now: time.Now}
}

// Create appends t, keeping insertion order. There is no uniqueness check.
func (r *TaskRepository) Create(t domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = r.now()
	}
	r.tasks = append(r.tasks, t)
}

// List returns a copy of all tasks in insertion order.
func (r *TaskRepository) List() []domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *TaskRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
