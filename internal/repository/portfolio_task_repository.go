package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/careercompassai/backend/internal/model"
	"github.com/google/uuid"
)

type PortfolioTaskRepositoryInterface interface {
	Create(task *model.PortfolioTask)
	Update(id uuid.UUID, fn func(task *model.PortfolioTask))
	FindByID(id uuid.UUID) (*model.PortfolioTask, error)
}

// PortfolioTaskRepository keeps task handles in memory. Tasks are ephemeral
// session state; a restart losing them only forces a regeneration.
type PortfolioTaskRepository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*model.PortfolioTask
}

func NewPortfolioTaskRepository() *PortfolioTaskRepository {
	return &PortfolioTaskRepository{tasks: make(map[uuid.UUID]*model.PortfolioTask)}
}

func (r *PortfolioTaskRepository) Create(task *model.PortfolioTask) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task
}

// Update applies fn to the stored task under the write lock and bumps
// UpdatedAt. Unknown ids are ignored.
func (r *PortfolioTaskRepository) Update(id uuid.UUID, fn func(task *model.PortfolioTask)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return
	}
	fn(task)
	task.UpdatedAt = time.Now()
}

func (r *PortfolioTaskRepository) FindByID(id uuid.UUID) (*model.PortfolioTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("portfolio task %s not found", id)
	}
	// Copy the snapshot fields so readers never race the worker goroutine.
	snapshot := *task
	return &snapshot, nil
}
