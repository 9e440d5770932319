package repository

import (
	"testing"
	"time"

	"github.com/careercompassai/backend/internal/model"
	"github.com/google/uuid"
)

func TestPortfolioTaskRepositoryLifecycle(t *testing.T) {
	repo := NewPortfolioTaskRepository()
	task := &model.PortfolioTask{
		ID:        uuid.New(),
		Status:    model.TaskStatusProcessing,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	repo.Create(task)

	repo.Update(task.ID, func(t *model.PortfolioTask) {
		t.Status = model.TaskStatusCompleted
		t.HTMLContent = "<html></html>"
	})

	got, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != model.TaskStatusCompleted || got.HTMLContent != "<html></html>" {
		t.Errorf("task = %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("UpdatedAt not bumped: %v vs %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestPortfolioTaskRepositoryUnknownID(t *testing.T) {
	repo := NewPortfolioTaskRepository()

	if _, err := repo.FindByID(uuid.New()); err == nil {
		t.Error("expected error for unknown id")
	}

	// Updating an unknown id is a no-op, not a panic.
	repo.Update(uuid.New(), func(t *model.PortfolioTask) {
		t.Status = model.TaskStatusFailed
	})
}

func TestPortfolioTaskRepositorySnapshot(t *testing.T) {
	repo := NewPortfolioTaskRepository()
	task := &model.PortfolioTask{ID: uuid.New(), Status: model.TaskStatusProcessing}
	repo.Create(task)

	snapshot, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	snapshot.Status = "mutated"

	fresh, _ := repo.FindByID(task.ID)
	if fresh.Status != model.TaskStatusProcessing {
		t.Errorf("snapshot mutation leaked into the store: %q", fresh.Status)
	}
}
