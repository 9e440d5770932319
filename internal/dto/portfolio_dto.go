package dto

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioTaskDTO struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	HTMLContent string    `json:"html_content,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
