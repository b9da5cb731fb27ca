package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
)

// Batch represents one uploaded archive for data transfer between layers.
type Batch struct {
	ID           uuid.UUID             `json:"id"`
	Status       constants.BatchStatus `json:"status"`
	RunID        *uuid.UUID            `json:"run_id,omitempty"`
	TotalFiles   int                   `json:"total_files"`
	ErrorMessage *string               `json:"error_message,omitempty"`
	ArchiveKey   string                `json:"archive_key"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	CompletedAt  *time.Time            `json:"completed_at,omitempty"`
}

// Run returns the grouping key for this batch's files: run_id when assigned,
// otherwise the batch identifier itself.
func (b *Batch) Run() uuid.UUID {
	if b.RunID != nil {
		return *b.RunID
	}
	return b.ID
}
