package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
)

// FileExtraction represents one document discovered inside an archive for
// data transfer between layers.
type FileExtraction struct {
	ID         uuid.UUID            `json:"id"`
	RunID      uuid.UUID            `json:"run_id"`
	Filename   string               `json:"filename"`
	FilePath   string               `json:"file_path"`
	FileType   string               `json:"file_type"`
	Status     constants.FileStatus `json:"status"`
	RetryCount int                  `json:"retry_count"`
	SourceTag  string               `json:"source_tag"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}
