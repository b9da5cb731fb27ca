package queue

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
)

// Payload carries the identifiers a job operates on. process_file jobs set
// both fields; aggregate_batch jobs set only BatchID.
type Payload struct {
	FileID  *uuid.UUID `json:"file_id,omitempty"`
	BatchID uuid.UUID  `json:"batch_id"`
}

// Job is the ephemeral unit of work in transit on the queue. FileExtraction
// rows remain the system of record; a job is discarded once acknowledged.
type Job struct {
	ID          uuid.UUID         `json:"id"`
	Type        constants.JobType `json:"type"`
	Payload     Payload           `json:"payload"`
	Attempt     int               `json:"attempt"`
	MaxAttempts int               `json:"max_attempts"`
	RetryDelay  time.Duration     `json:"retry_delay"`
	EnqueuedAt  time.Time         `json:"enqueued_at"`
}

func marshalJob(j *Job) (string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalJob(raw string) (*Job, error) {
	var j Job
	if err := json.Unmarshal([]byte(raw), &j); err != nil {
		return nil, err
	}
	return &j, nil
}
