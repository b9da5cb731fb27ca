package constants

// BatchStatus is the canonical status for rows in batches.
type BatchStatus string

// Stable values (store these exact strings in DB).
const (
	// BatchStatusQueued doubles as "ready for extraction" (run_id/total_files
	// unset) and "extraction done, ready for dispatch" (both set).
	BatchStatusQueued              BatchStatus = "queued"
	BatchStatusExtracting          BatchStatus = "extracting"
	BatchStatusProcessing          BatchStatus = "processing"
	BatchStatusCompleted           BatchStatus = "completed"
	BatchStatusCompletedWithErrors BatchStatus = "completed_with_errors"
	BatchStatusFailed              BatchStatus = "failed"
)

// IsTerminal reports whether a batch status admits no further transitions
// (other than an explicit retry-failed reset).
func (s BatchStatus) IsTerminal() bool {
	switch s {
	case BatchStatusCompleted, BatchStatusCompletedWithErrors, BatchStatusFailed:
		return true
	}
	return false
}

// FileStatus is the canonical status for rows in file_extractions.
type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusProcessing FileStatus = "processing"
	FileStatusSuccess    FileStatus = "success"
	FileStatusFailed     FileStatus = "failed"
)

// IsTerminal reports whether a file status is a terminal outcome.
func (s FileStatus) IsTerminal() bool {
	return s == FileStatusSuccess || s == FileStatusFailed
}

// BatchStatuses holds the allowed values for the batches status field.
var BatchStatuses = []string{
	string(BatchStatusQueued),
	string(BatchStatusExtracting),
	string(BatchStatusProcessing),
	string(BatchStatusCompleted),
	string(BatchStatusCompletedWithErrors),
	string(BatchStatusFailed),
}

// FileStatuses holds the allowed values for the file_extractions status field.
var FileStatuses = []string{
	string(FileStatusPending),
	string(FileStatusProcessing),
	string(FileStatusSuccess),
	string(FileStatusFailed),
}
