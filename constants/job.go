package constants

// JobType identifies the kind of work a queue message carries.
type JobType string

const (
	JobTypeProcessFile    JobType = "process_file"
	JobTypeAggregateBatch JobType = "aggregate_batch"
)

// JobTypes holds the allowed values for the job type field.
var JobTypes = []string{
	string(JobTypeProcessFile),
	string(JobTypeAggregateBatch),
}
