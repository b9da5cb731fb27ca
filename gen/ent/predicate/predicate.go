// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// FileExtraction is the predicate function for fileextraction builders.
type FileExtraction func(*sql.Selector)
