// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
)

// FileExtraction is the model entity for the FileExtraction schema.
type FileExtraction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// SourceTag holds the value of the "source_tag" field.
	SourceTag string `json:"source_tag,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FileExtraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fileextraction.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case fileextraction.FieldFilename, fileextraction.FieldFilePath, fileextraction.FieldFileType, fileextraction.FieldStatus, fileextraction.FieldSourceTag:
			values[i] = new(sql.NullString)
		case fileextraction.FieldCreatedAt, fileextraction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fileextraction.FieldID, fileextraction.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FileExtraction fields.
func (fe *FileExtraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fileextraction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				fe.ID = *value
			}
		case fileextraction.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				fe.RunID = *value
			}
		case fileextraction.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				fe.Filename = value.String
			}
		case fileextraction.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				fe.FilePath = value.String
			}
		case fileextraction.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				fe.FileType = value.String
			}
		case fileextraction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				fe.Status = value.String
			}
		case fileextraction.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				fe.RetryCount = int(value.Int64)
			}
		case fileextraction.FieldSourceTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_tag", values[i])
			} else if value.Valid {
				fe.SourceTag = value.String
			}
		case fileextraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				fe.CreatedAt = value.Time
			}
		case fileextraction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				fe.UpdatedAt = value.Time
			}
		default:
			fe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FileExtraction.
// This includes values selected through modifiers, order, etc.
func (fe *FileExtraction) Value(name string) (ent.Value, error) {
	return fe.selectValues.Get(name)
}

// Update returns a builder for updating this FileExtraction.
// Note that you need to call FileExtraction.Unwrap() before calling this method if this FileExtraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (fe *FileExtraction) Update() *FileExtractionUpdateOne {
	return NewFileExtractionClient(fe.config).UpdateOne(fe)
}

// Unwrap unwraps the FileExtraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (fe *FileExtraction) Unwrap() *FileExtraction {
	_tx, ok := fe.config.driver.(*txDriver)
	if !ok {
		panic("ent: FileExtraction is not a transactional entity")
	}
	fe.config.driver = _tx.drv
	return fe
}

// String implements the fmt.Stringer.
func (fe *FileExtraction) String() string {
	var builder strings.Builder
	builder.WriteString("FileExtraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", fe.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", fe.RunID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(fe.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(fe.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(fe.FileType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fe.Status)
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", fe.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("source_tag=")
	builder.WriteString(fe.SourceTag)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(fe.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(fe.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FileExtractions is a parsable slice of FileExtraction.
type FileExtractions []*FileExtraction
