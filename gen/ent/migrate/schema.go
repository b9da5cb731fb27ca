// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeUUID, Nullable: true},
		{Name: "total_files", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "archive_key", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[1], BatchesColumns[6]},
			},
			{
				Name:    "batch_run_id",
				Unique:  true,
				Columns: []*schema.Column{BatchesColumns[2]},
			},
		},
	}
	// FileExtractionsColumns holds the columns for the "file_extractions" table.
	FileExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "run_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "source_tag", Type: field.TypeString, Default: "upload"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FileExtractionsTable holds the schema information for the "file_extractions" table.
	FileExtractionsTable = &schema.Table{
		Name:       "file_extractions",
		Columns:    FileExtractionsColumns,
		PrimaryKey: []*schema.Column{FileExtractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fileextraction_run_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{FileExtractionsColumns[1], FileExtractionsColumns[5], FileExtractionsColumns[8]},
			},
			{
				Name:    "fileextraction_run_id",
				Unique:  false,
				Columns: []*schema.Column{FileExtractionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		FileExtractionsTable,
	}
)

func init() {
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	FileExtractionsTable.Annotation = &entsql.Annotation{
		Table: "file_extractions",
	}
}
