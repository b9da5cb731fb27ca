package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/db/ent/schema/utils"
)

type FileExtraction struct{ ent.Schema }

func (FileExtraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_extractions"},
	}
}

func (FileExtraction) Fields() []ent.Field {
	return []ent.Field{
		// The extractor supplies the identifier; insertion must be idempotent
		// on conflict, so no column default here.
		field.UUID("id", uuid.UUID{}).Immutable(),
		field.UUID("run_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("file_type").NotEmpty(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.FileStatuses...)),
		field.Int("retry_count").Default(0).NonNegative(),
		field.String("source_tag").Default(constants.SourceTagUpload),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FileExtraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "status", "created_at"),
		index.Fields("run_id"),
	}
}
