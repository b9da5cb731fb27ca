package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/db/ent/schema/utils"
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		// run_id is assigned exactly once, at first successful extraction.
		field.UUID("run_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("total_files").Default(0).NonNegative(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("archive_key").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("run_id").Unique(),
	}
}
