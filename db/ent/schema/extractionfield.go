package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
	"github.com/TadiwanasheNdombo/aura-document-system/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ExtractionField struct{ ent.Schema }

func (ExtractionField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "htr_extracted_data"},
	}
}

func (ExtractionField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("document_id").NotEmpty().MaxLen(128),
		field.String("source_type").NotEmpty().
			Validate(utils.EnumValidator(constants.SourceTypes()...)),
		field.String("field_name").NotEmpty().MaxLen(64),
		field.String("extracted_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("confidence_score").Default(0.99),
		field.Bool("is_corrected").Default(false),
		field.String("corrected_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionField) Indexes() []ent.Index {
	return []ent.Index{
		// upsert key: one row per document/source/field
		index.Fields("document_id", "source_type", "field_name").Unique(),
		index.Fields("document_id"),
	}
}
