package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Term holds the schema definition for the terms table.
type Term struct {
	ent.Schema
}

// Fields of the Term.
func (Term) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_text").NotEmpty(),
		field.String("target_text").NotEmpty(),
		field.String("source_lang").Default("en"),
		field.String("target_lang").Default("lt"),
		field.String("corpus").Default(""),
		field.String("group_name").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Term.
func (Term) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_text", "target_text").Unique(),
		index.Fields("corpus", "group_name"),
	}
}

// Annotations of the Term.
func (Term) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "terms"},
	}
}
