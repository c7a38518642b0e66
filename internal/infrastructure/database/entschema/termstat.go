package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TermStat holds the schema definition for the term_stats table. One row per
// term key, with per-modality correct/incorrect counters denormalized into
// columns so ordering and filtering stay in SQL.
type TermStat struct {
	ent.Schema
}

// Fields of the TermStat.
func (TermStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("term_key").NotEmpty(),
		field.Bool("exposed").Default(false),
		field.Int32("mc_correct").Default(0),
		field.Int32("mc_incorrect").Default(0),
		field.Int32("listening_easy_correct").Default(0),
		field.Int32("listening_easy_incorrect").Default(0),
		field.Int32("listening_hard_correct").Default(0),
		field.Int32("listening_hard_incorrect").Default(0),
		field.Int32("typing_correct").Default(0),
		field.Int32("typing_incorrect").Default(0),
		field.Time("last_seen").Optional().Nillable(),
		field.Time("last_correct_answer").Optional().Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TermStat.
func (TermStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("term_key").Unique(),
		index.Fields("exposed"),
		index.Fields("last_seen"),
	}
}

// Annotations of the TermStat.
func (TermStat) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "term_stats"},
	}
}
