// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// TermsColumns holds the columns for the "terms" table.
	TermsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_text", Type: field.TypeString},
		{Name: "target_text", Type: field.TypeString},
		{Name: "source_lang", Type: field.TypeString, Default: "en"},
		{Name: "target_lang", Type: field.TypeString, Default: "lt"},
		{Name: "corpus", Type: field.TypeString, Default: ""},
		{Name: "group_name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TermsTable holds the schema information for the "terms" table.
	TermsTable = &schema.Table{
		Name:       "terms",
		Columns:    TermsColumns,
		PrimaryKey: []*schema.Column{TermsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "term_source_text_target_text",
				Unique:  true,
				Columns: []*schema.Column{TermsColumns[1], TermsColumns[2]},
			},
			{
				Name:    "term_corpus_group_name",
				Unique:  false,
				Columns: []*schema.Column{TermsColumns[5], TermsColumns[6]},
			},
		},
	}
	// TermStatsColumns holds the columns for the "term_stats" table.
	TermStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "term_key", Type: field.TypeString},
		{Name: "exposed", Type: field.TypeBool, Default: false},
		{Name: "mc_correct", Type: field.TypeInt32, Default: 0},
		{Name: "mc_incorrect", Type: field.TypeInt32, Default: 0},
		{Name: "listening_easy_correct", Type: field.TypeInt32, Default: 0},
		{Name: "listening_easy_incorrect", Type: field.TypeInt32, Default: 0},
		{Name: "listening_hard_correct", Type: field.TypeInt32, Default: 0},
		{Name: "listening_hard_incorrect", Type: field.TypeInt32, Default: 0},
		{Name: "typing_correct", Type: field.TypeInt32, Default: 0},
		{Name: "typing_incorrect", Type: field.TypeInt32, Default: 0},
		{Name: "last_seen", Type: field.TypeTime, Nullable: true},
		{Name: "last_correct_answer", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TermStatsTable holds the schema information for the "term_stats" table.
	TermStatsTable = &schema.Table{
		Name:       "term_stats",
		Columns:    TermStatsColumns,
		PrimaryKey: []*schema.Column{TermStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "termstat_term_key",
				Unique:  true,
				Columns: []*schema.Column{TermStatsColumns[1]},
			},
			{
				Name:    "termstat_exposed",
				Unique:  false,
				Columns: []*schema.Column{TermStatsColumns[2]},
			},
			{
				Name:    "termstat_last_seen",
				Unique:  false,
				Columns: []*schema.Column{TermStatsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TermsTable,
		TermStatsTable,
	}
)

func init() {
	TermsTable.Annotation = &entsql.Annotation{
		Table: "terms",
	}
	TermStatsTable.Annotation = &entsql.Annotation{
		Table: "term_stats",
	}
}
