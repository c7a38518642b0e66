// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/term"
)

// Term is the model entity for the Term schema.
type Term struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SourceText holds the value of the "source_text" field.
	SourceText string `json:"source_text,omitempty"`
	// TargetText holds the value of the "target_text" field.
	TargetText string `json:"target_text,omitempty"`
	// SourceLang holds the value of the "source_lang" field.
	SourceLang string `json:"source_lang,omitempty"`
	// TargetLang holds the value of the "target_lang" field.
	TargetLang string `json:"target_lang,omitempty"`
	// Corpus holds the value of the "corpus" field.
	Corpus string `json:"corpus,omitempty"`
	// GroupName holds the value of the "group_name" field.
	GroupName string `json:"group_name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Term) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case term.FieldID:
			values[i] = new(sql.NullInt64)
		case term.FieldSourceText, term.FieldTargetText, term.FieldSourceLang, term.FieldTargetLang, term.FieldCorpus, term.FieldGroupName:
			values[i] = new(sql.NullString)
		case term.FieldCreatedAt, term.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Term fields.
func (t *Term) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case term.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			t.ID = int(value.Int64)
		case term.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				t.SourceText = value.String
			}
		case term.FieldTargetText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_text", values[i])
			} else if value.Valid {
				t.TargetText = value.String
			}
		case term.FieldSourceLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_lang", values[i])
			} else if value.Valid {
				t.SourceLang = value.String
			}
		case term.FieldTargetLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_lang", values[i])
			} else if value.Valid {
				t.TargetLang = value.String
			}
		case term.FieldCorpus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corpus", values[i])
			} else if value.Valid {
				t.Corpus = value.String
			}
		case term.FieldGroupName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_name", values[i])
			} else if value.Valid {
				t.GroupName = value.String
			}
		case term.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				t.CreatedAt = value.Time
			}
		case term.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				t.UpdatedAt = value.Time
			}
		default:
			t.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Term.
// This includes values selected through modifiers, order, etc.
func (t *Term) Value(name string) (ent.Value, error) {
	return t.selectValues.Get(name)
}

// Update returns a builder for updating this Term.
// Note that you need to call Term.Unwrap() before calling this method if this Term
// was returned from a transaction, and the transaction was committed or rolled back.
func (t *Term) Update() *TermUpdateOne {
	return NewTermClient(t.config).UpdateOne(t)
}

// Unwrap unwraps the Term entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (t *Term) Unwrap() *Term {
	_tx, ok := t.config.driver.(*txDriver)
	if !ok {
		panic("ent: Term is not a transactional entity")
	}
	t.config.driver = _tx.drv
	return t
}

// String implements the fmt.Stringer.
func (t *Term) String() string {
	var builder strings.Builder
	builder.WriteString("Term(")
	builder.WriteString(fmt.Sprintf("id=%v, ", t.ID))
	builder.WriteString("source_text=")
	builder.WriteString(t.SourceText)
	builder.WriteString(", ")
	builder.WriteString("target_text=")
	builder.WriteString(t.TargetText)
	builder.WriteString(", ")
	builder.WriteString("source_lang=")
	builder.WriteString(t.SourceLang)
	builder.WriteString(", ")
	builder.WriteString("target_lang=")
	builder.WriteString(t.TargetLang)
	builder.WriteString(", ")
	builder.WriteString("corpus=")
	builder.WriteString(t.Corpus)
	builder.WriteString(", ")
	builder.WriteString("group_name=")
	builder.WriteString(t.GroupName)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(t.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(t.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Terms is a parsable slice of Term.
type Terms []*Term
