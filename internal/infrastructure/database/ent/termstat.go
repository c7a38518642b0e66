// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/termstat"
)

// TermStat is the model entity for the TermStat schema.
type TermStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TermKey holds the value of the "term_key" field.
	TermKey string `json:"term_key,omitempty"`
	// Exposed holds the value of the "exposed" field.
	Exposed bool `json:"exposed,omitempty"`
	// McCorrect holds the value of the "mc_correct" field.
	McCorrect int32 `json:"mc_correct,omitempty"`
	// McIncorrect holds the value of the "mc_incorrect" field.
	McIncorrect int32 `json:"mc_incorrect,omitempty"`
	// ListeningEasyCorrect holds the value of the "listening_easy_correct" field.
	ListeningEasyCorrect int32 `json:"listening_easy_correct,omitempty"`
	// ListeningEasyIncorrect holds the value of the "listening_easy_incorrect" field.
	ListeningEasyIncorrect int32 `json:"listening_easy_incorrect,omitempty"`
	// ListeningHardCorrect holds the value of the "listening_hard_correct" field.
	ListeningHardCorrect int32 `json:"listening_hard_correct,omitempty"`
	// ListeningHardIncorrect holds the value of the "listening_hard_incorrect" field.
	ListeningHardIncorrect int32 `json:"listening_hard_incorrect,omitempty"`
	// TypingCorrect holds the value of the "typing_correct" field.
	TypingCorrect int32 `json:"typing_correct,omitempty"`
	// TypingIncorrect holds the value of the "typing_incorrect" field.
	TypingIncorrect int32 `json:"typing_incorrect,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen *time.Time `json:"last_seen,omitempty"`
	// LastCorrectAnswer holds the value of the "last_correct_answer" field.
	LastCorrectAnswer *time.Time `json:"last_correct_answer,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TermStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case termstat.FieldExposed:
			values[i] = new(sql.NullBool)
		case termstat.FieldID, termstat.FieldMcCorrect, termstat.FieldMcIncorrect, termstat.FieldListeningEasyCorrect, termstat.FieldListeningEasyIncorrect, termstat.FieldListeningHardCorrect, termstat.FieldListeningHardIncorrect, termstat.FieldTypingCorrect, termstat.FieldTypingIncorrect:
			values[i] = new(sql.NullInt64)
		case termstat.FieldTermKey:
			values[i] = new(sql.NullString)
		case termstat.FieldLastSeen, termstat.FieldLastCorrectAnswer, termstat.FieldCreatedAt, termstat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TermStat fields.
func (ts *TermStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case termstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ts.ID = int(value.Int64)
		case termstat.FieldTermKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term_key", values[i])
			} else if value.Valid {
				ts.TermKey = value.String
			}
		case termstat.FieldExposed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field exposed", values[i])
			} else if value.Valid {
				ts.Exposed = value.Bool
			}
		case termstat.FieldMcCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mc_correct", values[i])
			} else if value.Valid {
				ts.McCorrect = int32(value.Int64)
			}
		case termstat.FieldMcIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mc_incorrect", values[i])
			} else if value.Valid {
				ts.McIncorrect = int32(value.Int64)
			}
		case termstat.FieldListeningEasyCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field listening_easy_correct", values[i])
			} else if value.Valid {
				ts.ListeningEasyCorrect = int32(value.Int64)
			}
		case termstat.FieldListeningEasyIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field listening_easy_incorrect", values[i])
			} else if value.Valid {
				ts.ListeningEasyIncorrect = int32(value.Int64)
			}
		case termstat.FieldListeningHardCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field listening_hard_correct", values[i])
			} else if value.Valid {
				ts.ListeningHardCorrect = int32(value.Int64)
			}
		case termstat.FieldListeningHardIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field listening_hard_incorrect", values[i])
			} else if value.Valid {
				ts.ListeningHardIncorrect = int32(value.Int64)
			}
		case termstat.FieldTypingCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field typing_correct", values[i])
			} else if value.Valid {
				ts.TypingCorrect = int32(value.Int64)
			}
		case termstat.FieldTypingIncorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field typing_incorrect", values[i])
			} else if value.Valid {
				ts.TypingIncorrect = int32(value.Int64)
			}
		case termstat.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				ts.LastSeen = new(time.Time)
				*ts.LastSeen = value.Time
			}
		case termstat.FieldLastCorrectAnswer:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_correct_answer", values[i])
			} else if value.Valid {
				ts.LastCorrectAnswer = new(time.Time)
				*ts.LastCorrectAnswer = value.Time
			}
		case termstat.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ts.CreatedAt = value.Time
			}
		case termstat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ts.UpdatedAt = value.Time
			}
		default:
			ts.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TermStat.
// This includes values selected through modifiers, order, etc.
func (ts *TermStat) Value(name string) (ent.Value, error) {
	return ts.selectValues.Get(name)
}

// Update returns a builder for updating this TermStat.
// Note that you need to call TermStat.Unwrap() before calling this method if this TermStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (ts *TermStat) Update() *TermStatUpdateOne {
	return NewTermStatClient(ts.config).UpdateOne(ts)
}

// Unwrap unwraps the TermStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ts *TermStat) Unwrap() *TermStat {
	_tx, ok := ts.config.driver.(*txDriver)
	if !ok {
		panic("ent: TermStat is not a transactional entity")
	}
	ts.config.driver = _tx.drv
	return ts
}

// String implements the fmt.Stringer.
func (ts *TermStat) String() string {
	var builder strings.Builder
	builder.WriteString("TermStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ts.ID))
	builder.WriteString("term_key=")
	builder.WriteString(ts.TermKey)
	builder.WriteString(", ")
	builder.WriteString("exposed=")
	builder.WriteString(fmt.Sprintf("%v", ts.Exposed))
	builder.WriteString(", ")
	builder.WriteString("mc_correct=")
	builder.WriteString(fmt.Sprintf("%v", ts.McCorrect))
	builder.WriteString(", ")
	builder.WriteString("mc_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", ts.McIncorrect))
	builder.WriteString(", ")
	builder.WriteString("listening_easy_correct=")
	builder.WriteString(fmt.Sprintf("%v", ts.ListeningEasyCorrect))
	builder.WriteString(", ")
	builder.WriteString("listening_easy_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", ts.ListeningEasyIncorrect))
	builder.WriteString(", ")
	builder.WriteString("listening_hard_correct=")
	builder.WriteString(fmt.Sprintf("%v", ts.ListeningHardCorrect))
	builder.WriteString(", ")
	builder.WriteString("listening_hard_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", ts.ListeningHardIncorrect))
	builder.WriteString(", ")
	builder.WriteString("typing_correct=")
	builder.WriteString(fmt.Sprintf("%v", ts.TypingCorrect))
	builder.WriteString(", ")
	builder.WriteString("typing_incorrect=")
	builder.WriteString(fmt.Sprintf("%v", ts.TypingIncorrect))
	builder.WriteString(", ")
	if v := ts.LastSeen; v != nil {
		builder.WriteString("last_seen=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := ts.LastCorrectAnswer; v != nil {
		builder.WriteString("last_correct_answer=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ts.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ts.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TermStats is a parsable slice of TermStat.
type TermStats []*TermStat
