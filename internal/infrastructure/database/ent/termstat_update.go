// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/termstat"
)

// TermStatUpdate is the builder for updating TermStat entities.
type TermStatUpdate struct {
	config
	hooks    []Hook
	mutation *TermStatMutation
}

// Where appends a list predicates to the TermStatUpdate builder.
func (tsu *TermStatUpdate) Where(ps ...predicate.TermStat) *TermStatUpdate {
	tsu.mutation.Where(ps...)
	return tsu
}

// SetTermKey sets the "term_key" field.
func (tsu *TermStatUpdate) SetTermKey(s string) *TermStatUpdate {
	tsu.mutation.SetTermKey(s)
	return tsu
}

// SetNillableTermKey sets the "term_key" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableTermKey(s *string) *TermStatUpdate {
	if s != nil {
		tsu.SetTermKey(*s)
	}
	return tsu
}

// SetExposed sets the "exposed" field.
func (tsu *TermStatUpdate) SetExposed(b bool) *TermStatUpdate {
	tsu.mutation.SetExposed(b)
	return tsu
}

// SetNillableExposed sets the "exposed" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableExposed(b *bool) *TermStatUpdate {
	if b != nil {
		tsu.SetExposed(*b)
	}
	return tsu
}

// SetMcCorrect sets the "mc_correct" field.
func (tsu *TermStatUpdate) SetMcCorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetMcCorrect()
	tsu.mutation.SetMcCorrect(i)
	return tsu
}

// SetNillableMcCorrect sets the "mc_correct" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableMcCorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetMcCorrect(*i)
	}
	return tsu
}

// AddMcCorrect adds i to the "mc_correct" field.
func (tsu *TermStatUpdate) AddMcCorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddMcCorrect(i)
	return tsu
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (tsu *TermStatUpdate) SetMcIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetMcIncorrect()
	tsu.mutation.SetMcIncorrect(i)
	return tsu
}

// SetNillableMcIncorrect sets the "mc_incorrect" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableMcIncorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetMcIncorrect(*i)
	}
	return tsu
}

// AddMcIncorrect adds i to the "mc_incorrect" field.
func (tsu *TermStatUpdate) AddMcIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddMcIncorrect(i)
	return tsu
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (tsu *TermStatUpdate) SetListeningEasyCorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetListeningEasyCorrect()
	tsu.mutation.SetListeningEasyCorrect(i)
	return tsu
}

// SetNillableListeningEasyCorrect sets the "listening_easy_correct" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableListeningEasyCorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetListeningEasyCorrect(*i)
	}
	return tsu
}

// AddListeningEasyCorrect adds i to the "listening_easy_correct" field.
func (tsu *TermStatUpdate) AddListeningEasyCorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddListeningEasyCorrect(i)
	return tsu
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (tsu *TermStatUpdate) SetListeningEasyIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetListeningEasyIncorrect()
	tsu.mutation.SetListeningEasyIncorrect(i)
	return tsu
}

// SetNillableListeningEasyIncorrect sets the "listening_easy_incorrect" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableListeningEasyIncorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetListeningEasyIncorrect(*i)
	}
	return tsu
}

// AddListeningEasyIncorrect adds i to the "listening_easy_incorrect" field.
func (tsu *TermStatUpdate) AddListeningEasyIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddListeningEasyIncorrect(i)
	return tsu
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (tsu *TermStatUpdate) SetListeningHardCorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetListeningHardCorrect()
	tsu.mutation.SetListeningHardCorrect(i)
	return tsu
}

// SetNillableListeningHardCorrect sets the "listening_hard_correct" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableListeningHardCorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetListeningHardCorrect(*i)
	}
	return tsu
}

// AddListeningHardCorrect adds i to the "listening_hard_correct" field.
func (tsu *TermStatUpdate) AddListeningHardCorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddListeningHardCorrect(i)
	return tsu
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (tsu *TermStatUpdate) SetListeningHardIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetListeningHardIncorrect()
	tsu.mutation.SetListeningHardIncorrect(i)
	return tsu
}

// SetNillableListeningHardIncorrect sets the "listening_hard_incorrect" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableListeningHardIncorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetListeningHardIncorrect(*i)
	}
	return tsu
}

// AddListeningHardIncorrect adds i to the "listening_hard_incorrect" field.
func (tsu *TermStatUpdate) AddListeningHardIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddListeningHardIncorrect(i)
	return tsu
}

// SetTypingCorrect sets the "typing_correct" field.
func (tsu *TermStatUpdate) SetTypingCorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetTypingCorrect()
	tsu.mutation.SetTypingCorrect(i)
	return tsu
}

// SetNillableTypingCorrect sets the "typing_correct" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableTypingCorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetTypingCorrect(*i)
	}
	return tsu
}

// AddTypingCorrect adds i to the "typing_correct" field.
func (tsu *TermStatUpdate) AddTypingCorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddTypingCorrect(i)
	return tsu
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (tsu *TermStatUpdate) SetTypingIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.ResetTypingIncorrect()
	tsu.mutation.SetTypingIncorrect(i)
	return tsu
}

// SetNillableTypingIncorrect sets the "typing_incorrect" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableTypingIncorrect(i *int32) *TermStatUpdate {
	if i != nil {
		tsu.SetTypingIncorrect(*i)
	}
	return tsu
}

// AddTypingIncorrect adds i to the "typing_incorrect" field.
func (tsu *TermStatUpdate) AddTypingIncorrect(i int32) *TermStatUpdate {
	tsu.mutation.AddTypingIncorrect(i)
	return tsu
}

// SetLastSeen sets the "last_seen" field.
func (tsu *TermStatUpdate) SetLastSeen(t time.Time) *TermStatUpdate {
	tsu.mutation.SetLastSeen(t)
	return tsu
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableLastSeen(t *time.Time) *TermStatUpdate {
	if t != nil {
		tsu.SetLastSeen(*t)
	}
	return tsu
}

// ClearLastSeen clears the value of the "last_seen" field.
func (tsu *TermStatUpdate) ClearLastSeen() *TermStatUpdate {
	tsu.mutation.ClearLastSeen()
	return tsu
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (tsu *TermStatUpdate) SetLastCorrectAnswer(t time.Time) *TermStatUpdate {
	tsu.mutation.SetLastCorrectAnswer(t)
	return tsu
}

// SetNillableLastCorrectAnswer sets the "last_correct_answer" field if the given value is not nil.
func (tsu *TermStatUpdate) SetNillableLastCorrectAnswer(t *time.Time) *TermStatUpdate {
	if t != nil {
		tsu.SetLastCorrectAnswer(*t)
	}
	return tsu
}

// ClearLastCorrectAnswer clears the value of the "last_correct_answer" field.
func (tsu *TermStatUpdate) ClearLastCorrectAnswer() *TermStatUpdate {
	tsu.mutation.ClearLastCorrectAnswer()
	return tsu
}

// SetUpdatedAt sets the "updated_at" field.
func (tsu *TermStatUpdate) SetUpdatedAt(t time.Time) *TermStatUpdate {
	tsu.mutation.SetUpdatedAt(t)
	return tsu
}

// Mutation returns the TermStatMutation object of the builder.
func (tsu *TermStatUpdate) Mutation() *TermStatMutation {
	return tsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tsu *TermStatUpdate) Save(ctx context.Context) (int, error) {
	tsu.defaults()
	return withHooks(ctx, tsu.sqlSave, tsu.mutation, tsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tsu *TermStatUpdate) SaveX(ctx context.Context) int {
	affected, err := tsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tsu *TermStatUpdate) Exec(ctx context.Context) error {
	_, err := tsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsu *TermStatUpdate) ExecX(ctx context.Context) {
	if err := tsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsu *TermStatUpdate) defaults() {
	if _, ok := tsu.mutation.UpdatedAt(); !ok {
		v := termstat.UpdateDefaultUpdatedAt()
		tsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsu *TermStatUpdate) check() error {
	if v, ok := tsu.mutation.TermKey(); ok {
		if err := termstat.TermKeyValidator(v); err != nil {
			return &ValidationError{Name: "term_key", err: fmt.Errorf(`ent: validator failed for field "TermStat.term_key": %w`, err)}
		}
	}
	return nil
}

func (tsu *TermStatUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(termstat.Table, termstat.Columns, sqlgraph.NewFieldSpec(termstat.FieldID, field.TypeInt))
	if ps := tsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tsu.mutation.TermKey(); ok {
		_spec.SetField(termstat.FieldTermKey, field.TypeString, value)
	}
	if value, ok := tsu.mutation.Exposed(); ok {
		_spec.SetField(termstat.FieldExposed, field.TypeBool, value)
	}
	if value, ok := tsu.mutation.McCorrect(); ok {
		_spec.SetField(termstat.FieldMcCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedMcCorrect(); ok {
		_spec.AddField(termstat.FieldMcCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.McIncorrect(); ok {
		_spec.SetField(termstat.FieldMcIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedMcIncorrect(); ok {
		_spec.AddField(termstat.FieldMcIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.ListeningEasyCorrect(); ok {
		_spec.SetField(termstat.FieldListeningEasyCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedListeningEasyCorrect(); ok {
		_spec.AddField(termstat.FieldListeningEasyCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.ListeningEasyIncorrect(); ok {
		_spec.SetField(termstat.FieldListeningEasyIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedListeningEasyIncorrect(); ok {
		_spec.AddField(termstat.FieldListeningEasyIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.ListeningHardCorrect(); ok {
		_spec.SetField(termstat.FieldListeningHardCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedListeningHardCorrect(); ok {
		_spec.AddField(termstat.FieldListeningHardCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.ListeningHardIncorrect(); ok {
		_spec.SetField(termstat.FieldListeningHardIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedListeningHardIncorrect(); ok {
		_spec.AddField(termstat.FieldListeningHardIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.TypingCorrect(); ok {
		_spec.SetField(termstat.FieldTypingCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedTypingCorrect(); ok {
		_spec.AddField(termstat.FieldTypingCorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.TypingIncorrect(); ok {
		_spec.SetField(termstat.FieldTypingIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.AddedTypingIncorrect(); ok {
		_spec.AddField(termstat.FieldTypingIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsu.mutation.LastSeen(); ok {
		_spec.SetField(termstat.FieldLastSeen, field.TypeTime, value)
	}
	if tsu.mutation.LastSeenCleared() {
		_spec.ClearField(termstat.FieldLastSeen, field.TypeTime)
	}
	if value, ok := tsu.mutation.LastCorrectAnswer(); ok {
		_spec.SetField(termstat.FieldLastCorrectAnswer, field.TypeTime, value)
	}
	if tsu.mutation.LastCorrectAnswerCleared() {
		_spec.ClearField(termstat.FieldLastCorrectAnswer, field.TypeTime)
	}
	if value, ok := tsu.mutation.UpdatedAt(); ok {
		_spec.SetField(termstat.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{termstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tsu.mutation.done = true
	return n, nil
}

// TermStatUpdateOne is the builder for updating a single TermStat entity.
type TermStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TermStatMutation
}

// SetTermKey sets the "term_key" field.
func (tsuo *TermStatUpdateOne) SetTermKey(s string) *TermStatUpdateOne {
	tsuo.mutation.SetTermKey(s)
	return tsuo
}

// SetNillableTermKey sets the "term_key" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableTermKey(s *string) *TermStatUpdateOne {
	if s != nil {
		tsuo.SetTermKey(*s)
	}
	return tsuo
}

// SetExposed sets the "exposed" field.
func (tsuo *TermStatUpdateOne) SetExposed(b bool) *TermStatUpdateOne {
	tsuo.mutation.SetExposed(b)
	return tsuo
}

// SetNillableExposed sets the "exposed" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableExposed(b *bool) *TermStatUpdateOne {
	if b != nil {
		tsuo.SetExposed(*b)
	}
	return tsuo
}

// SetMcCorrect sets the "mc_correct" field.
func (tsuo *TermStatUpdateOne) SetMcCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetMcCorrect()
	tsuo.mutation.SetMcCorrect(i)
	return tsuo
}

// SetNillableMcCorrect sets the "mc_correct" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableMcCorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetMcCorrect(*i)
	}
	return tsuo
}

// AddMcCorrect adds i to the "mc_correct" field.
func (tsuo *TermStatUpdateOne) AddMcCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddMcCorrect(i)
	return tsuo
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (tsuo *TermStatUpdateOne) SetMcIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetMcIncorrect()
	tsuo.mutation.SetMcIncorrect(i)
	return tsuo
}

// SetNillableMcIncorrect sets the "mc_incorrect" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableMcIncorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetMcIncorrect(*i)
	}
	return tsuo
}

// AddMcIncorrect adds i to the "mc_incorrect" field.
func (tsuo *TermStatUpdateOne) AddMcIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddMcIncorrect(i)
	return tsuo
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (tsuo *TermStatUpdateOne) SetListeningEasyCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetListeningEasyCorrect()
	tsuo.mutation.SetListeningEasyCorrect(i)
	return tsuo
}

// SetNillableListeningEasyCorrect sets the "listening_easy_correct" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableListeningEasyCorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetListeningEasyCorrect(*i)
	}
	return tsuo
}

// AddListeningEasyCorrect adds i to the "listening_easy_correct" field.
func (tsuo *TermStatUpdateOne) AddListeningEasyCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddListeningEasyCorrect(i)
	return tsuo
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (tsuo *TermStatUpdateOne) SetListeningEasyIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetListeningEasyIncorrect()
	tsuo.mutation.SetListeningEasyIncorrect(i)
	return tsuo
}

// SetNillableListeningEasyIncorrect sets the "listening_easy_incorrect" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableListeningEasyIncorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetListeningEasyIncorrect(*i)
	}
	return tsuo
}

// AddListeningEasyIncorrect adds i to the "listening_easy_incorrect" field.
func (tsuo *TermStatUpdateOne) AddListeningEasyIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddListeningEasyIncorrect(i)
	return tsuo
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (tsuo *TermStatUpdateOne) SetListeningHardCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetListeningHardCorrect()
	tsuo.mutation.SetListeningHardCorrect(i)
	return tsuo
}

// SetNillableListeningHardCorrect sets the "listening_hard_correct" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableListeningHardCorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetListeningHardCorrect(*i)
	}
	return tsuo
}

// AddListeningHardCorrect adds i to the "listening_hard_correct" field.
func (tsuo *TermStatUpdateOne) AddListeningHardCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddListeningHardCorrect(i)
	return tsuo
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (tsuo *TermStatUpdateOne) SetListeningHardIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetListeningHardIncorrect()
	tsuo.mutation.SetListeningHardIncorrect(i)
	return tsuo
}

// SetNillableListeningHardIncorrect sets the "listening_hard_incorrect" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableListeningHardIncorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetListeningHardIncorrect(*i)
	}
	return tsuo
}

// AddListeningHardIncorrect adds i to the "listening_hard_incorrect" field.
func (tsuo *TermStatUpdateOne) AddListeningHardIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddListeningHardIncorrect(i)
	return tsuo
}

// SetTypingCorrect sets the "typing_correct" field.
func (tsuo *TermStatUpdateOne) SetTypingCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetTypingCorrect()
	tsuo.mutation.SetTypingCorrect(i)
	return tsuo
}

// SetNillableTypingCorrect sets the "typing_correct" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableTypingCorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetTypingCorrect(*i)
	}
	return tsuo
}

// AddTypingCorrect adds i to the "typing_correct" field.
func (tsuo *TermStatUpdateOne) AddTypingCorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddTypingCorrect(i)
	return tsuo
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (tsuo *TermStatUpdateOne) SetTypingIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.ResetTypingIncorrect()
	tsuo.mutation.SetTypingIncorrect(i)
	return tsuo
}

// SetNillableTypingIncorrect sets the "typing_incorrect" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableTypingIncorrect(i *int32) *TermStatUpdateOne {
	if i != nil {
		tsuo.SetTypingIncorrect(*i)
	}
	return tsuo
}

// AddTypingIncorrect adds i to the "typing_incorrect" field.
func (tsuo *TermStatUpdateOne) AddTypingIncorrect(i int32) *TermStatUpdateOne {
	tsuo.mutation.AddTypingIncorrect(i)
	return tsuo
}

// SetLastSeen sets the "last_seen" field.
func (tsuo *TermStatUpdateOne) SetLastSeen(t time.Time) *TermStatUpdateOne {
	tsuo.mutation.SetLastSeen(t)
	return tsuo
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableLastSeen(t *time.Time) *TermStatUpdateOne {
	if t != nil {
		tsuo.SetLastSeen(*t)
	}
	return tsuo
}

// ClearLastSeen clears the value of the "last_seen" field.
func (tsuo *TermStatUpdateOne) ClearLastSeen() *TermStatUpdateOne {
	tsuo.mutation.ClearLastSeen()
	return tsuo
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (tsuo *TermStatUpdateOne) SetLastCorrectAnswer(t time.Time) *TermStatUpdateOne {
	tsuo.mutation.SetLastCorrectAnswer(t)
	return tsuo
}

// SetNillableLastCorrectAnswer sets the "last_correct_answer" field if the given value is not nil.
func (tsuo *TermStatUpdateOne) SetNillableLastCorrectAnswer(t *time.Time) *TermStatUpdateOne {
	if t != nil {
		tsuo.SetLastCorrectAnswer(*t)
	}
	return tsuo
}

// ClearLastCorrectAnswer clears the value of the "last_correct_answer" field.
func (tsuo *TermStatUpdateOne) ClearLastCorrectAnswer() *TermStatUpdateOne {
	tsuo.mutation.ClearLastCorrectAnswer()
	return tsuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tsuo *TermStatUpdateOne) SetUpdatedAt(t time.Time) *TermStatUpdateOne {
	tsuo.mutation.SetUpdatedAt(t)
	return tsuo
}

// Mutation returns the TermStatMutation object of the builder.
func (tsuo *TermStatUpdateOne) Mutation() *TermStatMutation {
	return tsuo.mutation
}

// Where appends a list predicates to the TermStatUpdate builder.
func (tsuo *TermStatUpdateOne) Where(ps ...predicate.TermStat) *TermStatUpdateOne {
	tsuo.mutation.Where(ps...)
	return tsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tsuo *TermStatUpdateOne) Select(field string, fields ...string) *TermStatUpdateOne {
	tsuo.fields = append([]string{field}, fields...)
	return tsuo
}

// Save executes the query and returns the updated TermStat entity.
func (tsuo *TermStatUpdateOne) Save(ctx context.Context) (*TermStat, error) {
	tsuo.defaults()
	return withHooks(ctx, tsuo.sqlSave, tsuo.mutation, tsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tsuo *TermStatUpdateOne) SaveX(ctx context.Context) *TermStat {
	node, err := tsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tsuo *TermStatUpdateOne) Exec(ctx context.Context) error {
	_, err := tsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsuo *TermStatUpdateOne) ExecX(ctx context.Context) {
	if err := tsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsuo *TermStatUpdateOne) defaults() {
	if _, ok := tsuo.mutation.UpdatedAt(); !ok {
		v := termstat.UpdateDefaultUpdatedAt()
		tsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsuo *TermStatUpdateOne) check() error {
	if v, ok := tsuo.mutation.TermKey(); ok {
		if err := termstat.TermKeyValidator(v); err != nil {
			return &ValidationError{Name: "term_key", err: fmt.Errorf(`ent: validator failed for field "TermStat.term_key": %w`, err)}
		}
	}
	return nil
}

func (tsuo *TermStatUpdateOne) sqlSave(ctx context.Context) (_node *TermStat, err error) {
	if err := tsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(termstat.Table, termstat.Columns, sqlgraph.NewFieldSpec(termstat.FieldID, field.TypeInt))
	id, ok := tsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TermStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, termstat.FieldID)
		for _, f := range fields {
			if !termstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != termstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tsuo.mutation.TermKey(); ok {
		_spec.SetField(termstat.FieldTermKey, field.TypeString, value)
	}
	if value, ok := tsuo.mutation.Exposed(); ok {
		_spec.SetField(termstat.FieldExposed, field.TypeBool, value)
	}
	if value, ok := tsuo.mutation.McCorrect(); ok {
		_spec.SetField(termstat.FieldMcCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedMcCorrect(); ok {
		_spec.AddField(termstat.FieldMcCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.McIncorrect(); ok {
		_spec.SetField(termstat.FieldMcIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedMcIncorrect(); ok {
		_spec.AddField(termstat.FieldMcIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.ListeningEasyCorrect(); ok {
		_spec.SetField(termstat.FieldListeningEasyCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedListeningEasyCorrect(); ok {
		_spec.AddField(termstat.FieldListeningEasyCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.ListeningEasyIncorrect(); ok {
		_spec.SetField(termstat.FieldListeningEasyIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedListeningEasyIncorrect(); ok {
		_spec.AddField(termstat.FieldListeningEasyIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.ListeningHardCorrect(); ok {
		_spec.SetField(termstat.FieldListeningHardCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedListeningHardCorrect(); ok {
		_spec.AddField(termstat.FieldListeningHardCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.ListeningHardIncorrect(); ok {
		_spec.SetField(termstat.FieldListeningHardIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedListeningHardIncorrect(); ok {
		_spec.AddField(termstat.FieldListeningHardIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.TypingCorrect(); ok {
		_spec.SetField(termstat.FieldTypingCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedTypingCorrect(); ok {
		_spec.AddField(termstat.FieldTypingCorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.TypingIncorrect(); ok {
		_spec.SetField(termstat.FieldTypingIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.AddedTypingIncorrect(); ok {
		_spec.AddField(termstat.FieldTypingIncorrect, field.TypeInt32, value)
	}
	if value, ok := tsuo.mutation.LastSeen(); ok {
		_spec.SetField(termstat.FieldLastSeen, field.TypeTime, value)
	}
	if tsuo.mutation.LastSeenCleared() {
		_spec.ClearField(termstat.FieldLastSeen, field.TypeTime)
	}
	if value, ok := tsuo.mutation.LastCorrectAnswer(); ok {
		_spec.SetField(termstat.FieldLastCorrectAnswer, field.TypeTime, value)
	}
	if tsuo.mutation.LastCorrectAnswerCleared() {
		_spec.ClearField(termstat.FieldLastCorrectAnswer, field.TypeTime)
	}
	if value, ok := tsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(termstat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TermStat{config: tsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{termstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tsuo.mutation.done = true
	return _node, nil
}
