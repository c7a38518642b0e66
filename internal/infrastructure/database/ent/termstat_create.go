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
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/termstat"
)

// TermStatCreate is the builder for creating a TermStat entity.
type TermStatCreate struct {
	config
	mutation *TermStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTermKey sets the "term_key" field.
func (tsc *TermStatCreate) SetTermKey(s string) *TermStatCreate {
	tsc.mutation.SetTermKey(s)
	return tsc
}

// SetExposed sets the "exposed" field.
func (tsc *TermStatCreate) SetExposed(b bool) *TermStatCreate {
	tsc.mutation.SetExposed(b)
	return tsc
}

// SetNillableExposed sets the "exposed" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableExposed(b *bool) *TermStatCreate {
	if b != nil {
		tsc.SetExposed(*b)
	}
	return tsc
}

// SetMcCorrect sets the "mc_correct" field.
func (tsc *TermStatCreate) SetMcCorrect(i int32) *TermStatCreate {
	tsc.mutation.SetMcCorrect(i)
	return tsc
}

// SetNillableMcCorrect sets the "mc_correct" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableMcCorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetMcCorrect(*i)
	}
	return tsc
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (tsc *TermStatCreate) SetMcIncorrect(i int32) *TermStatCreate {
	tsc.mutation.SetMcIncorrect(i)
	return tsc
}

// SetNillableMcIncorrect sets the "mc_incorrect" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableMcIncorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetMcIncorrect(*i)
	}
	return tsc
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (tsc *TermStatCreate) SetListeningEasyCorrect(i int32) *TermStatCreate {
	tsc.mutation.SetListeningEasyCorrect(i)
	return tsc
}

// SetNillableListeningEasyCorrect sets the "listening_easy_correct" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableListeningEasyCorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetListeningEasyCorrect(*i)
	}
	return tsc
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (tsc *TermStatCreate) SetListeningEasyIncorrect(i int32) *TermStatCreate {
	tsc.mutation.SetListeningEasyIncorrect(i)
	return tsc
}

// SetNillableListeningEasyIncorrect sets the "listening_easy_incorrect" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableListeningEasyIncorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetListeningEasyIncorrect(*i)
	}
	return tsc
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (tsc *TermStatCreate) SetListeningHardCorrect(i int32) *TermStatCreate {
	tsc.mutation.SetListeningHardCorrect(i)
	return tsc
}

// SetNillableListeningHardCorrect sets the "listening_hard_correct" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableListeningHardCorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetListeningHardCorrect(*i)
	}
	return tsc
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (tsc *TermStatCreate) SetListeningHardIncorrect(i int32) *TermStatCreate {
	tsc.mutation.SetListeningHardIncorrect(i)
	return tsc
}

// SetNillableListeningHardIncorrect sets the "listening_hard_incorrect" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableListeningHardIncorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetListeningHardIncorrect(*i)
	}
	return tsc
}

// SetTypingCorrect sets the "typing_correct" field.
func (tsc *TermStatCreate) SetTypingCorrect(i int32) *TermStatCreate {
	tsc.mutation.SetTypingCorrect(i)
	return tsc
}

// SetNillableTypingCorrect sets the "typing_correct" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableTypingCorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetTypingCorrect(*i)
	}
	return tsc
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (tsc *TermStatCreate) SetTypingIncorrect(i int32) *TermStatCreate {
	tsc.mutation.SetTypingIncorrect(i)
	return tsc
}

// SetNillableTypingIncorrect sets the "typing_incorrect" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableTypingIncorrect(i *int32) *TermStatCreate {
	if i != nil {
		tsc.SetTypingIncorrect(*i)
	}
	return tsc
}

// SetLastSeen sets the "last_seen" field.
func (tsc *TermStatCreate) SetLastSeen(t time.Time) *TermStatCreate {
	tsc.mutation.SetLastSeen(t)
	return tsc
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableLastSeen(t *time.Time) *TermStatCreate {
	if t != nil {
		tsc.SetLastSeen(*t)
	}
	return tsc
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (tsc *TermStatCreate) SetLastCorrectAnswer(t time.Time) *TermStatCreate {
	tsc.mutation.SetLastCorrectAnswer(t)
	return tsc
}

// SetNillableLastCorrectAnswer sets the "last_correct_answer" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableLastCorrectAnswer(t *time.Time) *TermStatCreate {
	if t != nil {
		tsc.SetLastCorrectAnswer(*t)
	}
	return tsc
}

// SetCreatedAt sets the "created_at" field.
func (tsc *TermStatCreate) SetCreatedAt(t time.Time) *TermStatCreate {
	tsc.mutation.SetCreatedAt(t)
	return tsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableCreatedAt(t *time.Time) *TermStatCreate {
	if t != nil {
		tsc.SetCreatedAt(*t)
	}
	return tsc
}

// SetUpdatedAt sets the "updated_at" field.
func (tsc *TermStatCreate) SetUpdatedAt(t time.Time) *TermStatCreate {
	tsc.mutation.SetUpdatedAt(t)
	return tsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tsc *TermStatCreate) SetNillableUpdatedAt(t *time.Time) *TermStatCreate {
	if t != nil {
		tsc.SetUpdatedAt(*t)
	}
	return tsc
}

// Mutation returns the TermStatMutation object of the builder.
func (tsc *TermStatCreate) Mutation() *TermStatMutation {
	return tsc.mutation
}

// Save creates the TermStat in the database.
func (tsc *TermStatCreate) Save(ctx context.Context) (*TermStat, error) {
	tsc.defaults()
	return withHooks(ctx, tsc.sqlSave, tsc.mutation, tsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tsc *TermStatCreate) SaveX(ctx context.Context) *TermStat {
	v, err := tsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tsc *TermStatCreate) Exec(ctx context.Context) error {
	_, err := tsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tsc *TermStatCreate) ExecX(ctx context.Context) {
	if err := tsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tsc *TermStatCreate) defaults() {
	if _, ok := tsc.mutation.Exposed(); !ok {
		v := termstat.DefaultExposed
		tsc.mutation.SetExposed(v)
	}
	if _, ok := tsc.mutation.McCorrect(); !ok {
		v := termstat.DefaultMcCorrect
		tsc.mutation.SetMcCorrect(v)
	}
	if _, ok := tsc.mutation.McIncorrect(); !ok {
		v := termstat.DefaultMcIncorrect
		tsc.mutation.SetMcIncorrect(v)
	}
	if _, ok := tsc.mutation.ListeningEasyCorrect(); !ok {
		v := termstat.DefaultListeningEasyCorrect
		tsc.mutation.SetListeningEasyCorrect(v)
	}
	if _, ok := tsc.mutation.ListeningEasyIncorrect(); !ok {
		v := termstat.DefaultListeningEasyIncorrect
		tsc.mutation.SetListeningEasyIncorrect(v)
	}
	if _, ok := tsc.mutation.ListeningHardCorrect(); !ok {
		v := termstat.DefaultListeningHardCorrect
		tsc.mutation.SetListeningHardCorrect(v)
	}
	if _, ok := tsc.mutation.ListeningHardIncorrect(); !ok {
		v := termstat.DefaultListeningHardIncorrect
		tsc.mutation.SetListeningHardIncorrect(v)
	}
	if _, ok := tsc.mutation.TypingCorrect(); !ok {
		v := termstat.DefaultTypingCorrect
		tsc.mutation.SetTypingCorrect(v)
	}
	if _, ok := tsc.mutation.TypingIncorrect(); !ok {
		v := termstat.DefaultTypingIncorrect
		tsc.mutation.SetTypingIncorrect(v)
	}
	if _, ok := tsc.mutation.CreatedAt(); !ok {
		v := termstat.DefaultCreatedAt()
		tsc.mutation.SetCreatedAt(v)
	}
	if _, ok := tsc.mutation.UpdatedAt(); !ok {
		v := termstat.DefaultUpdatedAt()
		tsc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tsc *TermStatCreate) check() error {
	if _, ok := tsc.mutation.TermKey(); !ok {
		return &ValidationError{Name: "term_key", err: errors.New(`ent: missing required field "TermStat.term_key"`)}
	}
	if v, ok := tsc.mutation.TermKey(); ok {
		if err := termstat.TermKeyValidator(v); err != nil {
			return &ValidationError{Name: "term_key", err: fmt.Errorf(`ent: validator failed for field "TermStat.term_key": %w`, err)}
		}
	}
	if _, ok := tsc.mutation.Exposed(); !ok {
		return &ValidationError{Name: "exposed", err: errors.New(`ent: missing required field "TermStat.exposed"`)}
	}
	if _, ok := tsc.mutation.McCorrect(); !ok {
		return &ValidationError{Name: "mc_correct", err: errors.New(`ent: missing required field "TermStat.mc_correct"`)}
	}
	if _, ok := tsc.mutation.McIncorrect(); !ok {
		return &ValidationError{Name: "mc_incorrect", err: errors.New(`ent: missing required field "TermStat.mc_incorrect"`)}
	}
	if _, ok := tsc.mutation.ListeningEasyCorrect(); !ok {
		return &ValidationError{Name: "listening_easy_correct", err: errors.New(`ent: missing required field "TermStat.listening_easy_correct"`)}
	}
	if _, ok := tsc.mutation.ListeningEasyIncorrect(); !ok {
		return &ValidationError{Name: "listening_easy_incorrect", err: errors.New(`ent: missing required field "TermStat.listening_easy_incorrect"`)}
	}
	if _, ok := tsc.mutation.ListeningHardCorrect(); !ok {
		return &ValidationError{Name: "listening_hard_correct", err: errors.New(`ent: missing required field "TermStat.listening_hard_correct"`)}
	}
	if _, ok := tsc.mutation.ListeningHardIncorrect(); !ok {
		return &ValidationError{Name: "listening_hard_incorrect", err: errors.New(`ent: missing required field "TermStat.listening_hard_incorrect"`)}
	}
	if _, ok := tsc.mutation.TypingCorrect(); !ok {
		return &ValidationError{Name: "typing_correct", err: errors.New(`ent: missing required field "TermStat.typing_correct"`)}
	}
	if _, ok := tsc.mutation.TypingIncorrect(); !ok {
		return &ValidationError{Name: "typing_incorrect", err: errors.New(`ent: missing required field "TermStat.typing_incorrect"`)}
	}
	if _, ok := tsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TermStat.created_at"`)}
	}
	if _, ok := tsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TermStat.updated_at"`)}
	}
	return nil
}

func (tsc *TermStatCreate) sqlSave(ctx context.Context) (*TermStat, error) {
	if err := tsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tsc.mutation.id = &_node.ID
	tsc.mutation.done = true
	return _node, nil
}

func (tsc *TermStatCreate) createSpec() (*TermStat, *sqlgraph.CreateSpec) {
	var (
		_node = &TermStat{config: tsc.config}
		_spec = sqlgraph.NewCreateSpec(termstat.Table, sqlgraph.NewFieldSpec(termstat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = tsc.conflict
	if value, ok := tsc.mutation.TermKey(); ok {
		_spec.SetField(termstat.FieldTermKey, field.TypeString, value)
		_node.TermKey = value
	}
	if value, ok := tsc.mutation.Exposed(); ok {
		_spec.SetField(termstat.FieldExposed, field.TypeBool, value)
		_node.Exposed = value
	}
	if value, ok := tsc.mutation.McCorrect(); ok {
		_spec.SetField(termstat.FieldMcCorrect, field.TypeInt32, value)
		_node.McCorrect = value
	}
	if value, ok := tsc.mutation.McIncorrect(); ok {
		_spec.SetField(termstat.FieldMcIncorrect, field.TypeInt32, value)
		_node.McIncorrect = value
	}
	if value, ok := tsc.mutation.ListeningEasyCorrect(); ok {
		_spec.SetField(termstat.FieldListeningEasyCorrect, field.TypeInt32, value)
		_node.ListeningEasyCorrect = value
	}
	if value, ok := tsc.mutation.ListeningEasyIncorrect(); ok {
		_spec.SetField(termstat.FieldListeningEasyIncorrect, field.TypeInt32, value)
		_node.ListeningEasyIncorrect = value
	}
	if value, ok := tsc.mutation.ListeningHardCorrect(); ok {
		_spec.SetField(termstat.FieldListeningHardCorrect, field.TypeInt32, value)
		_node.ListeningHardCorrect = value
	}
	if value, ok := tsc.mutation.ListeningHardIncorrect(); ok {
		_spec.SetField(termstat.FieldListeningHardIncorrect, field.TypeInt32, value)
		_node.ListeningHardIncorrect = value
	}
	if value, ok := tsc.mutation.TypingCorrect(); ok {
		_spec.SetField(termstat.FieldTypingCorrect, field.TypeInt32, value)
		_node.TypingCorrect = value
	}
	if value, ok := tsc.mutation.TypingIncorrect(); ok {
		_spec.SetField(termstat.FieldTypingIncorrect, field.TypeInt32, value)
		_node.TypingIncorrect = value
	}
	if value, ok := tsc.mutation.LastSeen(); ok {
		_spec.SetField(termstat.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = &value
	}
	if value, ok := tsc.mutation.LastCorrectAnswer(); ok {
		_spec.SetField(termstat.FieldLastCorrectAnswer, field.TypeTime, value)
		_node.LastCorrectAnswer = &value
	}
	if value, ok := tsc.mutation.CreatedAt(); ok {
		_spec.SetField(termstat.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tsc.mutation.UpdatedAt(); ok {
		_spec.SetField(termstat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TermStat.Create().
//		SetTermKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TermStatUpsert) {
//			SetTermKey(v+v).
//		}).
//		Exec(ctx)
func (tsc *TermStatCreate) OnConflict(opts ...sql.ConflictOption) *TermStatUpsertOne {
	tsc.conflict = opts
	return &TermStatUpsertOne{
		create: tsc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TermStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tsc *TermStatCreate) OnConflictColumns(columns ...string) *TermStatUpsertOne {
	tsc.conflict = append(tsc.conflict, sql.ConflictColumns(columns...))
	return &TermStatUpsertOne{
		create: tsc,
	}
}

type (
	// TermStatUpsertOne is the builder for "upsert"-ing
	//  one TermStat node.
	TermStatUpsertOne struct {
		create *TermStatCreate
	}

	// TermStatUpsert is the "OnConflict" setter.
	TermStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetTermKey sets the "term_key" field.
func (u *TermStatUpsert) SetTermKey(v string) *TermStatUpsert {
	u.Set(termstat.FieldTermKey, v)
	return u
}

// UpdateTermKey sets the "term_key" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateTermKey() *TermStatUpsert {
	u.SetExcluded(termstat.FieldTermKey)
	return u
}

// SetExposed sets the "exposed" field.
func (u *TermStatUpsert) SetExposed(v bool) *TermStatUpsert {
	u.Set(termstat.FieldExposed, v)
	return u
}

// UpdateExposed sets the "exposed" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateExposed() *TermStatUpsert {
	u.SetExcluded(termstat.FieldExposed)
	return u
}

// SetMcCorrect sets the "mc_correct" field.
func (u *TermStatUpsert) SetMcCorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldMcCorrect, v)
	return u
}

// UpdateMcCorrect sets the "mc_correct" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateMcCorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldMcCorrect)
	return u
}

// AddMcCorrect adds v to the "mc_correct" field.
func (u *TermStatUpsert) AddMcCorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldMcCorrect, v)
	return u
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (u *TermStatUpsert) SetMcIncorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldMcIncorrect, v)
	return u
}

// UpdateMcIncorrect sets the "mc_incorrect" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateMcIncorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldMcIncorrect)
	return u
}

// AddMcIncorrect adds v to the "mc_incorrect" field.
func (u *TermStatUpsert) AddMcIncorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldMcIncorrect, v)
	return u
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (u *TermStatUpsert) SetListeningEasyCorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldListeningEasyCorrect, v)
	return u
}

// UpdateListeningEasyCorrect sets the "listening_easy_correct" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateListeningEasyCorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldListeningEasyCorrect)
	return u
}

// AddListeningEasyCorrect adds v to the "listening_easy_correct" field.
func (u *TermStatUpsert) AddListeningEasyCorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldListeningEasyCorrect, v)
	return u
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (u *TermStatUpsert) SetListeningEasyIncorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldListeningEasyIncorrect, v)
	return u
}

// UpdateListeningEasyIncorrect sets the "listening_easy_incorrect" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateListeningEasyIncorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldListeningEasyIncorrect)
	return u
}

// AddListeningEasyIncorrect adds v to the "listening_easy_incorrect" field.
func (u *TermStatUpsert) AddListeningEasyIncorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldListeningEasyIncorrect, v)
	return u
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (u *TermStatUpsert) SetListeningHardCorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldListeningHardCorrect, v)
	return u
}

// UpdateListeningHardCorrect sets the "listening_hard_correct" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateListeningHardCorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldListeningHardCorrect)
	return u
}

// AddListeningHardCorrect adds v to the "listening_hard_correct" field.
func (u *TermStatUpsert) AddListeningHardCorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldListeningHardCorrect, v)
	return u
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (u *TermStatUpsert) SetListeningHardIncorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldListeningHardIncorrect, v)
	return u
}

// UpdateListeningHardIncorrect sets the "listening_hard_incorrect" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateListeningHardIncorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldListeningHardIncorrect)
	return u
}

// AddListeningHardIncorrect adds v to the "listening_hard_incorrect" field.
func (u *TermStatUpsert) AddListeningHardIncorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldListeningHardIncorrect, v)
	return u
}

// SetTypingCorrect sets the "typing_correct" field.
func (u *TermStatUpsert) SetTypingCorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldTypingCorrect, v)
	return u
}

// UpdateTypingCorrect sets the "typing_correct" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateTypingCorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldTypingCorrect)
	return u
}

// AddTypingCorrect adds v to the "typing_correct" field.
func (u *TermStatUpsert) AddTypingCorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldTypingCorrect, v)
	return u
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (u *TermStatUpsert) SetTypingIncorrect(v int32) *TermStatUpsert {
	u.Set(termstat.FieldTypingIncorrect, v)
	return u
}

// UpdateTypingIncorrect sets the "typing_incorrect" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateTypingIncorrect() *TermStatUpsert {
	u.SetExcluded(termstat.FieldTypingIncorrect)
	return u
}

// AddTypingIncorrect adds v to the "typing_incorrect" field.
func (u *TermStatUpsert) AddTypingIncorrect(v int32) *TermStatUpsert {
	u.Add(termstat.FieldTypingIncorrect, v)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *TermStatUpsert) SetLastSeen(v time.Time) *TermStatUpsert {
	u.Set(termstat.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateLastSeen() *TermStatUpsert {
	u.SetExcluded(termstat.FieldLastSeen)
	return u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (u *TermStatUpsert) ClearLastSeen() *TermStatUpsert {
	u.SetNull(termstat.FieldLastSeen)
	return u
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (u *TermStatUpsert) SetLastCorrectAnswer(v time.Time) *TermStatUpsert {
	u.Set(termstat.FieldLastCorrectAnswer, v)
	return u
}

// UpdateLastCorrectAnswer sets the "last_correct_answer" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateLastCorrectAnswer() *TermStatUpsert {
	u.SetExcluded(termstat.FieldLastCorrectAnswer)
	return u
}

// ClearLastCorrectAnswer clears the value of the "last_correct_answer" field.
func (u *TermStatUpsert) ClearLastCorrectAnswer() *TermStatUpsert {
	u.SetNull(termstat.FieldLastCorrectAnswer)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TermStatUpsert) SetUpdatedAt(v time.Time) *TermStatUpsert {
	u.Set(termstat.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TermStatUpsert) UpdateUpdatedAt() *TermStatUpsert {
	u.SetExcluded(termstat.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TermStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TermStatUpsertOne) UpdateNewValues() *TermStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(termstat.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TermStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TermStatUpsertOne) Ignore() *TermStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TermStatUpsertOne) DoNothing() *TermStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TermStatCreate.OnConflict
// documentation for more info.
func (u *TermStatUpsertOne) Update(set func(*TermStatUpsert)) *TermStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TermStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetTermKey sets the "term_key" field.
func (u *TermStatUpsertOne) SetTermKey(v string) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetTermKey(v)
	})
}

// UpdateTermKey sets the "term_key" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateTermKey() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateTermKey()
	})
}

// SetExposed sets the "exposed" field.
func (u *TermStatUpsertOne) SetExposed(v bool) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetExposed(v)
	})
}

// UpdateExposed sets the "exposed" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateExposed() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateExposed()
	})
}

// SetMcCorrect sets the "mc_correct" field.
func (u *TermStatUpsertOne) SetMcCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetMcCorrect(v)
	})
}

// AddMcCorrect adds v to the "mc_correct" field.
func (u *TermStatUpsertOne) AddMcCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddMcCorrect(v)
	})
}

// UpdateMcCorrect sets the "mc_correct" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateMcCorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateMcCorrect()
	})
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (u *TermStatUpsertOne) SetMcIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetMcIncorrect(v)
	})
}

// AddMcIncorrect adds v to the "mc_incorrect" field.
func (u *TermStatUpsertOne) AddMcIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddMcIncorrect(v)
	})
}

// UpdateMcIncorrect sets the "mc_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateMcIncorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateMcIncorrect()
	})
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (u *TermStatUpsertOne) SetListeningEasyCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningEasyCorrect(v)
	})
}

// AddListeningEasyCorrect adds v to the "listening_easy_correct" field.
func (u *TermStatUpsertOne) AddListeningEasyCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningEasyCorrect(v)
	})
}

// UpdateListeningEasyCorrect sets the "listening_easy_correct" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateListeningEasyCorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningEasyCorrect()
	})
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (u *TermStatUpsertOne) SetListeningEasyIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningEasyIncorrect(v)
	})
}

// AddListeningEasyIncorrect adds v to the "listening_easy_incorrect" field.
func (u *TermStatUpsertOne) AddListeningEasyIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningEasyIncorrect(v)
	})
}

// UpdateListeningEasyIncorrect sets the "listening_easy_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateListeningEasyIncorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningEasyIncorrect()
	})
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (u *TermStatUpsertOne) SetListeningHardCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningHardCorrect(v)
	})
}

// AddListeningHardCorrect adds v to the "listening_hard_correct" field.
func (u *TermStatUpsertOne) AddListeningHardCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningHardCorrect(v)
	})
}

// UpdateListeningHardCorrect sets the "listening_hard_correct" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateListeningHardCorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningHardCorrect()
	})
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (u *TermStatUpsertOne) SetListeningHardIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningHardIncorrect(v)
	})
}

// AddListeningHardIncorrect adds v to the "listening_hard_incorrect" field.
func (u *TermStatUpsertOne) AddListeningHardIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningHardIncorrect(v)
	})
}

// UpdateListeningHardIncorrect sets the "listening_hard_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateListeningHardIncorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningHardIncorrect()
	})
}

// SetTypingCorrect sets the "typing_correct" field.
func (u *TermStatUpsertOne) SetTypingCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetTypingCorrect(v)
	})
}

// AddTypingCorrect adds v to the "typing_correct" field.
func (u *TermStatUpsertOne) AddTypingCorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddTypingCorrect(v)
	})
}

// UpdateTypingCorrect sets the "typing_correct" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateTypingCorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateTypingCorrect()
	})
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (u *TermStatUpsertOne) SetTypingIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetTypingIncorrect(v)
	})
}

// AddTypingIncorrect adds v to the "typing_incorrect" field.
func (u *TermStatUpsertOne) AddTypingIncorrect(v int32) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.AddTypingIncorrect(v)
	})
}

// UpdateTypingIncorrect sets the "typing_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateTypingIncorrect() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateTypingIncorrect()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *TermStatUpsertOne) SetLastSeen(v time.Time) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateLastSeen() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateLastSeen()
	})
}

// ClearLastSeen clears the value of the "last_seen" field.
func (u *TermStatUpsertOne) ClearLastSeen() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.ClearLastSeen()
	})
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (u *TermStatUpsertOne) SetLastCorrectAnswer(v time.Time) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetLastCorrectAnswer(v)
	})
}

// UpdateLastCorrectAnswer sets the "last_correct_answer" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateLastCorrectAnswer() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateLastCorrectAnswer()
	})
}

// ClearLastCorrectAnswer clears the value of the "last_correct_answer" field.
func (u *TermStatUpsertOne) ClearLastCorrectAnswer() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.ClearLastCorrectAnswer()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TermStatUpsertOne) SetUpdatedAt(v time.Time) *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TermStatUpsertOne) UpdateUpdatedAt() *TermStatUpsertOne {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TermStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TermStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TermStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TermStatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TermStatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TermStatCreateBulk is the builder for creating many TermStat entities in bulk.
type TermStatCreateBulk struct {
	config
	err      error
	builders []*TermStatCreate
	conflict []sql.ConflictOption
}

// Save creates the TermStat entities in the database.
func (tscb *TermStatCreateBulk) Save(ctx context.Context) ([]*TermStat, error) {
	if tscb.err != nil {
		return nil, tscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tscb.builders))
	nodes := make([]*TermStat, len(tscb.builders))
	mutators := make([]Mutator, len(tscb.builders))
	for i := range tscb.builders {
		func(i int, root context.Context) {
			builder := tscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TermStatMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tscb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tscb *TermStatCreateBulk) SaveX(ctx context.Context) []*TermStat {
	v, err := tscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tscb *TermStatCreateBulk) Exec(ctx context.Context) error {
	_, err := tscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tscb *TermStatCreateBulk) ExecX(ctx context.Context) {
	if err := tscb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TermStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TermStatUpsert) {
//			SetTermKey(v+v).
//		}).
//		Exec(ctx)
func (tscb *TermStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *TermStatUpsertBulk {
	tscb.conflict = opts
	return &TermStatUpsertBulk{
		create: tscb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TermStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tscb *TermStatCreateBulk) OnConflictColumns(columns ...string) *TermStatUpsertBulk {
	tscb.conflict = append(tscb.conflict, sql.ConflictColumns(columns...))
	return &TermStatUpsertBulk{
		create: tscb,
	}
}

// TermStatUpsertBulk is the builder for "upsert"-ing
// a bulk of TermStat nodes.
type TermStatUpsertBulk struct {
	create *TermStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TermStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TermStatUpsertBulk) UpdateNewValues() *TermStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(termstat.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TermStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TermStatUpsertBulk) Ignore() *TermStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TermStatUpsertBulk) DoNothing() *TermStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TermStatCreateBulk.OnConflict
// documentation for more info.
func (u *TermStatUpsertBulk) Update(set func(*TermStatUpsert)) *TermStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TermStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetTermKey sets the "term_key" field.
func (u *TermStatUpsertBulk) SetTermKey(v string) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetTermKey(v)
	})
}

// UpdateTermKey sets the "term_key" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateTermKey() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateTermKey()
	})
}

// SetExposed sets the "exposed" field.
func (u *TermStatUpsertBulk) SetExposed(v bool) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetExposed(v)
	})
}

// UpdateExposed sets the "exposed" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateExposed() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateExposed()
	})
}

// SetMcCorrect sets the "mc_correct" field.
func (u *TermStatUpsertBulk) SetMcCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetMcCorrect(v)
	})
}

// AddMcCorrect adds v to the "mc_correct" field.
func (u *TermStatUpsertBulk) AddMcCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddMcCorrect(v)
	})
}

// UpdateMcCorrect sets the "mc_correct" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateMcCorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateMcCorrect()
	})
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (u *TermStatUpsertBulk) SetMcIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetMcIncorrect(v)
	})
}

// AddMcIncorrect adds v to the "mc_incorrect" field.
func (u *TermStatUpsertBulk) AddMcIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddMcIncorrect(v)
	})
}

// UpdateMcIncorrect sets the "mc_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateMcIncorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateMcIncorrect()
	})
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (u *TermStatUpsertBulk) SetListeningEasyCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningEasyCorrect(v)
	})
}

// AddListeningEasyCorrect adds v to the "listening_easy_correct" field.
func (u *TermStatUpsertBulk) AddListeningEasyCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningEasyCorrect(v)
	})
}

// UpdateListeningEasyCorrect sets the "listening_easy_correct" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateListeningEasyCorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningEasyCorrect()
	})
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (u *TermStatUpsertBulk) SetListeningEasyIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningEasyIncorrect(v)
	})
}

// AddListeningEasyIncorrect adds v to the "listening_easy_incorrect" field.
func (u *TermStatUpsertBulk) AddListeningEasyIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningEasyIncorrect(v)
	})
}

// UpdateListeningEasyIncorrect sets the "listening_easy_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateListeningEasyIncorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningEasyIncorrect()
	})
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (u *TermStatUpsertBulk) SetListeningHardCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningHardCorrect(v)
	})
}

// AddListeningHardCorrect adds v to the "listening_hard_correct" field.
func (u *TermStatUpsertBulk) AddListeningHardCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningHardCorrect(v)
	})
}

// UpdateListeningHardCorrect sets the "listening_hard_correct" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateListeningHardCorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningHardCorrect()
	})
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (u *TermStatUpsertBulk) SetListeningHardIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetListeningHardIncorrect(v)
	})
}

// AddListeningHardIncorrect adds v to the "listening_hard_incorrect" field.
func (u *TermStatUpsertBulk) AddListeningHardIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddListeningHardIncorrect(v)
	})
}

// UpdateListeningHardIncorrect sets the "listening_hard_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateListeningHardIncorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateListeningHardIncorrect()
	})
}

// SetTypingCorrect sets the "typing_correct" field.
func (u *TermStatUpsertBulk) SetTypingCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetTypingCorrect(v)
	})
}

// AddTypingCorrect adds v to the "typing_correct" field.
func (u *TermStatUpsertBulk) AddTypingCorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddTypingCorrect(v)
	})
}

// UpdateTypingCorrect sets the "typing_correct" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateTypingCorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateTypingCorrect()
	})
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (u *TermStatUpsertBulk) SetTypingIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetTypingIncorrect(v)
	})
}

// AddTypingIncorrect adds v to the "typing_incorrect" field.
func (u *TermStatUpsertBulk) AddTypingIncorrect(v int32) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.AddTypingIncorrect(v)
	})
}

// UpdateTypingIncorrect sets the "typing_incorrect" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateTypingIncorrect() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateTypingIncorrect()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *TermStatUpsertBulk) SetLastSeen(v time.Time) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateLastSeen() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateLastSeen()
	})
}

// ClearLastSeen clears the value of the "last_seen" field.
func (u *TermStatUpsertBulk) ClearLastSeen() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.ClearLastSeen()
	})
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (u *TermStatUpsertBulk) SetLastCorrectAnswer(v time.Time) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetLastCorrectAnswer(v)
	})
}

// UpdateLastCorrectAnswer sets the "last_correct_answer" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateLastCorrectAnswer() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateLastCorrectAnswer()
	})
}

// ClearLastCorrectAnswer clears the value of the "last_correct_answer" field.
func (u *TermStatUpsertBulk) ClearLastCorrectAnswer() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.ClearLastCorrectAnswer()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TermStatUpsertBulk) SetUpdatedAt(v time.Time) *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TermStatUpsertBulk) UpdateUpdatedAt() *TermStatUpsertBulk {
	return u.Update(func(s *TermStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TermStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TermStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TermStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TermStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
