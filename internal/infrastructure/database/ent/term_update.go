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
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/term"
)

// TermUpdate is the builder for updating Term entities.
type TermUpdate struct {
	config
	hooks    []Hook
	mutation *TermMutation
}

// Where appends a list predicates to the TermUpdate builder.
func (tu *TermUpdate) Where(ps ...predicate.Term) *TermUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetSourceText sets the "source_text" field.
func (tu *TermUpdate) SetSourceText(s string) *TermUpdate {
	tu.mutation.SetSourceText(s)
	return tu
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (tu *TermUpdate) SetNillableSourceText(s *string) *TermUpdate {
	if s != nil {
		tu.SetSourceText(*s)
	}
	return tu
}

// SetTargetText sets the "target_text" field.
func (tu *TermUpdate) SetTargetText(s string) *TermUpdate {
	tu.mutation.SetTargetText(s)
	return tu
}

// SetNillableTargetText sets the "target_text" field if the given value is not nil.
func (tu *TermUpdate) SetNillableTargetText(s *string) *TermUpdate {
	if s != nil {
		tu.SetTargetText(*s)
	}
	return tu
}

// SetSourceLang sets the "source_lang" field.
func (tu *TermUpdate) SetSourceLang(s string) *TermUpdate {
	tu.mutation.SetSourceLang(s)
	return tu
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (tu *TermUpdate) SetNillableSourceLang(s *string) *TermUpdate {
	if s != nil {
		tu.SetSourceLang(*s)
	}
	return tu
}

// SetTargetLang sets the "target_lang" field.
func (tu *TermUpdate) SetTargetLang(s string) *TermUpdate {
	tu.mutation.SetTargetLang(s)
	return tu
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (tu *TermUpdate) SetNillableTargetLang(s *string) *TermUpdate {
	if s != nil {
		tu.SetTargetLang(*s)
	}
	return tu
}

// SetCorpus sets the "corpus" field.
func (tu *TermUpdate) SetCorpus(s string) *TermUpdate {
	tu.mutation.SetCorpus(s)
	return tu
}

// SetNillableCorpus sets the "corpus" field if the given value is not nil.
func (tu *TermUpdate) SetNillableCorpus(s *string) *TermUpdate {
	if s != nil {
		tu.SetCorpus(*s)
	}
	return tu
}

// SetGroupName sets the "group_name" field.
func (tu *TermUpdate) SetGroupName(s string) *TermUpdate {
	tu.mutation.SetGroupName(s)
	return tu
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (tu *TermUpdate) SetNillableGroupName(s *string) *TermUpdate {
	if s != nil {
		tu.SetGroupName(*s)
	}
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TermUpdate) SetUpdatedAt(t time.Time) *TermUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// Mutation returns the TermMutation object of the builder.
func (tu *TermUpdate) Mutation() *TermMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TermUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TermUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TermUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TermUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TermUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := term.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TermUpdate) check() error {
	if v, ok := tu.mutation.SourceText(); ok {
		if err := term.SourceTextValidator(v); err != nil {
			return &ValidationError{Name: "source_text", err: fmt.Errorf(`ent: validator failed for field "Term.source_text": %w`, err)}
		}
	}
	if v, ok := tu.mutation.TargetText(); ok {
		if err := term.TargetTextValidator(v); err != nil {
			return &ValidationError{Name: "target_text", err: fmt.Errorf(`ent: validator failed for field "Term.target_text": %w`, err)}
		}
	}
	return nil
}

func (tu *TermUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(term.Table, term.Columns, sqlgraph.NewFieldSpec(term.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.SourceText(); ok {
		_spec.SetField(term.FieldSourceText, field.TypeString, value)
	}
	if value, ok := tu.mutation.TargetText(); ok {
		_spec.SetField(term.FieldTargetText, field.TypeString, value)
	}
	if value, ok := tu.mutation.SourceLang(); ok {
		_spec.SetField(term.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := tu.mutation.TargetLang(); ok {
		_spec.SetField(term.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := tu.mutation.Corpus(); ok {
		_spec.SetField(term.FieldCorpus, field.TypeString, value)
	}
	if value, ok := tu.mutation.GroupName(); ok {
		_spec.SetField(term.FieldGroupName, field.TypeString, value)
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(term.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{term.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TermUpdateOne is the builder for updating a single Term entity.
type TermUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TermMutation
}

// SetSourceText sets the "source_text" field.
func (tuo *TermUpdateOne) SetSourceText(s string) *TermUpdateOne {
	tuo.mutation.SetSourceText(s)
	return tuo
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (tuo *TermUpdateOne) SetNillableSourceText(s *string) *TermUpdateOne {
	if s != nil {
		tuo.SetSourceText(*s)
	}
	return tuo
}

// SetTargetText sets the "target_text" field.
func (tuo *TermUpdateOne) SetTargetText(s string) *TermUpdateOne {
	tuo.mutation.SetTargetText(s)
	return tuo
}

// SetNillableTargetText sets the "target_text" field if the given value is not nil.
func (tuo *TermUpdateOne) SetNillableTargetText(s *string) *TermUpdateOne {
	if s != nil {
		tuo.SetTargetText(*s)
	}
	return tuo
}

// SetSourceLang sets the "source_lang" field.
func (tuo *TermUpdateOne) SetSourceLang(s string) *TermUpdateOne {
	tuo.mutation.SetSourceLang(s)
	return tuo
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (tuo *TermUpdateOne) SetNillableSourceLang(s *string) *TermUpdateOne {
	if s != nil {
		tuo.SetSourceLang(*s)
	}
	return tuo
}

// SetTargetLang sets the "target_lang" field.
func (tuo *TermUpdateOne) SetTargetLang(s string) *TermUpdateOne {
	tuo.mutation.SetTargetLang(s)
	return tuo
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (tuo *TermUpdateOne) SetNillableTargetLang(s *string) *TermUpdateOne {
	if s != nil {
		tuo.SetTargetLang(*s)
	}
	return tuo
}

// SetCorpus sets the "corpus" field.
func (tuo *TermUpdateOne) SetCorpus(s string) *TermUpdateOne {
	tuo.mutation.SetCorpus(s)
	return tuo
}

// SetNillableCorpus sets the "corpus" field if the given value is not nil.
func (tuo *TermUpdateOne) SetNillableCorpus(s *string) *TermUpdateOne {
	if s != nil {
		tuo.SetCorpus(*s)
	}
	return tuo
}

// SetGroupName sets the "group_name" field.
func (tuo *TermUpdateOne) SetGroupName(s string) *TermUpdateOne {
	tuo.mutation.SetGroupName(s)
	return tuo
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (tuo *TermUpdateOne) SetNillableGroupName(s *string) *TermUpdateOne {
	if s != nil {
		tuo.SetGroupName(*s)
	}
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TermUpdateOne) SetUpdatedAt(t time.Time) *TermUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// Mutation returns the TermMutation object of the builder.
func (tuo *TermUpdateOne) Mutation() *TermMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TermUpdate builder.
func (tuo *TermUpdateOne) Where(ps ...predicate.Term) *TermUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TermUpdateOne) Select(field string, fields ...string) *TermUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Term entity.
func (tuo *TermUpdateOne) Save(ctx context.Context) (*Term, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TermUpdateOne) SaveX(ctx context.Context) *Term {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TermUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TermUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TermUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := term.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TermUpdateOne) check() error {
	if v, ok := tuo.mutation.SourceText(); ok {
		if err := term.SourceTextValidator(v); err != nil {
			return &ValidationError{Name: "source_text", err: fmt.Errorf(`ent: validator failed for field "Term.source_text": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.TargetText(); ok {
		if err := term.TargetTextValidator(v); err != nil {
			return &ValidationError{Name: "target_text", err: fmt.Errorf(`ent: validator failed for field "Term.target_text": %w`, err)}
		}
	}
	return nil
}

func (tuo *TermUpdateOne) sqlSave(ctx context.Context) (_node *Term, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(term.Table, term.Columns, sqlgraph.NewFieldSpec(term.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Term.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, term.FieldID)
		for _, f := range fields {
			if !term.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != term.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.SourceText(); ok {
		_spec.SetField(term.FieldSourceText, field.TypeString, value)
	}
	if value, ok := tuo.mutation.TargetText(); ok {
		_spec.SetField(term.FieldTargetText, field.TypeString, value)
	}
	if value, ok := tuo.mutation.SourceLang(); ok {
		_spec.SetField(term.FieldSourceLang, field.TypeString, value)
	}
	if value, ok := tuo.mutation.TargetLang(); ok {
		_spec.SetField(term.FieldTargetLang, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Corpus(); ok {
		_spec.SetField(term.FieldCorpus, field.TypeString, value)
	}
	if value, ok := tuo.mutation.GroupName(); ok {
		_spec.SetField(term.FieldGroupName, field.TypeString, value)
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(term.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Term{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{term.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
