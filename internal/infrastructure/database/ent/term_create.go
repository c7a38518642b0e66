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
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/term"
)

// TermCreate is the builder for creating a Term entity.
type TermCreate struct {
	config
	mutation *TermMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceText sets the "source_text" field.
func (tc *TermCreate) SetSourceText(s string) *TermCreate {
	tc.mutation.SetSourceText(s)
	return tc
}

// SetTargetText sets the "target_text" field.
func (tc *TermCreate) SetTargetText(s string) *TermCreate {
	tc.mutation.SetTargetText(s)
	return tc
}

// SetSourceLang sets the "source_lang" field.
func (tc *TermCreate) SetSourceLang(s string) *TermCreate {
	tc.mutation.SetSourceLang(s)
	return tc
}

// SetNillableSourceLang sets the "source_lang" field if the given value is not nil.
func (tc *TermCreate) SetNillableSourceLang(s *string) *TermCreate {
	if s != nil {
		tc.SetSourceLang(*s)
	}
	return tc
}

// SetTargetLang sets the "target_lang" field.
func (tc *TermCreate) SetTargetLang(s string) *TermCreate {
	tc.mutation.SetTargetLang(s)
	return tc
}

// SetNillableTargetLang sets the "target_lang" field if the given value is not nil.
func (tc *TermCreate) SetNillableTargetLang(s *string) *TermCreate {
	if s != nil {
		tc.SetTargetLang(*s)
	}
	return tc
}

// SetCorpus sets the "corpus" field.
func (tc *TermCreate) SetCorpus(s string) *TermCreate {
	tc.mutation.SetCorpus(s)
	return tc
}

// SetNillableCorpus sets the "corpus" field if the given value is not nil.
func (tc *TermCreate) SetNillableCorpus(s *string) *TermCreate {
	if s != nil {
		tc.SetCorpus(*s)
	}
	return tc
}

// SetGroupName sets the "group_name" field.
func (tc *TermCreate) SetGroupName(s string) *TermCreate {
	tc.mutation.SetGroupName(s)
	return tc
}

// SetNillableGroupName sets the "group_name" field if the given value is not nil.
func (tc *TermCreate) SetNillableGroupName(s *string) *TermCreate {
	if s != nil {
		tc.SetGroupName(*s)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TermCreate) SetCreatedAt(t time.Time) *TermCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TermCreate) SetNillableCreatedAt(t *time.Time) *TermCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TermCreate) SetUpdatedAt(t time.Time) *TermCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tc *TermCreate) SetNillableUpdatedAt(t *time.Time) *TermCreate {
	if t != nil {
		tc.SetUpdatedAt(*t)
	}
	return tc
}

// Mutation returns the TermMutation object of the builder.
func (tc *TermCreate) Mutation() *TermMutation {
	return tc.mutation
}

// Save creates the Term in the database.
func (tc *TermCreate) Save(ctx context.Context) (*Term, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TermCreate) SaveX(ctx context.Context) *Term {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TermCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TermCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TermCreate) defaults() {
	if _, ok := tc.mutation.SourceLang(); !ok {
		v := term.DefaultSourceLang
		tc.mutation.SetSourceLang(v)
	}
	if _, ok := tc.mutation.TargetLang(); !ok {
		v := term.DefaultTargetLang
		tc.mutation.SetTargetLang(v)
	}
	if _, ok := tc.mutation.Corpus(); !ok {
		v := term.DefaultCorpus
		tc.mutation.SetCorpus(v)
	}
	if _, ok := tc.mutation.GroupName(); !ok {
		v := term.DefaultGroupName
		tc.mutation.SetGroupName(v)
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := term.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		v := term.DefaultUpdatedAt()
		tc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TermCreate) check() error {
	if _, ok := tc.mutation.SourceText(); !ok {
		return &ValidationError{Name: "source_text", err: errors.New(`ent: missing required field "Term.source_text"`)}
	}
	if v, ok := tc.mutation.SourceText(); ok {
		if err := term.SourceTextValidator(v); err != nil {
			return &ValidationError{Name: "source_text", err: fmt.Errorf(`ent: validator failed for field "Term.source_text": %w`, err)}
		}
	}
	if _, ok := tc.mutation.TargetText(); !ok {
		return &ValidationError{Name: "target_text", err: errors.New(`ent: missing required field "Term.target_text"`)}
	}
	if v, ok := tc.mutation.TargetText(); ok {
		if err := term.TargetTextValidator(v); err != nil {
			return &ValidationError{Name: "target_text", err: fmt.Errorf(`ent: validator failed for field "Term.target_text": %w`, err)}
		}
	}
	if _, ok := tc.mutation.SourceLang(); !ok {
		return &ValidationError{Name: "source_lang", err: errors.New(`ent: missing required field "Term.source_lang"`)}
	}
	if _, ok := tc.mutation.TargetLang(); !ok {
		return &ValidationError{Name: "target_lang", err: errors.New(`ent: missing required field "Term.target_lang"`)}
	}
	if _, ok := tc.mutation.Corpus(); !ok {
		return &ValidationError{Name: "corpus", err: errors.New(`ent: missing required field "Term.corpus"`)}
	}
	if _, ok := tc.mutation.GroupName(); !ok {
		return &ValidationError{Name: "group_name", err: errors.New(`ent: missing required field "Term.group_name"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Term.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Term.updated_at"`)}
	}
	return nil
}

func (tc *TermCreate) sqlSave(ctx context.Context) (*Term, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TermCreate) createSpec() (*Term, *sqlgraph.CreateSpec) {
	var (
		_node = &Term{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(term.Table, sqlgraph.NewFieldSpec(term.FieldID, field.TypeInt))
	)
	_spec.OnConflict = tc.conflict
	if value, ok := tc.mutation.SourceText(); ok {
		_spec.SetField(term.FieldSourceText, field.TypeString, value)
		_node.SourceText = value
	}
	if value, ok := tc.mutation.TargetText(); ok {
		_spec.SetField(term.FieldTargetText, field.TypeString, value)
		_node.TargetText = value
	}
	if value, ok := tc.mutation.SourceLang(); ok {
		_spec.SetField(term.FieldSourceLang, field.TypeString, value)
		_node.SourceLang = value
	}
	if value, ok := tc.mutation.TargetLang(); ok {
		_spec.SetField(term.FieldTargetLang, field.TypeString, value)
		_node.TargetLang = value
	}
	if value, ok := tc.mutation.Corpus(); ok {
		_spec.SetField(term.FieldCorpus, field.TypeString, value)
		_node.Corpus = value
	}
	if value, ok := tc.mutation.GroupName(); ok {
		_spec.SetField(term.FieldGroupName, field.TypeString, value)
		_node.GroupName = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(term.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(term.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Term.Create().
//		SetSourceText(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TermUpsert) {
//			SetSourceText(v+v).
//		}).
//		Exec(ctx)
func (tc *TermCreate) OnConflict(opts ...sql.ConflictOption) *TermUpsertOne {
	tc.conflict = opts
	return &TermUpsertOne{
		create: tc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Term.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tc *TermCreate) OnConflictColumns(columns ...string) *TermUpsertOne {
	tc.conflict = append(tc.conflict, sql.ConflictColumns(columns...))
	return &TermUpsertOne{
		create: tc,
	}
}

type (
	// TermUpsertOne is the builder for "upsert"-ing
	//  one Term node.
	TermUpsertOne struct {
		create *TermCreate
	}

	// TermUpsert is the "OnConflict" setter.
	TermUpsert struct {
		*sql.UpdateSet
	}
)

// SetSourceText sets the "source_text" field.
func (u *TermUpsert) SetSourceText(v string) *TermUpsert {
	u.Set(term.FieldSourceText, v)
	return u
}

// UpdateSourceText sets the "source_text" field to the value that was provided on create.
func (u *TermUpsert) UpdateSourceText() *TermUpsert {
	u.SetExcluded(term.FieldSourceText)
	return u
}

// SetTargetText sets the "target_text" field.
func (u *TermUpsert) SetTargetText(v string) *TermUpsert {
	u.Set(term.FieldTargetText, v)
	return u
}

// UpdateTargetText sets the "target_text" field to the value that was provided on create.
func (u *TermUpsert) UpdateTargetText() *TermUpsert {
	u.SetExcluded(term.FieldTargetText)
	return u
}

// SetSourceLang sets the "source_lang" field.
func (u *TermUpsert) SetSourceLang(v string) *TermUpsert {
	u.Set(term.FieldSourceLang, v)
	return u
}

// UpdateSourceLang sets the "source_lang" field to the value that was provided on create.
func (u *TermUpsert) UpdateSourceLang() *TermUpsert {
	u.SetExcluded(term.FieldSourceLang)
	return u
}

// SetTargetLang sets the "target_lang" field.
func (u *TermUpsert) SetTargetLang(v string) *TermUpsert {
	u.Set(term.FieldTargetLang, v)
	return u
}

// UpdateTargetLang sets the "target_lang" field to the value that was provided on create.
func (u *TermUpsert) UpdateTargetLang() *TermUpsert {
	u.SetExcluded(term.FieldTargetLang)
	return u
}

// SetCorpus sets the "corpus" field.
func (u *TermUpsert) SetCorpus(v string) *TermUpsert {
	u.Set(term.FieldCorpus, v)
	return u
}

// UpdateCorpus sets the "corpus" field to the value that was provided on create.
func (u *TermUpsert) UpdateCorpus() *TermUpsert {
	u.SetExcluded(term.FieldCorpus)
	return u
}

// SetGroupName sets the "group_name" field.
func (u *TermUpsert) SetGroupName(v string) *TermUpsert {
	u.Set(term.FieldGroupName, v)
	return u
}

// UpdateGroupName sets the "group_name" field to the value that was provided on create.
func (u *TermUpsert) UpdateGroupName() *TermUpsert {
	u.SetExcluded(term.FieldGroupName)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TermUpsert) SetUpdatedAt(v time.Time) *TermUpsert {
	u.Set(term.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TermUpsert) UpdateUpdatedAt() *TermUpsert {
	u.SetExcluded(term.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Term.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TermUpsertOne) UpdateNewValues() *TermUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(term.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Term.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TermUpsertOne) Ignore() *TermUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TermUpsertOne) DoNothing() *TermUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TermCreate.OnConflict
// documentation for more info.
func (u *TermUpsertOne) Update(set func(*TermUpsert)) *TermUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TermUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceText sets the "source_text" field.
func (u *TermUpsertOne) SetSourceText(v string) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetSourceText(v)
	})
}

// UpdateSourceText sets the "source_text" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateSourceText() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateSourceText()
	})
}

// SetTargetText sets the "target_text" field.
func (u *TermUpsertOne) SetTargetText(v string) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetTargetText(v)
	})
}

// UpdateTargetText sets the "target_text" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateTargetText() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateTargetText()
	})
}

// SetSourceLang sets the "source_lang" field.
func (u *TermUpsertOne) SetSourceLang(v string) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetSourceLang(v)
	})
}

// UpdateSourceLang sets the "source_lang" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateSourceLang() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateSourceLang()
	})
}

// SetTargetLang sets the "target_lang" field.
func (u *TermUpsertOne) SetTargetLang(v string) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetTargetLang(v)
	})
}

// UpdateTargetLang sets the "target_lang" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateTargetLang() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateTargetLang()
	})
}

// SetCorpus sets the "corpus" field.
func (u *TermUpsertOne) SetCorpus(v string) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetCorpus(v)
	})
}

// UpdateCorpus sets the "corpus" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateCorpus() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateCorpus()
	})
}

// SetGroupName sets the "group_name" field.
func (u *TermUpsertOne) SetGroupName(v string) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetGroupName(v)
	})
}

// UpdateGroupName sets the "group_name" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateGroupName() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateGroupName()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TermUpsertOne) SetUpdatedAt(v time.Time) *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TermUpsertOne) UpdateUpdatedAt() *TermUpsertOne {
	return u.Update(func(s *TermUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TermUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TermCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TermUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TermUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TermUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TermCreateBulk is the builder for creating many Term entities in bulk.
type TermCreateBulk struct {
	config
	err      error
	builders []*TermCreate
	conflict []sql.ConflictOption
}

// Save creates the Term entities in the database.
func (tcb *TermCreateBulk) Save(ctx context.Context) ([]*Term, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Term, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TermMutation)
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
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TermCreateBulk) SaveX(ctx context.Context) []*Term {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TermCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TermCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Term.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TermUpsert) {
//			SetSourceText(v+v).
//		}).
//		Exec(ctx)
func (tcb *TermCreateBulk) OnConflict(opts ...sql.ConflictOption) *TermUpsertBulk {
	tcb.conflict = opts
	return &TermUpsertBulk{
		create: tcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Term.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tcb *TermCreateBulk) OnConflictColumns(columns ...string) *TermUpsertBulk {
	tcb.conflict = append(tcb.conflict, sql.ConflictColumns(columns...))
	return &TermUpsertBulk{
		create: tcb,
	}
}

// TermUpsertBulk is the builder for "upsert"-ing
// a bulk of Term nodes.
type TermUpsertBulk struct {
	create *TermCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Term.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TermUpsertBulk) UpdateNewValues() *TermUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(term.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Term.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TermUpsertBulk) Ignore() *TermUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TermUpsertBulk) DoNothing() *TermUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TermCreateBulk.OnConflict
// documentation for more info.
func (u *TermUpsertBulk) Update(set func(*TermUpsert)) *TermUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TermUpsert{UpdateSet: update})
	}))
	return u
}

// SetSourceText sets the "source_text" field.
func (u *TermUpsertBulk) SetSourceText(v string) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetSourceText(v)
	})
}

// UpdateSourceText sets the "source_text" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateSourceText() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateSourceText()
	})
}

// SetTargetText sets the "target_text" field.
func (u *TermUpsertBulk) SetTargetText(v string) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetTargetText(v)
	})
}

// UpdateTargetText sets the "target_text" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateTargetText() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateTargetText()
	})
}

// SetSourceLang sets the "source_lang" field.
func (u *TermUpsertBulk) SetSourceLang(v string) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetSourceLang(v)
	})
}

// UpdateSourceLang sets the "source_lang" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateSourceLang() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateSourceLang()
	})
}

// SetTargetLang sets the "target_lang" field.
func (u *TermUpsertBulk) SetTargetLang(v string) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetTargetLang(v)
	})
}

// UpdateTargetLang sets the "target_lang" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateTargetLang() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateTargetLang()
	})
}

// SetCorpus sets the "corpus" field.
func (u *TermUpsertBulk) SetCorpus(v string) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetCorpus(v)
	})
}

// UpdateCorpus sets the "corpus" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateCorpus() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateCorpus()
	})
}

// SetGroupName sets the "group_name" field.
func (u *TermUpsertBulk) SetGroupName(v string) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetGroupName(v)
	})
}

// UpdateGroupName sets the "group_name" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateGroupName() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateGroupName()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TermUpsertBulk) SetUpdatedAt(v time.Time) *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TermUpsertBulk) UpdateUpdatedAt() *TermUpsertBulk {
	return u.Update(func(s *TermUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TermUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TermCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TermCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TermUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
