// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/term"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/termstat"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeTerm     = "Term"
	TypeTermStat = "TermStat"
)

// TermMutation represents an operation that mutates the Term nodes in the graph.
type TermMutation struct {
	config
	op            Op
	typ           string
	id            *int
	source_text   *string
	target_text   *string
	source_lang   *string
	target_lang   *string
	corpus        *string
	group_name    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Term, error)
	predicates    []predicate.Term
}

var _ ent.Mutation = (*TermMutation)(nil)

// termOption allows management of the mutation configuration using functional options.
type termOption func(*TermMutation)

// newTermMutation creates new mutation for the Term entity.
func newTermMutation(c config, op Op, opts ...termOption) *TermMutation {
	m := &TermMutation{
		config:        c,
		op:            op,
		typ:           TypeTerm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTermID sets the ID field of the mutation.
func withTermID(id int) termOption {
	return func(m *TermMutation) {
		var (
			err   error
			once  sync.Once
			value *Term
		)
		m.oldValue = func(ctx context.Context) (*Term, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Term.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTerm sets the old Term of the mutation.
func withTerm(node *Term) termOption {
	return func(m *TermMutation) {
		m.oldValue = func(context.Context) (*Term, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TermMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TermMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TermMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TermMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Term.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceText sets the "source_text" field.
func (m *TermMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *TermMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldSourceText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *TermMutation) ResetSourceText() {
	m.source_text = nil
}

// SetTargetText sets the "target_text" field.
func (m *TermMutation) SetTargetText(s string) {
	m.target_text = &s
}

// TargetText returns the value of the "target_text" field in the mutation.
func (m *TermMutation) TargetText() (r string, exists bool) {
	v := m.target_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetText returns the old "target_text" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldTargetText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetText: %w", err)
	}
	return oldValue.TargetText, nil
}

// ResetTargetText resets all changes to the "target_text" field.
func (m *TermMutation) ResetTargetText() {
	m.target_text = nil
}

// SetSourceLang sets the "source_lang" field.
func (m *TermMutation) SetSourceLang(s string) {
	m.source_lang = &s
}

// SourceLang returns the value of the "source_lang" field in the mutation.
func (m *TermMutation) SourceLang() (r string, exists bool) {
	v := m.source_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLang returns the old "source_lang" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldSourceLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLang: %w", err)
	}
	return oldValue.SourceLang, nil
}

// ResetSourceLang resets all changes to the "source_lang" field.
func (m *TermMutation) ResetSourceLang() {
	m.source_lang = nil
}

// SetTargetLang sets the "target_lang" field.
func (m *TermMutation) SetTargetLang(s string) {
	m.target_lang = &s
}

// TargetLang returns the value of the "target_lang" field in the mutation.
func (m *TermMutation) TargetLang() (r string, exists bool) {
	v := m.target_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLang returns the old "target_lang" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldTargetLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLang: %w", err)
	}
	return oldValue.TargetLang, nil
}

// ResetTargetLang resets all changes to the "target_lang" field.
func (m *TermMutation) ResetTargetLang() {
	m.target_lang = nil
}

// SetCorpus sets the "corpus" field.
func (m *TermMutation) SetCorpus(s string) {
	m.corpus = &s
}

// Corpus returns the value of the "corpus" field in the mutation.
func (m *TermMutation) Corpus() (r string, exists bool) {
	v := m.corpus
	if v == nil {
		return
	}
	return *v, true
}

// OldCorpus returns the old "corpus" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldCorpus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorpus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorpus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorpus: %w", err)
	}
	return oldValue.Corpus, nil
}

// ResetCorpus resets all changes to the "corpus" field.
func (m *TermMutation) ResetCorpus() {
	m.corpus = nil
}

// SetGroupName sets the "group_name" field.
func (m *TermMutation) SetGroupName(s string) {
	m.group_name = &s
}

// GroupName returns the value of the "group_name" field in the mutation.
func (m *TermMutation) GroupName() (r string, exists bool) {
	v := m.group_name
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupName returns the old "group_name" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldGroupName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupName: %w", err)
	}
	return oldValue.GroupName, nil
}

// ResetGroupName resets all changes to the "group_name" field.
func (m *TermMutation) ResetGroupName() {
	m.group_name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TermMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TermMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TermMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TermMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TermMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Term entity.
// If the Term object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TermMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TermMutation builder.
func (m *TermMutation) Where(ps ...predicate.Term) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TermMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TermMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Term, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TermMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TermMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Term).
func (m *TermMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TermMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.source_text != nil {
		fields = append(fields, term.FieldSourceText)
	}
	if m.target_text != nil {
		fields = append(fields, term.FieldTargetText)
	}
	if m.source_lang != nil {
		fields = append(fields, term.FieldSourceLang)
	}
	if m.target_lang != nil {
		fields = append(fields, term.FieldTargetLang)
	}
	if m.corpus != nil {
		fields = append(fields, term.FieldCorpus)
	}
	if m.group_name != nil {
		fields = append(fields, term.FieldGroupName)
	}
	if m.created_at != nil {
		fields = append(fields, term.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, term.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TermMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case term.FieldSourceText:
		return m.SourceText()
	case term.FieldTargetText:
		return m.TargetText()
	case term.FieldSourceLang:
		return m.SourceLang()
	case term.FieldTargetLang:
		return m.TargetLang()
	case term.FieldCorpus:
		return m.Corpus()
	case term.FieldGroupName:
		return m.GroupName()
	case term.FieldCreatedAt:
		return m.CreatedAt()
	case term.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TermMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case term.FieldSourceText:
		return m.OldSourceText(ctx)
	case term.FieldTargetText:
		return m.OldTargetText(ctx)
	case term.FieldSourceLang:
		return m.OldSourceLang(ctx)
	case term.FieldTargetLang:
		return m.OldTargetLang(ctx)
	case term.FieldCorpus:
		return m.OldCorpus(ctx)
	case term.FieldGroupName:
		return m.OldGroupName(ctx)
	case term.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case term.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Term field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermMutation) SetField(name string, value ent.Value) error {
	switch name {
	case term.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case term.FieldTargetText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetText(v)
		return nil
	case term.FieldSourceLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLang(v)
		return nil
	case term.FieldTargetLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLang(v)
		return nil
	case term.FieldCorpus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorpus(v)
		return nil
	case term.FieldGroupName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupName(v)
		return nil
	case term.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case term.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Term field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TermMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TermMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Term numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TermMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TermMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TermMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Term nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TermMutation) ResetField(name string) error {
	switch name {
	case term.FieldSourceText:
		m.ResetSourceText()
		return nil
	case term.FieldTargetText:
		m.ResetTargetText()
		return nil
	case term.FieldSourceLang:
		m.ResetSourceLang()
		return nil
	case term.FieldTargetLang:
		m.ResetTargetLang()
		return nil
	case term.FieldCorpus:
		m.ResetCorpus()
		return nil
	case term.FieldGroupName:
		m.ResetGroupName()
		return nil
	case term.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case term.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Term field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TermMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TermMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TermMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TermMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TermMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TermMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TermMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Term unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TermMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Term edge %s", name)
}

// TermStatMutation represents an operation that mutates the TermStat nodes in the graph.
type TermStatMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	term_key                    *string
	exposed                     *bool
	mc_correct                  *int32
	addmc_correct               *int32
	mc_incorrect                *int32
	addmc_incorrect             *int32
	listening_easy_correct      *int32
	addlistening_easy_correct   *int32
	listening_easy_incorrect    *int32
	addlistening_easy_incorrect *int32
	listening_hard_correct      *int32
	addlistening_hard_correct   *int32
	listening_hard_incorrect    *int32
	addlistening_hard_incorrect *int32
	typing_correct              *int32
	addtyping_correct           *int32
	typing_incorrect            *int32
	addtyping_incorrect         *int32
	last_seen                   *time.Time
	last_correct_answer         *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*TermStat, error)
	predicates                  []predicate.TermStat
}

var _ ent.Mutation = (*TermStatMutation)(nil)

// termstatOption allows management of the mutation configuration using functional options.
type termstatOption func(*TermStatMutation)

// newTermStatMutation creates new mutation for the TermStat entity.
func newTermStatMutation(c config, op Op, opts ...termstatOption) *TermStatMutation {
	m := &TermStatMutation{
		config:        c,
		op:            op,
		typ:           TypeTermStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTermStatID sets the ID field of the mutation.
func withTermStatID(id int) termstatOption {
	return func(m *TermStatMutation) {
		var (
			err   error
			once  sync.Once
			value *TermStat
		)
		m.oldValue = func(ctx context.Context) (*TermStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TermStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTermStat sets the old TermStat of the mutation.
func withTermStat(node *TermStat) termstatOption {
	return func(m *TermStatMutation) {
		m.oldValue = func(context.Context) (*TermStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TermStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TermStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TermStatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TermStatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TermStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTermKey sets the "term_key" field.
func (m *TermStatMutation) SetTermKey(s string) {
	m.term_key = &s
}

// TermKey returns the value of the "term_key" field in the mutation.
func (m *TermStatMutation) TermKey() (r string, exists bool) {
	v := m.term_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTermKey returns the old "term_key" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldTermKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTermKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTermKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTermKey: %w", err)
	}
	return oldValue.TermKey, nil
}

// ResetTermKey resets all changes to the "term_key" field.
func (m *TermStatMutation) ResetTermKey() {
	m.term_key = nil
}

// SetExposed sets the "exposed" field.
func (m *TermStatMutation) SetExposed(b bool) {
	m.exposed = &b
}

// Exposed returns the value of the "exposed" field in the mutation.
func (m *TermStatMutation) Exposed() (r bool, exists bool) {
	v := m.exposed
	if v == nil {
		return
	}
	return *v, true
}

// OldExposed returns the old "exposed" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldExposed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExposed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExposed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExposed: %w", err)
	}
	return oldValue.Exposed, nil
}

// ResetExposed resets all changes to the "exposed" field.
func (m *TermStatMutation) ResetExposed() {
	m.exposed = nil
}

// SetMcCorrect sets the "mc_correct" field.
func (m *TermStatMutation) SetMcCorrect(i int32) {
	m.mc_correct = &i
	m.addmc_correct = nil
}

// McCorrect returns the value of the "mc_correct" field in the mutation.
func (m *TermStatMutation) McCorrect() (r int32, exists bool) {
	v := m.mc_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldMcCorrect returns the old "mc_correct" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldMcCorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcCorrect: %w", err)
	}
	return oldValue.McCorrect, nil
}

// AddMcCorrect adds i to the "mc_correct" field.
func (m *TermStatMutation) AddMcCorrect(i int32) {
	if m.addmc_correct != nil {
		*m.addmc_correct += i
	} else {
		m.addmc_correct = &i
	}
}

// AddedMcCorrect returns the value that was added to the "mc_correct" field in this mutation.
func (m *TermStatMutation) AddedMcCorrect() (r int32, exists bool) {
	v := m.addmc_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetMcCorrect resets all changes to the "mc_correct" field.
func (m *TermStatMutation) ResetMcCorrect() {
	m.mc_correct = nil
	m.addmc_correct = nil
}

// SetMcIncorrect sets the "mc_incorrect" field.
func (m *TermStatMutation) SetMcIncorrect(i int32) {
	m.mc_incorrect = &i
	m.addmc_incorrect = nil
}

// McIncorrect returns the value of the "mc_incorrect" field in the mutation.
func (m *TermStatMutation) McIncorrect() (r int32, exists bool) {
	v := m.mc_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldMcIncorrect returns the old "mc_incorrect" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldMcIncorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMcIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMcIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMcIncorrect: %w", err)
	}
	return oldValue.McIncorrect, nil
}

// AddMcIncorrect adds i to the "mc_incorrect" field.
func (m *TermStatMutation) AddMcIncorrect(i int32) {
	if m.addmc_incorrect != nil {
		*m.addmc_incorrect += i
	} else {
		m.addmc_incorrect = &i
	}
}

// AddedMcIncorrect returns the value that was added to the "mc_incorrect" field in this mutation.
func (m *TermStatMutation) AddedMcIncorrect() (r int32, exists bool) {
	v := m.addmc_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetMcIncorrect resets all changes to the "mc_incorrect" field.
func (m *TermStatMutation) ResetMcIncorrect() {
	m.mc_incorrect = nil
	m.addmc_incorrect = nil
}

// SetListeningEasyCorrect sets the "listening_easy_correct" field.
func (m *TermStatMutation) SetListeningEasyCorrect(i int32) {
	m.listening_easy_correct = &i
	m.addlistening_easy_correct = nil
}

// ListeningEasyCorrect returns the value of the "listening_easy_correct" field in the mutation.
func (m *TermStatMutation) ListeningEasyCorrect() (r int32, exists bool) {
	v := m.listening_easy_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldListeningEasyCorrect returns the old "listening_easy_correct" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldListeningEasyCorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListeningEasyCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListeningEasyCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListeningEasyCorrect: %w", err)
	}
	return oldValue.ListeningEasyCorrect, nil
}

// AddListeningEasyCorrect adds i to the "listening_easy_correct" field.
func (m *TermStatMutation) AddListeningEasyCorrect(i int32) {
	if m.addlistening_easy_correct != nil {
		*m.addlistening_easy_correct += i
	} else {
		m.addlistening_easy_correct = &i
	}
}

// AddedListeningEasyCorrect returns the value that was added to the "listening_easy_correct" field in this mutation.
func (m *TermStatMutation) AddedListeningEasyCorrect() (r int32, exists bool) {
	v := m.addlistening_easy_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetListeningEasyCorrect resets all changes to the "listening_easy_correct" field.
func (m *TermStatMutation) ResetListeningEasyCorrect() {
	m.listening_easy_correct = nil
	m.addlistening_easy_correct = nil
}

// SetListeningEasyIncorrect sets the "listening_easy_incorrect" field.
func (m *TermStatMutation) SetListeningEasyIncorrect(i int32) {
	m.listening_easy_incorrect = &i
	m.addlistening_easy_incorrect = nil
}

// ListeningEasyIncorrect returns the value of the "listening_easy_incorrect" field in the mutation.
func (m *TermStatMutation) ListeningEasyIncorrect() (r int32, exists bool) {
	v := m.listening_easy_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldListeningEasyIncorrect returns the old "listening_easy_incorrect" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldListeningEasyIncorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListeningEasyIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListeningEasyIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListeningEasyIncorrect: %w", err)
	}
	return oldValue.ListeningEasyIncorrect, nil
}

// AddListeningEasyIncorrect adds i to the "listening_easy_incorrect" field.
func (m *TermStatMutation) AddListeningEasyIncorrect(i int32) {
	if m.addlistening_easy_incorrect != nil {
		*m.addlistening_easy_incorrect += i
	} else {
		m.addlistening_easy_incorrect = &i
	}
}

// AddedListeningEasyIncorrect returns the value that was added to the "listening_easy_incorrect" field in this mutation.
func (m *TermStatMutation) AddedListeningEasyIncorrect() (r int32, exists bool) {
	v := m.addlistening_easy_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetListeningEasyIncorrect resets all changes to the "listening_easy_incorrect" field.
func (m *TermStatMutation) ResetListeningEasyIncorrect() {
	m.listening_easy_incorrect = nil
	m.addlistening_easy_incorrect = nil
}

// SetListeningHardCorrect sets the "listening_hard_correct" field.
func (m *TermStatMutation) SetListeningHardCorrect(i int32) {
	m.listening_hard_correct = &i
	m.addlistening_hard_correct = nil
}

// ListeningHardCorrect returns the value of the "listening_hard_correct" field in the mutation.
func (m *TermStatMutation) ListeningHardCorrect() (r int32, exists bool) {
	v := m.listening_hard_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldListeningHardCorrect returns the old "listening_hard_correct" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldListeningHardCorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListeningHardCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListeningHardCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListeningHardCorrect: %w", err)
	}
	return oldValue.ListeningHardCorrect, nil
}

// AddListeningHardCorrect adds i to the "listening_hard_correct" field.
func (m *TermStatMutation) AddListeningHardCorrect(i int32) {
	if m.addlistening_hard_correct != nil {
		*m.addlistening_hard_correct += i
	} else {
		m.addlistening_hard_correct = &i
	}
}

// AddedListeningHardCorrect returns the value that was added to the "listening_hard_correct" field in this mutation.
func (m *TermStatMutation) AddedListeningHardCorrect() (r int32, exists bool) {
	v := m.addlistening_hard_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetListeningHardCorrect resets all changes to the "listening_hard_correct" field.
func (m *TermStatMutation) ResetListeningHardCorrect() {
	m.listening_hard_correct = nil
	m.addlistening_hard_correct = nil
}

// SetListeningHardIncorrect sets the "listening_hard_incorrect" field.
func (m *TermStatMutation) SetListeningHardIncorrect(i int32) {
	m.listening_hard_incorrect = &i
	m.addlistening_hard_incorrect = nil
}

// ListeningHardIncorrect returns the value of the "listening_hard_incorrect" field in the mutation.
func (m *TermStatMutation) ListeningHardIncorrect() (r int32, exists bool) {
	v := m.listening_hard_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldListeningHardIncorrect returns the old "listening_hard_incorrect" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldListeningHardIncorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListeningHardIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListeningHardIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListeningHardIncorrect: %w", err)
	}
	return oldValue.ListeningHardIncorrect, nil
}

// AddListeningHardIncorrect adds i to the "listening_hard_incorrect" field.
func (m *TermStatMutation) AddListeningHardIncorrect(i int32) {
	if m.addlistening_hard_incorrect != nil {
		*m.addlistening_hard_incorrect += i
	} else {
		m.addlistening_hard_incorrect = &i
	}
}

// AddedListeningHardIncorrect returns the value that was added to the "listening_hard_incorrect" field in this mutation.
func (m *TermStatMutation) AddedListeningHardIncorrect() (r int32, exists bool) {
	v := m.addlistening_hard_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetListeningHardIncorrect resets all changes to the "listening_hard_incorrect" field.
func (m *TermStatMutation) ResetListeningHardIncorrect() {
	m.listening_hard_incorrect = nil
	m.addlistening_hard_incorrect = nil
}

// SetTypingCorrect sets the "typing_correct" field.
func (m *TermStatMutation) SetTypingCorrect(i int32) {
	m.typing_correct = &i
	m.addtyping_correct = nil
}

// TypingCorrect returns the value of the "typing_correct" field in the mutation.
func (m *TermStatMutation) TypingCorrect() (r int32, exists bool) {
	v := m.typing_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTypingCorrect returns the old "typing_correct" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldTypingCorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypingCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypingCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypingCorrect: %w", err)
	}
	return oldValue.TypingCorrect, nil
}

// AddTypingCorrect adds i to the "typing_correct" field.
func (m *TermStatMutation) AddTypingCorrect(i int32) {
	if m.addtyping_correct != nil {
		*m.addtyping_correct += i
	} else {
		m.addtyping_correct = &i
	}
}

// AddedTypingCorrect returns the value that was added to the "typing_correct" field in this mutation.
func (m *TermStatMutation) AddedTypingCorrect() (r int32, exists bool) {
	v := m.addtyping_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTypingCorrect resets all changes to the "typing_correct" field.
func (m *TermStatMutation) ResetTypingCorrect() {
	m.typing_correct = nil
	m.addtyping_correct = nil
}

// SetTypingIncorrect sets the "typing_incorrect" field.
func (m *TermStatMutation) SetTypingIncorrect(i int32) {
	m.typing_incorrect = &i
	m.addtyping_incorrect = nil
}

// TypingIncorrect returns the value of the "typing_incorrect" field in the mutation.
func (m *TermStatMutation) TypingIncorrect() (r int32, exists bool) {
	v := m.typing_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldTypingIncorrect returns the old "typing_incorrect" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldTypingIncorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypingIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypingIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypingIncorrect: %w", err)
	}
	return oldValue.TypingIncorrect, nil
}

// AddTypingIncorrect adds i to the "typing_incorrect" field.
func (m *TermStatMutation) AddTypingIncorrect(i int32) {
	if m.addtyping_incorrect != nil {
		*m.addtyping_incorrect += i
	} else {
		m.addtyping_incorrect = &i
	}
}

// AddedTypingIncorrect returns the value that was added to the "typing_incorrect" field in this mutation.
func (m *TermStatMutation) AddedTypingIncorrect() (r int32, exists bool) {
	v := m.addtyping_incorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetTypingIncorrect resets all changes to the "typing_incorrect" field.
func (m *TermStatMutation) ResetTypingIncorrect() {
	m.typing_incorrect = nil
	m.addtyping_incorrect = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *TermStatMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *TermStatMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldLastSeen(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ClearLastSeen clears the value of the "last_seen" field.
func (m *TermStatMutation) ClearLastSeen() {
	m.last_seen = nil
	m.clearedFields[termstat.FieldLastSeen] = struct{}{}
}

// LastSeenCleared returns if the "last_seen" field was cleared in this mutation.
func (m *TermStatMutation) LastSeenCleared() bool {
	_, ok := m.clearedFields[termstat.FieldLastSeen]
	return ok
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *TermStatMutation) ResetLastSeen() {
	m.last_seen = nil
	delete(m.clearedFields, termstat.FieldLastSeen)
}

// SetLastCorrectAnswer sets the "last_correct_answer" field.
func (m *TermStatMutation) SetLastCorrectAnswer(t time.Time) {
	m.last_correct_answer = &t
}

// LastCorrectAnswer returns the value of the "last_correct_answer" field in the mutation.
func (m *TermStatMutation) LastCorrectAnswer() (r time.Time, exists bool) {
	v := m.last_correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCorrectAnswer returns the old "last_correct_answer" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldLastCorrectAnswer(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCorrectAnswer: %w", err)
	}
	return oldValue.LastCorrectAnswer, nil
}

// ClearLastCorrectAnswer clears the value of the "last_correct_answer" field.
func (m *TermStatMutation) ClearLastCorrectAnswer() {
	m.last_correct_answer = nil
	m.clearedFields[termstat.FieldLastCorrectAnswer] = struct{}{}
}

// LastCorrectAnswerCleared returns if the "last_correct_answer" field was cleared in this mutation.
func (m *TermStatMutation) LastCorrectAnswerCleared() bool {
	_, ok := m.clearedFields[termstat.FieldLastCorrectAnswer]
	return ok
}

// ResetLastCorrectAnswer resets all changes to the "last_correct_answer" field.
func (m *TermStatMutation) ResetLastCorrectAnswer() {
	m.last_correct_answer = nil
	delete(m.clearedFields, termstat.FieldLastCorrectAnswer)
}

// SetCreatedAt sets the "created_at" field.
func (m *TermStatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TermStatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TermStatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TermStatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TermStatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TermStat entity.
// If the TermStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TermStatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TermStatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TermStatMutation builder.
func (m *TermStatMutation) Where(ps ...predicate.TermStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TermStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TermStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TermStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TermStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TermStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TermStat).
func (m *TermStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TermStatMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.term_key != nil {
		fields = append(fields, termstat.FieldTermKey)
	}
	if m.exposed != nil {
		fields = append(fields, termstat.FieldExposed)
	}
	if m.mc_correct != nil {
		fields = append(fields, termstat.FieldMcCorrect)
	}
	if m.mc_incorrect != nil {
		fields = append(fields, termstat.FieldMcIncorrect)
	}
	if m.listening_easy_correct != nil {
		fields = append(fields, termstat.FieldListeningEasyCorrect)
	}
	if m.listening_easy_incorrect != nil {
		fields = append(fields, termstat.FieldListeningEasyIncorrect)
	}
	if m.listening_hard_correct != nil {
		fields = append(fields, termstat.FieldListeningHardCorrect)
	}
	if m.listening_hard_incorrect != nil {
		fields = append(fields, termstat.FieldListeningHardIncorrect)
	}
	if m.typing_correct != nil {
		fields = append(fields, termstat.FieldTypingCorrect)
	}
	if m.typing_incorrect != nil {
		fields = append(fields, termstat.FieldTypingIncorrect)
	}
	if m.last_seen != nil {
		fields = append(fields, termstat.FieldLastSeen)
	}
	if m.last_correct_answer != nil {
		fields = append(fields, termstat.FieldLastCorrectAnswer)
	}
	if m.created_at != nil {
		fields = append(fields, termstat.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, termstat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TermStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case termstat.FieldTermKey:
		return m.TermKey()
	case termstat.FieldExposed:
		return m.Exposed()
	case termstat.FieldMcCorrect:
		return m.McCorrect()
	case termstat.FieldMcIncorrect:
		return m.McIncorrect()
	case termstat.FieldListeningEasyCorrect:
		return m.ListeningEasyCorrect()
	case termstat.FieldListeningEasyIncorrect:
		return m.ListeningEasyIncorrect()
	case termstat.FieldListeningHardCorrect:
		return m.ListeningHardCorrect()
	case termstat.FieldListeningHardIncorrect:
		return m.ListeningHardIncorrect()
	case termstat.FieldTypingCorrect:
		return m.TypingCorrect()
	case termstat.FieldTypingIncorrect:
		return m.TypingIncorrect()
	case termstat.FieldLastSeen:
		return m.LastSeen()
	case termstat.FieldLastCorrectAnswer:
		return m.LastCorrectAnswer()
	case termstat.FieldCreatedAt:
		return m.CreatedAt()
	case termstat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TermStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case termstat.FieldTermKey:
		return m.OldTermKey(ctx)
	case termstat.FieldExposed:
		return m.OldExposed(ctx)
	case termstat.FieldMcCorrect:
		return m.OldMcCorrect(ctx)
	case termstat.FieldMcIncorrect:
		return m.OldMcIncorrect(ctx)
	case termstat.FieldListeningEasyCorrect:
		return m.OldListeningEasyCorrect(ctx)
	case termstat.FieldListeningEasyIncorrect:
		return m.OldListeningEasyIncorrect(ctx)
	case termstat.FieldListeningHardCorrect:
		return m.OldListeningHardCorrect(ctx)
	case termstat.FieldListeningHardIncorrect:
		return m.OldListeningHardIncorrect(ctx)
	case termstat.FieldTypingCorrect:
		return m.OldTypingCorrect(ctx)
	case termstat.FieldTypingIncorrect:
		return m.OldTypingIncorrect(ctx)
	case termstat.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case termstat.FieldLastCorrectAnswer:
		return m.OldLastCorrectAnswer(ctx)
	case termstat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case termstat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TermStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case termstat.FieldTermKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTermKey(v)
		return nil
	case termstat.FieldExposed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExposed(v)
		return nil
	case termstat.FieldMcCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcCorrect(v)
		return nil
	case termstat.FieldMcIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMcIncorrect(v)
		return nil
	case termstat.FieldListeningEasyCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListeningEasyCorrect(v)
		return nil
	case termstat.FieldListeningEasyIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListeningEasyIncorrect(v)
		return nil
	case termstat.FieldListeningHardCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListeningHardCorrect(v)
		return nil
	case termstat.FieldListeningHardIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListeningHardIncorrect(v)
		return nil
	case termstat.FieldTypingCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypingCorrect(v)
		return nil
	case termstat.FieldTypingIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypingIncorrect(v)
		return nil
	case termstat.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case termstat.FieldLastCorrectAnswer:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCorrectAnswer(v)
		return nil
	case termstat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case termstat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TermStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TermStatMutation) AddedFields() []string {
	var fields []string
	if m.addmc_correct != nil {
		fields = append(fields, termstat.FieldMcCorrect)
	}
	if m.addmc_incorrect != nil {
		fields = append(fields, termstat.FieldMcIncorrect)
	}
	if m.addlistening_easy_correct != nil {
		fields = append(fields, termstat.FieldListeningEasyCorrect)
	}
	if m.addlistening_easy_incorrect != nil {
		fields = append(fields, termstat.FieldListeningEasyIncorrect)
	}
	if m.addlistening_hard_correct != nil {
		fields = append(fields, termstat.FieldListeningHardCorrect)
	}
	if m.addlistening_hard_incorrect != nil {
		fields = append(fields, termstat.FieldListeningHardIncorrect)
	}
	if m.addtyping_correct != nil {
		fields = append(fields, termstat.FieldTypingCorrect)
	}
	if m.addtyping_incorrect != nil {
		fields = append(fields, termstat.FieldTypingIncorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TermStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case termstat.FieldMcCorrect:
		return m.AddedMcCorrect()
	case termstat.FieldMcIncorrect:
		return m.AddedMcIncorrect()
	case termstat.FieldListeningEasyCorrect:
		return m.AddedListeningEasyCorrect()
	case termstat.FieldListeningEasyIncorrect:
		return m.AddedListeningEasyIncorrect()
	case termstat.FieldListeningHardCorrect:
		return m.AddedListeningHardCorrect()
	case termstat.FieldListeningHardIncorrect:
		return m.AddedListeningHardIncorrect()
	case termstat.FieldTypingCorrect:
		return m.AddedTypingCorrect()
	case termstat.FieldTypingIncorrect:
		return m.AddedTypingIncorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TermStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case termstat.FieldMcCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMcCorrect(v)
		return nil
	case termstat.FieldMcIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMcIncorrect(v)
		return nil
	case termstat.FieldListeningEasyCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListeningEasyCorrect(v)
		return nil
	case termstat.FieldListeningEasyIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListeningEasyIncorrect(v)
		return nil
	case termstat.FieldListeningHardCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListeningHardCorrect(v)
		return nil
	case termstat.FieldListeningHardIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddListeningHardIncorrect(v)
		return nil
	case termstat.FieldTypingCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTypingCorrect(v)
		return nil
	case termstat.FieldTypingIncorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTypingIncorrect(v)
		return nil
	}
	return fmt.Errorf("unknown TermStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TermStatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(termstat.FieldLastSeen) {
		fields = append(fields, termstat.FieldLastSeen)
	}
	if m.FieldCleared(termstat.FieldLastCorrectAnswer) {
		fields = append(fields, termstat.FieldLastCorrectAnswer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TermStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TermStatMutation) ClearField(name string) error {
	switch name {
	case termstat.FieldLastSeen:
		m.ClearLastSeen()
		return nil
	case termstat.FieldLastCorrectAnswer:
		m.ClearLastCorrectAnswer()
		return nil
	}
	return fmt.Errorf("unknown TermStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TermStatMutation) ResetField(name string) error {
	switch name {
	case termstat.FieldTermKey:
		m.ResetTermKey()
		return nil
	case termstat.FieldExposed:
		m.ResetExposed()
		return nil
	case termstat.FieldMcCorrect:
		m.ResetMcCorrect()
		return nil
	case termstat.FieldMcIncorrect:
		m.ResetMcIncorrect()
		return nil
	case termstat.FieldListeningEasyCorrect:
		m.ResetListeningEasyCorrect()
		return nil
	case termstat.FieldListeningEasyIncorrect:
		m.ResetListeningEasyIncorrect()
		return nil
	case termstat.FieldListeningHardCorrect:
		m.ResetListeningHardCorrect()
		return nil
	case termstat.FieldListeningHardIncorrect:
		m.ResetListeningHardIncorrect()
		return nil
	case termstat.FieldTypingCorrect:
		m.ResetTypingCorrect()
		return nil
	case termstat.FieldTypingIncorrect:
		m.ResetTypingIncorrect()
		return nil
	case termstat.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case termstat.FieldLastCorrectAnswer:
		m.ResetLastCorrectAnswer()
		return nil
	case termstat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case termstat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TermStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TermStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TermStatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TermStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TermStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TermStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TermStatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TermStatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TermStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TermStatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TermStat edge %s", name)
}
