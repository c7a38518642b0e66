// Code generated by ent, DO NOT EDIT.

package term

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the term type in the database.
	Label = "term"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceText holds the string denoting the source_text field in the database.
	FieldSourceText = "source_text"
	// FieldTargetText holds the string denoting the target_text field in the database.
	FieldTargetText = "target_text"
	// FieldSourceLang holds the string denoting the source_lang field in the database.
	FieldSourceLang = "source_lang"
	// FieldTargetLang holds the string denoting the target_lang field in the database.
	FieldTargetLang = "target_lang"
	// FieldCorpus holds the string denoting the corpus field in the database.
	FieldCorpus = "corpus"
	// FieldGroupName holds the string denoting the group_name field in the database.
	FieldGroupName = "group_name"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the term in the database.
	Table = "terms"
)

// Columns holds all SQL columns for term fields.
var Columns = []string{
	FieldID,
	FieldSourceText,
	FieldTargetText,
	FieldSourceLang,
	FieldTargetLang,
	FieldCorpus,
	FieldGroupName,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceTextValidator is a validator for the "source_text" field. It is called by the builders before save.
	SourceTextValidator func(string) error
	// TargetTextValidator is a validator for the "target_text" field. It is called by the builders before save.
	TargetTextValidator func(string) error
	// DefaultSourceLang holds the default value on creation for the "source_lang" field.
	DefaultSourceLang string
	// DefaultTargetLang holds the default value on creation for the "target_lang" field.
	DefaultTargetLang string
	// DefaultCorpus holds the default value on creation for the "corpus" field.
	DefaultCorpus string
	// DefaultGroupName holds the default value on creation for the "group_name" field.
	DefaultGroupName string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Term queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceText orders the results by the source_text field.
func BySourceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceText, opts...).ToFunc()
}

// ByTargetText orders the results by the target_text field.
func ByTargetText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetText, opts...).ToFunc()
}

// BySourceLang orders the results by the source_lang field.
func BySourceLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLang, opts...).ToFunc()
}

// ByTargetLang orders the results by the target_lang field.
func ByTargetLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLang, opts...).ToFunc()
}

// ByCorpus orders the results by the corpus field.
func ByCorpus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorpus, opts...).ToFunc()
}

// ByGroupName orders the results by the group_name field.
func ByGroupName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupName, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
