// Code generated by ent, DO NOT EDIT.

package termstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the termstat type in the database.
	Label = "term_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTermKey holds the string denoting the term_key field in the database.
	FieldTermKey = "term_key"
	// FieldExposed holds the string denoting the exposed field in the database.
	FieldExposed = "exposed"
	// FieldMcCorrect holds the string denoting the mc_correct field in the database.
	FieldMcCorrect = "mc_correct"
	// FieldMcIncorrect holds the string denoting the mc_incorrect field in the database.
	FieldMcIncorrect = "mc_incorrect"
	// FieldListeningEasyCorrect holds the string denoting the listening_easy_correct field in the database.
	FieldListeningEasyCorrect = "listening_easy_correct"
	// FieldListeningEasyIncorrect holds the string denoting the listening_easy_incorrect field in the database.
	FieldListeningEasyIncorrect = "listening_easy_incorrect"
	// FieldListeningHardCorrect holds the string denoting the listening_hard_correct field in the database.
	FieldListeningHardCorrect = "listening_hard_correct"
	// FieldListeningHardIncorrect holds the string denoting the listening_hard_incorrect field in the database.
	FieldListeningHardIncorrect = "listening_hard_incorrect"
	// FieldTypingCorrect holds the string denoting the typing_correct field in the database.
	FieldTypingCorrect = "typing_correct"
	// FieldTypingIncorrect holds the string denoting the typing_incorrect field in the database.
	FieldTypingIncorrect = "typing_incorrect"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldLastCorrectAnswer holds the string denoting the last_correct_answer field in the database.
	FieldLastCorrectAnswer = "last_correct_answer"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the termstat in the database.
	Table = "term_stats"
)

// Columns holds all SQL columns for termstat fields.
var Columns = []string{
	FieldID,
	FieldTermKey,
	FieldExposed,
	FieldMcCorrect,
	FieldMcIncorrect,
	FieldListeningEasyCorrect,
	FieldListeningEasyIncorrect,
	FieldListeningHardCorrect,
	FieldListeningHardIncorrect,
	FieldTypingCorrect,
	FieldTypingIncorrect,
	FieldLastSeen,
	FieldLastCorrectAnswer,
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
	// TermKeyValidator is a validator for the "term_key" field. It is called by the builders before save.
	TermKeyValidator func(string) error
	// DefaultExposed holds the default value on creation for the "exposed" field.
	DefaultExposed bool
	// DefaultMcCorrect holds the default value on creation for the "mc_correct" field.
	DefaultMcCorrect int32
	// DefaultMcIncorrect holds the default value on creation for the "mc_incorrect" field.
	DefaultMcIncorrect int32
	// DefaultListeningEasyCorrect holds the default value on creation for the "listening_easy_correct" field.
	DefaultListeningEasyCorrect int32
	// DefaultListeningEasyIncorrect holds the default value on creation for the "listening_easy_incorrect" field.
	DefaultListeningEasyIncorrect int32
	// DefaultListeningHardCorrect holds the default value on creation for the "listening_hard_correct" field.
	DefaultListeningHardCorrect int32
	// DefaultListeningHardIncorrect holds the default value on creation for the "listening_hard_incorrect" field.
	DefaultListeningHardIncorrect int32
	// DefaultTypingCorrect holds the default value on creation for the "typing_correct" field.
	DefaultTypingCorrect int32
	// DefaultTypingIncorrect holds the default value on creation for the "typing_incorrect" field.
	DefaultTypingIncorrect int32
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TermStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTermKey orders the results by the term_key field.
func ByTermKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTermKey, opts...).ToFunc()
}

// ByExposed orders the results by the exposed field.
func ByExposed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposed, opts...).ToFunc()
}

// ByMcCorrect orders the results by the mc_correct field.
func ByMcCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMcCorrect, opts...).ToFunc()
}

// ByMcIncorrect orders the results by the mc_incorrect field.
func ByMcIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMcIncorrect, opts...).ToFunc()
}

// ByListeningEasyCorrect orders the results by the listening_easy_correct field.
func ByListeningEasyCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListeningEasyCorrect, opts...).ToFunc()
}

// ByListeningEasyIncorrect orders the results by the listening_easy_incorrect field.
func ByListeningEasyIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListeningEasyIncorrect, opts...).ToFunc()
}

// ByListeningHardCorrect orders the results by the listening_hard_correct field.
func ByListeningHardCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListeningHardCorrect, opts...).ToFunc()
}

// ByListeningHardIncorrect orders the results by the listening_hard_incorrect field.
func ByListeningHardIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListeningHardIncorrect, opts...).ToFunc()
}

// ByTypingCorrect orders the results by the typing_correct field.
func ByTypingCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypingCorrect, opts...).ToFunc()
}

// ByTypingIncorrect orders the results by the typing_incorrect field.
func ByTypingIncorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypingIncorrect, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByLastCorrectAnswer orders the results by the last_correct_answer field.
func ByLastCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCorrectAnswer, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
