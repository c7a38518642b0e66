// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Term is the predicate function for term builders.
type Term func(*sql.Selector)

// TermStat is the predicate function for termstat builders.
type TermStat func(*sql.Selector)
