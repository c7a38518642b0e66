// Code generated by ent, DO NOT EDIT.

package termstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldID, id))
}

// TermKey applies equality check predicate on the "term_key" field. It's identical to TermKeyEQ.
func TermKey(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldTermKey, v))
}

// Exposed applies equality check predicate on the "exposed" field. It's identical to ExposedEQ.
func Exposed(v bool) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldExposed, v))
}

// McCorrect applies equality check predicate on the "mc_correct" field. It's identical to McCorrectEQ.
func McCorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldMcCorrect, v))
}

// McIncorrect applies equality check predicate on the "mc_incorrect" field. It's identical to McIncorrectEQ.
func McIncorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldMcIncorrect, v))
}

// ListeningEasyCorrect applies equality check predicate on the "listening_easy_correct" field. It's identical to ListeningEasyCorrectEQ.
func ListeningEasyCorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningEasyCorrect, v))
}

// ListeningEasyIncorrect applies equality check predicate on the "listening_easy_incorrect" field. It's identical to ListeningEasyIncorrectEQ.
func ListeningEasyIncorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningEasyIncorrect, v))
}

// ListeningHardCorrect applies equality check predicate on the "listening_hard_correct" field. It's identical to ListeningHardCorrectEQ.
func ListeningHardCorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningHardCorrect, v))
}

// ListeningHardIncorrect applies equality check predicate on the "listening_hard_incorrect" field. It's identical to ListeningHardIncorrectEQ.
func ListeningHardIncorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningHardIncorrect, v))
}

// TypingCorrect applies equality check predicate on the "typing_correct" field. It's identical to TypingCorrectEQ.
func TypingCorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldTypingCorrect, v))
}

// TypingIncorrect applies equality check predicate on the "typing_incorrect" field. It's identical to TypingIncorrectEQ.
func TypingIncorrect(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldTypingIncorrect, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldLastSeen, v))
}

// LastCorrectAnswer applies equality check predicate on the "last_correct_answer" field. It's identical to LastCorrectAnswerEQ.
func LastCorrectAnswer(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldLastCorrectAnswer, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// TermKeyEQ applies the EQ predicate on the "term_key" field.
func TermKeyEQ(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldTermKey, v))
}

// TermKeyNEQ applies the NEQ predicate on the "term_key" field.
func TermKeyNEQ(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldTermKey, v))
}

// TermKeyIn applies the In predicate on the "term_key" field.
func TermKeyIn(vs ...string) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldTermKey, vs...))
}

// TermKeyNotIn applies the NotIn predicate on the "term_key" field.
func TermKeyNotIn(vs ...string) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldTermKey, vs...))
}

// TermKeyGT applies the GT predicate on the "term_key" field.
func TermKeyGT(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldTermKey, v))
}

// TermKeyGTE applies the GTE predicate on the "term_key" field.
func TermKeyGTE(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldTermKey, v))
}

// TermKeyLT applies the LT predicate on the "term_key" field.
func TermKeyLT(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldTermKey, v))
}

// TermKeyLTE applies the LTE predicate on the "term_key" field.
func TermKeyLTE(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldTermKey, v))
}

// TermKeyContains applies the Contains predicate on the "term_key" field.
func TermKeyContains(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldContains(FieldTermKey, v))
}

// TermKeyHasPrefix applies the HasPrefix predicate on the "term_key" field.
func TermKeyHasPrefix(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldHasPrefix(FieldTermKey, v))
}

// TermKeyHasSuffix applies the HasSuffix predicate on the "term_key" field.
func TermKeyHasSuffix(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldHasSuffix(FieldTermKey, v))
}

// TermKeyEqualFold applies the EqualFold predicate on the "term_key" field.
func TermKeyEqualFold(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldEqualFold(FieldTermKey, v))
}

// TermKeyContainsFold applies the ContainsFold predicate on the "term_key" field.
func TermKeyContainsFold(v string) predicate.TermStat {
	return predicate.TermStat(sql.FieldContainsFold(FieldTermKey, v))
}

// ExposedEQ applies the EQ predicate on the "exposed" field.
func ExposedEQ(v bool) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldExposed, v))
}

// ExposedNEQ applies the NEQ predicate on the "exposed" field.
func ExposedNEQ(v bool) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldExposed, v))
}

// McCorrectEQ applies the EQ predicate on the "mc_correct" field.
func McCorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldMcCorrect, v))
}

// McCorrectNEQ applies the NEQ predicate on the "mc_correct" field.
func McCorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldMcCorrect, v))
}

// McCorrectIn applies the In predicate on the "mc_correct" field.
func McCorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldMcCorrect, vs...))
}

// McCorrectNotIn applies the NotIn predicate on the "mc_correct" field.
func McCorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldMcCorrect, vs...))
}

// McCorrectGT applies the GT predicate on the "mc_correct" field.
func McCorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldMcCorrect, v))
}

// McCorrectGTE applies the GTE predicate on the "mc_correct" field.
func McCorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldMcCorrect, v))
}

// McCorrectLT applies the LT predicate on the "mc_correct" field.
func McCorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldMcCorrect, v))
}

// McCorrectLTE applies the LTE predicate on the "mc_correct" field.
func McCorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldMcCorrect, v))
}

// McIncorrectEQ applies the EQ predicate on the "mc_incorrect" field.
func McIncorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldMcIncorrect, v))
}

// McIncorrectNEQ applies the NEQ predicate on the "mc_incorrect" field.
func McIncorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldMcIncorrect, v))
}

// McIncorrectIn applies the In predicate on the "mc_incorrect" field.
func McIncorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldMcIncorrect, vs...))
}

// McIncorrectNotIn applies the NotIn predicate on the "mc_incorrect" field.
func McIncorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldMcIncorrect, vs...))
}

// McIncorrectGT applies the GT predicate on the "mc_incorrect" field.
func McIncorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldMcIncorrect, v))
}

// McIncorrectGTE applies the GTE predicate on the "mc_incorrect" field.
func McIncorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldMcIncorrect, v))
}

// McIncorrectLT applies the LT predicate on the "mc_incorrect" field.
func McIncorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldMcIncorrect, v))
}

// McIncorrectLTE applies the LTE predicate on the "mc_incorrect" field.
func McIncorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldMcIncorrect, v))
}

// ListeningEasyCorrectEQ applies the EQ predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningEasyCorrect, v))
}

// ListeningEasyCorrectNEQ applies the NEQ predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldListeningEasyCorrect, v))
}

// ListeningEasyCorrectIn applies the In predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldListeningEasyCorrect, vs...))
}

// ListeningEasyCorrectNotIn applies the NotIn predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldListeningEasyCorrect, vs...))
}

// ListeningEasyCorrectGT applies the GT predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldListeningEasyCorrect, v))
}

// ListeningEasyCorrectGTE applies the GTE predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldListeningEasyCorrect, v))
}

// ListeningEasyCorrectLT applies the LT predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldListeningEasyCorrect, v))
}

// ListeningEasyCorrectLTE applies the LTE predicate on the "listening_easy_correct" field.
func ListeningEasyCorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldListeningEasyCorrect, v))
}

// ListeningEasyIncorrectEQ applies the EQ predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningEasyIncorrect, v))
}

// ListeningEasyIncorrectNEQ applies the NEQ predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldListeningEasyIncorrect, v))
}

// ListeningEasyIncorrectIn applies the In predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldListeningEasyIncorrect, vs...))
}

// ListeningEasyIncorrectNotIn applies the NotIn predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldListeningEasyIncorrect, vs...))
}

// ListeningEasyIncorrectGT applies the GT predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldListeningEasyIncorrect, v))
}

// ListeningEasyIncorrectGTE applies the GTE predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldListeningEasyIncorrect, v))
}

// ListeningEasyIncorrectLT applies the LT predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldListeningEasyIncorrect, v))
}

// ListeningEasyIncorrectLTE applies the LTE predicate on the "listening_easy_incorrect" field.
func ListeningEasyIncorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldListeningEasyIncorrect, v))
}

// ListeningHardCorrectEQ applies the EQ predicate on the "listening_hard_correct" field.
func ListeningHardCorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningHardCorrect, v))
}

// ListeningHardCorrectNEQ applies the NEQ predicate on the "listening_hard_correct" field.
func ListeningHardCorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldListeningHardCorrect, v))
}

// ListeningHardCorrectIn applies the In predicate on the "listening_hard_correct" field.
func ListeningHardCorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldListeningHardCorrect, vs...))
}

// ListeningHardCorrectNotIn applies the NotIn predicate on the "listening_hard_correct" field.
func ListeningHardCorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldListeningHardCorrect, vs...))
}

// ListeningHardCorrectGT applies the GT predicate on the "listening_hard_correct" field.
func ListeningHardCorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldListeningHardCorrect, v))
}

// ListeningHardCorrectGTE applies the GTE predicate on the "listening_hard_correct" field.
func ListeningHardCorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldListeningHardCorrect, v))
}

// ListeningHardCorrectLT applies the LT predicate on the "listening_hard_correct" field.
func ListeningHardCorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldListeningHardCorrect, v))
}

// ListeningHardCorrectLTE applies the LTE predicate on the "listening_hard_correct" field.
func ListeningHardCorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldListeningHardCorrect, v))
}

// ListeningHardIncorrectEQ applies the EQ predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldListeningHardIncorrect, v))
}

// ListeningHardIncorrectNEQ applies the NEQ predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldListeningHardIncorrect, v))
}

// ListeningHardIncorrectIn applies the In predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldListeningHardIncorrect, vs...))
}

// ListeningHardIncorrectNotIn applies the NotIn predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldListeningHardIncorrect, vs...))
}

// ListeningHardIncorrectGT applies the GT predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldListeningHardIncorrect, v))
}

// ListeningHardIncorrectGTE applies the GTE predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldListeningHardIncorrect, v))
}

// ListeningHardIncorrectLT applies the LT predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldListeningHardIncorrect, v))
}

// ListeningHardIncorrectLTE applies the LTE predicate on the "listening_hard_incorrect" field.
func ListeningHardIncorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldListeningHardIncorrect, v))
}

// TypingCorrectEQ applies the EQ predicate on the "typing_correct" field.
func TypingCorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldTypingCorrect, v))
}

// TypingCorrectNEQ applies the NEQ predicate on the "typing_correct" field.
func TypingCorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldTypingCorrect, v))
}

// TypingCorrectIn applies the In predicate on the "typing_correct" field.
func TypingCorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldTypingCorrect, vs...))
}

// TypingCorrectNotIn applies the NotIn predicate on the "typing_correct" field.
func TypingCorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldTypingCorrect, vs...))
}

// TypingCorrectGT applies the GT predicate on the "typing_correct" field.
func TypingCorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldTypingCorrect, v))
}

// TypingCorrectGTE applies the GTE predicate on the "typing_correct" field.
func TypingCorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldTypingCorrect, v))
}

// TypingCorrectLT applies the LT predicate on the "typing_correct" field.
func TypingCorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldTypingCorrect, v))
}

// TypingCorrectLTE applies the LTE predicate on the "typing_correct" field.
func TypingCorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldTypingCorrect, v))
}

// TypingIncorrectEQ applies the EQ predicate on the "typing_incorrect" field.
func TypingIncorrectEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldTypingIncorrect, v))
}

// TypingIncorrectNEQ applies the NEQ predicate on the "typing_incorrect" field.
func TypingIncorrectNEQ(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldTypingIncorrect, v))
}

// TypingIncorrectIn applies the In predicate on the "typing_incorrect" field.
func TypingIncorrectIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldTypingIncorrect, vs...))
}

// TypingIncorrectNotIn applies the NotIn predicate on the "typing_incorrect" field.
func TypingIncorrectNotIn(vs ...int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldTypingIncorrect, vs...))
}

// TypingIncorrectGT applies the GT predicate on the "typing_incorrect" field.
func TypingIncorrectGT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldTypingIncorrect, v))
}

// TypingIncorrectGTE applies the GTE predicate on the "typing_incorrect" field.
func TypingIncorrectGTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldTypingIncorrect, v))
}

// TypingIncorrectLT applies the LT predicate on the "typing_incorrect" field.
func TypingIncorrectLT(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldTypingIncorrect, v))
}

// TypingIncorrectLTE applies the LTE predicate on the "typing_incorrect" field.
func TypingIncorrectLTE(v int32) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldTypingIncorrect, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldLastSeen, v))
}

// LastSeenIsNil applies the IsNil predicate on the "last_seen" field.
func LastSeenIsNil() predicate.TermStat {
	return predicate.TermStat(sql.FieldIsNull(FieldLastSeen))
}

// LastSeenNotNil applies the NotNil predicate on the "last_seen" field.
func LastSeenNotNil() predicate.TermStat {
	return predicate.TermStat(sql.FieldNotNull(FieldLastSeen))
}

// LastCorrectAnswerEQ applies the EQ predicate on the "last_correct_answer" field.
func LastCorrectAnswerEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldLastCorrectAnswer, v))
}

// LastCorrectAnswerNEQ applies the NEQ predicate on the "last_correct_answer" field.
func LastCorrectAnswerNEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldLastCorrectAnswer, v))
}

// LastCorrectAnswerIn applies the In predicate on the "last_correct_answer" field.
func LastCorrectAnswerIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldLastCorrectAnswer, vs...))
}

// LastCorrectAnswerNotIn applies the NotIn predicate on the "last_correct_answer" field.
func LastCorrectAnswerNotIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldLastCorrectAnswer, vs...))
}

// LastCorrectAnswerGT applies the GT predicate on the "last_correct_answer" field.
func LastCorrectAnswerGT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldLastCorrectAnswer, v))
}

// LastCorrectAnswerGTE applies the GTE predicate on the "last_correct_answer" field.
func LastCorrectAnswerGTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldLastCorrectAnswer, v))
}

// LastCorrectAnswerLT applies the LT predicate on the "last_correct_answer" field.
func LastCorrectAnswerLT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldLastCorrectAnswer, v))
}

// LastCorrectAnswerLTE applies the LTE predicate on the "last_correct_answer" field.
func LastCorrectAnswerLTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldLastCorrectAnswer, v))
}

// LastCorrectAnswerIsNil applies the IsNil predicate on the "last_correct_answer" field.
func LastCorrectAnswerIsNil() predicate.TermStat {
	return predicate.TermStat(sql.FieldIsNull(FieldLastCorrectAnswer))
}

// LastCorrectAnswerNotNil applies the NotNil predicate on the "last_correct_answer" field.
func LastCorrectAnswerNotNil() predicate.TermStat {
	return predicate.TermStat(sql.FieldNotNull(FieldLastCorrectAnswer))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TermStat {
	return predicate.TermStat(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TermStat) predicate.TermStat {
	return predicate.TermStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TermStat) predicate.TermStat {
	return predicate.TermStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TermStat) predicate.TermStat {
	return predicate.TermStat(sql.NotPredicates(p))
}
