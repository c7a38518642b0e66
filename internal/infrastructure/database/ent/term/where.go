// Code generated by ent, DO NOT EDIT.

package term

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldID, id))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldSourceText, v))
}

// TargetText applies equality check predicate on the "target_text" field. It's identical to TargetTextEQ.
func TargetText(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldTargetText, v))
}

// SourceLang applies equality check predicate on the "source_lang" field. It's identical to SourceLangEQ.
func SourceLang(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldSourceLang, v))
}

// TargetLang applies equality check predicate on the "target_lang" field. It's identical to TargetLangEQ.
func TargetLang(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldTargetLang, v))
}

// Corpus applies equality check predicate on the "corpus" field. It's identical to CorpusEQ.
func Corpus(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldCorpus, v))
}

// GroupName applies equality check predicate on the "group_name" field. It's identical to GroupNameEQ.
func GroupName(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldGroupName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.Term {
	return predicate.Term(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.Term {
	return predicate.Term(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.Term {
	return predicate.Term(sql.FieldContainsFold(FieldSourceText, v))
}

// TargetTextEQ applies the EQ predicate on the "target_text" field.
func TargetTextEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldTargetText, v))
}

// TargetTextNEQ applies the NEQ predicate on the "target_text" field.
func TargetTextNEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldTargetText, v))
}

// TargetTextIn applies the In predicate on the "target_text" field.
func TargetTextIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldTargetText, vs...))
}

// TargetTextNotIn applies the NotIn predicate on the "target_text" field.
func TargetTextNotIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldTargetText, vs...))
}

// TargetTextGT applies the GT predicate on the "target_text" field.
func TargetTextGT(v string) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldTargetText, v))
}

// TargetTextGTE applies the GTE predicate on the "target_text" field.
func TargetTextGTE(v string) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldTargetText, v))
}

// TargetTextLT applies the LT predicate on the "target_text" field.
func TargetTextLT(v string) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldTargetText, v))
}

// TargetTextLTE applies the LTE predicate on the "target_text" field.
func TargetTextLTE(v string) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldTargetText, v))
}

// TargetTextContains applies the Contains predicate on the "target_text" field.
func TargetTextContains(v string) predicate.Term {
	return predicate.Term(sql.FieldContains(FieldTargetText, v))
}

// TargetTextHasPrefix applies the HasPrefix predicate on the "target_text" field.
func TargetTextHasPrefix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasPrefix(FieldTargetText, v))
}

// TargetTextHasSuffix applies the HasSuffix predicate on the "target_text" field.
func TargetTextHasSuffix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasSuffix(FieldTargetText, v))
}

// TargetTextEqualFold applies the EqualFold predicate on the "target_text" field.
func TargetTextEqualFold(v string) predicate.Term {
	return predicate.Term(sql.FieldEqualFold(FieldTargetText, v))
}

// TargetTextContainsFold applies the ContainsFold predicate on the "target_text" field.
func TargetTextContainsFold(v string) predicate.Term {
	return predicate.Term(sql.FieldContainsFold(FieldTargetText, v))
}

// SourceLangEQ applies the EQ predicate on the "source_lang" field.
func SourceLangEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldSourceLang, v))
}

// SourceLangNEQ applies the NEQ predicate on the "source_lang" field.
func SourceLangNEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldSourceLang, v))
}

// SourceLangIn applies the In predicate on the "source_lang" field.
func SourceLangIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldSourceLang, vs...))
}

// SourceLangNotIn applies the NotIn predicate on the "source_lang" field.
func SourceLangNotIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldSourceLang, vs...))
}

// SourceLangGT applies the GT predicate on the "source_lang" field.
func SourceLangGT(v string) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldSourceLang, v))
}

// SourceLangGTE applies the GTE predicate on the "source_lang" field.
func SourceLangGTE(v string) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldSourceLang, v))
}

// SourceLangLT applies the LT predicate on the "source_lang" field.
func SourceLangLT(v string) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldSourceLang, v))
}

// SourceLangLTE applies the LTE predicate on the "source_lang" field.
func SourceLangLTE(v string) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldSourceLang, v))
}

// SourceLangContains applies the Contains predicate on the "source_lang" field.
func SourceLangContains(v string) predicate.Term {
	return predicate.Term(sql.FieldContains(FieldSourceLang, v))
}

// SourceLangHasPrefix applies the HasPrefix predicate on the "source_lang" field.
func SourceLangHasPrefix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasPrefix(FieldSourceLang, v))
}

// SourceLangHasSuffix applies the HasSuffix predicate on the "source_lang" field.
func SourceLangHasSuffix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasSuffix(FieldSourceLang, v))
}

// SourceLangEqualFold applies the EqualFold predicate on the "source_lang" field.
func SourceLangEqualFold(v string) predicate.Term {
	return predicate.Term(sql.FieldEqualFold(FieldSourceLang, v))
}

// SourceLangContainsFold applies the ContainsFold predicate on the "source_lang" field.
func SourceLangContainsFold(v string) predicate.Term {
	return predicate.Term(sql.FieldContainsFold(FieldSourceLang, v))
}

// TargetLangEQ applies the EQ predicate on the "target_lang" field.
func TargetLangEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldTargetLang, v))
}

// TargetLangNEQ applies the NEQ predicate on the "target_lang" field.
func TargetLangNEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldTargetLang, v))
}

// TargetLangIn applies the In predicate on the "target_lang" field.
func TargetLangIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldTargetLang, vs...))
}

// TargetLangNotIn applies the NotIn predicate on the "target_lang" field.
func TargetLangNotIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldTargetLang, vs...))
}

// TargetLangGT applies the GT predicate on the "target_lang" field.
func TargetLangGT(v string) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldTargetLang, v))
}

// TargetLangGTE applies the GTE predicate on the "target_lang" field.
func TargetLangGTE(v string) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldTargetLang, v))
}

// TargetLangLT applies the LT predicate on the "target_lang" field.
func TargetLangLT(v string) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldTargetLang, v))
}

// TargetLangLTE applies the LTE predicate on the "target_lang" field.
func TargetLangLTE(v string) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldTargetLang, v))
}

// TargetLangContains applies the Contains predicate on the "target_lang" field.
func TargetLangContains(v string) predicate.Term {
	return predicate.Term(sql.FieldContains(FieldTargetLang, v))
}

// TargetLangHasPrefix applies the HasPrefix predicate on the "target_lang" field.
func TargetLangHasPrefix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasPrefix(FieldTargetLang, v))
}

// TargetLangHasSuffix applies the HasSuffix predicate on the "target_lang" field.
func TargetLangHasSuffix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasSuffix(FieldTargetLang, v))
}

// TargetLangEqualFold applies the EqualFold predicate on the "target_lang" field.
func TargetLangEqualFold(v string) predicate.Term {
	return predicate.Term(sql.FieldEqualFold(FieldTargetLang, v))
}

// TargetLangContainsFold applies the ContainsFold predicate on the "target_lang" field.
func TargetLangContainsFold(v string) predicate.Term {
	return predicate.Term(sql.FieldContainsFold(FieldTargetLang, v))
}

// CorpusEQ applies the EQ predicate on the "corpus" field.
func CorpusEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldCorpus, v))
}

// CorpusNEQ applies the NEQ predicate on the "corpus" field.
func CorpusNEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldCorpus, v))
}

// CorpusIn applies the In predicate on the "corpus" field.
func CorpusIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldCorpus, vs...))
}

// CorpusNotIn applies the NotIn predicate on the "corpus" field.
func CorpusNotIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldCorpus, vs...))
}

// CorpusGT applies the GT predicate on the "corpus" field.
func CorpusGT(v string) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldCorpus, v))
}

// CorpusGTE applies the GTE predicate on the "corpus" field.
func CorpusGTE(v string) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldCorpus, v))
}

// CorpusLT applies the LT predicate on the "corpus" field.
func CorpusLT(v string) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldCorpus, v))
}

// CorpusLTE applies the LTE predicate on the "corpus" field.
func CorpusLTE(v string) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldCorpus, v))
}

// CorpusContains applies the Contains predicate on the "corpus" field.
func CorpusContains(v string) predicate.Term {
	return predicate.Term(sql.FieldContains(FieldCorpus, v))
}

// CorpusHasPrefix applies the HasPrefix predicate on the "corpus" field.
func CorpusHasPrefix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasPrefix(FieldCorpus, v))
}

// CorpusHasSuffix applies the HasSuffix predicate on the "corpus" field.
func CorpusHasSuffix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasSuffix(FieldCorpus, v))
}

// CorpusEqualFold applies the EqualFold predicate on the "corpus" field.
func CorpusEqualFold(v string) predicate.Term {
	return predicate.Term(sql.FieldEqualFold(FieldCorpus, v))
}

// CorpusContainsFold applies the ContainsFold predicate on the "corpus" field.
func CorpusContainsFold(v string) predicate.Term {
	return predicate.Term(sql.FieldContainsFold(FieldCorpus, v))
}

// GroupNameEQ applies the EQ predicate on the "group_name" field.
func GroupNameEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldGroupName, v))
}

// GroupNameNEQ applies the NEQ predicate on the "group_name" field.
func GroupNameNEQ(v string) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldGroupName, v))
}

// GroupNameIn applies the In predicate on the "group_name" field.
func GroupNameIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldGroupName, vs...))
}

// GroupNameNotIn applies the NotIn predicate on the "group_name" field.
func GroupNameNotIn(vs ...string) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldGroupName, vs...))
}

// GroupNameGT applies the GT predicate on the "group_name" field.
func GroupNameGT(v string) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldGroupName, v))
}

// GroupNameGTE applies the GTE predicate on the "group_name" field.
func GroupNameGTE(v string) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldGroupName, v))
}

// GroupNameLT applies the LT predicate on the "group_name" field.
func GroupNameLT(v string) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldGroupName, v))
}

// GroupNameLTE applies the LTE predicate on the "group_name" field.
func GroupNameLTE(v string) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldGroupName, v))
}

// GroupNameContains applies the Contains predicate on the "group_name" field.
func GroupNameContains(v string) predicate.Term {
	return predicate.Term(sql.FieldContains(FieldGroupName, v))
}

// GroupNameHasPrefix applies the HasPrefix predicate on the "group_name" field.
func GroupNameHasPrefix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasPrefix(FieldGroupName, v))
}

// GroupNameHasSuffix applies the HasSuffix predicate on the "group_name" field.
func GroupNameHasSuffix(v string) predicate.Term {
	return predicate.Term(sql.FieldHasSuffix(FieldGroupName, v))
}

// GroupNameEqualFold applies the EqualFold predicate on the "group_name" field.
func GroupNameEqualFold(v string) predicate.Term {
	return predicate.Term(sql.FieldEqualFold(FieldGroupName, v))
}

// GroupNameContainsFold applies the ContainsFold predicate on the "group_name" field.
func GroupNameContainsFold(v string) predicate.Term {
	return predicate.Term(sql.FieldContainsFold(FieldGroupName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Term {
	return predicate.Term(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Term {
	return predicate.Term(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Term {
	return predicate.Term(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Term) predicate.Term {
	return predicate.Term(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Term) predicate.Term {
	return predicate.Term(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Term) predicate.Term {
	return predicate.Term(sql.NotPredicates(p))
}
