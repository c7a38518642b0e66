// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/eslsoft/journey/internal/infrastructure/database/ent/term"
	"github.com/eslsoft/journey/internal/infrastructure/database/ent/termstat"
	"github.com/eslsoft/journey/internal/infrastructure/database/entschema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	termFields := entschema.Term{}.Fields()
	_ = termFields
	// termDescSourceText is the schema descriptor for source_text field.
	termDescSourceText := termFields[0].Descriptor()
	// term.SourceTextValidator is a validator for the "source_text" field. It is called by the builders before save.
	term.SourceTextValidator = termDescSourceText.Validators[0].(func(string) error)
	// termDescTargetText is the schema descriptor for target_text field.
	termDescTargetText := termFields[1].Descriptor()
	// term.TargetTextValidator is a validator for the "target_text" field. It is called by the builders before save.
	term.TargetTextValidator = termDescTargetText.Validators[0].(func(string) error)
	// termDescSourceLang is the schema descriptor for source_lang field.
	termDescSourceLang := termFields[2].Descriptor()
	// term.DefaultSourceLang holds the default value on creation for the source_lang field.
	term.DefaultSourceLang = termDescSourceLang.Default.(string)
	// termDescTargetLang is the schema descriptor for target_lang field.
	termDescTargetLang := termFields[3].Descriptor()
	// term.DefaultTargetLang holds the default value on creation for the target_lang field.
	term.DefaultTargetLang = termDescTargetLang.Default.(string)
	// termDescCorpus is the schema descriptor for corpus field.
	termDescCorpus := termFields[4].Descriptor()
	// term.DefaultCorpus holds the default value on creation for the corpus field.
	term.DefaultCorpus = termDescCorpus.Default.(string)
	// termDescGroupName is the schema descriptor for group_name field.
	termDescGroupName := termFields[5].Descriptor()
	// term.DefaultGroupName holds the default value on creation for the group_name field.
	term.DefaultGroupName = termDescGroupName.Default.(string)
	// termDescCreatedAt is the schema descriptor for created_at field.
	termDescCreatedAt := termFields[6].Descriptor()
	// term.DefaultCreatedAt holds the default value on creation for the created_at field.
	term.DefaultCreatedAt = termDescCreatedAt.Default.(func() time.Time)
	// termDescUpdatedAt is the schema descriptor for updated_at field.
	termDescUpdatedAt := termFields[7].Descriptor()
	// term.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	term.DefaultUpdatedAt = termDescUpdatedAt.Default.(func() time.Time)
	// term.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	term.UpdateDefaultUpdatedAt = termDescUpdatedAt.UpdateDefault.(func() time.Time)
	termstatFields := entschema.TermStat{}.Fields()
	_ = termstatFields
	// termstatDescTermKey is the schema descriptor for term_key field.
	termstatDescTermKey := termstatFields[0].Descriptor()
	// termstat.TermKeyValidator is a validator for the "term_key" field. It is called by the builders before save.
	termstat.TermKeyValidator = termstatDescTermKey.Validators[0].(func(string) error)
	// termstatDescExposed is the schema descriptor for exposed field.
	termstatDescExposed := termstatFields[1].Descriptor()
	// termstat.DefaultExposed holds the default value on creation for the exposed field.
	termstat.DefaultExposed = termstatDescExposed.Default.(bool)
	// termstatDescMcCorrect is the schema descriptor for mc_correct field.
	termstatDescMcCorrect := termstatFields[2].Descriptor()
	// termstat.DefaultMcCorrect holds the default value on creation for the mc_correct field.
	termstat.DefaultMcCorrect = termstatDescMcCorrect.Default.(int32)
	// termstatDescMcIncorrect is the schema descriptor for mc_incorrect field.
	termstatDescMcIncorrect := termstatFields[3].Descriptor()
	// termstat.DefaultMcIncorrect holds the default value on creation for the mc_incorrect field.
	termstat.DefaultMcIncorrect = termstatDescMcIncorrect.Default.(int32)
	// termstatDescListeningEasyCorrect is the schema descriptor for listening_easy_correct field.
	termstatDescListeningEasyCorrect := termstatFields[4].Descriptor()
	// termstat.DefaultListeningEasyCorrect holds the default value on creation for the listening_easy_correct field.
	termstat.DefaultListeningEasyCorrect = termstatDescListeningEasyCorrect.Default.(int32)
	// termstatDescListeningEasyIncorrect is the schema descriptor for listening_easy_incorrect field.
	termstatDescListeningEasyIncorrect := termstatFields[5].Descriptor()
	// termstat.DefaultListeningEasyIncorrect holds the default value on creation for the listening_easy_incorrect field.
	termstat.DefaultListeningEasyIncorrect = termstatDescListeningEasyIncorrect.Default.(int32)
	// termstatDescListeningHardCorrect is the schema descriptor for listening_hard_correct field.
	termstatDescListeningHardCorrect := termstatFields[6].Descriptor()
	// termstat.DefaultListeningHardCorrect holds the default value on creation for the listening_hard_correct field.
	termstat.DefaultListeningHardCorrect = termstatDescListeningHardCorrect.Default.(int32)
	// termstatDescListeningHardIncorrect is the schema descriptor for listening_hard_incorrect field.
	termstatDescListeningHardIncorrect := termstatFields[7].Descriptor()
	// termstat.DefaultListeningHardIncorrect holds the default value on creation for the listening_hard_incorrect field.
	termstat.DefaultListeningHardIncorrect = termstatDescListeningHardIncorrect.Default.(int32)
	// termstatDescTypingCorrect is the schema descriptor for typing_correct field.
	termstatDescTypingCorrect := termstatFields[8].Descriptor()
	// termstat.DefaultTypingCorrect holds the default value on creation for the typing_correct field.
	termstat.DefaultTypingCorrect = termstatDescTypingCorrect.Default.(int32)
	// termstatDescTypingIncorrect is the schema descriptor for typing_incorrect field.
	termstatDescTypingIncorrect := termstatFields[9].Descriptor()
	// termstat.DefaultTypingIncorrect holds the default value on creation for the typing_incorrect field.
	termstat.DefaultTypingIncorrect = termstatDescTypingIncorrect.Default.(int32)
	// termstatDescCreatedAt is the schema descriptor for created_at field.
	termstatDescCreatedAt := termstatFields[12].Descriptor()
	// termstat.DefaultCreatedAt holds the default value on creation for the created_at field.
	termstat.DefaultCreatedAt = termstatDescCreatedAt.Default.(func() time.Time)
	// termstatDescUpdatedAt is the schema descriptor for updated_at field.
	termstatDescUpdatedAt := termstatFields[13].Descriptor()
	// termstat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	termstat.DefaultUpdatedAt = termstatDescUpdatedAt.Default.(func() time.Time)
	// termstat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	termstat.UpdateDefaultUpdatedAt = termstatDescUpdatedAt.UpdateDefault.(func() time.Time)
}
