package entity

import "strings"

// Term represents a single vocabulary item from the read-only catalog.
// Identity is the (source, target) text pair; corpus and group carry the
// wordlist the pair was imported from.
type Term struct {
	ID         int64
	SourceText string
	TargetText string
	Corpus     string
	Group      string
	SourceLang Language
	TargetLang Language
}

// Key returns the identity key used to track stats and weights for a term.
func (t Term) Key() string {
	return t.SourceText + "|" + t.TargetText
}

// IsZero reports whether the term carries no identity.
func (t Term) IsZero() bool {
	return t.SourceText == "" && t.TargetText == ""
}

// Normalize ensures defaults & constraints before persistence.
func (t *Term) Normalize() {
	t.SourceText = strings.TrimSpace(t.SourceText)
	t.TargetText = strings.TrimSpace(t.TargetText)
	if t.SourceLang == LanguageUnspecified {
		t.SourceLang = LanguageEnglish
	}
	if t.TargetLang == LanguageUnspecified {
		t.TargetLang = LanguageLithuanian
	}
}

// TermFilter allows searching for catalog terms in repository implementations.
type TermFilter struct {
	Corpus  string
	Group   string
	Keyword string
	Limit   int32
	Offset  int32
}
