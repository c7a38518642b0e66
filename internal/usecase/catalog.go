package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

// WordPair is one wordlist entry as shipped in the corpus files.
type WordPair struct {
	English    string `json:"english"`
	Lithuanian string `json:"lithuanian"`
}

// Wordlist mirrors the corpus file layout: corpus -> group -> word pairs.
type Wordlist map[string]map[string][]WordPair

// ImportSummary reports what a wordlist import did.
type ImportSummary struct {
	Imported   int
	Skipped    int
	Duplicates []string
}

// CatalogUsecase manages the read-only term catalog the scheduler draws
// pools from. Writes only happen through wordlist imports.
type CatalogUsecase interface {
	ImportWordlist(ctx context.Context, r io.Reader) (*ImportSummary, error)
	ListTerms(ctx context.Context, query *repository.ListTermQuery) ([]entity.Term, int64, error)
	Corpora(ctx context.Context) ([]string, error)
}

// NewCatalogUsecase wires the repository with default behaviour.
func NewCatalogUsecase(repo repository.TermRepository, logger logrus.FieldLogger) CatalogUsecase {
	return &catalogUsecase{repo: repo, logger: logger}
}

type catalogUsecase struct {
	repo   repository.TermRepository
	logger logrus.FieldLogger
}

func (u *catalogUsecase) ImportWordlist(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	var wordlist Wordlist
	if err := json.NewDecoder(r).Decode(&wordlist); err != nil {
		return nil, fmt.Errorf("decode wordlist: %w", err)
	}

	summary := &ImportSummary{Duplicates: checkForDuplicates(wordlist)}
	for _, english := range summary.Duplicates {
		u.logger.WithField("word", english).Warn("wordlist carries duplicate english entry")
	}

	for _, corpus := range sortedKeys(wordlist) {
		groups := wordlist[corpus]
		for _, group := range sortedKeys(groups) {
			for _, pair := range groups[group] {
				term := &entity.Term{
					SourceText: pair.English,
					TargetText: pair.Lithuanian,
					Corpus:     corpus,
					Group:      group,
				}
				term.Normalize()
				if term.SourceText == "" || term.TargetText == "" {
					return nil, entity.ErrInvalidTermText
				}
				_, err := u.repo.Create(ctx, term)
				if err == entity.ErrDuplicateTerm {
					summary.Skipped++
					continue
				}
				if err != nil {
					return nil, fmt.Errorf("import %q: %w", term.Key(), err)
				}
				summary.Imported++
			}
		}
	}
	return summary, nil
}

func (u *catalogUsecase) ListTerms(ctx context.Context, query *repository.ListTermQuery) ([]entity.Term, int64, error) {
	if query == nil {
		query = &repository.ListTermQuery{}
	}
	if query.PageSize <= 0 {
		query.PageSize = 100
	}
	if query.PageNo <= 0 {
		query.PageNo = 1
	}
	return u.repo.List(ctx, query)
}

func (u *catalogUsecase) Corpora(ctx context.Context) ([]string, error) {
	return u.repo.Corpora(ctx)
}

// checkForDuplicates flags english words that appear more than once across
// the whole wordlist, either verbatim or with a different translation.
func checkForDuplicates(wordlist Wordlist) []string {
	translations := make(map[string][]string)
	for _, groups := range wordlist {
		for _, pairs := range groups {
			for _, pair := range pairs {
				key := entity.NormalizeWordToken(pair.English)
				if key == "" {
					continue
				}
				translations[key] = append(translations[key], pair.Lithuanian)
			}
		}
	}

	duplicates := lo.Keys(lo.PickBy(translations, func(_ string, seen []string) bool {
		return len(seen) > 1
	}))
	sort.Strings(duplicates)
	return duplicates
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
