package repository

import (
	"context"
	"fmt"

	"github.com/eslsoft/journey/internal/entity"
	entdb "github.com/eslsoft/journey/internal/infrastructure/database/ent"
	entterm "github.com/eslsoft/journey/internal/infrastructure/database/ent/term"
	"github.com/eslsoft/journey/internal/repository"
)

// TermRepository is the ent-backed catalog store.
type TermRepository struct {
	client *entdb.Client
}

// NewTermRepository constructs an ent-backed term repository.
func NewTermRepository(client *entdb.Client) repository.TermRepository {
	return &TermRepository{client: client}
}

func (r *TermRepository) Create(ctx context.Context, term *entity.Term) (*entity.Term, error) {
	if term.SourceText == "" || term.TargetText == "" {
		return nil, entity.ErrInvalidTermText
	}

	rec, err := r.client.Term.Create().
		SetSourceText(term.SourceText).
		SetTargetText(term.TargetText).
		SetSourceLang(term.SourceLang.Code()).
		SetTargetLang(term.TargetLang.Code()).
		SetCorpus(term.Corpus).
		SetGroupName(term.Group).
		Save(ctx)
	if err != nil {
		if entdb.IsConstraintError(err) {
			return nil, entity.ErrDuplicateTerm
		}
		return nil, fmt.Errorf("create term: %w", err)
	}
	return mapEntTerm(rec), nil
}

func (r *TermRepository) GetByKey(ctx context.Context, source, target string) (*entity.Term, error) {
	rec, err := r.client.Term.Query().
		Where(
			entterm.SourceTextEQ(source),
			entterm.TargetTextEQ(target),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrTermNotFound
		}
		return nil, fmt.Errorf("get term: %w", err)
	}
	return mapEntTerm(rec), nil
}

func (r *TermRepository) List(ctx context.Context, query *repository.ListTermQuery) ([]entity.Term, int64, error) {
	qbuilder := r.client.Term.Query()
	if query.Corpus != "" {
		qbuilder.Where(entterm.CorpusEQ(query.Corpus))
	}
	if query.Group != "" {
		qbuilder.Where(entterm.GroupNameEQ(query.Group))
	}

	total, err := qbuilder.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count terms: %w", err)
	}

	qbuilder.Order(entterm.ByID())
	if offset := query.Offset(); offset > 0 {
		qbuilder.Offset(int(offset))
	}
	if query.PageSize > 0 {
		qbuilder.Limit(int(query.PageSize))
	}

	rows, err := qbuilder.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list terms: %w", err)
	}

	results := make([]entity.Term, 0, len(rows))
	for _, row := range rows {
		results = append(results, *mapEntTerm(row))
	}
	return results, int64(total), nil
}

func (r *TermRepository) Corpora(ctx context.Context) ([]string, error) {
	corpora, err := r.client.Term.Query().
		Unique(true).
		Order(entterm.ByCorpus()).
		Select(entterm.FieldCorpus).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpora: %w", err)
	}
	return corpora, nil
}

func mapEntTerm(rec *entdb.Term) *entity.Term {
	if rec == nil {
		return nil
	}
	return &entity.Term{
		ID:         int64(rec.ID),
		SourceText: rec.SourceText,
		TargetText: rec.TargetText,
		Corpus:     rec.Corpus,
		Group:      rec.GroupName,
		SourceLang: entity.ParseLanguage(rec.SourceLang),
		TargetLang: entity.ParseLanguage(rec.TargetLang),
	}
}
