package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/eslsoft/journey/internal/entity"
	entdb "github.com/eslsoft/journey/internal/infrastructure/database/ent"
	enttermstat "github.com/eslsoft/journey/internal/infrastructure/database/ent/termstat"
	"github.com/eslsoft/journey/internal/repository"
)

const correctTotalExpr = "(mc_correct + listening_easy_correct + listening_hard_correct + typing_correct)"

// TermStatsRepository is the ent-backed store for per-term exercise stats.
type TermStatsRepository struct {
	client *entdb.Client
}

// NewTermStatsRepository constructs an ent-backed term stats repository.
func NewTermStatsRepository(client *entdb.Client) repository.TermStatsRepository {
	return &TermStatsRepository{client: client}
}

func (r *TermStatsRepository) Upsert(ctx context.Context, stats *entity.TermStats) (*entity.TermStats, error) {
	if stats.TermKey == "" {
		return nil, entity.ErrInvalidTermText
	}

	builder := r.client.TermStat.Create().
		SetTermKey(stats.TermKey).
		SetExposed(stats.Exposed).
		SetMcCorrect(stats.MultipleChoice.Correct).
		SetMcIncorrect(stats.MultipleChoice.Incorrect).
		SetListeningEasyCorrect(stats.ListeningEasy.Correct).
		SetListeningEasyIncorrect(stats.ListeningEasy.Incorrect).
		SetListeningHardCorrect(stats.ListeningHard.Correct).
		SetListeningHardIncorrect(stats.ListeningHard.Incorrect).
		SetTypingCorrect(stats.Typing.Correct).
		SetTypingIncorrect(stats.Typing.Incorrect).
		SetNillableLastSeen(stats.LastSeen).
		SetNillableLastCorrectAnswer(stats.LastCorrectAnswer)

	// Last write wins on conflict; counters are absolute values, not deltas.
	err := builder.
		OnConflictColumns(enttermstat.FieldTermKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert term stats: %w", err)
	}

	return r.GetByTermKey(ctx, stats.TermKey)
}

func (r *TermStatsRepository) GetByTermKey(ctx context.Context, termKey string) (*entity.TermStats, error) {
	rec, err := r.client.TermStat.Query().
		Where(enttermstat.TermKeyEQ(termKey)).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrTermStatsNotFound
		}
		return nil, fmt.Errorf("get term stats: %w", err)
	}
	return mapEntTermStat(rec), nil
}

func (r *TermStatsRepository) List(ctx context.Context, query *repository.ListTermStatsQuery) ([]entity.TermStats, int64, error) {
	if err := bindTermStatsQuery(query); err != nil {
		return nil, 0, err
	}

	qbuilder := r.client.TermStat.Query()
	applyTermStatsFilters(qbuilder, query)

	total, err := qbuilder.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count term stats: %w", err)
	}

	applyTermStatsOrdering(qbuilder, query)

	if offset := query.Offset(); offset > 0 {
		qbuilder.Offset(int(offset))
	}
	if query.PageSize > 0 {
		qbuilder.Limit(int(query.PageSize))
	}

	rows, err := qbuilder.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list term stats: %w", err)
	}

	results := make([]entity.TermStats, 0, len(rows))
	for _, row := range rows {
		results = append(results, *mapEntTermStat(row))
	}
	return results, int64(total), nil
}

func (r *TermStatsRepository) Delete(ctx context.Context, termKey string) error {
	affected, err := r.client.TermStat.Delete().
		Where(enttermstat.TermKeyEQ(termKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete term stats: %w", err)
	}
	if affected == 0 {
		return entity.ErrTermStatsNotFound
	}
	return nil
}

func applyTermStatsFilters(q *entdb.TermStatQuery, query *repository.ListTermStatsQuery) {
	if query.Exposed != nil {
		q.Where(enttermstat.ExposedEQ(*query.Exposed))
	}
	if query.TermPrefix != "" {
		q.Where(enttermstat.TermKeyHasPrefix(query.TermPrefix))
	}
	if query.MinCorrect != nil {
		min := *query.MinCorrect
		q.Where(func(s *sql.Selector) {
			s.Where(sql.ExprP(correctTotalExpr+" >= ?", min))
		})
	}
	if query.MaxCorrect != nil {
		max := *query.MaxCorrect
		q.Where(func(s *sql.Selector) {
			s.Where(sql.ExprP(correctTotalExpr+" <= ?", max))
		})
	}
}

func applyTermStatsOrdering(q *entdb.TermStatQuery, query *repository.ListTermStatsQuery) {
	for _, term := range []struct {
		key  string
		desc bool
	}{
		{key: query.OrderPrimary, desc: query.OrderPrimaryDesc},
		{key: query.OrderSecondary, desc: query.OrderSecondaryDesc},
	} {
		switch term.key {
		case "last_seen":
			if term.desc {
				q.Order(enttermstat.ByLastSeen(sql.OrderDesc(), sql.OrderNullsLast()))
			} else {
				q.Order(enttermstat.ByLastSeen(sql.OrderAsc(), sql.OrderNullsLast()))
			}
		case "updated_at":
			if term.desc {
				q.Order(enttermstat.ByUpdatedAt(sql.OrderDesc()))
			} else {
				q.Order(enttermstat.ByUpdatedAt())
			}
		case "term_key":
			if term.desc {
				q.Order(enttermstat.ByTermKey(sql.OrderDesc()))
			} else {
				q.Order(enttermstat.ByTermKey())
			}
		case "id":
			if term.desc {
				q.Order(enttermstat.ByID(sql.OrderDesc()))
			} else {
				q.Order(enttermstat.ByID())
			}
		}
	}

	q.Order(enttermstat.ByID())
}

func mapEntTermStat(rec *entdb.TermStat) *entity.TermStats {
	if rec == nil {
		return nil
	}
	return &entity.TermStats{
		ID:      int64(rec.ID),
		TermKey: rec.TermKey,
		Exposed: rec.Exposed,
		MultipleChoice: entity.ModalityStats{
			Correct:   rec.McCorrect,
			Incorrect: rec.McIncorrect,
		},
		ListeningEasy: entity.ModalityStats{
			Correct:   rec.ListeningEasyCorrect,
			Incorrect: rec.ListeningEasyIncorrect,
		},
		ListeningHard: entity.ModalityStats{
			Correct:   rec.ListeningHardCorrect,
			Incorrect: rec.ListeningHardIncorrect,
		},
		Typing: entity.ModalityStats{
			Correct:   rec.TypingCorrect,
			Incorrect: rec.TypingIncorrect,
		},
		LastSeen:          rec.LastSeen,
		LastCorrectAnswer: rec.LastCorrectAnswer,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}
