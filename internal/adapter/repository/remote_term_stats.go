package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

const termStatsColumns = `id, term_key, exposed,
	mc_correct, mc_incorrect,
	listening_easy_correct, listening_easy_incorrect,
	listening_hard_correct, listening_hard_incorrect,
	typing_correct, typing_incorrect,
	last_seen, last_correct_answer, created_at, updated_at`

// RemoteTermStatsRepository mirrors term stats to a shared Postgres instance
// so progress follows the learner across devices. It speaks raw SQL over a
// pgx pool instead of ent: the remote schema is managed outside this process.
type RemoteTermStatsRepository struct {
	pool *pgxpool.Pool
}

// NewRemoteTermStatsRepository constructs a pgx-backed term stats repository.
func NewRemoteTermStatsRepository(pool *pgxpool.Pool) repository.TermStatsRepository {
	return &RemoteTermStatsRepository{pool: pool}
}

func (r *RemoteTermStatsRepository) Upsert(ctx context.Context, stats *entity.TermStats) (*entity.TermStats, error) {
	if stats.TermKey == "" {
		return nil, entity.ErrInvalidTermText
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO term_stats (
			term_key, exposed,
			mc_correct, mc_incorrect,
			listening_easy_correct, listening_easy_incorrect,
			listening_hard_correct, listening_hard_incorrect,
			typing_correct, typing_incorrect,
			last_seen, last_correct_answer, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		ON CONFLICT (term_key) DO UPDATE SET
			exposed = EXCLUDED.exposed,
			mc_correct = EXCLUDED.mc_correct,
			mc_incorrect = EXCLUDED.mc_incorrect,
			listening_easy_correct = EXCLUDED.listening_easy_correct,
			listening_easy_incorrect = EXCLUDED.listening_easy_incorrect,
			listening_hard_correct = EXCLUDED.listening_hard_correct,
			listening_hard_incorrect = EXCLUDED.listening_hard_incorrect,
			typing_correct = EXCLUDED.typing_correct,
			typing_incorrect = EXCLUDED.typing_incorrect,
			last_seen = EXCLUDED.last_seen,
			last_correct_answer = EXCLUDED.last_correct_answer,
			updated_at = now()
		RETURNING `+termStatsColumns,
		stats.TermKey, stats.Exposed,
		stats.MultipleChoice.Correct, stats.MultipleChoice.Incorrect,
		stats.ListeningEasy.Correct, stats.ListeningEasy.Incorrect,
		stats.ListeningHard.Correct, stats.ListeningHard.Incorrect,
		stats.Typing.Correct, stats.Typing.Incorrect,
		stats.LastSeen, stats.LastCorrectAnswer,
	)

	saved, err := scanTermStats(row)
	if err != nil {
		return nil, fmt.Errorf("upsert remote term stats: %w", err)
	}
	return saved, nil
}

func (r *RemoteTermStatsRepository) GetByTermKey(ctx context.Context, termKey string) (*entity.TermStats, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+termStatsColumns+` FROM term_stats WHERE term_key = $1`,
		termKey,
	)
	stats, err := scanTermStats(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrTermStatsNotFound
		}
		return nil, fmt.Errorf("get remote term stats: %w", err)
	}
	return stats, nil
}

func (r *RemoteTermStatsRepository) List(ctx context.Context, query *repository.ListTermStatsQuery) ([]entity.TermStats, int64, error) {
	if err := bindTermStatsQuery(query); err != nil {
		return nil, 0, err
	}

	where, args := buildTermStatsWhere(query)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM term_stats`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count remote term stats: %w", err)
	}

	sql := `SELECT ` + termStatsColumns + ` FROM term_stats` + where + buildTermStatsOrder(query)
	if query.PageSize > 0 {
		sql += fmt.Sprintf(" LIMIT %d OFFSET %d", query.PageSize, max(query.Offset(), 0))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list remote term stats: %w", err)
	}
	defer rows.Close()

	var results []entity.TermStats
	for rows.Next() {
		stats, err := scanTermStats(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan remote term stats: %w", err)
		}
		results = append(results, *stats)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *RemoteTermStatsRepository) Delete(ctx context.Context, termKey string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM term_stats WHERE term_key = $1`, termKey)
	if err != nil {
		return fmt.Errorf("delete remote term stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrTermStatsNotFound
	}
	return nil
}

func buildTermStatsWhere(query *repository.ListTermStatsQuery) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if query.Exposed != nil {
		clauses = append(clauses, "exposed = "+arg(*query.Exposed))
	}
	if query.TermPrefix != "" {
		clauses = append(clauses, "term_key LIKE "+arg(query.TermPrefix+"%"))
	}
	if query.MinCorrect != nil {
		clauses = append(clauses, correctTotalExpr+" >= "+arg(*query.MinCorrect))
	}
	if query.MaxCorrect != nil {
		clauses = append(clauses, correctTotalExpr+" <= "+arg(*query.MaxCorrect))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func buildTermStatsOrder(query *repository.ListTermStatsQuery) string {
	var terms []string
	for _, term := range []struct {
		key  string
		desc bool
	}{
		{key: query.OrderPrimary, desc: query.OrderPrimaryDesc},
		{key: query.OrderSecondary, desc: query.OrderSecondaryDesc},
	} {
		// Keys are whitelisted by the order schema; never raw user input.
		switch term.key {
		case "last_seen", "updated_at", "term_key", "id":
			direction := " ASC"
			if term.desc {
				direction = " DESC"
			}
			if term.key == "last_seen" {
				direction += " NULLS LAST"
			}
			terms = append(terms, term.key+direction)
		}
	}
	terms = append(terms, "id ASC")
	return " ORDER BY " + strings.Join(terms, ", ")
}

type pgxRow interface {
	Scan(dest ...any) error
}

func scanTermStats(row pgxRow) (*entity.TermStats, error) {
	var stats entity.TermStats
	if err := row.Scan(
		&stats.ID, &stats.TermKey, &stats.Exposed,
		&stats.MultipleChoice.Correct, &stats.MultipleChoice.Incorrect,
		&stats.ListeningEasy.Correct, &stats.ListeningEasy.Incorrect,
		&stats.ListeningHard.Correct, &stats.ListeningHard.Incorrect,
		&stats.Typing.Correct, &stats.Typing.Incorrect,
		&stats.LastSeen, &stats.LastCorrectAnswer,
		&stats.CreatedAt, &stats.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
