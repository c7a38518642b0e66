package repository

import (
	"context"

	"github.com/eslsoft/journey/internal/entity"
)

// ListTermStatsQuery holds parameters for listing term stats.
type ListTermStatsQuery struct {
	Pagination
	FilterOrder

	// Populated by the filterexpr binder from FilterOrder.Filter.
	Exposed    *bool
	MinCorrect *int32
	MaxCorrect *int32
	TermPrefix string

	// Populated by the filterexpr binder from FilterOrder.OrderBy.
	OrderPrimary       string
	OrderPrimaryDesc   bool
	OrderSecondary     string
	OrderSecondaryDesc bool
}

// TermStatsRepository abstracts persistence for per-term exercise stats to
// keep the scheduler storage agnostic. Upsert is keyed by the term identity.
type TermStatsRepository interface {
	Upsert(ctx context.Context, stats *entity.TermStats) (*entity.TermStats, error)
	GetByTermKey(ctx context.Context, termKey string) (*entity.TermStats, error)
	List(ctx context.Context, query *ListTermStatsQuery) ([]entity.TermStats, int64, error)
	Delete(ctx context.Context, termKey string) error
}
