package repository

import (
	"context"

	"github.com/eslsoft/journey/internal/entity"
)

// ListTermQuery holds parameters for listing catalog terms.
type ListTermQuery struct {
	Pagination

	Corpus string
	Group  string
}

// TermRepository abstracts the read-mostly term catalog. The catalog is
// stable for a session's duration; writes only happen through imports.
type TermRepository interface {
	Create(ctx context.Context, term *entity.Term) (*entity.Term, error)
	GetByKey(ctx context.Context, source, target string) (*entity.Term, error)
	List(ctx context.Context, query *ListTermQuery) ([]entity.Term, int64, error)
	Corpora(ctx context.Context) ([]string, error)
}
