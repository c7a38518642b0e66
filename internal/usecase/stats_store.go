package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

const persistTimeout = 5 * time.Second

// StatsStore is the scheduler's stats collaborator: a write-through
// in-memory view over the stats repository. Outcomes update the view
// optimistically and persist fire-and-forget; persistence failures are
// logged, never propagated into a scheduling decision.
type StatsStore interface {
	// Load warms the in-memory view for the session's term pool.
	Load(ctx context.Context, pool []entity.Term) error
	// Stats returns a copy of the tracked record, or nil when untracked.
	Stats(term entity.Term) *entity.TermStats
	// RecordOutcome applies one graded exercise and schedules persistence.
	RecordOutcome(ctx context.Context, term entity.Term, modality entity.Modality, correct, shouldExpose bool) error
	// Flush waits for in-flight persistence writes, for shutdown and tests.
	Flush()
}

// NewStatsStore wires the store with default behaviour.
func NewStatsStore(repo repository.TermStatsRepository, logger logrus.FieldLogger) StatsStore {
	return &statsStore{
		repo:   repo,
		logger: logger,
		clock:  time.Now,
		view:   make(map[string]*entity.TermStats),
	}
}

type statsStore struct {
	repo   repository.TermStatsRepository
	logger logrus.FieldLogger
	clock  func() time.Time

	mu   sync.RWMutex
	view map[string]*entity.TermStats
	wg   sync.WaitGroup
}

func (s *statsStore) Load(ctx context.Context, pool []entity.Term) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, term := range pool {
		if _, ok := s.view[term.Key()]; ok {
			continue
		}
		stats, err := s.repo.GetByTermKey(ctx, term.Key())
		if err == entity.ErrTermStatsNotFound {
			continue
		}
		if err != nil {
			return err
		}
		s.view[term.Key()] = stats
	}
	return nil
}

func (s *statsStore) Stats(term entity.Term) *entity.TermStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view[term.Key()].Clone()
}

func (s *statsStore) RecordOutcome(ctx context.Context, term entity.Term, modality entity.Modality, correct, shouldExpose bool) error {
	s.mu.Lock()
	stats, ok := s.view[term.Key()]
	if !ok {
		stats = entity.NewTermStats(term)
		s.view[term.Key()] = stats
	}
	if err := stats.RecordOutcome(modality, correct, shouldExpose, s.clock()); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := stats.Clone()
	s.mu.Unlock()

	// Fire-and-forget write-through. Upsert is last-write-wins, which is
	// the documented reconciliation policy for racing outcome reports.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		if _, err := s.repo.Upsert(persistCtx, snapshot); err != nil {
			s.logger.WithError(err).WithField("term", snapshot.TermKey).
				Warn("persist term stats failed; keeping optimistic in-memory state")
		}
	}()
	return nil
}

func (s *statsStore) Flush() {
	s.wg.Wait()
}
