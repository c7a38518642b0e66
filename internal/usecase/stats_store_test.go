package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/journey/internal/entity"
	"github.com/eslsoft/journey/internal/repository"
)

type fakeStatsRepo struct {
	mu      sync.RWMutex
	items   map[string]*entity.TermStats
	failing bool
	upserts int
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{items: make(map[string]*entity.TermStats)}
}

func (r *fakeStatsRepo) Upsert(ctx context.Context, stats *entity.TermStats) (*entity.TermStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return nil, errors.New("storage unavailable")
	}
	r.upserts++
	copied := stats.Clone()
	r.items[copied.TermKey] = copied
	return copied.Clone(), nil
}

func (r *fakeStatsRepo) GetByTermKey(ctx context.Context, termKey string) (*entity.TermStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats, ok := r.items[termKey]
	if !ok {
		return nil, entity.ErrTermStatsNotFound
	}
	return stats.Clone(), nil
}

func (r *fakeStatsRepo) List(ctx context.Context, query *repository.ListTermStatsQuery) ([]entity.TermStats, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entity.TermStats
	for _, stats := range r.items {
		out = append(out, *stats.Clone())
	}
	return out, int64(len(out)), nil
}

func (r *fakeStatsRepo) Delete(ctx context.Context, termKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, termKey)
	return nil
}

func testTerm(source, target string) entity.Term {
	return entity.Term{SourceText: source, TargetText: target, Corpus: "nouns_one", Group: "Animals"}
}

func silentLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestRecordOutcomeUpdatesViewOptimistically(t *testing.T) {
	repo := newFakeStatsRepo()
	store := NewStatsStore(repo, silentLogger())
	term := testTerm("cat", "katė")

	if got := store.Stats(term); got != nil {
		t.Fatalf("Stats() before any outcome = %v, want nil", got)
	}

	if err := store.RecordOutcome(context.Background(), term, entity.ModalityMultipleChoice, true, true); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	// The view reflects the outcome before persistence is confirmed.
	stats := store.Stats(term)
	if stats == nil {
		t.Fatal("Stats() = nil after outcome")
	}
	if !stats.Exposed {
		t.Error("Exposed = false, want true")
	}
	if stats.MultipleChoice.Correct != 1 {
		t.Errorf("MultipleChoice.Correct = %d, want 1", stats.MultipleChoice.Correct)
	}
	if stats.LastSeen == nil || stats.LastCorrectAnswer == nil {
		t.Error("timestamps not set on correct outcome")
	}

	store.Flush()
	persisted, err := repo.GetByTermKey(context.Background(), term.Key())
	if err != nil {
		t.Fatalf("GetByTermKey after flush: %v", err)
	}
	if persisted.MultipleChoice.Correct != 1 {
		t.Errorf("persisted Correct = %d, want 1", persisted.MultipleChoice.Correct)
	}
}

func TestRecordOutcomePersistenceFailureDoesNotSurface(t *testing.T) {
	repo := newFakeStatsRepo()
	repo.failing = true
	store := NewStatsStore(repo, silentLogger())
	term := testTerm("dog", "šuo")

	if err := store.RecordOutcome(context.Background(), term, entity.ModalityTyping, false, true); err != nil {
		t.Fatalf("RecordOutcome with failing backend: %v", err)
	}
	store.Flush()

	// Optimistic state survives the failed write.
	stats := store.Stats(term)
	if stats == nil || stats.Typing.Incorrect != 1 {
		t.Errorf("Stats() = %+v, want Typing.Incorrect = 1", stats)
	}
}

func TestRecordOutcomeRejectsInvalidModality(t *testing.T) {
	store := NewStatsStore(newFakeStatsRepo(), silentLogger())
	err := store.RecordOutcome(context.Background(), testTerm("sun", "saulė"), entity.Modality("humming"), true, true)
	if !errors.Is(err, entity.ErrInvalidModality) {
		t.Errorf("err = %v, want %v", err, entity.ErrInvalidModality)
	}
}

func TestExposedLatchesOnce(t *testing.T) {
	store := NewStatsStore(newFakeStatsRepo(), silentLogger())
	term := testTerm("moon", "mėnulis")
	ctx := context.Background()

	if err := store.RecordOutcome(ctx, term, entity.ModalityMultipleChoice, true, true); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	// shouldExpose=false must not revert the flag.
	if err := store.RecordOutcome(ctx, term, entity.ModalityMultipleChoice, false, false); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	stats := store.Stats(term)
	if !stats.Exposed {
		t.Error("Exposed reverted to false")
	}
	if stats.MultipleChoice.Correct != 1 || stats.MultipleChoice.Incorrect != 1 {
		t.Errorf("counters = %+v, want 1 correct / 1 incorrect", stats.MultipleChoice)
	}
}

func TestLoadWarmsViewFromRepository(t *testing.T) {
	repo := newFakeStatsRepo()
	term := testTerm("bread", "duona")
	seeded := entity.NewTermStats(term)
	seeded.Exposed = true
	seeded.Typing.Correct = 9
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seeded.LastSeen = &now
	if _, err := repo.Upsert(context.Background(), seeded); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewStatsStore(repo, silentLogger())
	if err := store.Load(context.Background(), []entity.Term{term, testTerm("none", "jokio")}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	stats := store.Stats(term)
	if stats == nil || stats.Typing.Correct != 9 {
		t.Errorf("Stats() = %+v, want loaded Typing.Correct = 9", stats)
	}
	if got := store.Stats(testTerm("none", "jokio")); got != nil {
		t.Errorf("Stats(untracked) = %v, want nil", got)
	}
}
