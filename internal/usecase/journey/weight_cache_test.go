package journey

import (
	"math"
	"testing"
	"time"

	"github.com/eslsoft/journey/internal/entity"
)

type fakeStatsReader struct {
	stats map[string]*entity.TermStats
}

func newFakeStatsReader() *fakeStatsReader {
	return &fakeStatsReader{stats: make(map[string]*entity.TermStats)}
}

func (f *fakeStatsReader) Stats(term entity.Term) *entity.TermStats {
	return f.stats[term.Key()]
}

func (f *fakeStatsReader) set(term entity.Term, correct int32, lastSeen time.Time) {
	stats := entity.NewTermStats(term)
	stats.Exposed = true
	stats.MultipleChoice.Correct = correct
	seen := lastSeen
	stats.LastSeen = &seen
	f.stats[term.Key()] = stats
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestWordWeightMasterySuppression(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		correct  int32
		lastSeen time.Time
		want     float64
	}{
		{"untracked term defaults to full weight", -1, now, 1.0},
		{"fresh term", 0, now, 1.0},
		{"below familiar threshold", 7, now, 1.0},
		{"familiar", 8, now, 0.5},
		{"just below known", 14, now, 0.5},
		{"known", 15, now, 0.2},
		{"well known", 40, now, 0.2},
		{"stale fresh term boosted", 0, now.Add(-20 * 24 * time.Hour), 3.0},
		{"stale known term boosted", 20, now.Add(-15 * 24 * time.Hour), 0.6},
		{"seen within window keeps base", 20, now.Add(-13 * 24 * time.Hour), 0.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reader := newFakeStatsReader()
			term := testTerm("cat", "katė")
			if tc.correct >= 0 {
				reader.set(term, tc.correct, tc.lastSeen)
			}
			cache := NewWeightCache(reader, NewRNG(1), WithWeightClock(fixedClock(now)))
			if got := cache.WordWeight(term); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("WordWeight() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWordWeightCachedWithinWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := now
	reader := newFakeStatsReader()
	term := testTerm("dog", "šuo")
	reader.set(term, 0, now)

	cache := NewWeightCache(reader, NewRNG(1), WithWeightClock(func() time.Time { return current }))
	if got := cache.WordWeight(term); got != 1.0 {
		t.Fatalf("WordWeight() = %v, want 1.0", got)
	}

	// Stats change, but the cached value holds until the window lapses.
	reader.set(term, 20, now)
	if got := cache.WordWeight(term); got != 1.0 {
		t.Errorf("WordWeight() within window = %v, want cached 1.0", got)
	}

	current = now.Add(weightCacheTTL + time.Second)
	if got := cache.WordWeight(term); got != 0.2 {
		t.Errorf("WordWeight() after window = %v, want 0.2", got)
	}
}

func TestNeedsRebuildComparesKeySets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	a, b, c := testTerm("one", "vienas"), testTerm("two", "du"), testTerm("three", "trys")
	for _, term := range []entity.Term{a, b, c} {
		reader.set(term, 1, now)
	}
	cache := NewWeightCache(reader, NewRNG(1), WithWeightClock(fixedClock(now)))

	if !cache.NeedsRebuild([]entity.Term{a, b, c}) {
		t.Fatal("NeedsRebuild() = false before any tree exists")
	}
	cache.BuildSelectionTree([]entity.Term{a, b, c})

	if cache.NeedsRebuild([]entity.Term{a, b, c}) {
		t.Error("NeedsRebuild() = true for identical list")
	}
	if cache.NeedsRebuild([]entity.Term{c, a, b}) {
		t.Error("NeedsRebuild() = true for reordered list with equal key set")
	}
	if !cache.NeedsRebuild([]entity.Term{a, b}) {
		t.Error("NeedsRebuild() = false for shorter list")
	}

	// Interior substitution with equal length and equal endpoints: the
	// endpoint heuristic misses this, the key-set comparison must not.
	swapped := testTerm("four", "keturi")
	reader.set(swapped, 1, now)
	if !cache.NeedsRebuild([]entity.Term{a, swapped, c}) {
		t.Error("NeedsRebuild() = false for interior substitution")
	}
}

func TestInvalidateWordAppliesPointUpdate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	a, b := testTerm("bread", "duona"), testTerm("milk", "pienas")
	reader.set(a, 0, now)
	reader.set(b, 0, now)

	cache := NewWeightCache(reader, NewRNG(1), WithWeightClock(fixedClock(now)))
	terms := []entity.Term{a, b}
	cache.BuildSelectionTree(terms)
	if got := cache.tree.TotalWeight(); math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("TotalWeight() = %v, want 2.0", got)
	}

	// The term's stats moved past the known threshold; invalidation must
	// apply the new weight in place without going stale.
	reader.set(a, 20, now)
	cache.InvalidateWord(a)
	if cache.NeedsRebuild(terms) {
		t.Error("NeedsRebuild() = true after point update of tracked term")
	}
	if got := cache.tree.TotalWeight(); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("TotalWeight() after invalidation = %v, want 1.2", got)
	}

	// Invalidating an untracked term means the set changed: full rebuild.
	outsider := testTerm("salt", "druska")
	reader.set(outsider, 0, now)
	cache.InvalidateWord(outsider)
	if !cache.NeedsRebuild(terms) {
		t.Error("NeedsRebuild() = false after invalidating untracked term")
	}
	if got := cache.SelectWordFromTree(); got != nil {
		t.Errorf("SelectWordFromTree() on stale tree = %v, want nil", got)
	}
}

func TestSelectWordFromTreeZeroWeightFallback(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	cache := NewWeightCache(reader, NewRNG(7), WithWeightClock(fixedClock(now)))

	a, b := testTerm("sun", "saulė"), testTerm("moon", "mėnulis")
	cache.BuildSelectionTree([]entity.Term{a, b})
	for i := 1; i <= cache.tree.Len(); i++ {
		if err := cache.tree.UpdateWeight(i, 0); err != nil {
			t.Fatalf("UpdateWeight: %v", err)
		}
	}

	// All-zero weights degrade to a uniform draw, never a nil result.
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		term := cache.SelectWordFromTree()
		if term == nil {
			t.Fatal("SelectWordFromTree() = nil for zero-weight tree")
		}
		seen[term.Key()] = true
	}
	if len(seen) != 2 {
		t.Errorf("uniform fallback selected %d distinct terms, want 2", len(seen))
	}
}

func TestStalenessBoostSkewsDraws(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	stale := testTerm("winter", "žiema")
	fresh := testTerm("summer", "vasara")
	reader.set(stale, 10, now.Add(-20*24*time.Hour))
	reader.set(fresh, 10, now)

	cache := NewWeightCache(reader, NewRNG(99), WithWeightClock(fixedClock(now)))
	cache.BuildSelectionTree([]entity.Term{stale, fresh})

	counts := map[string]int{}
	const draws = 1000
	for i := 0; i < draws; i++ {
		term := cache.SelectWordFromTree()
		if term == nil {
			t.Fatal("SelectWordFromTree() = nil")
		}
		counts[term.Key()]++
	}

	ratio := float64(counts[stale.Key()]) / float64(counts[fresh.Key()])
	if ratio < 2.4 || ratio > 3.6 {
		t.Errorf("stale/fresh draw ratio = %.2f, want close to 3", ratio)
	}
}
