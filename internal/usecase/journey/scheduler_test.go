package journey

import (
	"fmt"
	"testing"
	"time"

	"github.com/eslsoft/journey/internal/entity"
)

// stubRNG forces every roll to a fixed fraction of its range, pinning the
// scheduler to one branch per configuration.
type stubRNG struct {
	roll int // returned from IntN(100); other IntN calls return n/2
}

func (r stubRNG) Float64() float64 { return 0.5 }

func (r stubRNG) IntN(n int) int {
	if n == 100 {
		return r.roll
	}
	return n / 2
}

func makePool(exposedCount, unexposedCount int, reader *fakeStatsReader, now time.Time) []entity.Term {
	var pool []entity.Term
	for i := 0; i < exposedCount; i++ {
		term := testTerm(fmt.Sprintf("seen-%d", i), fmt.Sprintf("matyta-%d", i))
		reader.set(term, 5, now)
		pool = append(pool, term)
	}
	for i := 0; i < unexposedCount; i++ {
		pool = append(pool, testTerm(fmt.Sprintf("new-%d", i), fmt.Sprintf("nauja-%d", i)))
	}
	return pool
}

func TestEmptyPoolDegeneratesToNewWord(t *testing.T) {
	scheduler := NewScheduler(newFakeStatsReader(), WithRNG(NewRNG(1)))
	activity := scheduler.SelectNextActivity(nil, true)
	if activity.Type != entity.ActivityNewWord {
		t.Errorf("Type = %q, want %q", activity.Type, entity.ActivityNewWord)
	}
	if activity.Term != nil {
		t.Errorf("Term = %v, want nil for the compatibility fallback", activity.Term)
	}
}

func TestEarlyLearningAlwaysIntroduces(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(3, 5, reader, now)

	scheduler := NewScheduler(reader, WithRNG(NewRNG(21)), WithClock(fixedClock(now)))
	for i := 0; i < 25; i++ {
		activity := scheduler.SelectNextActivity(pool, true)
		if activity.Type != entity.ActivityNewWord {
			t.Fatalf("call %d: Type = %q, want %q while under the early-learning threshold", i, activity.Type, entity.ActivityNewWord)
		}
		if activity.Term == nil {
			t.Fatalf("call %d: new-word activity without a term", i)
		}
		if stats := reader.Stats(*activity.Term); stats != nil && stats.Exposed {
			t.Fatalf("call %d: introduced an already-exposed term", i)
		}
	}
}

func TestAllExposedPoolFlowsToReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(12, 0, reader, now)

	// roll 99 misses every probability threshold; with nothing to
	// introduce and nothing queued the call must land on a weighted review.
	scheduler := NewScheduler(reader, WithRNG(stubRNG{roll: 99}), WithClock(fixedClock(now)))
	activity := scheduler.SelectNextActivity(pool, true)
	if activity.Type != entity.ActivityReview {
		t.Errorf("Type = %q, want %q for an all-exposed pool", activity.Type, entity.ActivityReview)
	}
	if activity.Term == nil {
		t.Error("review activity without a term")
	}
}

func TestAntiRepeatInvariants(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(15, 5, reader, now)

	scheduler := NewScheduler(reader, WithRNG(NewRNG(77)), WithClock(fixedClock(now)))

	lastType := entity.ActivityType("")
	lastBreak := -100
	sawNewWord, sawBreak := false, false
	for i := 0; i < 3000; i++ {
		activity := scheduler.SelectNextActivity(pool, true)
		if activity.Type == entity.ActivityNewWord {
			sawNewWord = true
			if lastType == entity.ActivityNewWord {
				t.Fatalf("call %d: two consecutive new-word activities", i)
			}
		}
		if activity.Type == entity.ActivityMotivationalBreak {
			sawBreak = true
			if i-lastBreak <= motivationalBreakCooldown {
				t.Fatalf("call %d: motivational break within %d calls of the prior one (call %d)", i, motivationalBreakCooldown, lastBreak)
			}
			lastBreak = i
		}
		lastType = activity.Type
	}
	if !sawNewWord {
		t.Error("no new-word activity in 3000 calls; roll coverage is suspect")
	}
	if !sawBreak {
		t.Error("no motivational break in 3000 calls; roll coverage is suspect")
	}
}

func TestManualQueueBounds(t *testing.T) {
	scheduler := NewScheduler(newFakeStatsReader(), WithRNG(NewRNG(1)))

	first := testTerm("queued-0", "eilė-0")
	if !scheduler.AddWordToQueue(first) {
		t.Fatal("AddWordToQueue(first) = false")
	}
	if scheduler.AddWordToQueue(first) {
		t.Error("AddWordToQueue(duplicate) = true, want false")
	}
	if got := scheduler.ManualQueueLen(); got != 1 {
		t.Fatalf("queue length after duplicate = %d, want 1", got)
	}

	for i := 1; i < manualQueueCapacity; i++ {
		if !scheduler.AddWordToQueue(testTerm(fmt.Sprintf("queued-%d", i), fmt.Sprintf("eilė-%d", i))) {
			t.Fatalf("AddWordToQueue(%d) = false before capacity", i)
		}
	}
	if scheduler.AddWordToQueue(testTerm("queued-10", "eilė-10")) {
		t.Error("AddWordToQueue beyond capacity = true, want false")
	}
	if got := scheduler.ManualQueueLen(); got != manualQueueCapacity {
		t.Errorf("queue length = %d, want %d", got, manualQueueCapacity)
	}

	// FIFO drain.
	term, ok := scheduler.NextManuallyAddedWord()
	if !ok || term.Key() != first.Key() {
		t.Errorf("NextManuallyAddedWord() = (%q, %v), want oldest entry %q", term.Key(), ok, first.Key())
	}
}

func TestManualQueuePreemptsWeightedSampling(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(12, 0, reader, now)

	queued := pool[7]
	// roll 50 clears the break (3%), new-word (15%) and revisit (18%)
	// thresholds, landing on the review path every call.
	scheduler := NewScheduler(reader, WithRNG(stubRNG{roll: 50}), WithClock(fixedClock(now)))
	if !scheduler.AddWordToQueue(queued) {
		t.Fatal("AddWordToQueue() = false")
	}

	activity := scheduler.SelectNextActivity(pool, true)
	if activity.Type != entity.ActivityReview {
		t.Fatalf("Type = %q, want %q", activity.Type, entity.ActivityReview)
	}
	if activity.Term == nil || activity.Term.Key() != queued.Key() {
		t.Errorf("reviewed term = %v, want manually queued %q", activity.Term, queued.Key())
	}
	if got := scheduler.ManualQueueLen(); got != 0 {
		t.Errorf("queue length after drain = %d, want 0", got)
	}
}

func TestAudioOffNeverSchedulesListening(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(15, 5, reader, now)

	scheduler := NewScheduler(reader, WithRNG(NewRNG(31)), WithClock(fixedClock(now)))
	for i := 0; i < 2000; i++ {
		activity := scheduler.SelectNextActivity(pool, false)
		if activity.Modality.IsListening() {
			t.Fatalf("call %d: listening scheduled while audio disabled", i)
		}
	}
}

func TestRevisitReturnsIntroducedTermsFIFO(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(12, 3, reader, now)

	// Introduce: roll below the new-word threshold.
	scheduler := NewScheduler(reader, WithRNG(stubRNG{roll: 10}), WithClock(fixedClock(now)))
	first := scheduler.SelectNextActivity(pool, true)
	if first.Type != entity.ActivityNewWord {
		t.Fatalf("Type = %q, want %q", first.Type, entity.ActivityNewWord)
	}

	// Revisit: roll below the revisit threshold but above new-word's
	// cooldown-blocked roll; the introduced term must come back first.
	scheduler.rng = stubRNG{roll: 16}
	second := scheduler.SelectNextActivity(pool, true)
	if second.Type != entity.ActivityReview {
		t.Fatalf("Type = %q, want %q", second.Type, entity.ActivityReview)
	}
	if second.Term == nil || second.Term.Key() != first.Term.Key() {
		t.Errorf("revisited term = %v, want the introduced term %q", second.Term, first.Term.Key())
	}
}

func TestResolveActivityFallsBackToMultipleChoice(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reader := newFakeStatsReader()
	pool := makePool(12, 0, reader, now)

	// roll 60 with tier-2 stats (5 correct) always lands on listening
	// (40 <= 60 < 80); with audio off, all ten attempts return nil and the
	// scheduler must fall back to multiple choice.
	scheduler := NewScheduler(reader, WithRNG(stubRNG{roll: 60}), WithClock(fixedClock(now)))
	activity := scheduler.SelectNextActivity(pool, false)
	if activity.Type != entity.ActivityReview {
		t.Fatalf("Type = %q, want %q", activity.Type, entity.ActivityReview)
	}
	if activity.Modality != entity.ModalityMultipleChoice {
		t.Errorf("Modality = %q, want forced fallback %q", activity.Modality, entity.ModalityMultipleChoice)
	}
}
