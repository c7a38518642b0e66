package journey

import (
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/journey/internal/entity"
)

// Session-level tuning. Percentages are thresholds for a roll in [0, 100);
// prevention counters arm when their activity fires and block re-triggering
// until they decay back to zero.
const (
	motivationalBreakPercent  = 3
	motivationalBreakCooldown = 5

	newWordPercent  = 15
	newWordCooldown = 2

	revisitPercent = 18

	earlyLearningExposedTarget = 10

	manualQueueCapacity     = 10
	activityResolveAttempts = 10
)

// Scheduler holds one learning session's scheduling state: anti-repetition
// counters, the FIFO of terms introduced this session awaiting a spaced
// revisit, and the bounded manual-priority queue. It is owned by a single
// session and called synchronously once per completed exercise; there is no
// concurrent access by construction.
type Scheduler struct {
	stats    StatsReader
	cache    *WeightCache
	selector *ActivitySelector
	rng      RNG
	clock    func() time.Time
	logger   logrus.FieldLogger

	consecutiveNewWordPrevention int
	motivationalBreakPrevention  int
	newWordsIntroduced           []entity.Term
	manuallyAddedWords           []entity.Term
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithRNG replaces the default clock-seeded random source.
func WithRNG(rng RNG) Option {
	return func(s *Scheduler) { s.rng = rng }
}

// WithClock overrides the wall clock, for deterministic tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Scheduler) { s.clock = clock }
}

// WithLogger attaches a logger for decision tracing.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// NewScheduler builds a fresh session scheduler over the given stats view.
// Scheduler state lives for exactly one session; construct a new one per
// session rather than resetting.
func NewScheduler(stats StatsReader, opts ...Option) *Scheduler {
	s := &Scheduler{
		stats:  stats,
		rng:    NewClockRNG(),
		clock:  time.Now,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = NewWeightCache(stats, s.rng, WithWeightClock(s.clock))
	s.selector = NewActivitySelector(s.rng)
	return s
}

// SelectNextActivity decides what the host presents next. Called once after
// every completed exercise with the session's term pool and whether the
// listening modality may be offered. Every failure mode degrades to a safe
// default activity; this never returns an error.
func (s *Scheduler) SelectNextActivity(pool []entity.Term, audioEnabled bool) entity.Activity {
	if len(pool) == 0 {
		// Degenerate pool: let the host keep whatever term it has loaded.
		return entity.Activity{Type: entity.ActivityNewWord}
	}

	exposed, unexposed := s.partition(pool)

	// Early sessions stay focused on acquisition: keep introducing terms
	// until ten have been exposed, bypassing every probability roll.
	if len(exposed) < earlyLearningExposedTarget && len(unexposed) > 0 {
		return s.introduceNewWord(unexposed)
	}

	if s.motivationalBreakPrevention == 0 && s.rng.IntN(100) < motivationalBreakPercent {
		s.motivationalBreakPrevention = motivationalBreakCooldown
		s.decay(&s.consecutiveNewWordPrevention)
		return entity.Activity{Type: entity.ActivityMotivationalBreak}
	}

	if s.consecutiveNewWordPrevention == 0 && len(unexposed) > 0 && s.rng.IntN(100) < newWordPercent {
		return s.introduceNewWord(unexposed)
	}

	if len(exposed) == 0 {
		// Nothing to review yet: introduce unconditionally, or fall back to
		// a grammar placeholder when the pool is fully exposed-free.
		if len(unexposed) > 0 {
			return s.introduceNewWord(unexposed)
		}
		s.decayAll()
		return entity.Activity{Type: entity.ActivityGrammarBreak}
	}

	// Spaced revisit: a just-introduced term resurfaces soon after its
	// introduction rather than waiting on the weighted draw.
	if len(s.newWordsIntroduced) > 0 && s.rng.IntN(100) < revisitPercent {
		term := s.newWordsIntroduced[0]
		s.newWordsIntroduced = s.newWordsIntroduced[1:]
		s.decayAll()
		return s.resolveActivity(term, audioEnabled)
	}

	// The manual queue preempts weighted sampling but never the breaks or
	// the new-word roll above.
	if term, ok := s.NextManuallyAddedWord(); ok {
		s.decayAll()
		return s.resolveActivity(term, audioEnabled)
	}

	term := s.sampleWeighted(exposed)
	s.decayAll()
	return s.resolveActivity(term, audioEnabled)
}

// AddWordToQueue pushes a term onto the manual-priority queue. It returns
// false (instead of failing) when the queue is full or already holds the
// term.
func (s *Scheduler) AddWordToQueue(term entity.Term) bool {
	if len(s.manuallyAddedWords) >= manualQueueCapacity {
		return false
	}
	duplicate := lo.ContainsBy(s.manuallyAddedWords, func(t entity.Term) bool {
		return t.Key() == term.Key()
	})
	if duplicate {
		return false
	}
	s.manuallyAddedWords = append(s.manuallyAddedWords, term)
	return true
}

// NextManuallyAddedWord pops the oldest manually queued term, if any.
func (s *Scheduler) NextManuallyAddedWord() (entity.Term, bool) {
	if len(s.manuallyAddedWords) == 0 {
		return entity.Term{}, false
	}
	term := s.manuallyAddedWords[0]
	s.manuallyAddedWords = s.manuallyAddedWords[1:]
	return term, true
}

// ManualQueueLen reports the current manual queue depth.
func (s *Scheduler) ManualQueueLen() int { return len(s.manuallyAddedWords) }

// InvalidateWord drops the cached sampling weight for a term. Hosts call it
// after reporting an outcome so the next draw sees the fresh stats.
func (s *Scheduler) InvalidateWord(term entity.Term) {
	s.cache.InvalidateWord(term)
}

func (s *Scheduler) partition(pool []entity.Term) (exposed, unexposed []entity.Term) {
	return lo.FilterReject(pool, func(t entity.Term, _ int) bool {
		stats := s.stats.Stats(t)
		return stats != nil && stats.Exposed
	})
}

func (s *Scheduler) introduceNewWord(unexposed []entity.Term) entity.Activity {
	term := unexposed[s.rng.IntN(len(unexposed))]
	s.newWordsIntroduced = append(s.newWordsIntroduced, term)
	s.consecutiveNewWordPrevention = newWordCooldown
	s.decay(&s.motivationalBreakPrevention)
	return entity.Activity{
		Type:      entity.ActivityNewWord,
		Term:      &term,
		Direction: entity.DirectionEnToLt,
	}
}

func (s *Scheduler) sampleWeighted(exposed []entity.Term) entity.Term {
	if s.cache.NeedsRebuild(exposed) {
		s.cache.BuildSelectionTree(exposed)
	}
	if term := s.cache.SelectWordFromTree(); term != nil {
		return *term
	}
	// Stale cache self-heals on rebuild; if the draw still fails, degrade
	// to a uniform pick rather than surfacing an error.
	s.cache.BuildSelectionTree(exposed)
	if term := s.cache.SelectWordFromTree(); term != nil {
		return *term
	}
	s.logger.Warn("weighted draw unavailable, falling back to uniform selection")
	return exposed[s.rng.IntN(len(exposed))]
}

// resolveActivity turns a sampled term into a concrete exercise. The
// bounded retry loop only spins when audio is disabled and the roulette
// keeps landing on listening; it always terminates with a multiple-choice
// fallback.
func (s *Scheduler) resolveActivity(term entity.Term, audioEnabled bool) entity.Activity {
	var exposures int32
	if stats := s.stats.Stats(term); stats != nil {
		exposures = stats.TotalCorrect()
	}
	for attempt := 0; attempt < activityResolveAttempts; attempt++ {
		if activity := s.selector.AttemptSelection(term, exposures, audioEnabled, 0); activity != nil {
			return *activity
		}
	}
	return entity.Activity{
		Type:      entity.ActivityReview,
		Term:      &term,
		Modality:  entity.ModalityMultipleChoice,
		Direction: entity.DirectionEnToLt,
	}
}

func (s *Scheduler) decayAll() {
	s.decay(&s.consecutiveNewWordPrevention)
	s.decay(&s.motivationalBreakPrevention)
}

func (s *Scheduler) decay(counter *int) {
	if *counter > 0 {
		*counter--
	}
}
