package journey

import (
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/journey/internal/entity"
)

// Sampling-weight tuning. Exposures are correct answers summed across all
// modalities; well-known terms are suppressed and long-unseen terms boosted.
const (
	weightCacheTTL = 5 * time.Minute

	masteryFamiliarExposures = 8
	masteryKnownExposures    = 15

	weightBaseNew      = 1.0
	weightBaseFamiliar = 0.5
	weightBaseKnown    = 0.2

	stalenessWindow = 14 * 24 * time.Hour
	stalenessBoost  = 3.0
)

// StatsReader is the narrow stats view the scheduler consults. Nil results
// mean the term has never been tracked.
type StatsReader interface {
	Stats(term entity.Term) *entity.TermStats
}

type cachedWeight struct {
	value      float64
	computedAt time.Time
}

// WeightCache memoizes derived sampling weights per term with a time-based
// invalidation window and owns the selection tree built over a term list.
// The tree is rebuilt only when the underlying term set changes; a single
// term's weight change is applied as an O(log n) point update.
type WeightCache struct {
	stats StatsReader
	rng   RNG
	clock func() time.Time

	weights  map[string]cachedWeight
	tree     *WeightedSelectionTree
	treeKeys map[string]struct{}
	stale    bool
}

// WeightCacheOption customizes a WeightCache.
type WeightCacheOption func(*WeightCache)

// WithWeightClock overrides the wall clock, for deterministic tests.
func WithWeightClock(clock func() time.Time) WeightCacheOption {
	return func(c *WeightCache) { c.clock = clock }
}

// NewWeightCache wires a cache over the given stats view and random source.
func NewWeightCache(stats StatsReader, rng RNG, opts ...WeightCacheOption) *WeightCache {
	c := &WeightCache{
		stats:   stats,
		rng:     rng,
		clock:   time.Now,
		weights: make(map[string]cachedWeight),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WordWeight returns the sampling weight for a term, recomputing it when the
// cached value is older than the invalidation window.
func (c *WeightCache) WordWeight(term entity.Term) float64 {
	now := c.clock()
	if cached, ok := c.weights[term.Key()]; ok && now.Sub(cached.computedAt) < weightCacheTTL {
		return cached.value
	}
	weight := c.computeWeight(term, now)
	c.weights[term.Key()] = cachedWeight{value: weight, computedAt: now}
	return weight
}

func (c *WeightCache) computeWeight(term entity.Term, now time.Time) float64 {
	stats := c.stats.Stats(term)
	if stats == nil {
		return weightBaseNew
	}

	exposures := stats.TotalCorrect()
	base := weightBaseNew
	switch {
	case exposures >= masteryKnownExposures:
		base = weightBaseKnown
	case exposures >= masteryFamiliarExposures:
		base = weightBaseFamiliar
	}

	multiplier := 1.0
	if stats.LastSeen != nil && now.Sub(*stats.LastSeen) > stalenessWindow {
		multiplier = stalenessBoost
	}
	return base * multiplier
}

// BuildSelectionTree populates the selection tree from scratch for the given
// term list and records the list's key set for change detection.
func (c *WeightCache) BuildSelectionTree(terms []entity.Term) {
	tree := NewWeightedSelectionTree(len(terms))
	for i, term := range terms {
		_ = tree.SetWord(i+1, term)
		_ = tree.UpdateWeight(i+1, c.WordWeight(term))
	}
	c.tree = tree
	c.treeKeys = lo.SliceToMap(terms, func(t entity.Term) (string, struct{}) {
		return t.Key(), struct{}{}
	})
	c.stale = false
}

// NeedsRebuild reports whether the selection tree must be rebuilt for the
// candidate list: no tree exists yet, a prior invalidation could not be
// applied in place, or the candidate key set differs from the tree's.
// Comparing the full key set (rather than length and endpoints) catches
// interior substitutions and reorderings of equal length.
func (c *WeightCache) NeedsRebuild(terms []entity.Term) bool {
	if c.tree == nil || c.stale {
		return true
	}
	if len(terms) != len(c.treeKeys) {
		return true
	}
	return lo.SomeBy(terms, func(t entity.Term) bool {
		_, ok := c.treeKeys[t.Key()]
		return !ok
	})
}

// InvalidateWord drops the cached weight for one term and refreshes its leaf
// with an O(log n) point update. The tree is only marked stale (forcing a
// full rebuild on the next draw) when the term is not in the tree at all,
// meaning the term set itself changed.
func (c *WeightCache) InvalidateWord(term entity.Term) {
	delete(c.weights, term.Key())
	if c.tree == nil || c.stale {
		return
	}
	index := c.tree.WordIndex(term)
	if index == 0 {
		c.stale = true
		return
	}
	_ = c.tree.UpdateWeight(index, c.WordWeight(term))
}

// SelectWordFromTree draws uniformly in [0, totalWeight) and delegates to the
// tree. It returns nil when no usable tree exists, signaling the caller to
// rebuild first. When every weight is zero it falls back to a uniform draw
// over the leaf set.
func (c *WeightCache) SelectWordFromTree() *entity.Term {
	if c.tree == nil || c.stale || c.tree.Len() == 0 {
		return nil
	}
	total := c.tree.TotalWeight()
	if total <= 0 {
		word, err := c.tree.Word(c.rng.IntN(c.tree.Len()) + 1)
		if err != nil {
			return nil
		}
		return &word
	}
	index, err := c.tree.SelectByWeight(c.rng.Float64() * total)
	if err != nil {
		return nil
	}
	word, err := c.tree.Word(index)
	if err != nil {
		return nil
	}
	return &word
}
