package journey

import (
	"fmt"

	"github.com/eslsoft/journey/internal/entity"
)

// WeightedSelectionTree supports O(log n) point weight updates and
// O(log n) weighted random draws over a dynamic list of terms. It is an
// array-backed binary tree: leaves hold (weight, term) pairs at 1-based
// slots, every internal node holds the sum of its two children.
type WeightedSelectionTree struct {
	size  int // leaves in use
	cap   int // power-of-two leaf capacity; padding leaves stay at weight 0
	nodes []float64
	words []entity.Term // 1-based leaf slot -> term
	index map[string]int
}

// NewWeightedSelectionTree returns a tree sized for n leaves.
func NewWeightedSelectionTree(n int) *WeightedSelectionTree {
	t := &WeightedSelectionTree{}
	t.Resize(n)
	return t
}

// Resize reallocates the tree for exactly n leaves, discarding all prior
// weights and word associations. Every previously issued index is invalid
// afterwards; callers must rebuild everything.
func (t *WeightedSelectionTree) Resize(n int) {
	if n < 0 {
		n = 0
	}
	capacity := 1
	for capacity < n {
		capacity *= 2
	}
	t.size = n
	t.cap = capacity
	t.nodes = make([]float64, 2*capacity)
	t.words = make([]entity.Term, n+1)
	t.index = make(map[string]int, n)
}

// Len returns the number of leaves in use.
func (t *WeightedSelectionTree) Len() int { return t.size }

// SetWord associates the 1-based leaf slot with a term so the term can be
// recovered after a draw.
func (t *WeightedSelectionTree) SetWord(index int, term entity.Term) error {
	if index < 1 || index > t.size {
		return fmt.Errorf("leaf index %d out of range [1, %d]", index, t.size)
	}
	if prev := t.words[index]; !prev.IsZero() {
		delete(t.index, prev.Key())
	}
	t.words[index] = term
	t.index[term.Key()] = index
	return nil
}

// Word returns the term stored at the 1-based leaf slot.
func (t *WeightedSelectionTree) Word(index int) (entity.Term, error) {
	if index < 1 || index > t.size {
		return entity.Term{}, fmt.Errorf("leaf index %d out of range [1, %d]", index, t.size)
	}
	return t.words[index], nil
}

// WordIndex returns the leaf slot holding the term, or 0 when the term is
// not in the tree. Used to target a point update without a full rebuild.
func (t *WeightedSelectionTree) WordIndex(term entity.Term) int {
	return t.index[term.Key()]
}

// UpdateWeight sets the weight of the 1-based leaf slot and refreshes every
// ancestor's running sum. Negative weights are clamped to zero.
func (t *WeightedSelectionTree) UpdateWeight(index int, weight float64) error {
	if index < 1 || index > t.size {
		return fmt.Errorf("leaf index %d out of range [1, %d]", index, t.size)
	}
	if weight < 0 {
		weight = 0
	}
	pos := t.cap + index - 1
	t.nodes[pos] = weight
	for pos > 1 {
		pos /= 2
		t.nodes[pos] = t.nodes[2*pos] + t.nodes[2*pos+1]
	}
	return nil
}

// TotalWeight returns the root sum in O(1).
func (t *WeightedSelectionTree) TotalWeight() float64 {
	if t.cap == 0 {
		return 0
	}
	return t.nodes[1]
}

// SelectByWeight descends from the root for a draw r in [0, TotalWeight()),
// choosing the left child whenever r falls inside its weight range and
// otherwise subtracting the left sum and continuing right. Returns the
// 1-based leaf index whose cumulative weight interval contains r.
//
// Callers must never pass r when TotalWeight() == 0; fall back to a uniform
// draw over the leaf set instead.
func (t *WeightedSelectionTree) SelectByWeight(r float64) (int, error) {
	total := t.TotalWeight()
	if t.size == 0 || total <= 0 {
		return 0, fmt.Errorf("selection from empty or zero-weight tree")
	}
	if r < 0 || r >= total {
		return 0, fmt.Errorf("draw %v outside [0, %v)", r, total)
	}
	node := 1
	for node < t.cap {
		left := 2 * node
		if r < t.nodes[left] {
			node = left
		} else {
			r -= t.nodes[left]
			node = left + 1
		}
	}
	return node - t.cap + 1, nil
}
