package journey

import (
	"math"
	"testing"

	"github.com/eslsoft/journey/internal/entity"
)

func testTerm(source, target string) entity.Term {
	return entity.Term{SourceText: source, TargetText: target, Corpus: "nouns_one", Group: "Animals"}
}

func buildTree(t *testing.T, weights []float64) *WeightedSelectionTree {
	t.Helper()
	tree := NewWeightedSelectionTree(len(weights))
	for i, w := range weights {
		term := testTerm(string(rune('a'+i)), string(rune('A'+i)))
		if err := tree.SetWord(i+1, term); err != nil {
			t.Fatalf("SetWord(%d): %v", i+1, err)
		}
		if err := tree.UpdateWeight(i+1, w); err != nil {
			t.Fatalf("UpdateWeight(%d): %v", i+1, err)
		}
	}
	return tree
}

func TestTreeTotalMatchesLeafSum(t *testing.T) {
	weights := []float64{2, 0, 1.5, 7, 0.25, 3, 1}
	tree := buildTree(t, weights)

	var want float64
	for _, w := range weights {
		want += w
	}
	if got := tree.TotalWeight(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalWeight() = %v, want %v", got, want)
	}

	// Updates must keep every ancestor sum exact.
	if err := tree.UpdateWeight(4, 0); err != nil {
		t.Fatalf("UpdateWeight: %v", err)
	}
	if err := tree.UpdateWeight(2, 5); err != nil {
		t.Fatalf("UpdateWeight: %v", err)
	}
	want = want - 7 + 5
	if got := tree.TotalWeight(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("TotalWeight() after updates = %v, want %v", got, want)
	}
}

func TestSelectByWeightIntervals(t *testing.T) {
	weights := []float64{2, 0, 1.5, 7, 0.25, 3, 1}
	tree := buildTree(t, weights)

	// Sweep draws across the full range; each draw must land on the leaf
	// whose cumulative interval contains it.
	total := tree.TotalWeight()
	for r := 0.0; r < total; r += 0.05 {
		index, err := tree.SelectByWeight(r)
		if err != nil {
			t.Fatalf("SelectByWeight(%v): %v", r, err)
		}
		var cumulative float64
		want := 0
		for i, w := range weights {
			if r >= cumulative && r < cumulative+w {
				want = i + 1
				break
			}
			cumulative += w
		}
		if index != want {
			t.Errorf("SelectByWeight(%v) = leaf %d, want %d", r, index, want)
		}
	}
}

func TestSelectByWeightRejectsOutOfRange(t *testing.T) {
	tree := buildTree(t, []float64{1, 2})
	if _, err := tree.SelectByWeight(-0.1); err == nil {
		t.Error("expected error for negative draw")
	}
	if _, err := tree.SelectByWeight(3); err == nil {
		t.Error("expected error for draw >= total")
	}

	empty := NewWeightedSelectionTree(0)
	if _, err := empty.SelectByWeight(0); err == nil {
		t.Error("expected error for empty tree")
	}
}

func TestResizeDiscardsState(t *testing.T) {
	tree := buildTree(t, []float64{1, 2, 3})
	term, err := tree.Word(2)
	if err != nil {
		t.Fatalf("Word(2): %v", err)
	}

	tree.Resize(5)
	if got := tree.TotalWeight(); got != 0 {
		t.Errorf("TotalWeight() after resize = %v, want 0", got)
	}
	if got := tree.WordIndex(term); got != 0 {
		t.Errorf("WordIndex after resize = %d, want 0", got)
	}
	if tree.Len() != 5 {
		t.Errorf("Len() = %d, want 5", tree.Len())
	}
}

func TestWordIndexTracksAssignments(t *testing.T) {
	tree := buildTree(t, []float64{1, 2, 3})
	for i := 1; i <= 3; i++ {
		term, err := tree.Word(i)
		if err != nil {
			t.Fatalf("Word(%d): %v", i, err)
		}
		if got := tree.WordIndex(term); got != i {
			t.Errorf("WordIndex(%q) = %d, want %d", term.Key(), got, i)
		}
	}
	if got := tree.WordIndex(testTerm("missing", "missing")); got != 0 {
		t.Errorf("WordIndex(missing) = %d, want 0", got)
	}
}

func TestWeightedDrawFidelity(t *testing.T) {
	weights := []float64{1, 2, 3, 4}
	tree := buildTree(t, weights)
	rng := NewRNG(42)

	const draws = 200000
	counts := make([]int, len(weights))
	total := tree.TotalWeight()
	for i := 0; i < draws; i++ {
		index, err := tree.SelectByWeight(rng.Float64() * total)
		if err != nil {
			t.Fatalf("SelectByWeight: %v", err)
		}
		counts[index-1]++
	}

	for i, w := range weights {
		want := w / total
		got := float64(counts[i]) / draws
		if math.Abs(got-want) > 0.01 {
			t.Errorf("leaf %d frequency = %.4f, want %.4f ± 0.01", i+1, got, want)
		}
	}
}
