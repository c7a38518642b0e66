package journey

import (
	"math"
	"testing"

	"github.com/eslsoft/journey/internal/entity"
)

func TestTierForExposures(t *testing.T) {
	cases := []struct {
		exposures int32
		want      int
	}{
		{0, 1}, {3, 1}, {4, 2}, {8, 2}, {9, 3}, {20, 3},
	}
	for _, tc := range cases {
		if got := TierForExposures(tc.exposures); got != tc.want {
			t.Errorf("TierForExposures(%d) = %d, want %d", tc.exposures, got, tc.want)
		}
	}
}

func TestTierOneNeverOffersTyping(t *testing.T) {
	selector := NewActivitySelector(NewRNG(3))
	term := testTerm("water", "vanduo")
	for i := 0; i < 5000; i++ {
		activity := selector.AttemptSelection(term, 0, true, 0)
		if activity == nil {
			t.Fatal("AttemptSelection() = nil with audio enabled")
		}
		if activity.Modality == entity.ModalityTyping {
			t.Fatal("tier 1 offered typed recall")
		}
		if activity.Modality == entity.ModalityListeningHard {
			t.Fatal("tier 1 offered hard listening")
		}
	}
}

func TestTierThreeTypingShare(t *testing.T) {
	selector := NewActivitySelector(NewRNG(11))
	term := testTerm("water", "vanduo")

	const trials = 20000
	typing := 0
	for i := 0; i < trials; i++ {
		activity := selector.AttemptSelection(term, 20, true, 0)
		if activity == nil {
			t.Fatal("AttemptSelection() = nil with audio enabled")
		}
		if activity.Modality == entity.ModalityTyping {
			typing++
		}
	}
	got := float64(typing) / trials
	if math.Abs(got-0.60) > 0.02 {
		t.Errorf("typed-recall share at tier 3 = %.3f, want 0.60 ± 0.02", got)
	}
}

func TestAudioDisabledReturnsNilNotDowngrade(t *testing.T) {
	selector := NewActivitySelector(NewRNG(5))
	term := testTerm("fire", "ugnis")

	sawNil := false
	for i := 0; i < 5000; i++ {
		activity := selector.AttemptSelection(term, 5, false, 0)
		if activity == nil {
			sawNil = true
			continue
		}
		if activity.Modality.IsListening() {
			t.Fatal("listening offered while audio disabled")
		}
	}
	if !sawNil {
		t.Error("roulette never landed on listening; expected nil results to occur")
	}
}

func TestForcedTierOverridesExposures(t *testing.T) {
	selector := NewActivitySelector(NewRNG(8))
	term := testTerm("stone", "akmuo")

	// Exposures say tier 3, the forced tier says 1: typing must never show.
	for i := 0; i < 5000; i++ {
		activity := selector.AttemptSelection(term, 30, true, tierOne)
		if activity == nil {
			t.Fatal("AttemptSelection() = nil with audio enabled")
		}
		if activity.Modality == entity.ModalityTyping {
			t.Fatal("forced tier 1 offered typed recall")
		}
	}
}

func TestSelectDrillActivityAlwaysResolves(t *testing.T) {
	selector := NewActivitySelector(NewRNG(13))
	term := testTerm("bird", "paukštis")

	for i := 0; i < 2000; i++ {
		activity := selector.SelectDrillActivity(term, DrillEasy, false, 0)
		if activity == nil {
			t.Fatal("SelectDrillActivity() = nil; fallback must always resolve")
		}
		if activity.Modality.IsListening() {
			t.Fatal("drill offered listening while audio disabled")
		}
	}
}

func TestDrillDifficultyMapsToTier(t *testing.T) {
	cases := []struct {
		difficulty DrillDifficulty
		want       int
	}{
		{DrillEasy, tierOne},
		{DrillMedium, tierTwo},
		{DrillHard, tierThree},
		{DrillDifficulty("unknown"), tierOne},
	}
	for _, tc := range cases {
		if got := tc.difficulty.tier(); got != tc.want {
			t.Errorf("%q.tier() = %d, want %d", tc.difficulty, got, tc.want)
		}
	}
}
