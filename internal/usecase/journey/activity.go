package journey

import "github.com/eslsoft/journey/internal/entity"

// Mastery tiers are coarse bands over the exposure count and drive the
// modality mix: fresh terms stay on recognition exercises, well-practiced
// terms shift toward typed recall.
const (
	tierOne   = 1
	tierTwo   = 2
	tierThree = 3

	tierTwoExposures   = 4
	tierThreeExposures = 9

	drillMaxAttempts = 10
)

// modalityWeights holds per-tier percentages (out of 100) for the
// cumulative-threshold roulette: multiple-choice, listening, typed recall.
var modalityWeights = map[int][3]int{
	tierOne:   {50, 50, 0},
	tierTwo:   {40, 40, 20},
	tierThree: {20, 20, 60},
}

// TierForExposures maps an exposure count to its mastery tier.
func TierForExposures(exposures int32) int {
	switch {
	case exposures < tierTwoExposures:
		return tierOne
	case exposures < tierThreeExposures:
		return tierTwo
	default:
		return tierThree
	}
}

// DrillDifficulty is the fixed difficulty label of the non-adaptive drill
// flow; it maps directly to a tier, ignoring the live exposure count.
type DrillDifficulty string

const (
	DrillEasy   DrillDifficulty = "easy"
	DrillMedium DrillDifficulty = "medium"
	DrillHard   DrillDifficulty = "hard"
)

func (d DrillDifficulty) tier() int {
	switch d {
	case DrillMedium:
		return tierTwo
	case DrillHard:
		return tierThree
	default:
		return tierOne
	}
}

// ActivitySelector rolls a concrete exercise modality for a term according
// to the tiered probability table, respecting audio availability.
type ActivitySelector struct {
	rng RNG
}

// NewActivitySelector returns a selector using the given random source.
func NewActivitySelector(rng RNG) *ActivitySelector {
	return &ActivitySelector{rng: rng}
}

// AttemptSelection rolls a modality for the term. forcedTier overrides the
// exposure-derived tier when non-zero (used by the drill variant). It
// returns nil when the roulette lands on listening while audio is disabled;
// callers retry rather than silently downgrading the modality.
func (s *ActivitySelector) AttemptSelection(term entity.Term, exposures int32, audioEnabled bool, forcedTier int) *entity.Activity {
	tier := forcedTier
	if tier < tierOne || tier > tierThree {
		tier = TierForExposures(exposures)
	}
	weights := modalityWeights[tier]

	roll := s.rng.IntN(100)
	switch {
	case roll < weights[0]:
		return s.reviewActivity(term, entity.ModalityMultipleChoice)
	case roll < weights[0]+weights[1]:
		if !audioEnabled {
			return nil
		}
		return s.reviewActivity(term, s.listeningMode(tier))
	default:
		return s.reviewActivity(term, entity.ModalityTyping)
	}
}

// listeningMode randomizes the listening sub-mode. Easy asks the learner to
// recognize the spoken term among same-language options, hard among
// translated options; tier 1 never receives hard listening.
func (s *ActivitySelector) listeningMode(tier int) entity.Modality {
	if tier == tierOne {
		return entity.ModalityListeningEasy
	}
	if s.rng.IntN(2) == 0 {
		return entity.ModalityListeningEasy
	}
	return entity.ModalityListeningHard
}

func (s *ActivitySelector) reviewActivity(term entity.Term, modality entity.Modality) *entity.Activity {
	return &entity.Activity{
		Type:      entity.ActivityReview,
		Term:      &term,
		Modality:  modality,
		Direction: s.direction(modality),
	}
}

// direction picks the prompt direction. Listening always prompts with the
// spoken target-language term; other modalities alternate randomly.
func (s *ActivitySelector) direction(modality entity.Modality) entity.Direction {
	if modality.IsListening() {
		return entity.DirectionLtToEn
	}
	if s.rng.IntN(2) == 0 {
		return entity.DirectionEnToLt
	}
	return entity.DirectionLtToEn
}

// SelectDrillActivity resolves an activity for the fixed-difficulty drill
// flow. It retries the roulette up to ten times when listening is rolled
// with audio disabled, then force-falls-back to multiple choice.
func (s *ActivitySelector) SelectDrillActivity(term entity.Term, difficulty DrillDifficulty, audioEnabled bool, exposures int32) *entity.Activity {
	for attempt := 0; attempt < drillMaxAttempts; attempt++ {
		if activity := s.AttemptSelection(term, exposures, audioEnabled, difficulty.tier()); activity != nil {
			return activity
		}
	}
	return s.reviewActivity(term, entity.ModalityMultipleChoice)
}
