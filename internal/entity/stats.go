package entity

import "time"

// Modality is the exercise format a term can be drilled in.
type Modality string

const (
	ModalityUnspecified    Modality = ""
	ModalityMultipleChoice Modality = "multipleChoice"
	ModalityListeningEasy  Modality = "listeningEasy"
	ModalityListeningHard  Modality = "listeningHard"
	ModalityTyping         Modality = "typing"
)

// Modalities lists every trackable modality in stable order.
func Modalities() []Modality {
	return []Modality{
		ModalityMultipleChoice,
		ModalityListeningEasy,
		ModalityListeningHard,
		ModalityTyping,
	}
}

// Valid reports whether m is a known, trackable modality.
func (m Modality) Valid() bool {
	switch m {
	case ModalityMultipleChoice, ModalityListeningEasy, ModalityListeningHard, ModalityTyping:
		return true
	default:
		return false
	}
}

// IsListening reports whether m requires audio playback.
func (m Modality) IsListening() bool {
	return m == ModalityListeningEasy || m == ModalityListeningHard
}

// ModalityStats counts graded answers for one term in one modality.
type ModalityStats struct {
	Correct   int32
	Incorrect int32
}

// TermStats is the mutable per-term record the scheduler consults. Counters
// only ever grow and Exposed latches true exactly once.
type TermStats struct {
	ID                int64
	TermKey           string
	Exposed           bool
	MultipleChoice    ModalityStats
	ListeningEasy     ModalityStats
	ListeningHard     ModalityStats
	Typing            ModalityStats
	LastSeen          *time.Time
	LastCorrectAnswer *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTermStats returns an empty record for a term that has never been seen.
func NewTermStats(term Term) *TermStats {
	return &TermStats{TermKey: term.Key()}
}

func (s *TermStats) bucket(m Modality) *ModalityStats {
	switch m {
	case ModalityMultipleChoice:
		return &s.MultipleChoice
	case ModalityListeningEasy:
		return &s.ListeningEasy
	case ModalityListeningHard:
		return &s.ListeningHard
	case ModalityTyping:
		return &s.Typing
	default:
		return nil
	}
}

// Stats returns the counters for a single modality.
func (s *TermStats) Stats(m Modality) ModalityStats {
	if b := s.bucket(m); b != nil {
		return *b
	}
	return ModalityStats{}
}

// TotalCorrect is the exposure count: correct answers summed across all
// modalities. It drives the mastery tier and the sampling weight.
func (s *TermStats) TotalCorrect() int32 {
	return s.MultipleChoice.Correct + s.ListeningEasy.Correct + s.ListeningHard.Correct + s.Typing.Correct
}

// TotalIncorrect sums incorrect answers across all modalities.
func (s *TermStats) TotalIncorrect() int32 {
	return s.MultipleChoice.Incorrect + s.ListeningEasy.Incorrect + s.ListeningHard.Incorrect + s.Typing.Incorrect
}

// RecordOutcome applies one graded exercise to the record. Invalid
// modalities are rejected so counters stay consistent with what was shown.
func (s *TermStats) RecordOutcome(m Modality, correct, expose bool, now time.Time) error {
	b := s.bucket(m)
	if b == nil {
		return ErrInvalidModality
	}
	if correct {
		b.Correct++
		t := now
		s.LastCorrectAnswer = &t
	} else {
		b.Incorrect++
	}
	seen := now
	s.LastSeen = &seen
	if expose {
		s.Exposed = true
	}
	s.UpdatedAt = now
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	return nil
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s *TermStats) Clone() *TermStats {
	if s == nil {
		return nil
	}
	copied := *s
	if s.LastSeen != nil {
		t := *s.LastSeen
		copied.LastSeen = &t
	}
	if s.LastCorrectAnswer != nil {
		t := *s.LastCorrectAnswer
		copied.LastCorrectAnswer = &t
	}
	return &copied
}
