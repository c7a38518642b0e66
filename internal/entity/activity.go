package entity

// ActivityType classifies what the scheduler asked the host to present next.
type ActivityType string

const (
	ActivityNewWord           ActivityType = "new-word"
	ActivityReview            ActivityType = "review"
	ActivityMotivationalBreak ActivityType = "motivational-break"
	ActivityGrammarBreak      ActivityType = "grammar-break"
)

// Direction is the prompt direction of an exercise.
type Direction string

const (
	DirectionEnToLt Direction = "en-to-lt"
	DirectionLtToEn Direction = "lt-to-en"
)

// Activity is the scheduler's output descriptor: one exercise (or break)
// for the host to render. Term is nil for break activities.
type Activity struct {
	Type      ActivityType
	Term      *Term
	Modality  Modality
	Direction Direction
}

// IsBreak reports whether the activity presents no term.
func (a Activity) IsBreak() bool {
	return a.Type == ActivityMotivationalBreak || a.Type == ActivityGrammarBreak
}
