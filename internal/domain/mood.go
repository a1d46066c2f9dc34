package domain

// MoodScore is the 1..5 ordinal wellbeing scale, 5 being best.
type MoodScore int

const (
	MoodBad   MoodScore = 1
	MoodLow   MoodScore = 2
	MoodOkay  MoodScore = 3
	MoodGood  MoodScore = 4
	MoodGreat MoodScore = 5
)

func (s MoodScore) Valid() bool {
	return s >= MoodBad && s <= MoodGreat
}

func (s MoodScore) Label() string {
	switch s {
	case MoodGreat:
		return "Super"
	case MoodGood:
		return "Bien"
	case MoodOkay:
		return "Neutre"
	case MoodLow:
		return "Bof"
	case MoodBad:
		return "Difficile"
	}

	return "?"
}

func (s MoodScore) Emoji() string {
	switch s {
	case MoodGreat:
		return "😄"
	case MoodGood:
		return "🙂"
	case MoodOkay:
		return "😐"
	case MoodLow:
		return "😔"
	case MoodBad:
		return "😢"
	}

	return "?"
}
