package overdue

import "time"

// DefaultWindow is how far ahead a due date still counts as due soon.
const DefaultWindow = 7 * 24 * time.Hour

// Level is the urgency of a task relative to a reference time.
type Level int

const (
	NoDueDate Level = iota
	Overdue
	DueSoon
	DueLater
)

func (l Level) String() string {
	switch l {
	case Overdue:
		return "overdue"
	case DueSoon:
		return "due_soon"
	case DueLater:
		return "due_later"
	}
	return "no_due_date"
}

// Classify places due relative to now. A zero due has no due date, anything
// strictly before now is overdue, and anything up to and including
// now+window is due soon.
func Classify(due, now time.Time, window time.Duration) Level {
	if due.IsZero() {
		return NoDueDate
	}
	if due.Before(now) {
		return Overdue
	}
	if !due.After(now.Add(window)) {
		return DueSoon
	}
	return DueLater
}

// Tally counts classified tasks per level.
type Tally map[Level]int

// Add classifies due and records it.
func (t Tally) Add(due, now time.Time, window time.Duration) Level {
	l := Classify(due, now, window)
	t[l]++
	return l
}
