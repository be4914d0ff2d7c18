package colors

import "github.com/harrisonrobin/taskdigest/pkg/overdue"

// Palette holds the row background colour for each urgency level.
type Palette struct {
	NoDueDate string
	Overdue   string
	DueSoon   string
	DueLater  string
}

// DefaultPalette is a soft grey / red / orange / green scheme.
func DefaultPalette() Palette {
	return Palette{
		NoDueDate: "#f8f9fa",
		Overdue:   "#ffebee",
		DueSoon:   "#fff3e0",
		DueLater:  "#e8f5e8",
	}
}

// For returns the colour for level, falling back to the no-due-date colour.
func (p Palette) For(level overdue.Level) string {
	switch level {
	case overdue.Overdue:
		return p.Overdue
	case overdue.DueSoon:
		return p.DueSoon
	case overdue.DueLater:
		return p.DueLater
	}
	return p.NoDueDate
}
