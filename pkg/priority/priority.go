// Package priority maps free-form priority values onto three tiers.
package priority

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/harrisonrobin/taskdigest/pkg/model"
)

type Tier int

const (
	None Tier = iota
	High
	Medium
	Low
)

func (t Tier) String() string {
	switch t {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	}
	return "none"
}

// Detect matches the case-folded value against each tier in order. A value
// containing "high" or "1" is high, "medium" or "2" medium, "low" or "3" low.
// The first matching tier wins, so "10" is high.
func Detect(p model.Priority) Tier {
	if p == "" {
		return None
	}
	s := cases.Fold().String(string(p))
	switch {
	case strings.Contains(s, "high") || strings.Contains(s, "1"):
		return High
	case strings.Contains(s, "medium") || strings.Contains(s, "2"):
		return Medium
	case strings.Contains(s, "low") || strings.Contains(s, "3"):
		return Low
	}
	return None
}
