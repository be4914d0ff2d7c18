package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrisonrobin/taskdigest/pkg/model"
)

func TestDetect(t *testing.T) {
	tests := map[model.Priority]Tier{
		"High":     High,
		"HIGH-1":   High,
		"1":        High,
		"P1":       High,
		"10":       High,
		"medium":   Medium,
		"Medium-2": Medium,
		"2":        Medium,
		"low":      Low,
		"LOW":      Low,
		"3":        Low,
		"":         None,
		"urgent":   None,
		"4":        None,
		"true":     None,
	}
	for in, want := range tests {
		assert.Equal(t, want, Detect(in), "priority %q", in)
	}
}
