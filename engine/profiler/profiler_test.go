package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickBeforeIntervalReportsNothing(t *testing.T) {
	p := NewProfiler()

	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
}

func TestTickReportsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.SetInterval(10 * time.Millisecond)

	assert.False(t, p.Tick())
	time.Sleep(20 * time.Millisecond)
	assert.True(t, p.Tick())

	// Counters reset after a report.
	assert.False(t, p.Tick())
}

func TestSetIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetInterval(0)
	p.SetInterval(-time.Second)

	assert.False(t, p.Tick())
}
