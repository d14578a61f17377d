package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleRunsInDeadlineOrder(t *testing.T) {
	var s Schedule
	var got []string
	s.After(testStart, 3*time.Second, func() { got = append(got, "c") })
	s.After(testStart, time.Second, func() { got = append(got, "a") })
	s.After(testStart, time.Second, func() { got = append(got, "b") })
	s.After(testStart, 2*time.Second, func() { got = append(got, "x") })

	assert.Zero(t, s.RunDue(testStart.Add(999*time.Millisecond)))
	assert.Equal(t, 3, s.RunDue(testStart.Add(2*time.Second)))
	assert.Equal(t, []string{"a", "b", "x"}, got)
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, 1, s.RunDue(testStart.Add(time.Hour)))
	assert.Equal(t, []string{"a", "b", "x", "c"}, got)
	assert.Zero(t, s.Len())
}

func TestScheduleCallbackCanScheduleDueEvent(t *testing.T) {
	var s Schedule
	ran := 0
	s.After(testStart, 0, func() {
		ran++
		s.After(testStart, 0, func() { ran++ })
	})

	assert.Equal(t, 2, s.RunDue(testStart))
	assert.Equal(t, 2, ran)
}

func TestScheduleResetDropsPending(t *testing.T) {
	var s Schedule
	ran := false
	s.After(testStart, time.Millisecond, func() { ran = true })
	s.Reset()

	assert.Zero(t, s.RunDue(testStart.Add(time.Second)))
	assert.False(t, ran)
	assert.Zero(t, s.Len())
}

func TestScheduleManyEvents(t *testing.T) {
	var s Schedule
	var got []int
	for _, ms := range []int{50, 10, 40, 30, 20, 60, 0} {
		ms := ms
		s.After(testStart, time.Duration(ms)*time.Millisecond, func() { got = append(got, ms) })
	}

	s.RunDue(testStart.Add(time.Minute))
	assert.Equal(t, []int{0, 10, 20, 30, 40, 50, 60}, got)
}
