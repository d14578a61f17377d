package loop

import "time"

// event is a callback due at a deadline. seq breaks ties in insertion order.
type event struct {
	at  time.Time
	seq uint64
	fn  func()
}

func (e event) before(o event) bool {
	if e.at.Equal(o.at) {
		return e.seq < o.seq
	}
	return e.at.Before(o.at)
}

// Schedule runs deferred callbacks at frame boundaries. It is owned by the
// frame loop and is not safe for concurrent use.
type Schedule struct {
	events []event // Min-heap by deadline
	seq    uint64
}

// After schedules fn to run at the first frame boundary at or after now+d.
func (s *Schedule) After(now time.Time, d time.Duration, fn func()) {
	s.seq++
	s.push(event{at: now.Add(d), seq: s.seq, fn: fn})
}

// RunDue runs every event due at or before now in deadline order and
// returns how many ran. Events scheduled by a callback for a time already
// due run in the same call.
func (s *Schedule) RunDue(now time.Time) int {
	n := 0
	for len(s.events) > 0 && !s.events[0].at.After(now) {
		e := s.pop()
		e.fn()
		n++
	}
	return n
}

// Reset drops every pending event.
func (s *Schedule) Reset() {
	clear(s.events)
	s.events = s.events[:0]
}

// Len returns the number of pending events.
func (s *Schedule) Len() int {
	return len(s.events)
}

func (s *Schedule) push(e event) {
	s.events = append(s.events, e)
	// Sift up
	i := len(s.events) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !s.events[i].before(s.events[parent]) {
			break
		}
		s.events[parent], s.events[i] = s.events[i], s.events[parent]
		i = parent
	}
}

func (s *Schedule) pop() event {
	old := s.events
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	old[n-1] = event{}
	s.events = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(s.events) {
			break
		}
		smallest := left
		if right := left + 1; right < len(s.events) && s.events[right].before(s.events[left]) {
			smallest = right
		}
		if !s.events[smallest].before(s.events[i]) {
			break
		}
		s.events[i], s.events[smallest] = s.events[smallest], s.events[i]
		i = smallest
	}
	return e
}
