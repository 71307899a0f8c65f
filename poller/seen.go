package poller

import (
	"fmt"
	"time"
)

// eventKey identifies a processed event by id and timestamp so a replayed
// event with an identical id but different timestamp is treated as new.
func eventKey(eventID int64, ts time.Time) string {
	return fmt.Sprintf("%d_%d", eventID, ts.UnixMilli())
}

// seenSet is an insertion-ordered set of processed event keys with a hard
// cap. When Truncate finds it over cap it keeps only the newest half, so
// memory stays bounded across an unbounded stream of events.
type seenSet struct {
	cap   int
	keys  map[string]struct{}
	order []string
}

func newSeenSet(cap int) *seenSet {
	return &seenSet{
		cap:  cap,
		keys: make(map[string]struct{}),
	}
}

// Add inserts key and reports whether it was absent before the call.
func (s *seenSet) Add(key string) bool {
	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	s.order = append(s.order, key)
	return true
}

// Truncate drops the oldest keys once the set exceeds its cap, retaining
// the newest half.
func (s *seenSet) Truncate() {
	if len(s.order) <= s.cap {
		return
	}
	keep := s.cap / 2
	drop := s.order[:len(s.order)-keep]
	for _, key := range drop {
		delete(s.keys, key)
	}
	s.order = append([]string(nil), s.order[len(s.order)-keep:]...)
}

func (s *seenSet) Len() int {
	return len(s.order)
}
