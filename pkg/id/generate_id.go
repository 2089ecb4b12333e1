package id

import (
	"sync"
	"time"
)

// Sequence hands out int64 ids derived from the creation time in milliseconds.
// Ids never repeat and never go backwards within one Sequence, even when several
// are taken in the same millisecond or the clock steps back.
type Sequence struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewSequence() *Sequence { return &Sequence{now: time.Now} }

// NewSequenceAt is NewSequence with a custom clock.
func NewSequenceAt(now func() time.Time) *Sequence { return &Sequence{now: now} }

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.now().UnixMilli()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return n
}
