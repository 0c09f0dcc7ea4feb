package service

import "time"

// SetClock replaces the session clock so tests can expire tokens.
func (s *SessionService) SetClock(now func() time.Time) { s.now = now }

// SetClock replaces the job id clock.
func (s *JobService) SetClock(now func() time.Time) { s.now = now }

// SetClock replaces the bucket clock.
func (tb *TokenBucket) SetClock(now func() time.Time) { tb.now = now }

// Len returns the number of tracked keys.
func (tb *TokenBucket) Len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.buckets)
}

// Prune drops buckets idle since before cutoff.
func (tb *TokenBucket) Prune(cutoff time.Time) { tb.prune(cutoff) }
