package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count        int
	rejected     int
	windowStart  time.Time
	blockedUntil time.Time
}

// MemoryStore keeps counters in a process-local map. The window of a client
// starts with its first request.
type MemoryStore struct {
	mu       sync.Mutex
	entries  map[string]*entry
	settings Settings
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore(settings Settings) *MemoryStore {
	return &MemoryStore{
		entries:  make(map[string]*entry),
		settings: settings,
		now:      time.Now,
	}
}

// Take implements Store
func (s *MemoryStore) Take(_ context.Context, key string) (Decision, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{windowStart: now}
		s.entries[key] = e
	}

	if now.Before(e.blockedUntil) {
		return blocked(s.settings, now, e.blockedUntil), nil
	}

	if !now.Before(e.windowStart.Add(s.settings.Window)) {
		e.count = 0
		e.rejected = 0
		e.windowStart = now
	}
	resetAt := e.windowStart.Add(s.settings.Window)

	if e.count < s.settings.Max {
		e.count++
		return allowed(s.settings, e.count, resetAt), nil
	}

	e.rejected++
	if s.settings.blocking() && e.rejected >= s.settings.BlockAfter {
		e.blockedUntil = now.Add(s.settings.BlockDuration)
		return blocked(s.settings, now, e.blockedUntil), nil
	}
	return rejected(s.settings, now, resetAt), nil
}

// Sweep drops entries whose window and block have both ended and returns
// how many were dropped
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if now.Before(e.blockedUntil) {
			continue
		}
		if now.Before(e.windowStart.Add(s.settings.Window)) {
			continue
		}
		delete(s.entries, key)
		removed++
	}
	return removed
}

// Len returns the number of tracked clients
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run sweeps every SweepInterval until ctx is done
func (s *MemoryStore) Run(ctx context.Context) {
	interval := s.settings.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}
