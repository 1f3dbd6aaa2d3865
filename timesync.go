package main

import (
	"context"
	"log"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// syncTimeout bounds a single ntpdate invocation.
	syncTimeout = 10 * time.Second
	// syncInterval is how stale the clock may get before the tick loop
	// launches another attempt.
	syncInterval = time.Hour
)

// syncer corrects the system clock against a list of time servers.
// attempt is launched with go from the tick loop and the sync button so a
// slow server never stalls the display refresh.
type syncer struct {
	mu       sync.Mutex
	lastSync time.Time
	inFlight atomic.Bool

	// run performs one sync against one server. Swapped out in tests.
	run func(ctx context.Context, server string) error
}

func newSyncer() *syncer {
	return &syncer{run: runNTPDate}
}

func runNTPDate(ctx context.Context, server string) error {
	return exec.CommandContext(ctx, "ntpdate", "-s", server).Run()
}

// attempt tries each server in order and stops at the first success.
// Individual failures are skipped silently; only the aggregate result is
// reported. Overlapping attempts collapse into the one already running.
func (s *syncer) attempt(servers []string) bool {
	if !s.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer s.inFlight.Store(false)

	for _, server := range servers {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		err := s.run(ctx, server)
		cancel()
		if err != nil {
			continue
		}
		s.mu.Lock()
		s.lastSync = time.Now()
		s.mu.Unlock()
		log.Printf("time sync ok via %s", server)
		return true
	}
	log.Printf("time sync failed for all servers")
	return false
}

// last returns the time of the most recent successful sync, zero when the
// clock has never been synced.
func (s *syncer) last() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSync
}

// age reports how long ago the last successful sync was.
func (s *syncer) age() time.Duration {
	last := s.last()
	if last.IsZero() {
		return 1<<63 - 1
	}
	return time.Since(last)
}
