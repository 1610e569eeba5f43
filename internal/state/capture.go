package state

import (
	"sync"

	"github.com/atomicstack/timegraph/internal/capture"
)

// CaptureStore holds the capture the view is showing. Snapshots are
// immutable, so readers may keep the pointer across frames.
type CaptureStore interface {
	Current() *capture.Capture
	Version() uint64
	// Set installs c and reports whether it replaced a different version.
	Set(c *capture.Capture) bool
}

type captureStore struct {
	mu      sync.RWMutex
	current *capture.Capture
}

func NewCaptureStore() CaptureStore {
	return &captureStore{}
}

func (s *captureStore) Current() *capture.Capture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *captureStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Version()
}

func (s *captureStore) Set(c *capture.Capture) bool {
	if c == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == c || (s.current != nil && s.current.Version() == c.Version()) {
		return false
	}
	s.current = c
	return true
}
