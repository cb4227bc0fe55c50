package library

import (
	"context"
	"sync"
	"sync/atomic"
)

// Session owns the current Index for one Steam install. The first call to
// Index builds it; Rebuild replaces it. Concurrent callers share a single
// in-flight build.
type Session struct {
	primary string
	opts    Options

	buildMu sync.Mutex
	current atomic.Pointer[Index]
}

// NewSession prepares a session for the Steam install at primary.
func NewSession(primary string, opts Options) *Session {
	return &Session{primary: primary, opts: opts}
}

// Primary returns the Steam install path the session scans.
func (s *Session) Primary() string {
	return s.primary
}

// Index returns the current snapshot, building it on first use.
func (s *Session) Index(ctx context.Context) (*Index, error) {
	if idx := s.current.Load(); idx != nil {
		return idx, nil
	}
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	if idx := s.current.Load(); idx != nil {
		return idx, nil
	}
	return s.buildLocked(ctx)
}

// Rebuild builds a fresh snapshot and makes it current. Readers holding the
// previous Index keep a consistent view. On error the current snapshot is
// left unchanged.
func (s *Session) Rebuild(ctx context.Context) (*Index, error) {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	return s.buildLocked(ctx)
}

// Seed installs an index obtained elsewhere, such as a stored snapshot.
func (s *Session) Seed(idx *Index) {
	if idx != nil {
		s.current.Store(idx)
	}
}

// Current returns the snapshot without building; nil before the first build.
func (s *Session) Current() *Index {
	return s.current.Load()
}

func (s *Session) buildLocked(ctx context.Context) (*Index, error) {
	idx, err := BuildIndex(ctx, s.primary, s.opts)
	if err != nil {
		return nil, err
	}
	s.current.Store(idx)
	return idx, nil
}
