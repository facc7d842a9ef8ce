package server

import (
	"sync"
	"time"

	"git.home.luguber.info/inful/sitecfg/internal/build"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Snapshot is what the handlers read: the last good configuration plus the
// outcome of the most recent build attempt.
type Snapshot struct {
	Config  site.SiteConfig
	BuildID string
	BuiltAt time.Time
	// Ready is false until a build has succeeded at least once.
	Ready bool
	// LastErr is the error of the most recent build, nil when it succeeded.
	LastErr error
}

// State holds the serve loop's current Snapshot. A failed rebuild keeps the
// previous configuration so the site stays up while the file is being edited.
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// Update applies the outcome of a build.
func (s *State) Update(res *build.Result, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.LastErr = err
	if err != nil || res == nil || res.Status != build.StatusSuccess {
		return
	}
	s.snap.Config = res.Config
	s.snap.BuildID = res.BuildID
	s.snap.BuiltAt = res.StartTime
	s.snap.Ready = true
}

// Current returns a copy of the snapshot. The Config is cloned so callers
// cannot reach the shared value.
func (s *State) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snap
	snap.Config = s.snap.Config.Clone()
	return snap
}
