package loader

import (
	"context"
	"errors"
)

// Session owns the single in-flight load of a view. Start cancels whatever
// is still running, and Poll only ever reports the latest load.
type Session struct {
	ld      *Loader
	locator string
	pending <-chan Result
	cancel  context.CancelFunc
}

func (ld *Loader) NewSession() *Session {
	return &Session{ld: ld}
}

func (s *Session) Start(locator string) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.locator = locator
	s.pending = s.ld.Load(ctx, locator)
}

// Locator is the target of the most recent Start.
func (s *Session) Locator() string {
	return s.locator
}

func (s *Session) Pending() bool {
	return s.pending != nil
}

// Poll never blocks. It returns false while the load runs and for a load
// that ended by cancellation.
func (s *Session) Poll() (Result, bool) {
	if s.pending == nil {
		return Result{}, false
	}
	var res Result
	select {
	case res = <-s.pending:
	default:
		return Result{}, false
	}
	s.pending = nil
	if errors.Is(res.Err, context.Canceled) {
		return Result{}, false
	}
	return res, true
}

func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.pending = nil
}
