package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SequenceState is the state of the post-login sequence.
type SequenceState string

const (
	SequenceIdle      SequenceState = "idle"
	SequenceAnimating SequenceState = "animating"
	SequenceComplete  SequenceState = "complete"
)

// DefaultSequenceDuration matches the fixed-length success animation
// shown after login.
const DefaultSequenceDuration = 4500 * time.Millisecond

// Sequence is the explicit state machine behind the login-success
// hold: idle -> animating -> complete. Navigation is driven by the
// transition to complete, not by an incidental timeout elsewhere.
type Sequence struct {
	mu    sync.Mutex
	state SequenceState
	dur   time.Duration

	onComplete func()

	// after is a test seam for the animation timer.
	after func(time.Duration) <-chan time.Time
}

// NewSequence creates an idle sequence. onComplete fires exactly once,
// on the transition to complete; it is where navigation happens.
func NewSequence(dur time.Duration, onComplete func()) *Sequence {
	if dur <= 0 {
		dur = DefaultSequenceDuration
	}
	return &Sequence{
		state:      SequenceIdle,
		dur:        dur,
		onComplete: onComplete,
		after:      time.After,
	}
}

// State returns the current sequence state.
func (s *Sequence) State() SequenceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Run transitions idle -> animating, holds for the configured
// duration, then transitions to complete and fires onComplete. A
// cancelled context skips the remaining hold and completes early; the
// user still ends up navigated, just without the full animation.
func (s *Sequence) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.state != SequenceIdle {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("sequence already %s", state)
	}
	s.state = SequenceAnimating
	s.mu.Unlock()

	select {
	case <-s.after(s.dur):
	case <-ctx.Done():
	}

	s.mu.Lock()
	s.state = SequenceComplete
	s.mu.Unlock()

	if s.onComplete != nil {
		s.onComplete()
	}
	return nil
}
