// Package screen holds the view-models. Each one owns the state for a
// single screen, exposes it through a StateStream, and reacts to user
// actions by running its backend pipeline and publishing the outcome.
package screen

import (
	"context"
	"sync"
)

// StateStream owns one screen's current state and fans it out to
// subscribers. Every subscriber first receives the state current at
// subscribe time, then every later publish, in order. The stream lives
// exactly as long as its screen; Close releases all subscribers.
type StateStream[T any] struct {
	mu     sync.Mutex
	state  T
	subs   map[chan T]struct{}
	done   chan struct{}
	closed bool
}

func NewStateStream[T any](initial T) *StateStream[T] {
	return &StateStream[T]{
		state: initial,
		subs:  make(map[chan T]struct{}),
		done:  make(chan struct{}),
	}
}

// Current returns the latest published state.
func (s *StateStream[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Watch subscribes until ctx is cancelled or the stream closes. The
// returned channel conflates: a subscriber that falls behind sees the
// newest state, not every intermediate one.
func (s *StateStream[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	ch <- s.state
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		}
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}()

	return ch
}

// Publish replaces the current state and notifies every subscriber.
func (s *StateStream[T]) Publish(state T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.state = state
	for ch := range s.subs {
		select {
		case ch <- state:
		default:
			// Drop the stale value so the newest one always lands.
			select {
			case <-ch:
			default:
			}
			ch <- state
		}
	}
}

// Close ends the stream and closes all subscriber channels.
func (s *StateStream[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
}
