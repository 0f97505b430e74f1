package screen

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStreamDeliversCurrentOnSubscribe(t *testing.T) {
	s := NewStateStream("initial")
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)
	assert.Equal(t, "initial", receiveState(t, ch))
}

func TestStateStreamDeliversPublishes(t *testing.T) {
	s := NewStateStream("initial")
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)
	require.Equal(t, "initial", receiveState(t, ch))

	s.Publish("next")
	assert.Equal(t, "next", receiveState(t, ch))
	assert.Equal(t, "next", s.Current())
}

func TestStateStreamConflatesToNewest(t *testing.T) {
	s := NewStateStream(0)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)

	// The subscriber has not drained; only the newest value survives.
	s.Publish(1)
	s.Publish(2)
	s.Publish(3)

	assert.Equal(t, 3, receiveState(t, ch))
}

func TestStateStreamCloseReleasesSubscribers(t *testing.T) {
	s := NewStateStream("initial")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Watch(ctx)
	require.Equal(t, "initial", receiveState(t, ch))

	s.Close()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber channel not closed")
	}

	// Publishing after close is a no-op.
	s.Publish("late")
	assert.Equal(t, "initial", s.Current())
}

func TestStateStreamCloseStopsSubscriberGoroutines(t *testing.T) {
	baseline := runtime.NumGoroutine()

	s := NewStateStream("initial")
	for i := 0; i < 10; i++ {
		// Subscribers whose context is never cancelled.
		ch := s.Watch(context.Background())
		require.Equal(t, "initial", receiveState(t, ch))
	}
	s.Close()

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline+1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStateStreamWatchAfterClose(t *testing.T) {
	s := NewStateStream("initial")
	s.Close()

	ch := s.Watch(context.Background())
	_, open := <-ch
	assert.False(t, open)
}

func receiveState[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "state channel closed unexpectedly")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for state")
		var zero T
		return zero
	}
}
