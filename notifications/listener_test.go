package notifications

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"hexgames/prefs"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	mu     sync.Mutex
	titles []string
}

func (d *recordingDisplay) show(title, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.titles = append(d.titles, title)
}

func (d *recordingDisplay) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.titles)
}

func setupListener(t *testing.T) (*Notifier, *prefs.Store, *recordingDisplay, context.Context) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	display := &recordingDisplay{}
	notifier := NewNotifier(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	listener := NewListener(notifier, store, display.show)
	require.NoError(t, listener.Start(ctx))

	// Give the subscription time to land before publishing.
	time.Sleep(100 * time.Millisecond)

	return notifier, store, display, ctx
}

func TestListenerSurfacesMessages(t *testing.T) {
	notifier, _, display, ctx := setupListener(t)

	require.NoError(t, notifier.PublishFeedMessage(ctx, Message{Title: "New post", Body: "hello"}))

	assert.Eventually(t, func() bool {
		return display.count() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestListenerHonorsOptOut(t *testing.T) {
	notifier, store, display, ctx := setupListener(t)

	require.NoError(t, store.SetBool(prefs.KeyNotificationsEnabled, false))
	require.NoError(t, notifier.PublishFeedMessage(ctx, Message{Title: "muted", Body: "hello"}))

	// Re-enabling takes effect on the next message without a restart.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, store.SetBool(prefs.KeyNotificationsEnabled, true))
	require.NoError(t, notifier.PublishFeedMessage(ctx, Message{Title: "heard", Body: "hello"}))

	assert.Eventually(t, func() bool {
		return display.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	display.mu.Lock()
	defer display.mu.Unlock()
	assert.Equal(t, []string{"heard"}, display.titles)
}

func TestListenerDropsMalformedPayloads(t *testing.T) {
	notifier, _, display, ctx := setupListener(t)

	require.NoError(t, notifier.rdb.Publish(ctx, FeedChannel, "{not json").Err())
	require.NoError(t, notifier.PublishFeedMessage(ctx, Message{Title: "valid", Body: "hello"}))

	assert.Eventually(t, func() bool {
		return display.count() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNotifierWithoutRedisIsNoOp(t *testing.T) {
	notifier := NewNotifier(nil)
	ctx := context.Background()

	assert.NoError(t, notifier.SignalPostsChanged(ctx))
	assert.NoError(t, notifier.SignalCommentsChanged(ctx, "post-1"))
	assert.NoError(t, notifier.PublishFeedMessage(ctx, Message{Title: "t", Body: "b"}))
	assert.Nil(t, notifier.Subscribe(ctx, FeedChannel))
}
