// Package notifications carries the live-update signals and the inbound
// push channel over Redis pub/sub.
package notifications

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	// PostsChangedChannel is signalled after every post write; feed
	// watchers re-query on each message.
	PostsChangedChannel = "posts:changed"

	// FeedChannel carries title/body push payloads surfaced as local
	// notifications.
	FeedChannel = "notifications:feed"
)

// CommentsChangedChannel names the per-post comment signal channel.
func CommentsChangedChannel(postID string) string {
	return "comments:changed:" + postID
}

// Message is the push payload shape: a title and a body, nothing else.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier provides helpers to publish signals and push payloads into
// Redis channels. All methods are no-ops without a Redis connection.
type Notifier struct {
	rdb *redis.Client
}

func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// SignalPostsChanged wakes every feed watcher.
func (n *Notifier) SignalPostsChanged(ctx context.Context) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, PostsChangedChannel, "").Err()
}

// SignalCommentsChanged wakes watchers of one post's comment stream.
func (n *Notifier) SignalCommentsChanged(ctx context.Context, postID string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, CommentsChangedChannel(postID), "").Err()
}

// PublishFeedMessage sends a push payload to every connected client.
func (n *Notifier) PublishFeedMessage(ctx context.Context, msg Message) error {
	if n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, FeedChannel, string(payload)).Err()
}

// Subscribe returns a raw subscription for the given channels, nil without
// a Redis connection. Callers own the subscription lifetime.
func (n *Notifier) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Subscribe(ctx, channels...)
}
