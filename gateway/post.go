package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hexgames/cache"
	"hexgames/models"
	"hexgames/notifications"
	"hexgames/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const feedCacheKey = "feed:posts"
const feedCacheTTL = 30 * time.Second

// PostGateway exposes the posts collection and the photo store.
//
// WatchPosts emits a feed snapshot on subscribe and after every post write
// until ctx is cancelled: an unbounded, restartable sequence of snapshots,
// not a one-shot call. All other operations resolve to a single result.
type PostGateway interface {
	WatchPosts(ctx context.Context) <-chan PostResult
	GetPosts(ctx context.Context) PostResult
	GetPost(ctx context.Context, id string) PostResult
	AddPhoto(ctx context.Context, post models.Post) PostResult
	AddPost(ctx context.Context, post models.Post) PostResult
}

// StorePostGateway is the document-store implementation of PostGateway.
type StorePostGateway struct {
	db       *gorm.DB
	rdb      *redis.Client
	photos   storage.PhotoStore
	notifier *notifications.Notifier
	logger   *slog.Logger
}

func NewStorePostGateway(db *gorm.DB, rdb *redis.Client, photos storage.PhotoStore, notifier *notifications.Notifier) *StorePostGateway {
	return &StorePostGateway{
		db:       db,
		rdb:      rdb,
		photos:   photos,
		notifier: notifier,
		logger:   slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// GetPosts returns the feed ordered by creation time, newest first.
func (g *StorePostGateway) GetPosts(ctx context.Context) PostResult {
	var posts []models.Post

	found, err := cache.GetJSON(ctx, g.rdb, feedCacheKey, &posts)
	if err != nil {
		// A broken cache never fails the read; fall through to the store.
		g.logger.Warn("feed cache read failed", slog.String("error", err.Error()))
		found = false
	}

	if !found {
		if err := g.db.WithContext(ctx).Order("timestamp DESC").Find(&posts).Error; err != nil {
			return PostResult{Kind: GetPostsError, Err: models.NewInternalError(err)}
		}
		_ = cache.SetJSON(ctx, g.rdb, feedCacheKey, posts, feedCacheTTL)
	}

	if len(posts) == 0 {
		return PostResult{Kind: GetPostsEmpty}
	}
	return PostResult{Kind: GetPostsSuccess, Posts: posts}
}

// WatchPosts re-queries the feed whenever the posts-changed channel fires.
func (g *StorePostGateway) WatchPosts(ctx context.Context) <-chan PostResult {
	out := make(chan PostResult, 1)

	go func() {
		defer close(out)

		emit := func() bool {
			select {
			case out <- g.GetPosts(ctx):
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}

		sub := g.notifier.Subscribe(ctx, notifications.PostsChangedChannel)
		if sub == nil {
			// No live channel available; the single snapshot stands.
			<-ctx.Done()
			return
		}
		defer sub.Close()
		ch := sub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if !emit() {
					return
				}
			}
		}
	}()

	return out
}

// GetPost reads a single post by ID.
func (g *StorePostGateway) GetPost(ctx context.Context, id string) PostResult {
	var post models.Post
	err := g.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PostResult{Kind: GetPostNotFound}
		}
		return PostResult{Kind: GetPostError, Err: models.NewInternalError(err)}
	}
	return PostResult{Kind: GetPostSuccess, Post: post}
}

// AddPhoto uploads the post's local photo file and returns the resolved
// download reference. The record write is a separate operation; callers
// sequence upload-then-write themselves.
func (g *StorePostGateway) AddPhoto(ctx context.Context, post models.Post) PostResult {
	if g.photos == nil {
		return PostResult{Kind: AddPhotoError, Err: models.NewInternalError(errors.New("photo storage not configured"))}
	}

	f, err := os.Open(post.PhotoURL)
	if err != nil {
		return PostResult{Kind: AddPhotoError, Err: models.NewInternalError(err)}
	}
	defer f.Close()

	key := fmt.Sprintf("post_images/%s", post.ID)
	downloadURL, err := g.photos.Save(ctx, key, f)
	if err != nil {
		return PostResult{Kind: AddPhotoError, Err: models.NewInternalError(err)}
	}

	return PostResult{Kind: AddPhotoSuccess, DownloadURL: downloadURL}
}

// AddPost writes the finalized post and wakes feed watchers.
func (g *StorePostGateway) AddPost(ctx context.Context, post models.Post) PostResult {
	if err := g.db.WithContext(ctx).Create(&post).Error; err != nil {
		return PostResult{Kind: AddPostError, Err: models.NewInternalError(err)}
	}

	cache.Invalidate(ctx, g.rdb, feedCacheKey)

	if err := g.notifier.SignalPostsChanged(ctx); err != nil {
		g.logger.Warn("posts-changed signal failed", slog.String("error", err.Error()))
	}
	msg := notifications.Message{
		Title: fmt.Sprintf("New post from %s", post.Author.Firstname),
		Body:  post.Title,
	}
	if err := g.notifier.PublishFeedMessage(ctx, msg); err != nil {
		g.logger.Warn("feed notification failed", slog.String("error", err.Error()))
	}

	return PostResult{Kind: AddPostSuccess}
}
