package gateway

import (
	"context"
	"log/slog"
	"os"

	"hexgames/models"
	"hexgames/notifications"

	"gorm.io/gorm"
)

// CommentGateway exposes the comments collection. Comments are always read
// in the context of one post, oldest first.
type CommentGateway interface {
	WatchComments(ctx context.Context, postID string) <-chan CommentResult
	GetComments(ctx context.Context, postID string) CommentResult
	AddComment(ctx context.Context, comment models.Comment) CommentResult
}

// StoreCommentGateway is the document-store implementation of CommentGateway.
type StoreCommentGateway struct {
	db       *gorm.DB
	notifier *notifications.Notifier
	logger   *slog.Logger
}

func NewStoreCommentGateway(db *gorm.DB, notifier *notifications.Notifier) *StoreCommentGateway {
	return &StoreCommentGateway{
		db:       db,
		notifier: notifier,
		logger:   slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

// GetComments returns a post's comments ordered by creation time, oldest
// first.
func (g *StoreCommentGateway) GetComments(ctx context.Context, postID string) CommentResult {
	var comments []models.Comment
	err := g.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("timestamp ASC").
		Find(&comments).Error
	if err != nil {
		return CommentResult{Kind: GetCommentsError, Err: models.NewInternalError(err)}
	}
	if len(comments) == 0 {
		return CommentResult{Kind: GetCommentsEmpty}
	}
	return CommentResult{Kind: GetCommentsSuccess, Comments: comments}
}

// WatchComments re-queries one post's comments whenever its signal channel
// fires.
func (g *StoreCommentGateway) WatchComments(ctx context.Context, postID string) <-chan CommentResult {
	out := make(chan CommentResult, 1)

	go func() {
		defer close(out)

		emit := func() bool {
			select {
			case out <- g.GetComments(ctx, postID):
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}

		sub := g.notifier.Subscribe(ctx, notifications.CommentsChangedChannel(postID))
		if sub == nil {
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

// AddComment writes the finalized comment and wakes its post's watchers.
func (g *StoreCommentGateway) AddComment(ctx context.Context, comment models.Comment) CommentResult {
	if err := g.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return CommentResult{Kind: AddCommentError, Err: models.NewInternalError(err)}
	}

	if err := g.notifier.SignalCommentsChanged(ctx, comment.PostID); err != nil {
		g.logger.Warn("comments-changed signal failed", slog.String("error", err.Error()))
	}
	msg := notifications.Message{
		Title: "New comment",
		Body:  comment.Content,
	}
	if err := g.notifier.PublishFeedMessage(ctx, msg); err != nil {
		g.logger.Warn("feed notification failed", slog.String("error", err.Error()))
	}

	return CommentResult{Kind: AddCommentSuccess}
}
