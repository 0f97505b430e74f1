package gateway

import (
	"context"
	"testing"
	"time"

	"hexgames/models"
	"hexgames/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComment(id, postID string, ts int64) models.Comment {
	return models.Comment{
		ID:        id,
		PostID:    postID,
		Content:   "content " + id,
		Timestamp: ts,
		Author: models.Author{
			ID:        "author-1",
			Email:     "gerry@example.com",
			Firstname: "Gerry",
			Lastname:  "Ariella",
		},
	}
}

func TestGetCommentsOrderedOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	gw := NewStoreCommentGateway(db, notifications.NewNotifier(nil))
	ctx := context.Background()

	for i, id := range []string{"c", "b", "a"} {
		comment := testComment(id, "post-1", int64(3000-i))
		require.NoError(t, db.Create(&comment).Error)
	}
	other := testComment("other", "post-2", 1)
	require.NoError(t, db.Create(&other).Error)

	result := gw.GetComments(ctx, "post-1")
	require.Equal(t, GetCommentsSuccess, result.Kind)
	require.Len(t, result.Comments, 3)
	assert.Equal(t, "a", result.Comments[0].ID)
	assert.Equal(t, "b", result.Comments[1].ID)
	assert.Equal(t, "c", result.Comments[2].ID)
}

func TestGetCommentsEmptyForPost(t *testing.T) {
	db := setupTestDB(t)
	gw := NewStoreCommentGateway(db, notifications.NewNotifier(nil))

	result := gw.GetComments(context.Background(), "post-1")
	assert.Equal(t, GetCommentsEmpty, result.Kind)
}

func TestAddCommentRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	gw := NewStoreCommentGateway(db, notifications.NewNotifier(nil))
	ctx := context.Background()

	comment := testComment("round-trip", "post-1", 1234567890)
	require.Equal(t, AddCommentSuccess, gw.AddComment(ctx, comment).Kind)

	read := gw.GetComments(ctx, "post-1")
	require.Equal(t, GetCommentsSuccess, read.Kind)
	require.Len(t, read.Comments, 1)
	assert.Equal(t, comment, read.Comments[0])
}

func TestWatchCommentsEmitsOnEveryWrite(t *testing.T) {
	db := setupTestDB(t)
	rdb := setupTestRedis(t)
	gw := NewStoreCommentGateway(db, notifications.NewNotifier(rdb))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := gw.WatchComments(ctx, "post-1")

	first := receiveCommentResult(t, snapshots)
	assert.Equal(t, GetCommentsEmpty, first.Kind)

	// Give the subscription time to land before signalling.
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, AddCommentSuccess, gw.AddComment(ctx, testComment("a", "post-1", 1000)).Kind)

	second := receiveCommentResult(t, snapshots)
	require.Equal(t, GetCommentsSuccess, second.Kind)
	assert.Len(t, second.Comments, 1)
}

func receiveCommentResult(t *testing.T, ch <-chan CommentResult) CommentResult {
	t.Helper()
	select {
	case result, ok := <-ch:
		require.True(t, ok, "watch channel closed unexpectedly")
		return result
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for comments snapshot")
		return CommentResult{}
	}
}
