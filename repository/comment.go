package repository

import (
	"context"

	"hexgames/gateway"
	"hexgames/models"
)

type CommentRepository struct {
	gw gateway.CommentGateway
}

func NewCommentRepository(gw gateway.CommentGateway) *CommentRepository {
	return &CommentRepository{gw: gw}
}

func (r *CommentRepository) WatchComments(ctx context.Context, postID string) <-chan gateway.CommentResult {
	return r.gw.WatchComments(ctx, postID)
}

func (r *CommentRepository) GetComments(ctx context.Context, postID string) gateway.CommentResult {
	return r.gw.GetComments(ctx, postID)
}

func (r *CommentRepository) AddComment(ctx context.Context, comment models.Comment) gateway.CommentResult {
	return r.gw.AddComment(ctx, comment)
}
