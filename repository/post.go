// Package repository is the seam between screen view-models and the
// gateways. Each repository forwards to its gateway one-to-one, so screens
// depend on a stable surface while the backing services stay swappable.
package repository

import (
	"context"

	"hexgames/gateway"
	"hexgames/models"
)

type PostRepository struct {
	gw gateway.PostGateway
}

func NewPostRepository(gw gateway.PostGateway) *PostRepository {
	return &PostRepository{gw: gw}
}

func (r *PostRepository) WatchPosts(ctx context.Context) <-chan gateway.PostResult {
	return r.gw.WatchPosts(ctx)
}

func (r *PostRepository) GetPosts(ctx context.Context) gateway.PostResult {
	return r.gw.GetPosts(ctx)
}

func (r *PostRepository) GetPost(ctx context.Context, id string) gateway.PostResult {
	return r.gw.GetPost(ctx, id)
}

func (r *PostRepository) AddPhoto(ctx context.Context, post models.Post) gateway.PostResult {
	return r.gw.AddPhoto(ctx, post)
}

func (r *PostRepository) AddPost(ctx context.Context, post models.Post) gateway.PostResult {
	return r.gw.AddPost(ctx, post)
}
