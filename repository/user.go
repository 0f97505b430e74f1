package repository

import (
	"context"

	"hexgames/gateway"
	"hexgames/models"
)

type UserRepository struct {
	gw gateway.UserGateway
}

func NewUserRepository(gw gateway.UserGateway) *UserRepository {
	return &UserRepository{gw: gw}
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) gateway.UserResult {
	return r.gw.CreateUser(ctx, user)
}

func (r *UserRepository) ReadUser(ctx context.Context) gateway.UserResult {
	return r.gw.ReadUser(ctx)
}

func (r *UserRepository) DeleteUser(ctx context.Context) gateway.UserResult {
	return r.gw.DeleteUser(ctx)
}

func (r *UserRepository) SignIn(ctx context.Context, email, password string) gateway.UserResult {
	return r.gw.SignIn(ctx, email, password)
}

func (r *UserRepository) SignOut(ctx context.Context) gateway.UserResult {
	return r.gw.SignOut(ctx)
}

func (r *UserRepository) UserExists(ctx context.Context, email string) gateway.UserResult {
	return r.gw.UserExists(ctx, email)
}

func (r *UserRepository) RecoverPassword(ctx context.Context, email string) gateway.UserResult {
	return r.gw.RecoverPassword(ctx, email)
}
