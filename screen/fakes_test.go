package screen

import (
	"context"

	"hexgames/gateway"
	"hexgames/models"
)

// fakeChecker answers the connectivity gate with a fixed value
type fakeChecker struct {
	online bool
}

func (c *fakeChecker) IsInternetAvailable() bool { return c.online }

// fakePostGateway returns scripted results and counts calls
type fakePostGateway struct {
	watchResults []gateway.PostResult
	getPosts     gateway.PostResult
	getPost      gateway.PostResult
	addPhoto     gateway.PostResult
	addPost      gateway.PostResult

	addPhotoCalls int
	addPostCalls  int
	addedPosts    []models.Post
}

func (g *fakePostGateway) WatchPosts(ctx context.Context) <-chan gateway.PostResult {
	out := make(chan gateway.PostResult, len(g.watchResults))
	for _, r := range g.watchResults {
		out <- r
	}
	close(out)
	return out
}

func (g *fakePostGateway) GetPosts(ctx context.Context) gateway.PostResult {
	return g.getPosts
}

func (g *fakePostGateway) GetPost(ctx context.Context, id string) gateway.PostResult {
	return g.getPost
}

func (g *fakePostGateway) AddPhoto(ctx context.Context, post models.Post) gateway.PostResult {
	g.addPhotoCalls++
	return g.addPhoto
}

func (g *fakePostGateway) AddPost(ctx context.Context, post models.Post) gateway.PostResult {
	g.addPostCalls++
	g.addedPosts = append(g.addedPosts, post)
	return g.addPost
}

// fakeUserGateway returns scripted results and counts calls
type fakeUserGateway struct {
	createUser      gateway.UserResult
	readUser        gateway.UserResult
	deleteUser      gateway.UserResult
	signIn          gateway.UserResult
	signOut         gateway.UserResult
	userExists      gateway.UserResult
	recoverPassword gateway.UserResult

	createUserCalls int
	readUserCalls   int
	createdUsers    []models.User
}

func (g *fakeUserGateway) CreateUser(ctx context.Context, user models.User) gateway.UserResult {
	g.createUserCalls++
	g.createdUsers = append(g.createdUsers, user)
	return g.createUser
}

func (g *fakeUserGateway) ReadUser(ctx context.Context) gateway.UserResult {
	g.readUserCalls++
	return g.readUser
}

func (g *fakeUserGateway) DeleteUser(ctx context.Context) gateway.UserResult {
	return g.deleteUser
}

func (g *fakeUserGateway) SignIn(ctx context.Context, email, password string) gateway.UserResult {
	return g.signIn
}

func (g *fakeUserGateway) SignOut(ctx context.Context) gateway.UserResult {
	return g.signOut
}

func (g *fakeUserGateway) UserExists(ctx context.Context, email string) gateway.UserResult {
	return g.userExists
}

func (g *fakeUserGateway) RecoverPassword(ctx context.Context, email string) gateway.UserResult {
	return g.recoverPassword
}

// fakeCommentGateway returns scripted results and counts calls
type fakeCommentGateway struct {
	watchResults []gateway.CommentResult
	getComments  gateway.CommentResult
	addComment   gateway.CommentResult

	addCommentCalls int
	addedComments   []models.Comment
}

func (g *fakeCommentGateway) WatchComments(ctx context.Context, postID string) <-chan gateway.CommentResult {
	out := make(chan gateway.CommentResult, len(g.watchResults))
	for _, r := range g.watchResults {
		out <- r
	}
	close(out)
	return out
}

func (g *fakeCommentGateway) GetComments(ctx context.Context, postID string) gateway.CommentResult {
	return g.getComments
}

func (g *fakeCommentGateway) AddComment(ctx context.Context, comment models.Comment) gateway.CommentResult {
	g.addCommentCalls++
	g.addedComments = append(g.addedComments, comment)
	return g.addComment
}

func loggedInUser() models.User {
	return models.User{
		ID:        "user-1",
		Firstname: "Gerry",
		Lastname:  "Ariella",
		Email:     "gerry@example.com",
	}
}
