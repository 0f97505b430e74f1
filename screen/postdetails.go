package screen

import (
	"context"

	"hexgames/connectivity"
	"hexgames/gateway"
	"hexgames/models"
	"hexgames/repository"
)

type PostDetailsStateKind int

const (
	PostDetailsLoading PostDetailsStateKind = iota
	PostDetailsDisplay
	PostDetailsError
)

// PostDetailsState carries the post with its comments plus the
// connectivity and login flags the screen needs to enable or disable the
// add-comment action.
type PostDetailsState struct {
	Kind                PostDetailsStateKind
	IsInternetAvailable bool
	IsUserLoggedIn      bool
	Post                models.Post
	Comments            []models.Comment
	ErrorMessage        string
}

// PostDetailsViewModel loads one post and follows its comments live. The
// post ID is fixed at construction, mirroring how the screen receives it
// from navigation.
type PostDetailsViewModel struct {
	net      connectivity.Checker
	posts    *repository.PostRepository
	comments *repository.CommentRepository
	users    *repository.UserRepository
	postID   string
	states   *StateStream[PostDetailsState]
}

func NewPostDetailsViewModel(net connectivity.Checker, posts *repository.PostRepository, comments *repository.CommentRepository, users *repository.UserRepository, postID string) *PostDetailsViewModel {
	return &PostDetailsViewModel{
		net:      net,
		posts:    posts,
		comments: comments,
		users:    users,
		postID:   postID,
		states:   NewStateStream(PostDetailsState{Kind: PostDetailsLoading}),
	}
}

func (vm *PostDetailsViewModel) States() *StateStream[PostDetailsState] { return vm.states }

// Load resolves login status, reads the post once, then republishes the
// screen with every comments snapshot until ctx is cancelled.
func (vm *PostDetailsViewModel) Load(ctx context.Context) {
	online := vm.net.IsInternetAvailable()
	vm.states.Publish(PostDetailsState{Kind: PostDetailsLoading, IsInternetAvailable: online})

	if !online {
		vm.states.Publish(PostDetailsState{
			Kind:         PostDetailsError,
			ErrorMessage: "no internet connection",
		})
		return
	}

	loggedIn := vm.users.ReadUser(ctx).Kind == gateway.ReadUserSuccess

	postResult := vm.posts.GetPost(ctx, vm.postID)
	if postResult.Kind != gateway.GetPostSuccess {
		msg := "could not load post"
		if postResult.Kind == gateway.GetPostNotFound {
			msg = "post not found"
		}
		vm.states.Publish(PostDetailsState{
			Kind:                PostDetailsError,
			IsInternetAvailable: true,
			IsUserLoggedIn:      loggedIn,
			ErrorMessage:        msg,
		})
		return
	}

	for result := range vm.comments.WatchComments(ctx, vm.postID) {
		switch result.Kind {
		case gateway.GetCommentsSuccess, gateway.GetCommentsEmpty:
			vm.states.Publish(PostDetailsState{
				Kind:                PostDetailsDisplay,
				IsInternetAvailable: true,
				IsUserLoggedIn:      loggedIn,
				Post:                postResult.Post,
				Comments:            result.Comments,
			})
		default:
			vm.states.Publish(PostDetailsState{
				Kind:                PostDetailsError,
				IsInternetAvailable: true,
				IsUserLoggedIn:      loggedIn,
				ErrorMessage:        "could not load comments",
			})
		}
	}
}

func (vm *PostDetailsViewModel) Close() {
	vm.states.Close()
}
