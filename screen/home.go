package screen

import (
	"context"

	"hexgames/connectivity"
	"hexgames/gateway"
	"hexgames/models"
	"hexgames/repository"
)

type HomeStateKind int

const (
	HomeLoading HomeStateKind = iota
	HomeDisplayPosts
	HomeNoPostToDisplay
	HomeInternetUnavailable
)

// HomeState is the feed screen's state. Posts is set only for
// HomeDisplayPosts. IsUserLoggedIn drives the add-post affordance and is
// carried by every variant.
type HomeState struct {
	Kind           HomeStateKind
	Posts          []models.Post
	IsUserLoggedIn bool
}

// HomeViewModel loads the feed: connectivity gate, then login status, then
// a live posts query that keeps the state current until the screen closes.
type HomeViewModel struct {
	net    connectivity.Checker
	posts  *repository.PostRepository
	users  *repository.UserRepository
	states *StateStream[HomeState]
}

func NewHomeViewModel(net connectivity.Checker, posts *repository.PostRepository, users *repository.UserRepository) *HomeViewModel {
	return &HomeViewModel{
		net:    net,
		posts:  posts,
		users:  users,
		states: NewStateStream(HomeState{Kind: HomeLoading}),
	}
}

func (vm *HomeViewModel) States() *StateStream[HomeState] { return vm.states }

// Load resolves the feed and keeps publishing fresh snapshots as posts
// change, until ctx is cancelled. Without a signed-in user the feed is not
// loaded at all.
func (vm *HomeViewModel) Load(ctx context.Context) {
	if !vm.net.IsInternetAvailable() {
		vm.states.Publish(HomeState{Kind: HomeInternetUnavailable})
		return
	}

	userResult := vm.users.ReadUser(ctx)
	if userResult.Kind != gateway.ReadUserSuccess {
		vm.states.Publish(HomeState{Kind: HomeNoPostToDisplay})
		return
	}

	for result := range vm.posts.WatchPosts(ctx) {
		if result.Kind == gateway.GetPostsSuccess {
			vm.states.Publish(HomeState{Kind: HomeDisplayPosts, Posts: result.Posts, IsUserLoggedIn: true})
		} else {
			vm.states.Publish(HomeState{Kind: HomeNoPostToDisplay, IsUserLoggedIn: true})
		}
	}
}

func (vm *HomeViewModel) Close() {
	vm.states.Close()
}
