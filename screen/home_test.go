package screen

import (
	"context"
	"testing"

	"hexgames/gateway"
	"hexgames/models"
	"hexgames/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHomeViewModel(online bool, posts *fakePostGateway, users *fakeUserGateway) *HomeViewModel {
	return NewHomeViewModel(
		&fakeChecker{online: online},
		repository.NewPostRepository(posts),
		repository.NewUserRepository(users),
	)
}

func TestHomeLoadNoInternet(t *testing.T) {
	users := &fakeUserGateway{}
	vm := newHomeViewModel(false, &fakePostGateway{}, users)
	defer vm.Close()

	vm.Load(context.Background())

	state := vm.States().Current()
	require.Equal(t, HomeInternetUnavailable, state.Kind)
	assert.False(t, state.IsUserLoggedIn)
	assert.Zero(t, users.readUserCalls)
}

func TestHomeLoadUserFetchFailure(t *testing.T) {
	users := &fakeUserGateway{
		readUser: gateway.UserResult{Kind: gateway.ReadUserNotFound},
	}
	vm := newHomeViewModel(true, &fakePostGateway{}, users)
	defer vm.Close()

	vm.Load(context.Background())

	state := vm.States().Current()
	require.Equal(t, HomeNoPostToDisplay, state.Kind)
	assert.False(t, state.IsUserLoggedIn)
}

func TestHomeLoadDisplaysPosts(t *testing.T) {
	feed := []models.Post{
		{ID: "b", Title: "second", Timestamp: 2000},
		{ID: "a", Title: "first", Timestamp: 1000},
	}
	posts := &fakePostGateway{
		watchResults: []gateway.PostResult{
			{Kind: gateway.GetPostsSuccess, Posts: feed},
		},
	}
	users := &fakeUserGateway{
		readUser: gateway.UserResult{Kind: gateway.ReadUserSuccess, User: loggedInUser()},
	}
	vm := newHomeViewModel(true, posts, users)
	defer vm.Close()

	vm.Load(context.Background())

	state := vm.States().Current()
	require.Equal(t, HomeDisplayPosts, state.Kind)
	assert.True(t, state.IsUserLoggedIn)
	assert.Equal(t, feed, state.Posts)
}

func TestHomeLoadFollowsLiveSnapshots(t *testing.T) {
	posts := &fakePostGateway{
		watchResults: []gateway.PostResult{
			{Kind: gateway.GetPostsSuccess, Posts: []models.Post{{ID: "a"}}},
			{Kind: gateway.GetPostsEmpty},
		},
	}
	users := &fakeUserGateway{
		readUser: gateway.UserResult{Kind: gateway.ReadUserSuccess, User: loggedInUser()},
	}
	vm := newHomeViewModel(true, posts, users)
	defer vm.Close()

	vm.Load(context.Background())

	// The last snapshot wins: the feed emptied after the first emission.
	state := vm.States().Current()
	require.Equal(t, HomeNoPostToDisplay, state.Kind)
	assert.True(t, state.IsUserLoggedIn)
}
