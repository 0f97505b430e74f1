package screen

import (
	"context"

	"hexgames/gateway"
	"hexgames/repository"
)

type SplashStateKind int

const (
	SplashUserIsLoggedIn SplashStateKind = iota
	SplashUserIsNotLoggedIn
)

type SplashState struct {
	Kind SplashStateKind
}

// SplashViewModel decides the entry route: home for a live session,
// sign-in-or-up otherwise.
type SplashViewModel struct {
	users  *repository.UserRepository
	states *StateStream[SplashState]
}

func NewSplashViewModel(users *repository.UserRepository) *SplashViewModel {
	return &SplashViewModel{
		users:  users,
		states: NewStateStream(SplashState{Kind: SplashUserIsNotLoggedIn}),
	}
}

func (vm *SplashViewModel) States() *StateStream[SplashState] { return vm.states }

// Load resolves the persisted session to a login decision.
func (vm *SplashViewModel) Load(ctx context.Context) {
	if vm.users.ReadUser(ctx).Kind == gateway.ReadUserSuccess {
		vm.states.Publish(SplashState{Kind: SplashUserIsLoggedIn})
	} else {
		vm.states.Publish(SplashState{Kind: SplashUserIsNotLoggedIn})
	}
}

func (vm *SplashViewModel) Close() {
	vm.states.Close()
}
