package screen

import (
	"context"

	"hexgames/gateway"
	"hexgames/repository"
)

type UserAccountStateKind int

const (
	UserAccountOnStart UserAccountStateKind = iota
	UserAccountSignOutSuccess
	UserAccountSignOutError
	UserAccountDeleteSuccess
	UserAccountDeleteError
)

type UserAccountState struct {
	Kind UserAccountStateKind
}

// UserAccountViewModel handles the account screen's two actions: signing
// out and deleting the account.
type UserAccountViewModel struct {
	users  *repository.UserRepository
	states *StateStream[UserAccountState]
}

func NewUserAccountViewModel(users *repository.UserRepository) *UserAccountViewModel {
	return &UserAccountViewModel{
		users:  users,
		states: NewStateStream(UserAccountState{Kind: UserAccountOnStart}),
	}
}

func (vm *UserAccountViewModel) States() *StateStream[UserAccountState] { return vm.states }

func (vm *UserAccountViewModel) SignOut(ctx context.Context) {
	if vm.users.SignOut(ctx).Kind == gateway.SignOutSuccess {
		vm.states.Publish(UserAccountState{Kind: UserAccountSignOutSuccess})
	} else {
		vm.states.Publish(UserAccountState{Kind: UserAccountSignOutError})
	}
}

func (vm *UserAccountViewModel) DeleteUser(ctx context.Context) {
	if vm.users.DeleteUser(ctx).Kind == gateway.DeleteUserSuccess {
		vm.states.Publish(UserAccountState{Kind: UserAccountDeleteSuccess})
	} else {
		vm.states.Publish(UserAccountState{Kind: UserAccountDeleteError})
	}
}

func (vm *UserAccountViewModel) Close() {
	vm.states.Close()
}
