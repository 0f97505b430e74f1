package screen

import (
	"context"

	"hexgames/connectivity"
	"hexgames/gateway"
	"hexgames/repository"
	"hexgames/validation"
)

type SignInOrUpStateKind int

const (
	SignInOrUpInvalidInput SignInOrUpStateKind = iota
	SignInOrUpValidInput
	SignInOrUpAccountExists
	SignInOrUpAccountDoNotExists
	SignInOrUpError
	SignInOrUpNoNetwork
)

type SignInOrUpState struct {
	Kind SignInOrUpStateKind
}

// SignInOrUpViewModel handles the email entry screen that routes the user
// to sign-in or sign-up depending on whether the address is registered.
type SignInOrUpViewModel struct {
	net    connectivity.Checker
	users  *repository.UserRepository
	states *StateStream[SignInOrUpState]
}

func NewSignInOrUpViewModel(net connectivity.Checker, users *repository.UserRepository) *SignInOrUpViewModel {
	return &SignInOrUpViewModel{
		net:    net,
		users:  users,
		states: NewStateStream(SignInOrUpState{Kind: SignInOrUpInvalidInput}),
	}
}

func (vm *SignInOrUpViewModel) States() *StateStream[SignInOrUpState] { return vm.states }

func (vm *SignInOrUpViewModel) OnEmailChanged(email string) {
	if validation.ValidateEmail(email) == nil {
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpValidInput})
	} else {
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpInvalidInput})
	}
}

// Submit checks whether an account exists for the email and routes the
// screen accordingly.
func (vm *SignInOrUpViewModel) Submit(ctx context.Context, email string) {
	if !vm.net.IsInternetAvailable() {
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpNoNetwork})
		return
	}

	if validation.ValidateEmail(email) != nil {
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpInvalidInput})
		return
	}

	result := vm.users.UserExists(ctx, email)
	switch result.Kind {
	case gateway.UserFound:
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpAccountExists})
	case gateway.UserNotFound:
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpAccountDoNotExists})
	default:
		vm.states.Publish(SignInOrUpState{Kind: SignInOrUpError})
	}
}

func (vm *SignInOrUpViewModel) Close() {
	vm.states.Close()
}
