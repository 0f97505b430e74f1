package screen

import (
	"context"

	"hexgames/gateway"
	"hexgames/models"
	"hexgames/repository"
)

type SignInStateKind int

const (
	SignInInvalidInput SignInStateKind = iota
	SignInValidInput
	SignInSuccess
	SignInError
)

// SignInState carries a user-facing message for the invalid-input and
// error variants.
type SignInState struct {
	Kind    SignInStateKind
	Message string
}

// SignInViewModel handles the credentials form for an email known to have
// an account.
type SignInViewModel struct {
	users  *repository.UserRepository
	states *StateStream[SignInState]
}

func NewSignInViewModel(users *repository.UserRepository) *SignInViewModel {
	return &SignInViewModel{
		users:  users,
		states: NewStateStream(SignInState{Kind: SignInInvalidInput, Message: "password must not be empty"}),
	}
}

func (vm *SignInViewModel) States() *StateStream[SignInState] { return vm.states }

func (vm *SignInViewModel) OnPasswordChanged(password string) {
	if password != "" {
		vm.states.Publish(SignInState{Kind: SignInValidInput})
	} else {
		vm.states.Publish(SignInState{Kind: SignInInvalidInput, Message: "password must not be empty"})
	}
}

// SignIn submits the credentials. A wrong password surfaces a specific
// message; any other failure a generic one.
func (vm *SignInViewModel) SignIn(ctx context.Context, email, password string) {
	result := vm.users.SignIn(ctx, email, password)
	switch result.Kind {
	case gateway.SignInSuccess:
		vm.states.Publish(SignInState{Kind: SignInSuccess})
	default:
		if models.IsCode(result.Err, "UNAUTHORIZED") {
			vm.states.Publish(SignInState{Kind: SignInError, Message: "incorrect email or password"})
		} else {
			vm.states.Publish(SignInState{Kind: SignInError, Message: "something went wrong, please try again"})
		}
	}
}

func (vm *SignInViewModel) Close() {
	vm.states.Close()
}
