package screen

import (
	"context"
	"strings"
	"sync"

	"hexgames/connectivity"
	"hexgames/gateway"
	"hexgames/models"
	"hexgames/repository"
	"hexgames/validation"
)

type SignUpStateKind int

const (
	SignUpInvalidInput SignUpStateKind = iota
	SignUpValidInput
	SignUpSuccess
	SignUpError
	SignUpNoNetwork
)

// SignUpState flags each failing check of the registration form so the
// screen can mark the offending fields.
type SignUpState struct {
	Kind                    SignUpStateKind
	IsNameEmpty             bool
	IsPasswordEmpty         bool
	IsPasswordFormatCorrect bool
}

// SignUpViewModel handles the registration form for an email with no
// existing account. The email is fixed at construction, carried over from
// the sign-in-or-up screen.
type SignUpViewModel struct {
	net   connectivity.Checker
	users *repository.UserRepository
	email string

	mu       sync.Mutex
	name     string
	password string

	states *StateStream[SignUpState]
}

func NewSignUpViewModel(net connectivity.Checker, users *repository.UserRepository, email string) *SignUpViewModel {
	return &SignUpViewModel{
		net:   net,
		users: users,
		email: email,
		states: NewStateStream(SignUpState{
			Kind:            SignUpInvalidInput,
			IsNameEmpty:     true,
			IsPasswordEmpty: true,
		}),
	}
}

func (vm *SignUpViewModel) States() *StateStream[SignUpState] { return vm.states }

func (vm *SignUpViewModel) OnNameChanged(name string) {
	vm.mu.Lock()
	vm.name = name
	vm.mu.Unlock()
	vm.revalidate()
}

func (vm *SignUpViewModel) OnPasswordChanged(password string) {
	vm.mu.Lock()
	vm.password = password
	vm.mu.Unlock()
	vm.revalidate()
}

func (vm *SignUpViewModel) revalidate() {
	if state, ok := vm.validate(); !ok {
		vm.states.Publish(state)
	} else {
		vm.states.Publish(SignUpState{Kind: SignUpValidInput, IsPasswordFormatCorrect: true})
	}
}

func (vm *SignUpViewModel) validate() (SignUpState, bool) {
	vm.mu.Lock()
	name, password := vm.name, vm.password
	vm.mu.Unlock()

	state := SignUpState{
		Kind:                    SignUpInvalidInput,
		IsNameEmpty:             name == "",
		IsPasswordEmpty:         password == "",
		IsPasswordFormatCorrect: validation.ValidatePassword(password) == nil,
	}
	ok := !state.IsNameEmpty && !state.IsPasswordEmpty && state.IsPasswordFormatCorrect
	return state, ok
}

// SignUp registers the account. The first word of the name becomes the
// first name, the rest the last name.
func (vm *SignUpViewModel) SignUp(ctx context.Context) {
	if !vm.net.IsInternetAvailable() {
		vm.states.Publish(SignUpState{Kind: SignUpNoNetwork})
		return
	}

	if state, ok := vm.validate(); !ok {
		vm.states.Publish(state)
		return
	}

	vm.mu.Lock()
	name, password := vm.name, vm.password
	vm.mu.Unlock()

	firstname, lastname := splitName(name)
	result := vm.users.CreateUser(ctx, models.User{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     vm.email,
		Password:  password,
	})
	if result.Kind != gateway.CreateUserSuccess {
		vm.states.Publish(SignUpState{Kind: SignUpError})
		return
	}
	vm.states.Publish(SignUpState{Kind: SignUpSuccess})
}

func splitName(name string) (firstname, lastname string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (vm *SignUpViewModel) Close() {
	vm.states.Close()
}
