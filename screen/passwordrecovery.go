package screen

import (
	"context"

	"hexgames/gateway"
	"hexgames/repository"
	"hexgames/validation"
)

type PasswordRecoveryStateKind int

const (
	PasswordRecoveryInvalidInput PasswordRecoveryStateKind = iota
	PasswordRecoveryValidInput
	PasswordRecoveryShowDialog
	PasswordRecoveryError
)

type PasswordRecoveryState struct {
	Kind PasswordRecoveryStateKind
}

// PasswordRecoveryViewModel handles the forgotten-password screen. A
// successful request shows a confirmation dialog telling the user to check
// their inbox.
type PasswordRecoveryViewModel struct {
	users  *repository.UserRepository
	states *StateStream[PasswordRecoveryState]
}

func NewPasswordRecoveryViewModel(users *repository.UserRepository) *PasswordRecoveryViewModel {
	return &PasswordRecoveryViewModel{
		users:  users,
		states: NewStateStream(PasswordRecoveryState{Kind: PasswordRecoveryInvalidInput}),
	}
}

func (vm *PasswordRecoveryViewModel) States() *StateStream[PasswordRecoveryState] { return vm.states }

func (vm *PasswordRecoveryViewModel) OnEmailChanged(email string) {
	if validation.ValidateEmail(email) == nil {
		vm.states.Publish(PasswordRecoveryState{Kind: PasswordRecoveryValidInput})
	} else {
		vm.states.Publish(PasswordRecoveryState{Kind: PasswordRecoveryInvalidInput})
	}
}

// RecoverPassword requests a reset mail for the address.
func (vm *PasswordRecoveryViewModel) RecoverPassword(ctx context.Context, email string) {
	if validation.ValidateEmail(email) != nil {
		vm.states.Publish(PasswordRecoveryState{Kind: PasswordRecoveryInvalidInput})
		return
	}

	result := vm.users.RecoverPassword(ctx, email)
	if result.Kind != gateway.RecoverPasswordSuccess {
		vm.states.Publish(PasswordRecoveryState{Kind: PasswordRecoveryError})
		return
	}
	vm.states.Publish(PasswordRecoveryState{Kind: PasswordRecoveryShowDialog})
}

func (vm *PasswordRecoveryViewModel) Close() {
	vm.states.Close()
}
