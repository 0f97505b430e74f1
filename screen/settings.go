package screen

import (
	"hexgames/prefs"
)

type SettingsStateKind int

const (
	SettingsNotificationsEnabled SettingsStateKind = iota
	SettingsNotificationsDisabled
)

type SettingsState struct {
	Kind SettingsStateKind
}

// SettingsViewModel handles the notification opt-in toggle, persisted in
// the local preference store and read back at screen init.
type SettingsViewModel struct {
	store  *prefs.Store
	states *StateStream[SettingsState]
}

func NewSettingsViewModel(store *prefs.Store) *SettingsViewModel {
	initial := SettingsState{Kind: SettingsNotificationsDisabled}
	if store.GetBool(prefs.KeyNotificationsEnabled) {
		initial.Kind = SettingsNotificationsEnabled
	}
	return &SettingsViewModel{
		store:  store,
		states: NewStateStream(initial),
	}
}

func (vm *SettingsViewModel) States() *StateStream[SettingsState] { return vm.states }

func (vm *SettingsViewModel) EnableNotifications() error {
	if err := vm.store.SetBool(prefs.KeyNotificationsEnabled, true); err != nil {
		return err
	}
	vm.states.Publish(SettingsState{Kind: SettingsNotificationsEnabled})
	return nil
}

func (vm *SettingsViewModel) DisableNotifications() error {
	if err := vm.store.SetBool(prefs.KeyNotificationsEnabled, false); err != nil {
		return err
	}
	vm.states.Publish(SettingsState{Kind: SettingsNotificationsDisabled})
	return nil
}

func (vm *SettingsViewModel) Close() {
	vm.states.Close()
}
