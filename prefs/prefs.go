// Package prefs is the local key-value preference store: the notification
// opt-in flag and the persisted session token. Values are read at screen
// init and written on change.
package prefs

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

const (
	KeyNotificationsEnabled = "notifications_enabled"
	KeySessionToken         = "session_token"
)

// Store wraps a single JSON file. All writes flush to disk immediately.
type Store struct {
	mu sync.Mutex
	v  *viper.Viper
}

// Open loads the preference file, creating it with defaults on first run.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(KeyNotificationsEnabled, true)
	v.SetDefault(KeySessionToken, "")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, err
		}
	}

	return &Store{v: v}, nil
}

func (s *Store) GetBool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetBool(key)
}

func (s *Store) SetBool(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
	return s.v.WriteConfig()
}

func (s *Store) GetString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key)
}

func (s *Store) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
	return s.v.WriteConfig()
}
