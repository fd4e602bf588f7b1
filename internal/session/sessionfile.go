package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/s21platform/chat-gateway/internal/model"
)

// ErrSessionExpired is returned when the persisted session was written by a
// different app version; the user must re-authenticate.
var ErrSessionExpired = errors.New("persisted session invalidated")

type persistedSession struct {
	User    model.User `json:"user"`
	Version string     `json:"version"`
}

// SaveSessionFile persists the authenticated user tagged with the running
// app version.
func SaveSessionFile(path string, user *model.User, version string) error {
	data, err := json.Marshal(persistedSession{User: *user, Version: version})
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// LoadSessionFile restores a persisted user. A missing file returns
// (nil, nil); an unreadable file or a version-tag mismatch returns
// ErrSessionExpired.
func LoadSessionFile(path, version string) (*model.User, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var persisted persistedSession
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, ErrSessionExpired
	}

	if persisted.Version == "" || persisted.Version != version {
		return nil, ErrSessionExpired
	}

	return &persisted.User, nil
}

// ClearSessionFile removes the persisted session; missing files are fine.
func ClearSessionFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// FileStore binds the session file helpers to a fixed path and app version.
type FileStore struct {
	path    string
	version string
}

func NewFileStore(path, version string) *FileStore {
	return &FileStore{path: path, version: version}
}

func (s *FileStore) Save(user *model.User) error {
	return SaveSessionFile(s.path, user, s.version)
}

func (s *FileStore) Load() (*model.User, error) {
	return LoadSessionFile(s.path, s.version)
}

func (s *FileStore) Clear() error {
	return ClearSessionFile(s.path)
}
