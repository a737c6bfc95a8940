// Package session persists the logged-in user between CLI invocations.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/anirudh/campusconnect/internal/app/models/dto"
)

const sessionFileName = "session.json"

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the user config directory.
func NewStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return NewStoreAt(filepath.Join(configDir, "campusconnect", sessionFileName)), nil
}

// NewStoreAt creates a Store using an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Save writes the user to the session file, creating parent directories
// as needed.
func (s *Store) Save(user *dto.UserResponse) error {
	if user == nil {
		return errors.New("cannot save empty session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the persisted user. A missing file means no session and
// returns (nil, nil).
func (s *Store) Load() (*dto.UserResponse, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var user dto.UserResponse
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	return &user, nil
}

// Clear removes the session file. Clearing an absent session is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
