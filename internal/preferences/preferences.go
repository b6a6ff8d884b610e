package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileName = "preferences.json"

// Store persists small per-device preferences outside the entity store.
// Currently a single key survives restarts: the id of the last active user.
type Store struct {
	mu   sync.Mutex
	path string
}

type preferences struct {
	UserID *uint `json:"user_id,omitempty"`
}

func NewStore(dataDir string) *Store {
	return &Store{
		path: filepath.Join(dataDir, fileName),
	}
}

// UserID returns the persisted active-user id. The second return value is
// false when no id has ever been saved.
func (s *Store) UserID() (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return 0, false, err
	}
	if prefs.UserID == nil {
		return 0, false, nil
	}
	return *prefs.UserID, true, nil
}

// SaveUserID durably records the active-user id.
func (s *Store) SaveUserID(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs.UserID = &id
	return s.save(prefs)
}

// ClearUserID removes the persisted active-user id, e.g. after the active
// user was deleted.
func (s *Store) ClearUserID() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs.UserID = nil
	return s.save(prefs)
}

func (s *Store) load() (*preferences, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var prefs preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		// A corrupt file is treated as empty rather than fatal.
		return &preferences{}, nil
	}
	return &prefs, nil
}

func (s *Store) save(prefs *preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}
