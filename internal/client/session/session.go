// Package session persists the client's authentication state between runs.
//
// The store is an explicit object injected into the API client and the
// services that need it; nothing reads it ambiently. State survives process
// restarts but is not synchronized between concurrently running clients:
// each process re-checks the credential on start.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store holds the bearer credential and the self-profile edit-mode flag.
type Store interface {
	// Token returns the stored credential, if any.
	Token() (string, bool)
	// SetToken persists the credential.
	SetToken(token string) error
	// ClearToken removes the credential.
	ClearToken() error

	// EditMode reports whether the self-profile editor was left in edit mode.
	EditMode() bool
	// SetEditMode persists the edit-mode flag.
	SetEditMode(on bool) error
}

type state struct {
	Token    string `json:"token,omitempty"`
	EditMode bool   `json:"edit_mode,omitempty"`
}

// FileStore is a Store backed by a JSON file. The file name is derived from
// the server origin, so credentials for different backends never collide.
type FileStore struct {
	path  string
	state state
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (or lazily creates) the state file for the given
// backend origin inside dir. Existing state is loaded; a missing or
// unreadable file simply yields an empty session.
func NewFileStore(dir, origin string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	sum := sha256.Sum256([]byte(origin))
	name := "session-" + hex.EncodeToString(sum[:4]) + ".json"

	s := &FileStore{path: filepath.Join(dir, name)}

	data, err := os.ReadFile(s.path)
	if err == nil {
		// a corrupt file is treated as an empty session
		_ = json.Unmarshal(data, &s.state)
	}
	return s, nil
}

func (s *FileStore) Token() (string, bool) {
	return s.state.Token, s.state.Token != ""
}

func (s *FileStore) SetToken(token string) error {
	s.state.Token = token
	return s.save()
}

func (s *FileStore) ClearToken() error {
	s.state.Token = ""
	return s.save()
}

func (s *FileStore) EditMode() bool {
	return s.state.EditMode
}

func (s *FileStore) SetEditMode(on bool) error {
	s.state.EditMode = on
	return s.save()
}

func (s *FileStore) save() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
