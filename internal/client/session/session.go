// Package session persists the CLI's {user, token} pair as a JSON file, the
// terminal equivalent of the web client's localStorage session. It is
// advisory only; the server re-checks authorization on every request.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"taskboard/internal/client/api"
)

type Session struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// DefaultPath is ~/.taskboard/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard", "session.json"), nil
}

type Store struct {
	path string
}

func NewStore(path string) *Store { return &Store{path: path} }

// Load returns (nil, nil) when no session file exists.
func (s *Store) Load() (*Session, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	// token is a credential, keep the file private
	return os.WriteFile(s.path, b, 0o600)
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
