package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"taskdash/internal/domain/repository"
)

const (
	sessionDirName = "session"
	cookiesKey     = "cookies"
)

// DiskvStore keeps session cookies in a diskv directory so separate
// invocations share one login
type DiskvStore struct {
	d *diskv.Diskv
}

// NewDiskvStore creates a store under dataPath/session
func NewDiskvStore(dataPath string) *DiskvStore {
	return &DiskvStore{d: diskv.New(diskv.Options{
		BasePath:     filepath.Join(dataPath, sessionDirName),
		CacheSizeMax: 64 * 1024,
		PathPerm:     0700,
		FilePerm:     0600,
	})}
}

// Load returns the saved cookies, or nil when there are none
func (s *DiskvStore) Load() ([]repository.SessionCookie, error) {
	data, err := s.d.Read(cookiesKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var cookies []repository.SessionCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return cookies, nil
}

// Save replaces the saved cookies. An empty list clears the session.
func (s *DiskvStore) Save(cookies []repository.SessionCookie) error {
	if len(cookies) == 0 {
		return s.Clear()
	}

	data, err := json.Marshal(cookies)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.d.Write(cookiesKey, data); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear forgets the session
func (s *DiskvStore) Clear() error {
	if err := s.d.Erase(cookiesKey); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// MemoryStore keeps cookies for the lifetime of the process
type MemoryStore struct {
	cookies []repository.SessionCookie
}

// NewMemoryStore creates an empty in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the held cookies
func (s *MemoryStore) Load() ([]repository.SessionCookie, error) {
	return append([]repository.SessionCookie(nil), s.cookies...), nil
}

// Save replaces the held cookies
func (s *MemoryStore) Save(cookies []repository.SessionCookie) error {
	s.cookies = append([]repository.SessionCookie(nil), cookies...)
	return nil
}

// Clear drops the held cookies
func (s *MemoryStore) Clear() error {
	s.cookies = nil
	return nil
}
