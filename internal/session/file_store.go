package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/holidaze/holidaze-cli/internal/domain"
)

// FileStore keeps the session record as a single JSON file, the CLI
// equivalent of the one localStorage key a browser profile would hold.
// Durable across runs on the same machine; not shared across machines.
type FileStore struct {
	path string
}

// NewFileStore creates a file store rooted at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is required")
	}
	return &FileStore{path: path}, nil
}

// Save persists the record, overwriting any prior value. The write goes to
// a temp file in the same directory followed by a rename, so a reader never
// observes a partial record.
func (s *FileStore) Save(sess *domain.Session) error {
	if sess == nil {
		return fmt.Errorf("session record is required")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set session file mode: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Load returns the last saved record, or (nil, nil) when none exists. The
// stored shape is trusted verbatim; only malformed JSON is an error.
func (s *FileStore) Load() (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	sess := &domain.Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return sess, nil
}

// Clear removes the record. Clearing an already-empty store is not an
// error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Current returns the stored session, or nil when there is none or it
// cannot be read. It satisfies the gateway's SessionSource so every
// outbound call sees the freshest record, mirroring a per-request
// localStorage read.
func (s *FileStore) Current() *domain.Session {
	sess, err := s.Load()
	if err != nil {
		return nil
	}
	return sess
}
