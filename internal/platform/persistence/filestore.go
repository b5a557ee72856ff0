package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// FileStore persists the wallet document as a pretty-printed JSON file.
// Saves are atomic: the document is written to a temp file which then
// replaces the real one with rename(2), so a crash mid-write never corrupts
// the previous snapshot.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a file-backed document store at the given path
func NewFileStore(logger *slog.Logger, path string) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Load reads and decodes the document. Returns ErrNotExist when the file has
// not been created yet so the caller can decide whether to seed.
func (s *FileStore) Load(_ context.Context) (*Document, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, &IOError{Op: "load", Err: err}
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, &IOError{Op: "load", Err: err}
	}
	return &doc, nil
}

// Save writes the document atomically via a temp file and rename. Meta is
// stamped on a shallow copy; the caller's document is left untouched.
func (s *FileStore) Save(_ context.Context, doc *Document) error {
	snapshot := *doc
	snapshot.Meta = Meta{
		Storage:   "json_file",
		Version:   DocumentVersion,
		Timestamp: time.Now(),
	}

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &IOError{Op: "save", Err: err}
	}

	// Indented output so the document stays hand-inspectable.
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&snapshot); err != nil {
		f.Close()
		os.Remove(tmp)
		return &IOError{Op: "save", Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "save", Err: err}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "save", Err: err}
	}

	s.logger.Debug("wallet document saved", "path", s.path)
	return nil
}

var _ Store = (*FileStore)(nil)
