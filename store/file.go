package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File stores each document as <dir>/<key>.json. Keys must not contain
// path separators or be "." or ".." (ErrInvalidKey).
type File struct {
	dir string
}

// NewFile returns a File store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewFile: %w", err)
	}

	return &File{dir: dir}, nil
}

func (s *File) path(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("key %q: %w", key, ErrInvalidKey)
	}

	return filepath.Join(s.dir, key+".json"), nil
}

// Save writes doc atomically (temp file + rename).
func (s *File) Save(_ context.Context, key string, doc Document) error {
	p, err := s.path(key)
	if err != nil {
		return fmt.Errorf("File.Save: %w", err)
	}
	b, err := Encode(doc)
	if err != nil {
		return fmt.Errorf("File.Save: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("File.Save: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("File.Save: %w", err)
	}

	return nil
}

// Load reads and validates the document under key.
func (s *File) Load(_ context.Context, key string) (Document, error) {
	p, err := s.path(key)
	if err != nil {
		return Document{}, fmt.Errorf("File.Load: %w", err)
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Document{}, fmt.Errorf("File.Load: %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Document{}, fmt.Errorf("File.Load: %w", err)
	}

	return Decode(b)
}

// Delete removes the document under key. Missing documents yield ErrNotFound.
func (s *File) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return fmt.Errorf("File.Delete: %w", err)
	}
	err = os.Remove(p)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("File.Delete: %s: %w", key, ErrNotFound)
	}

	return err
}
