package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/geomesh/mesh"
	"github.com/katalvlaran/geomesh/state"
)

// DocumentVersion is the schema version written by Encode.
const DocumentVersion = 1

var (
	// ErrNotFound indicates no document is stored under the key.
	ErrNotFound = errors.New("store: document not found")

	// ErrInvalidDocument indicates bytes that do not decode to a valid session.
	ErrInvalidDocument = errors.New("store: invalid document")

	// ErrEmptyKey indicates an empty document key.
	ErrEmptyKey = errors.New("store: empty key")

	// ErrInvalidKey indicates a key the backend cannot address, such as a
	// path separator or dot segment for the file store.
	ErrInvalidKey = errors.New("store: invalid key")
)

// Document is one persisted session.
type Document struct {
	Version int           `json:"version"`
	Mesh    mesh.Mesh     `json:"mesh"`
	History state.History `json:"history"`
}

// Store saves and loads documents by key.
type Store interface {
	Save(ctx context.Context, key string, doc Document) error
	Load(ctx context.Context, key string) (Document, error)
	Delete(ctx context.Context, key string) error
}

// Encode serializes doc, stamping the current version.
func Encode(doc Document) ([]byte, error) {
	doc.Version = DocumentVersion
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("Encode: %w", err)
	}

	return b, nil
}

// Decode parses and validates a document.
func Decode(b []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return Document{}, fmt.Errorf("Decode: %v: %w", err, ErrInvalidDocument)
	}
	if doc.Version != DocumentVersion {
		return Document{}, fmt.Errorf("Decode: version %d: %w", doc.Version, ErrInvalidDocument)
	}
	if err := doc.Mesh.Validate(); err != nil {
		return Document{}, fmt.Errorf("Decode: mesh: %w: %w", ErrInvalidDocument, err)
	}
	for i, s := range doc.History.Past {
		if err := s.Validate(); err != nil {
			return Document{}, fmt.Errorf("Decode: past[%d]: %w: %w", i, ErrInvalidDocument, err)
		}
	}
	for i, s := range doc.History.Future {
		if err := s.Validate(); err != nil {
			return Document{}, fmt.Errorf("Decode: future[%d]: %w: %w", i, ErrInvalidDocument, err)
		}
	}

	return doc, nil
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	return nil
}
