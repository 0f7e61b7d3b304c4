// Package store persists the tracker document as a single JSON file.
package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vergashev/hafta/internal/models"
)

//go:embed schema.json
var schemaJSON string

// Store reads and writes the tracker document at a fixed path. Writes are
// atomic: a temp file in the same directory is renamed over the target, so
// a crash mid-write never leaves a partial file behind.
type Store struct {
	path   string
	schema *jsonschema.Schema
}

// New returns a store for the given file path.
func New(path string) (*Store, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load document schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile document schema: %w", err)
	}
	return &Store{path: path, schema: schema}, nil
}

// DefaultPath returns the tracker file location under the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".hafta", "tracker.json"), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the tracker file. On any failure it returns an
// empty document together with an error wrapping both ErrCorrupt and the
// underlying cause, so callers can fall back to a usable state and still
// tell a missing file apart from a damaged one.
func (s *Store) Load() (*models.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.NewDocument(), fmt.Errorf("%w: failed to read tracker file: %w", ErrCorrupt, err)
	}

	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.NewDocument(), fmt.Errorf("%w: failed to parse tracker file: %w", ErrCorrupt, err)
	}
	if err := s.schema.Validate(obj); err != nil {
		return models.NewDocument(), fmt.Errorf("%w: tracker file failed validation: %w", ErrCorrupt, err)
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return models.NewDocument(), fmt.Errorf("%w: failed to decode tracker file: %w", ErrCorrupt, err)
	}
	if doc.Items == nil {
		doc.Items = []*models.Item{}
	}
	if err := validateDocument(doc); err != nil {
		return models.NewDocument(), fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return doc, nil
}

// Save writes the document exactly as given. It never stamps SavedAt, so
// saving a freshly loaded document reproduces the file byte for byte.
func (s *Store) Save(doc *models.Document) error {
	data, err := marshalDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: failed to encode document: %w", ErrIO, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %w", ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, ".hafta-tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", ErrIO, err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write temp file: %w", ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync temp file: %w", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %w", ErrIO, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace tracker file: %w", ErrIO, err)
	}
	success = true
	return nil
}

func marshalDocument(doc *models.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// validateDocument enforces the invariants the schema cannot express:
// unique IDs and names, and marks only on days the item repeats on.
func validateDocument(doc *models.Document) error {
	names := make(map[string]bool, len(doc.Items))
	ids := make(map[string]bool, len(doc.Items))
	for _, it := range doc.Items {
		if ids[it.ID] {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		ids[it.ID] = true

		key := strings.ToLower(strings.TrimSpace(it.Name))
		if names[key] {
			return fmt.Errorf("duplicate item name %q", it.Name)
		}
		names[key] = true

		for day := range it.Marks {
			if !it.AppliesOn(day) {
				return fmt.Errorf("item %q is marked on %s but does not repeat on it", it.Name, day)
			}
		}
	}
	return nil
}
