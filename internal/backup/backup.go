// Package backup serializes the full application state into one JSON
// document and restores it. Import tolerates partial backups but is
// all-or-nothing: every present key is validated before any key is
// written, so a bad file never leaves storage half-applied.
package backup

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/claude/liftflow/internal/models"
	"github.com/claude/liftflow/internal/storage"
)

// Document is the on-disk backup shape. Each field carries the raw
// serialized blob of its storage key, absent fields are skipped.
type Document struct {
	Profile *string `json:"profile,omitempty"`
	History *string `json:"history,omitempty"`
	Photos  *string `json:"photos,omitempty"`
	Timer   *string `json:"timer,omitempty"`
	APIKey  *string `json:"apiKey,omitempty"`
}

// Export collects every present storage key into one document.
func Export(state *storage.Store) (*Document, error) {
	doc := &Document{}
	fields := map[string]**string{
		storage.KeyProfile:   &doc.Profile,
		storage.KeyHistory:   &doc.History,
		storage.KeyPhotos:    &doc.Photos,
		storage.KeyRestTimer: &doc.Timer,
		storage.KeyAPIKey:    &doc.APIKey,
	}
	for key, field := range fields {
		raw, ok, err := state.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			v := string(raw)
			*field = &v
		}
	}
	return doc, nil
}

// Import validates and applies a backup document. Any subset of keys
// may be present; a structurally invalid value rejects the whole file
// with nothing written.
func Import(state *storage.Store, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("backup file is not valid JSON: %w", err)
	}
	if doc.Profile == nil && doc.History == nil && doc.Photos == nil &&
		doc.Timer == nil && doc.APIKey == nil {
		return fmt.Errorf("backup file contains no recognized keys")
	}

	// Validate everything before writing anything.
	if doc.Profile != nil {
		var p models.Profile
		if err := json.Unmarshal([]byte(*doc.Profile), &p); err != nil {
			return fmt.Errorf("backup profile is invalid: %w", err)
		}
	}
	if doc.History != nil {
		var h models.History
		if err := json.Unmarshal([]byte(*doc.History), &h); err != nil {
			return fmt.Errorf("backup history is invalid: %w", err)
		}
	}
	if doc.Photos != nil {
		var list []models.PhotoRecord
		if err := json.Unmarshal([]byte(*doc.Photos), &list); err != nil {
			return fmt.Errorf("backup photos are invalid: %w", err)
		}
	}
	if doc.Timer != nil {
		if _, err := strconv.Atoi(*doc.Timer); err != nil {
			return fmt.Errorf("backup timer is invalid: %w", err)
		}
	}

	writes := []struct {
		key   string
		value *string
	}{
		{storage.KeyProfile, doc.Profile},
		{storage.KeyHistory, doc.History},
		{storage.KeyPhotos, doc.Photos},
		{storage.KeyRestTimer, doc.Timer},
		{storage.KeyAPIKey, doc.APIKey},
	}
	for _, w := range writes {
		if w.value == nil {
			continue
		}
		if err := state.Put(w.key, []byte(*w.value)); err != nil {
			return err
		}
	}
	return nil
}
