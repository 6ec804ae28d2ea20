// Package exchange implements the JSON transfer-file format used for
// export, import and session restore.
package exchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

// Version is the format version written by this build.
const Version = "1.0"

// File is the top-level transfer payload. History carries the recent-view
// ids of the exporting session; it round-trips through restore but is
// ignored by import, which builds a fresh session.
type File struct {
	Version    string          `json:"version"`
	ExportDate time.Time       `json:"exportDate"`
	Cards      []entities.Card `json:"cards"`
	History    []string        `json:"history,omitempty"`
}

// ErrMalformed reports a payload that does not satisfy the format contract.
var ErrMalformed = errors.New("malformed transfer file")

// New builds a File from a card snapshot, stamping the current time.
func New(cards []entities.Card, history []string) *File {
	return &File{
		Version:    Version,
		ExportDate: time.Now().UTC(),
		Cards:      cards,
		History:    history,
	}
}

// Marshal renders the file as indented JSON.
func (f *File) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding transfer file: %w", err)
	}
	return data, nil
}

// Parse decodes and validates a transfer payload. The contract is strict
// about shape only: the top level must be an object whose "cards" member is
// an array. Unknown members and unknown card fields are ignored so that
// files from older builds still load.
func Parse(data []byte) (*File, error) {
	var probe struct {
		Version string          `json:"version"`
		Cards   json.RawMessage `json:"cards"`
		History []string        `json:"history"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if probe.Cards == nil || string(probe.Cards) == "null" {
		return nil, fmt.Errorf("%w: missing cards field", ErrMalformed)
	}

	var cards []entities.Card
	if err := json.Unmarshal(probe.Cards, &cards); err != nil {
		return nil, fmt.Errorf("%w: cards is not a card array: %v", ErrMalformed, err)
	}

	return &File{
		Version: probe.Version,
		Cards:   cards,
		History: probe.History,
	}, nil
}
