package jsonfile

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Read decodes a whole collection. A missing or unparseable file yields an
// empty slice: parse failures are logged here, never raised to callers.
func Read[T any](s *Store, collection string) []T {
	raw, ok := s.readRaw(collection)
	if !ok {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.Error(fmt.Sprintf("parsing data file %s.json: %v", collection, err), err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// Write serializes the full collection back to its file, overwriting prior
// contents. Indented output keeps the files hand-editable, matching the
// files the site already ships with.
func Write[T any](s *Store, collection string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding collection %s", collection)
	}
	return s.writeRaw(collection, data)
}

// Prepend reads, prepends and rewrites a collection, keeping newest-first
// order. Read-modify-write without locking: see the package comment.
func Prepend[T any](s *Store, collection string, rec T) error {
	records := Read[T](s, collection)
	records = append([]T{rec}, records...)
	return Write(s, collection, records)
}
