package formdata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
)

// Snapshot is one immutable state of the form values. The zero value is an
// empty document. Snapshots are cheap to copy and safe for concurrent reads.
type Snapshot struct {
	raw []byte
}

// Empty returns a snapshot over an empty object.
func Empty() Snapshot {
	return Snapshot{raw: []byte(`{}`)}
}

// FromJSON wraps a JSON object document. The input is copied so later caller
// mutations of the byte slice cannot leak into the snapshot.
func FromJSON(doc []byte) (Snapshot, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return Empty(), nil
	}
	if !json.Valid(doc) {
		return Snapshot{}, fmt.Errorf("%w: not a valid JSON document", ErrInvalidDocument)
	}
	return Snapshot{raw: bytes.Clone(doc)}, nil
}

// FromMap marshals an arbitrary key-value model into a snapshot.
func FromMap(m map[string]any) (Snapshot, error) {
	if m == nil {
		return Empty(), nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return Snapshot{raw: raw}, nil
}

// JSON returns the underlying document. Callers must not modify it.
func (s Snapshot) JSON() []byte {
	if s.raw == nil {
		return []byte(`{}`)
	}
	return s.raw
}

// Map decodes the snapshot into a plain map.
func (s Snapshot) Map() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(s.JSON(), &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// Get reads the value at the given path. The second return reports whether
// the path exists in the document. Root and zero paths never resolve.
func (s Snapshot) Get(path fieldpath.Path) (any, bool) {
	if path.IsZero() || path.IsRoot() {
		return nil, false
	}
	res := gjson.GetBytes(s.JSON(), path.String())
	if !res.Exists() {
		return nil, false
	}
	return res.Value(), true
}

// Has reports whether the path resolves to a defined location.
func (s Snapshot) Has(path fieldpath.Path) bool {
	_, ok := s.Get(path)
	return ok
}

// String reads the value at path as a string, empty when absent.
func (s Snapshot) String(path fieldpath.Path) string {
	if path.IsZero() || path.IsRoot() {
		return ""
	}
	return gjson.GetBytes(s.JSON(), path.String()).String()
}

// With returns a new snapshot with the value written at path. Intermediate
// objects are created as needed; the receiver is left unmodified.
func (s Snapshot) With(path fieldpath.Path, value any) (Snapshot, error) {
	if path.IsZero() || path.IsRoot() {
		return s, fmt.Errorf("%w: %q", ErrUnwritablePath, path)
	}
	raw, err := sjson.SetBytes(bytes.Clone(s.JSON()), path.String(), value)
	if err != nil {
		return s, fmt.Errorf("%w: set %q: %v", ErrInvalidDocument, path, err)
	}
	return Snapshot{raw: raw}, nil
}

// Without returns a new snapshot with exactly the listed paths removed and
// every other key untouched. Unknown paths are skipped.
func (s Snapshot) Without(paths ...fieldpath.Path) (Snapshot, error) {
	raw := bytes.Clone(s.JSON())
	for _, p := range paths {
		if p.IsZero() || p.IsRoot() {
			continue
		}
		next, err := sjson.DeleteBytes(raw, p.String())
		if err != nil {
			return s, fmt.Errorf("%w: delete %q: %v", ErrInvalidDocument, p, err)
		}
		raw = next
	}
	return Snapshot{raw: raw}, nil
}

// Equal reports whether two snapshots carry the same document, ignoring key
// order and formatting.
func (s Snapshot) Equal(other Snapshot) bool {
	var a, b any
	if err := json.Unmarshal(s.JSON(), &a); err != nil {
		return false
	}
	if err := json.Unmarshal(other.JSON(), &b); err != nil {
		return false
	}
	// Re-marshaling normalizes formatting; encoding/json emits map keys sorted.
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}
