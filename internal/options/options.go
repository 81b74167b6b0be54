package options

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Entry is one named option row inside a section. Values are stored as the
// user typed them; interpretation happens at evaluation time, not here.
type Entry struct {
	Enabled bool   `json:"enabled"`
	Value   string `json:"value"`
}

// Map is an ordered association of option key to Entry. JSON marshalling
// emits keys in insertion order and unmarshalling preserves document order,
// so the persisted column round-trips the order users saved.
type Map struct {
	keys    []string
	entries map[string]Entry
}

func NewMap() Map {
	return Map{entries: map[string]Entry{}}
}

func (m *Map) init() {
	if m.entries == nil {
		m.entries = map[string]Entry{}
	}
}

func (m Map) Len() int {
	return len(m.keys)
}

// Keys returns the iteration order as a copy.
func (m Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m Map) Get(key string) (Entry, bool) {
	e, ok := m.entries[key]
	return e, ok
}

func (m Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Set inserts or replaces an entry. New keys append to the iteration order.
func (m *Map) Set(key string, e Entry) {
	m.init()
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = e
}

// Delete removes an entry and its position. Unknown keys are a no-op.
func (m *Map) Delete(key string) {
	if _, ok := m.entries[key]; !ok {
		return
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		entryJSON, err := json.Marshal(m.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(entryJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("options: expected object, got %v", tok)
	}

	next := NewMap()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("options: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("options: non-string key %v", keyTok)
		}
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("options: entry %q: %w", key, err)
		}
		if next.Has(key) {
			return fmt.Errorf("options: duplicate key %q", key)
		}
		next.Set(key, e)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("options: %w", err)
	}

	*m = next
	return nil
}

func (m Map) Value() (driver.Value, error) {
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *Map) Scan(value interface{}) error {
	if value == nil {
		*m = NewMap()
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("options: cannot scan %T", value)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*m = NewMap()
		return nil
	}
	return m.UnmarshalJSON(raw)
}

func (Map) GormDataType() string {
	return "json"
}

func (Map) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "mysql":
		return "JSON"
	}
	return "JSON"
}

// DeriveKey turns a human option name into its machine key: lowercase with
// whitespace and non-alphanumerics stripped. "Per Metre Rate" -> "permetrerate".
func DeriveKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
