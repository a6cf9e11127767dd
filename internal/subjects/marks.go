package subjects

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Entry is one subject result: the mark and, for languages, the level.
type Entry struct {
	Code  string `json:"code"`
	Mark  int    `json:"mark"`
	Level Level  `json:"level,omitempty"`
}

// EffectiveLevel returns the entry's level, defaulting to HL when unset.
func (e Entry) EffectiveLevel() Level {
	if e.Level == "" {
		return LevelHL
	}
	return e.Level
}

// Marks is a student's subject mapping keyed by subject code.
// Iteration order is insertion order, which APS tie-breaking depends on.
// The zero value is an empty mapping ready to use.
type Marks struct {
	entries []Entry
	index   map[string]int
}

// NewMarks builds a mapping from entries in order. A repeated code
// replaces the earlier mark but keeps its original position.
func NewMarks(entries ...Entry) Marks {
	var m Marks
	for _, e := range entries {
		m.Set(e)
	}
	return m
}

// Len returns the number of subjects.
func (m Marks) Len() int {
	return len(m.entries)
}

// Get returns the entry for a code.
func (m Marks) Get(code string) (Entry, bool) {
	i, ok := m.index[code]
	if !ok {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Has reports whether a code is present.
func (m Marks) Has(code string) bool {
	_, ok := m.index[code]
	return ok
}

// Entries returns a copy of all entries in insertion order.
func (m Marks) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Codes returns the subject codes in insertion order.
func (m Marks) Codes() []string {
	codes := make([]string, len(m.entries))
	for i, e := range m.entries {
		codes[i] = e.Code
	}
	return codes
}

// Set inserts or replaces an entry.
func (m *Marks) Set(e Entry) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[e.Code]; ok {
		m.entries[i] = e
		return
	}
	m.index[e.Code] = len(m.entries)
	m.entries = append(m.entries, e)
}

// Delete removes a code, preserving the order of the remaining entries.
func (m *Marks) Delete(code string) {
	i, ok := m.index[code]
	if !ok {
		return
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	delete(m.index, code)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Code] = j
	}
}

// Clone returns an independent copy.
func (m Marks) Clone() Marks {
	return NewMarks(m.entries...)
}

type record struct {
	Mark  int   `json:"mark"`
	Level Level `json:"level,omitempty"`
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m Marks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(record{Mark: e.Mark, Level: e.Level})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of subject records, keeping the
// document's key order. Legacy codes are canonicalised.
func (m *Marks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = Marks{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("subjects: expected object, got %v", tok)
	}

	var out Marks
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("subjects: expected subject code, got %v", tok)
		}
		var r record
		if err := dec.Decode(&r); err != nil {
			return fmt.Errorf("subjects: %s: %w", code, err)
		}
		out.Set(Entry{Code: Canonical(code), Mark: r.Mark, Level: r.Level})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}
