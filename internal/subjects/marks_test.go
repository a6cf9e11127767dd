package subjects

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestMarks_SetKeepsPosition(t *testing.T) {
	m := NewMarks(
		Entry{Code: "english", Mark: 60},
		Entry{Code: "mathematics", Mark: 70},
	)
	m.Set(Entry{Code: "english", Mark: 75})

	if got := m.Codes(); !slices.Equal(got, []string{"english", "mathematics"}) {
		t.Errorf("Codes() = %v", got)
	}
	e, ok := m.Get("english")
	if !ok || e.Mark != 75 {
		t.Errorf("Get(english) = %+v, %v", e, ok)
	}
}

func TestMarks_Delete(t *testing.T) {
	m := NewMarks(
		Entry{Code: "a", Mark: 1},
		Entry{Code: "b", Mark: 2},
		Entry{Code: "c", Mark: 3},
	)
	m.Delete("b")
	m.Delete("missing")

	if got := m.Codes(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Codes() = %v", got)
	}
	if e, _ := m.Get("c"); e.Mark != 3 {
		t.Errorf("Get(c) after delete = %+v", e)
	}
	if m.Has("b") {
		t.Error("b should be gone")
	}
}

func TestMarks_CloneIsIndependent(t *testing.T) {
	m := NewMarks(Entry{Code: "a", Mark: 1})
	c := m.Clone()
	c.Set(Entry{Code: "a", Mark: 99})
	c.Set(Entry{Code: "b", Mark: 2})

	if e, _ := m.Get("a"); e.Mark != 1 {
		t.Errorf("original mutated: %+v", e)
	}
	if m.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", m.Len())
	}
}

func TestMarks_ZeroValue(t *testing.T) {
	var m Marks
	if m.Len() != 0 || m.Has("x") {
		t.Error("zero value should be empty")
	}
	m.Set(Entry{Code: "x", Mark: 5})
	if !m.Has("x") {
		t.Error("Set on zero value should insert")
	}
}

func TestMarks_JSONKeepsDocumentOrder(t *testing.T) {
	doc := `{"physicalSciences":{"mark":70},"english":{"mark":65,"level":"FAL"},"lifeSciencies":{"mark":55},"mathematics":{"mark":80}}`

	var m Marks
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []string{"physicalSciences", "english", "lifeSciences", "mathematics"}
	if got := m.Codes(); !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
	if e, _ := m.Get("english"); e.Level != LevelFAL {
		t.Errorf("english level = %q, want FAL", e.Level)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	wantJSON := `{"physicalSciences":{"mark":70},"english":{"mark":65,"level":"FAL"},"lifeSciences":{"mark":55},"mathematics":{"mark":80}}`
	if string(out) != wantJSON {
		t.Errorf("Marshal() = %s, want %s", out, wantJSON)
	}
}

func TestMarks_UnmarshalRejectsArray(t *testing.T) {
	var m Marks
	if err := json.Unmarshal([]byte(`[1,2]`), &m); err == nil {
		t.Error("expected error for array input")
	}
}

func TestEntry_EffectiveLevel(t *testing.T) {
	if got := (Entry{}).EffectiveLevel(); got != LevelHL {
		t.Errorf("EffectiveLevel() = %q, want HL", got)
	}
	if got := (Entry{Level: LevelFAL}).EffectiveLevel(); got != LevelFAL {
		t.Errorf("EffectiveLevel() = %q, want FAL", got)
	}
}
