package catalog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoad_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	c, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != Default().Len() || c.Version() != DefaultVersion {
		t.Errorf("loaded %d courses at %q", c.Len(), c.Version())
	}
	nursing, err := c.Course("nursing-wits")
	if err != nil {
		t.Fatal(err)
	}
	if nursing.Requirements.LifeSciences != 60 {
		t.Errorf("LifeSciences = %d, want 60", nursing.Requirements.LifeSciences)
	}
}

func TestLoad_LegacyLifeSciencesKey(t *testing.T) {
	doc := `{
		"version": "v2.1.0",
		"courses": [{
			"id": "vet-up",
			"name": "Veterinary Science",
			"university": "University of Pretoria",
			"minimumAPS": 35,
			"specificRequirements": {"mathematics": 60, "lifeSciencies": 60},
			"relatedInterests": ["animals"],
			"languageOfInstruction": ["English"]
		}]
	}`
	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	vet, _ := c.Course("vet-up")
	if vet.Requirements.LifeSciences != 60 {
		t.Errorf("LifeSciences = %d, want 60", vet.Requirements.LifeSciences)
	}
}

func TestLoad_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing courses", `{"version":"v1.0.0"}`},
		{"threshold above 100", `{"version":"v1.0.0","courses":[{"id":"x","name":"X","university":"U","minimumAPS":20,"specificRequirements":{"english":101},"relatedInterests":["a"],"languageOfInstruction":["English"]}]}`},
		{"unknown requirement", `{"version":"v1.0.0","courses":[{"id":"x","name":"X","university":"U","minimumAPS":20,"specificRequirements":{"chemistry":50},"relatedInterests":["a"],"languageOfInstruction":["English"]}]}`},
		{"bad level", `{"version":"v1.0.0","courses":[{"id":"x","name":"X","university":"U","minimumAPS":20,"specificRequirements":{"english":50,"englishLevel":"first"},"relatedInterests":["a"],"languageOfInstruction":["English"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_SemanticValidation(t *testing.T) {
	doc := `{"version":"latest","courses":[]}`
	_, err := Load(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "semantic version") {
		t.Errorf("err = %v, want semantic version problem", err)
	}
}

func TestNewer(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"v1.1.0", "v1.0.0", true},
		{"v1.0.0", "v1.0.0", false},
		{"v1.0.0", "v1.2.0", false},
		{"v1.0.0", "", true},
	}
	for _, tt := range tests {
		if got := Newer(tt.a, tt.b); got != tt.want {
			t.Errorf("Newer(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
