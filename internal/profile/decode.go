package profile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/docschema"
)

var studentSchema = map[string]any{
	"type":     "object",
	"required": []string{"subjects"},
	"properties": map[string]any{
		"subjects": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []string{"mark"},
				"properties": map[string]any{
					"mark":  map[string]any{"type": "integer"},
					"level": map[string]any{"type": "string", "enum": []string{"HL", "FAL"}},
				},
				"additionalProperties": false,
			},
		},
		"interests": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"physicalTalents": map[string]any{"type": "string"},
		"preferredLanguage": map[string]any{
			"type": "string",
			"enum": []string{catalog.LanguageEnglish, catalog.LanguageAfrikaans, catalog.LanguageBoth},
		},
	},
}

var studentListSchema = map[string]any{
	"type":  "array",
	"items": studentSchema,
}

// Decode reads one profile document. Subject order follows the document,
// legacy subject codes are canonicalised, interests are normalised and a
// missing preferred language defaults to English. Decode does not call
// Validate.
func Decode(r io.Reader) (Student, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Student{}, fmt.Errorf("read profile: %w", err)
	}
	if err := docschema.Validate("student-profile", studentSchema, raw); err != nil {
		return Student{}, fmt.Errorf("profile document: %w", err)
	}
	var s Student
	if err := json.Unmarshal(raw, &s); err != nil {
		return Student{}, fmt.Errorf("decode profile: %w", err)
	}
	return normalize(s), nil
}

// DecodeList reads a JSON array of profile documents.
func DecodeList(r io.Reader) ([]Student, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	if err := docschema.Validate("student-profile-list", studentListSchema, raw); err != nil {
		return nil, fmt.Errorf("profile list: %w", err)
	}
	var list []Student
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for i := range list {
		list[i] = normalize(list[i])
	}
	return list, nil
}

func normalize(s Student) Student {
	s.Interests = NormalizeInterests(s.Interests)
	if s.PreferredLanguage == "" {
		s.PreferredLanguage = catalog.LanguageEnglish
	}
	return s
}
