package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/coursefit/internal/docschema"
	"golang.org/x/mod/semver"
)

// Document is the on-disk form of a catalog.
type Document struct {
	Version string   `json:"version"`
	Courses []Course `json:"courses"`
}

var levelDef = map[string]any{"type": "string", "enum": []string{"HL", "FAL"}}

var thresholdDef = map[string]any{"type": "integer", "minimum": 0, "maximum": 100}

var stringListDef = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}

var documentSchema = map[string]any{
	"type":     "object",
	"required": []string{"version", "courses"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"courses": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"required": []string{
					"id", "name", "university", "minimumAPS",
					"specificRequirements", "relatedInterests", "languageOfInstruction",
				},
				"properties": map[string]any{
					"id":            map[string]any{"type": "string", "minLength": 1},
					"name":          map[string]any{"type": "string"},
					"university":    map[string]any{"type": "string"},
					"faculty":       map[string]any{"type": "string"},
					"description":   map[string]any{"type": "string"},
					"duration":      map[string]any{"type": "string"},
					"qualification": map[string]any{"type": "string"},
					"minimumAPS":    map[string]any{"type": "integer", "minimum": 0},
					"specificRequirements": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"mathematics":            thresholdDef,
							"physicalSciences":       thresholdDef,
							"lifeSciences":           thresholdDef,
							"lifeSciencies":          thresholdDef,
							"english":                thresholdDef,
							"englishLevel":           levelDef,
							"afrikaans":              thresholdDef,
							"afrikaansLevel":         levelDef,
							"additionalRequirements": stringListDef,
						},
						"additionalProperties": false,
					},
					"careerOpportunities":   stringListDef,
					"relatedInterests":      stringListDef,
					"physicalRequirements":  stringListDef,
					"languageOfInstruction": stringListDef,
				},
			},
		},
	},
}

// Load reads a catalog document, checks it against the document schema,
// and builds a validated catalog.
func Load(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := docschema.Validate("catalog-document", documentSchema, raw); err != nil {
		return nil, fmt.Errorf("catalog document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Version, doc.Courses)
}

// Encode writes the catalog as an indented document.
func Encode(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Version: c.Version(), Courses: c.Courses()})
}

// Newer reports whether version a is strictly newer than version b.
// An invalid b is treated as older than any valid a.
func Newer(a, b string) bool {
	return semver.Compare(a, b) > 0
}
