package catalog

import (
	"encoding/json"

	"github.com/abhisek/coursefit/internal/subjects"
)

// Requirements are a course's subject thresholds. A zero threshold means
// the course sets none for that subject.
type Requirements struct {
	Mathematics      int            `json:"mathematics,omitempty"`
	PhysicalSciences int            `json:"physicalSciences,omitempty"`
	LifeSciences     int            `json:"lifeSciences,omitempty"`
	English          int            `json:"english,omitempty"`
	EnglishLevel     subjects.Level `json:"englishLevel,omitempty"`
	Afrikaans        int            `json:"afrikaans,omitempty"`
	AfrikaansLevel   subjects.Level `json:"afrikaansLevel,omitempty"`

	// Additional holds informational requirements that are never checked.
	Additional []string `json:"additionalRequirements,omitempty"`
}

// Course is a university programme a student may apply to.
type Course struct {
	ID                    string       `json:"id"`
	Name                  string       `json:"name"`
	University            string       `json:"university"`
	Faculty               string       `json:"faculty"`
	Description           string       `json:"description"`
	Duration              string       `json:"duration"`
	Qualification         string       `json:"qualification"`
	MinimumAPS            int          `json:"minimumAPS"`
	Requirements          Requirements `json:"specificRequirements"`
	CareerOpportunities   []string     `json:"careerOpportunities"`
	RelatedInterests      []string     `json:"relatedInterests"`
	PhysicalRequirements  []string     `json:"physicalRequirements,omitempty"`
	LanguageOfInstruction []string     `json:"languageOfInstruction"`
}

// TaughtIn reports whether the course is offered in the given language.
func (c Course) TaughtIn(language string) bool {
	for _, l := range c.LanguageOfInstruction {
		if l == language {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts the legacy "lifeSciencies" key as well as
// "lifeSciences".
func (r *Requirements) UnmarshalJSON(data []byte) error {
	type plain Requirements
	var aux struct {
		plain
		LegacyLifeSciences int `json:"lifeSciencies"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Requirements(aux.plain)
	if r.LifeSciences == 0 {
		r.LifeSciences = aux.LegacyLifeSciences
	}
	return nil
}
