// Package profile models the student whose results are being matched
// against the course catalog.
package profile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/subjects"
)

// MinSubjects is the smallest subject count a complete profile carries.
const MinSubjects = 6

// Student is everything the recommender knows about an applicant.
type Student struct {
	Subjects          subjects.Marks `json:"subjects"`
	Interests         []string       `json:"interests"`
	PhysicalTalents   string         `json:"physicalTalents"`
	PreferredLanguage string         `json:"preferredLanguage"`
}

// Snapshot returns a deep copy that later edits to s cannot reach.
func (s Student) Snapshot() Student {
	return Student{
		Subjects:          s.Subjects.Clone(),
		Interests:         slices.Clone(s.Interests),
		PhysicalTalents:   s.PhysicalTalents,
		PreferredLanguage: s.PreferredLanguage,
	}
}

// ValidationError lists every reason a profile is incomplete.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid student profile:\n  %s", strings.Join(e.Problems, "\n  "))
}

// Validate checks the preconditions callers must establish before
// ranking. The ranking itself tolerates profiles that fail these checks.
func (s Student) Validate() error {
	var problems []string

	if s.Subjects.Len() < MinSubjects {
		problems = append(problems, fmt.Sprintf("at least %d subjects required, have %d", MinSubjects, s.Subjects.Len()))
	}
	if !s.Subjects.Has(subjects.LifeOrientation) {
		problems = append(problems, "Life Orientation is compulsory")
	}

	hasEnglish := false
	for _, e := range s.Subjects.Entries() {
		if subjects.IsEnglishFamily(e.Code) {
			hasEnglish = true
		}
		if e.Mark < 0 || e.Mark > 100 {
			problems = append(problems, fmt.Sprintf("%s: mark %d outside 0..100", e.Code, e.Mark))
		}
		if e.Level != "" && !e.Level.Valid() {
			problems = append(problems, fmt.Sprintf("%s: level %q is not HL or FAL", e.Code, e.Level))
		}
	}
	if !hasEnglish {
		problems = append(problems, "an English subject is required")
	}

	switch s.PreferredLanguage {
	case "", catalog.LanguageEnglish, catalog.LanguageAfrikaans, catalog.LanguageBoth:
	default:
		problems = append(problems, fmt.Sprintf("preferred language %q is not English, Afrikaans or Both", s.PreferredLanguage))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// NormalizeInterests trims interests, drops blanks and repeats, and keeps
// the first occurrence's position.
func NormalizeInterests(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, interest := range in {
		interest = strings.TrimSpace(interest)
		key := strings.ToLower(interest)
		if interest == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, interest)
	}
	return out
}

// ClampMark limits a mark to 0..100.
func ClampMark(mark int) int {
	return min(max(mark, 0), 100)
}
