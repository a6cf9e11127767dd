package catalog

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursefit/internal/aps"
	"github.com/abhisek/coursefit/internal/subjects"
	"golang.org/x/mod/semver"
)

// validate checks a course list for structural problems and reports all
// of them at once.
func validate(version string, courses []Course) error {
	var errs []string

	if !semver.IsValid(version) {
		errs = append(errs, fmt.Sprintf("version %q is not a valid semantic version", version))
	}

	seen := make(map[string]bool, len(courses))
	for i, c := range courses {
		label := c.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Sprintf("course %s: empty ID", label))
		} else if seen[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate course ID: %q", c.ID))
		}
		seen[c.ID] = true

		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("course %s: empty name", label))
		}
		if c.University == "" {
			errs = append(errs, fmt.Sprintf("course %s: empty university", label))
		}
		if c.MinimumAPS < 0 || c.MinimumAPS > aps.Max {
			errs = append(errs, fmt.Sprintf("course %s: minimumAPS %d outside 0..%d", label, c.MinimumAPS, aps.Max))
		}
		if len(c.RelatedInterests) == 0 {
			errs = append(errs, fmt.Sprintf("course %s: no related interests", label))
		}
		if len(c.LanguageOfInstruction) == 0 {
			errs = append(errs, fmt.Sprintf("course %s: no language of instruction", label))
		}
		errs = append(errs, validateRequirements(label, c.Requirements)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateRequirements(label string, r Requirements) []string {
	var errs []string

	thresholds := []struct {
		name  string
		value int
	}{
		{"mathematics", r.Mathematics},
		{"physicalSciences", r.PhysicalSciences},
		{"lifeSciences", r.LifeSciences},
		{"english", r.English},
		{"afrikaans", r.Afrikaans},
	}
	for _, th := range thresholds {
		if th.value < 0 || th.value > 100 {
			errs = append(errs, fmt.Sprintf("course %s: %s threshold %d outside 0..100", label, th.name, th.value))
		}
	}

	levels := []struct {
		name      string
		level     subjects.Level
		threshold int
	}{
		{"englishLevel", r.EnglishLevel, r.English},
		{"afrikaansLevel", r.AfrikaansLevel, r.Afrikaans},
	}
	for _, l := range levels {
		if l.level == "" {
			continue
		}
		if !l.level.Valid() {
			errs = append(errs, fmt.Sprintf("course %s: %s %q is not HL or FAL", label, l.name, l.level))
		}
		if l.threshold == 0 {
			errs = append(errs, fmt.Sprintf("course %s: %s set without a mark threshold", label, l.name))
		}
	}
	return errs
}
