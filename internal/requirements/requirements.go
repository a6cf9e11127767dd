// Package requirements checks a student's subjects against a course's
// subject thresholds.
package requirements

import (
	"fmt"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/subjects"
)

// Result is the outcome of checking one course.
type Result struct {
	Meets   bool     `json:"meets"`
	Missing []string `json:"missing"`
}

// dimension is one checked subject area.
type dimension struct {
	name      string
	codes     []string // first present code wins
	threshold int
	level     subjects.Level
}

func dimensions(r catalog.Requirements) []dimension {
	return []dimension{
		{name: "Mathematics", codes: []string{subjects.Mathematics, subjects.MathematicalLiteracy}, threshold: r.Mathematics},
		{name: "Physical Sciences", codes: []string{subjects.PhysicalSciences}, threshold: r.PhysicalSciences},
		{name: "Life Sciences", codes: []string{subjects.LifeSciences}, threshold: r.LifeSciences},
		{name: "English", codes: []string{subjects.English}, threshold: r.English, level: r.EnglishLevel},
		{name: "Afrikaans", codes: []string{subjects.Afrikaans}, threshold: r.Afrikaans, level: r.AfrikaansLevel},
	}
}

// Check evaluates every threshold the course sets, in the fixed order
// mathematics, physical sciences, life sciences, English, Afrikaans.
// A language's mark is checked before its level. Missing is empty, not
// nil, when the student meets everything.
func Check(marks subjects.Marks, course catalog.Course) Result {
	missing := []string{}

	for _, d := range dimensions(course.Requirements) {
		if d.threshold == 0 {
			continue
		}

		entry, ok := lookup(marks, d.codes)
		if !ok || entry.Mark < d.threshold {
			missing = append(missing, fmt.Sprintf("%s: Need %d%%, have %d%%", d.name, d.threshold, entry.Mark))
		}

		if ok && d.level != "" && entry.EffectiveLevel() != d.level {
			missing = append(missing, fmt.Sprintf("%s level: Need %s, have %s", d.name, d.level, entry.EffectiveLevel()))
		}
	}

	return Result{Meets: len(missing) == 0, Missing: missing}
}

func lookup(marks subjects.Marks, codes []string) (subjects.Entry, bool) {
	for _, code := range codes {
		if e, ok := marks.Get(code); ok {
			return e, true
		}
	}
	return subjects.Entry{}, false
}
