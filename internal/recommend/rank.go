// Package recommend scores and orders catalog courses for a student.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/coursefit/internal/aps"
	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/requirements"
)

// Score weights. APS adequacy contributes apsMet or apsShort.
const (
	interestWeight = 0.4
	physicalWeight = 0.2
	apsMet         = 0.4
	apsShort       = 0.1
)

// maxNamedInterests caps the interests quoted in a reason.
const maxNamedInterests = 3

// Result is one ranked course with the evidence behind its position.
type Result struct {
	Course              *catalog.Course `json:"course"`
	MatchScore          float64         `json:"matchScore"`
	APSScore            int             `json:"apsScore"`
	MeetsRequirements   bool            `json:"meetsRequirements"`
	Reasons             []string        `json:"reasons"`
	MissingRequirements []string        `json:"missingRequirements,omitempty"`
}

// Rank scores every course for the student and orders the results:
// courses whose APS and subject requirements are met come first, then
// the rest, each group by descending match score. Equal scores keep
// catalog order. Results point into courses, which must not change while
// they are in use.
func Rank(student profile.Student, courses []catalog.Course) []Result {
	score := aps.Compute(student.Subjects)

	results := make([]Result, 0, len(courses))
	for i := range courses {
		results = append(results, evaluate(student, score, &courses[i]))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MeetsRequirements != results[j].MeetsRequirements {
			return results[i].MeetsRequirements
		}
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

func evaluate(student profile.Student, score int, course *catalog.Course) Result {
	interest := InterestMatch(student.Interests, course.RelatedInterests)
	physical := PhysicalMatch(student.PhysicalTalents, course.PhysicalRequirements)
	check := requirements.Check(student.Subjects, *course)

	apsOK := score >= course.MinimumAPS
	bonus := apsShort
	if apsOK {
		bonus = apsMet
	}

	r := Result{
		Course:            course,
		MatchScore:        interest*interestWeight + physical*physicalWeight + bonus,
		APSScore:          score,
		MeetsRequirements: apsOK && check.Meets,
	}

	if apsOK {
		r.Reasons = append(r.Reasons, fmt.Sprintf("Your APS score (%d) meets the minimum requirement (%d)", score, course.MinimumAPS))
	} else {
		r.Reasons = append(r.Reasons, fmt.Sprintf("Your APS score (%d) is below the minimum requirement (%d)", score, course.MinimumAPS))
	}

	if interest > 0.3 {
		named := MatchingInterests(student.Interests, course.RelatedInterests)
		if len(named) > 0 {
			named = named[:min(len(named), maxNamedInterests)]
			r.Reasons = append(r.Reasons, "Aligns with your interests: "+strings.Join(named, ", "))
		}
	}

	if len(course.PhysicalRequirements) > 0 && physical > Neutral {
		r.Reasons = append(r.Reasons, "Matches your physical talents and abilities")
	}

	if check.Meets {
		r.Reasons = append(r.Reasons, "You meet all specific subject requirements")
	} else {
		r.MissingRequirements = check.Missing
	}

	return r
}
