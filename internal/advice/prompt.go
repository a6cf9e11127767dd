package advice

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursefit/internal/recommend"
	"github.com/abhisek/coursefit/internal/subjects"
)

const systemPrompt = `You are a career counselor helping South African matric students choose a university course. You only recommend courses from the list you are given and you are honest about admission requirements the student does not meet.`

func buildUserMessage(in Input, shown []recommend.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "APS: %d\n", in.APS)
	b.WriteString("Subjects:\n")
	for _, e := range in.Student.Subjects.Entries() {
		level := ""
		if subjects.HasLevels(e.Code) {
			level = " " + string(e.EffectiveLevel())
		}
		fmt.Fprintf(&b, "- %s: %d%%%s\n", subjects.DisplayName(e.Code), e.Mark, level)
	}
	if len(in.Student.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(in.Student.Interests, ", "))
	}
	if t := strings.TrimSpace(in.Student.PhysicalTalents); t != "" {
		fmt.Fprintf(&b, "Physical talents: %s\n", t)
	}
	if in.Student.PreferredLanguage != "" {
		fmt.Fprintf(&b, "Preferred language of instruction: %s\n", in.Student.PreferredLanguage)
	}

	b.WriteString("\nRanked courses:\n")
	for i, r := range shown {
		status := "eligible"
		if !r.MeetsRequirements {
			status = "not yet eligible"
		}
		fmt.Fprintf(&b, "%d. [%s] %s at %s (match %.0f%%, %s, minimum APS %d)\n",
			i+1, r.Course.ID, r.Course.Name, r.Course.University, r.MatchScore*100, status, r.Course.MinimumAPS)
		for _, m := range r.MissingRequirements {
			fmt.Fprintf(&b, "   missing: %s\n", m)
		}
	}

	fmt.Fprintf(&b, `
Instructions:
1. Summarise the student's position in 2-3 sentences.
2. Pick at most %d courses from the list above, referring to them by the ID in brackets.
3. Give 2-4 next steps, such as subjects to improve or documents to prepare.
4. Do not invent courses, universities or requirements.`, maxPicks)

	return b.String()
}
