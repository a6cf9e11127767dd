package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/abhisek/coursefit/internal/recommend"
	"github.com/abhisek/coursefit/internal/ui/theme"
)

// Badge returns the eligibility label shown next to a result.
func Badge(r recommend.Result) string {
	if r.MeetsRequirements {
		return "Eligible"
	}
	return "Check Requirements"
}

// Percent renders a match score as a whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// WriteText prints the report as cards, one per course.
func WriteText(w io.Writer, r Report, p theme.Palette) error {
	var b strings.Builder

	b.WriteString(p.Title.Render("Course Recommendations"))
	b.WriteString("\n")
	b.WriteString(p.Dim.Render(fmt.Sprintf("APS %d  •  %d of %d eligible  •  catalog %s",
		r.APS, r.Eligible(), len(r.Results), r.CatalogVersion)))
	b.WriteString("\n\n")

	if len(r.Results) == 0 {
		b.WriteString("No courses to show.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, res := range r.Results {
		b.WriteString(card(i+1, res, p))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func card(rank int, res recommend.Result, p theme.Palette) string {
	c := res.Course
	var b strings.Builder

	badge := p.Eligible.Render(Badge(res))
	if !res.MeetsRequirements {
		badge = p.CheckReqs.Render(Badge(res))
	}

	fmt.Fprintf(&b, "%s %s  %s  %s\n",
		p.Dim.Render(fmt.Sprintf("%d.", rank)),
		p.Heading.Render(c.Name),
		badge,
		p.Score.Render(fmt.Sprintf("Match %d%%", Percent(res.MatchScore))))
	fmt.Fprintf(&b, "%s\n", p.Dim.Render(fmt.Sprintf("%s • %s • %s", c.University, c.Faculty, c.Duration)))
	fmt.Fprintf(&b, "APS %d / %d required\n", res.APSScore, c.MinimumAPS)

	for _, reason := range res.Reasons {
		fmt.Fprintf(&b, "  %s %s\n", p.ReasonMark, reason)
	}
	for _, m := range res.MissingRequirements {
		fmt.Fprintf(&b, "  %s\n", p.Missing.Render("✗ "+m))
	}

	out := strings.TrimRight(b.String(), "\n")
	if p.Boxed {
		out = p.Card.Render(out)
	}
	return out + "\n"
}
