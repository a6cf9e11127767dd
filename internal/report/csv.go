package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/coursefit/internal/recommend"
)

// Keep column order stable; downstream spreadsheets rely on it.
var csvHeader = []string{
	"rank",
	"course_id",
	"course",
	"university",
	"match_score",
	"aps",
	"minimum_aps",
	"meets_requirements",
	"missing_requirements",
}

// WriteCSV writes one row per ranked course.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, res := range r.Results {
		if err := cw.Write(row(i+1, res)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBatchCSV writes the reports of several students into one sheet,
// prefixing each row with the student's label.
func WriteBatchCSV(w io.Writer, labels []string, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"student"}, csvHeader...)); err != nil {
		return err
	}
	for i, r := range reports {
		for j, res := range r.Results {
			if err := cw.Write(append([]string{labels[i]}, row(j+1, res)...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(rank int, res recommend.Result) []string {
	return []string{
		strconv.Itoa(rank),
		res.Course.ID,
		res.Course.Name,
		res.Course.University,
		strconv.FormatFloat(res.MatchScore, 'f', 4, 64),
		strconv.Itoa(res.APSScore),
		strconv.Itoa(res.Course.MinimumAPS),
		strconv.FormatBool(res.MeetsRequirements),
		strings.Join(res.MissingRequirements, "; "),
	}
}

// WriteJSON writes a report, or a slice of them, as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
