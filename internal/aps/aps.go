// Package aps computes the Admission Point Score used by South African
// universities to screen applicants.
package aps

import (
	"math"
	"sort"

	"github.com/abhisek/coursefit/internal/subjects"
)

// MaxCounted is the number of subjects, excluding Life Orientation,
// that contribute to the score.
const MaxCounted = 6

// Max is the highest attainable score: six subjects at band 7 plus half
// of band 7 for Life Orientation, rounded.
const Max = 46

// Band maps a percentage mark to its 1..7 point band. Marks outside
// 0..100 fall into the lowest or highest band.
func Band(mark int) int {
	switch {
	case mark >= 80:
		return 7
	case mark >= 70:
		return 6
	case mark >= 60:
		return 5
	case mark >= 50:
		return 4
	case mark >= 40:
		return 3
	case mark >= 30:
		return 2
	default:
		return 1
	}
}

// Contribution describes how one subject fed into the score.
type Contribution struct {
	Code    string  `json:"code"`
	Mark    int     `json:"mark"`
	Band    int     `json:"band"`
	Points  float64 `json:"points"`
	Counted bool    `json:"counted"`
}

// Breakdown is the itemised score for a set of marks.
type Breakdown struct {
	LifeOrientation *Contribution  `json:"lifeOrientation,omitempty"`
	Subjects        []Contribution `json:"subjects"`
	Raw             float64        `json:"raw"`
	Total           int            `json:"total"`
}

// Compute returns the APS for a student's marks.
func Compute(marks subjects.Marks) int {
	return Explain(marks).Total
}

// Explain returns the itemised APS. Life Orientation earns half its band.
// The six best remaining marks earn their full band, with equal marks
// ranked by insertion order. Subjects beyond the best six are listed with
// Counted false.
func Explain(marks subjects.Marks) Breakdown {
	var b Breakdown

	if lo, ok := marks.Get(subjects.LifeOrientation); ok {
		band := Band(lo.Mark)
		b.LifeOrientation = &Contribution{
			Code:    lo.Code,
			Mark:    lo.Mark,
			Band:    band,
			Points:  float64(band) / 2,
			Counted: true,
		}
		b.Raw += b.LifeOrientation.Points
	}

	others := make([]subjects.Entry, 0, marks.Len())
	for _, e := range marks.Entries() {
		if e.Code != subjects.LifeOrientation {
			others = append(others, e)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].Mark > others[j].Mark
	})

	b.Subjects = make([]Contribution, 0, len(others))
	for i, e := range others {
		c := Contribution{Code: e.Code, Mark: e.Mark, Band: Band(e.Mark)}
		if i < MaxCounted {
			c.Counted = true
			c.Points = float64(c.Band)
			b.Raw += c.Points
		}
		b.Subjects = append(b.Subjects, c)
	}

	// Raw is never negative, so half-up and half-away-from-zero agree.
	b.Total = int(math.Round(b.Raw))
	return b
}
