// Package report wraps a ranking run with identifying metadata and writes
// it for people and programs.
package report

import (
	"time"

	"github.com/abhisek/coursefit/internal/aps"
	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/recommend"
	"github.com/google/uuid"
)

// Options narrow the ranked list.
type Options struct {
	Top           int  // 0 keeps every result
	EligibleOnly  bool // drop results that do not meet requirements
	MatchLanguage bool // rank only courses taught in the preferred language
}

// Report is one ranking run.
type Report struct {
	ID             string             `json:"id"`
	GeneratedAt    time.Time          `json:"generatedAt"`
	CatalogVersion string             `json:"catalogVersion"`
	APS            int                `json:"aps"`
	Results        []recommend.Result `json:"results"`
}

// New ranks the catalog for a student and packages the results.
func New(student profile.Student, cat *catalog.Catalog, opts Options) Report {
	courses := cat.Courses()
	if opts.MatchLanguage {
		courses = cat.ForLanguage(student.PreferredLanguage)
	}
	return Build(cat.Version(), student, recommend.Rank(student.Snapshot(), courses), opts)
}

// Build packages results that were already ranked.
func Build(catalogVersion string, student profile.Student, results []recommend.Result, opts Options) Report {
	return Report{
		ID:             uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		CatalogVersion: catalogVersion,
		APS:            aps.Compute(student.Subjects),
		Results:        Filter(results, opts),
	}
}

// Filter applies EligibleOnly and Top to ranked results.
func Filter(results []recommend.Result, opts Options) []recommend.Result {
	out := make([]recommend.Result, 0, len(results))
	for _, r := range results {
		if opts.EligibleOnly && !r.MeetsRequirements {
			continue
		}
		out = append(out, r)
	}
	if opts.Top > 0 && len(out) > opts.Top {
		out = out[:opts.Top]
	}
	return out
}

// Eligible counts the results that meet all requirements.
func (r Report) Eligible() int {
	n := 0
	for _, res := range r.Results {
		if res.MeetsRequirements {
			n++
		}
	}
	return n
}
