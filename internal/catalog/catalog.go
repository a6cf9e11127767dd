// Package catalog holds the read-only set of university courses the
// recommender ranks.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// ErrCourseNotFound is returned when a course ID is not in the catalog.
var ErrCourseNotFound = errors.New("course not found")

// Language preferences a student can state.
const (
	LanguageEnglish   = "English"
	LanguageAfrikaans = "Afrikaans"
	LanguageBoth      = "Both"
)

// Catalog is an immutable, validated list of courses. Accessors return
// copies, so callers cannot change what other callers see.
type Catalog struct {
	version string
	courses []Course
	byID    map[string]int
}

// New validates courses and builds a catalog that keeps their order.
func New(version string, courses []Course) (*Catalog, error) {
	if err := validate(version, courses); err != nil {
		return nil, err
	}
	c := &Catalog{
		version: version,
		courses: make([]Course, len(courses)),
		byID:    make(map[string]int, len(courses)),
	}
	for i, course := range courses {
		c.courses[i] = cloneCourse(course)
		c.byID[course.ID] = i
	}
	return c, nil
}

// Version returns the catalog's semantic version.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	for i, course := range c.courses {
		out[i] = cloneCourse(course)
	}
	return out
}

// Course returns a course by ID.
func (c *Catalog) Course(id string) (Course, error) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, fmt.Errorf("%w: %q", ErrCourseNotFound, id)
	}
	return cloneCourse(c.courses[i]), nil
}

// ForLanguage returns the courses taught in the preferred language, in
// catalog order. "Both" and an empty preference keep every course.
func (c *Catalog) ForLanguage(preferred string) []Course {
	if preferred == "" || preferred == LanguageBoth {
		return c.Courses()
	}
	var out []Course
	for _, course := range c.courses {
		if course.TaughtIn(preferred) {
			out = append(out, cloneCourse(course))
		}
	}
	return out
}

// Universities returns the distinct universities in catalog order.
func (c *Catalog) Universities() []string {
	var out []string
	for _, course := range c.courses {
		if !slices.Contains(out, course.University) {
			out = append(out, course.University)
		}
	}
	return out
}

func cloneCourse(c Course) Course {
	c.Requirements.Additional = slices.Clone(c.Requirements.Additional)
	c.CareerOpportunities = slices.Clone(c.CareerOpportunities)
	c.RelatedInterests = slices.Clone(c.RelatedInterests)
	c.PhysicalRequirements = slices.Clone(c.PhysicalRequirements)
	c.LanguageOfInstruction = slices.Clone(c.LanguageOfInstruction)
	return c
}
