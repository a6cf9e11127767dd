package profile

import (
	"errors"
	"fmt"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/subjects"
)

// Builder assembles a profile one edit at a time. Build hands out a
// snapshot, so further edits never reach profiles already built.
type Builder struct {
	student Student
}

// NewBuilder starts a profile holding only Life Orientation at 0%.
func NewBuilder() *Builder {
	b := &Builder{}
	b.student.Subjects.Set(subjects.Entry{Code: subjects.LifeOrientation})
	b.student.PreferredLanguage = catalog.LanguageEnglish
	return b
}

// AddSubject adds a known subject at 0%. Language subjects start at HL.
func (b *Builder) AddSubject(code string) error {
	code = subjects.Canonical(code)
	s, ok := subjects.Lookup(code)
	if !ok {
		return fmt.Errorf("unknown subject %q", code)
	}
	if b.student.Subjects.Has(code) {
		return fmt.Errorf("subject %q already added", code)
	}
	e := subjects.Entry{Code: code}
	if s.HasLevels {
		e.Level = subjects.LevelHL
	}
	b.student.Subjects.Set(e)
	return nil
}

// RemoveSubject drops a subject. Life Orientation cannot be removed.
func (b *Builder) RemoveSubject(code string) error {
	code = subjects.Canonical(code)
	if code == subjects.LifeOrientation {
		return errors.New("Life Orientation is compulsory")
	}
	if !b.student.Subjects.Has(code) {
		return fmt.Errorf("subject %q not added", code)
	}
	b.student.Subjects.Delete(code)
	return nil
}

// SetMark records a mark, clamped to 0..100.
func (b *Builder) SetMark(code string, mark int) error {
	code = subjects.Canonical(code)
	e, ok := b.student.Subjects.Get(code)
	if !ok {
		return fmt.Errorf("subject %q not added", code)
	}
	e.Mark = ClampMark(mark)
	b.student.Subjects.Set(e)
	return nil
}

// SetLevel records the level of a language subject.
func (b *Builder) SetLevel(code string, level subjects.Level) error {
	code = subjects.Canonical(code)
	e, ok := b.student.Subjects.Get(code)
	if !ok {
		return fmt.Errorf("subject %q not added", code)
	}
	if !subjects.HasLevels(code) {
		return fmt.Errorf("subject %q has no levels", code)
	}
	if !level.Valid() {
		return fmt.Errorf("level %q is not HL or FAL", level)
	}
	e.Level = level
	b.student.Subjects.Set(e)
	return nil
}

// SetInterests replaces the interest list.
func (b *Builder) SetInterests(interests ...string) {
	b.student.Interests = NormalizeInterests(interests)
}

// SetPhysicalTalents replaces the free-text talent description.
func (b *Builder) SetPhysicalTalents(text string) {
	b.student.PhysicalTalents = text
}

// SetPreferredLanguage records the preferred language of instruction.
func (b *Builder) SetPreferredLanguage(language string) {
	b.student.PreferredLanguage = language
}

// Build validates the profile and returns a snapshot of it.
func (b *Builder) Build() (Student, error) {
	if err := b.student.Validate(); err != nil {
		return Student{}, err
	}
	return b.student.Snapshot(), nil
}
