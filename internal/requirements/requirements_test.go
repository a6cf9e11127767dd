package requirements

import (
	"slices"
	"testing"

	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/subjects"
)

func course(r catalog.Requirements) catalog.Course {
	return catalog.Course{ID: "test", Requirements: r}
}

func TestCheck_MarkThenLevelOrder(t *testing.T) {
	marks := subjects.NewMarks(
		subjects.Entry{Code: "mathematics", Mark: 65},
		subjects.Entry{Code: "english", Mark: 65, Level: subjects.LevelFAL},
	)
	c := course(catalog.Requirements{Mathematics: 70, English: 60, EnglishLevel: subjects.LevelHL})

	got := Check(marks, c)
	want := []string{
		"Mathematics: Need 70%, have 65%",
		"English level: Need HL, have FAL",
	}
	if got.Meets {
		t.Error("Meets = true, want false")
	}
	if !slices.Equal(got.Missing, want) {
		t.Errorf("Missing = %q, want %q", got.Missing, want)
	}
}

func TestCheck_AllDimensionsInOrder(t *testing.T) {
	marks := subjects.NewMarks(
		subjects.Entry{Code: "afrikaans", Mark: 40, Level: subjects.LevelFAL},
		subjects.Entry{Code: "english", Mark: 45, Level: subjects.LevelFAL},
	)
	c := course(catalog.Requirements{
		Mathematics:      50,
		PhysicalSciences: 50,
		LifeSciences:     50,
		English:          50,
		EnglishLevel:     subjects.LevelHL,
		Afrikaans:        50,
		AfrikaansLevel:   subjects.LevelHL,
	})

	got := Check(marks, c)
	want := []string{
		"Mathematics: Need 50%, have 0%",
		"Physical Sciences: Need 50%, have 0%",
		"Life Sciences: Need 50%, have 0%",
		"English: Need 50%, have 45%",
		"English level: Need HL, have FAL",
		"Afrikaans: Need 50%, have 40%",
		"Afrikaans level: Need HL, have FAL",
	}
	if !slices.Equal(got.Missing, want) {
		t.Errorf("Missing =\n%q\nwant\n%q", got.Missing, want)
	}
}

func TestCheck_MathematicalLiteracySatisfiesMathematics(t *testing.T) {
	marks := subjects.NewMarks(subjects.Entry{Code: "mathematicalLiteracy", Mark: 72})
	got := Check(marks, course(catalog.Requirements{Mathematics: 70}))
	if !got.Meets {
		t.Errorf("Meets = false, missing %q", got.Missing)
	}
}

func TestCheck_PrefersMathematicsOverLiteracy(t *testing.T) {
	marks := subjects.NewMarks(
		subjects.Entry{Code: "mathematicalLiteracy", Mark: 90},
		subjects.Entry{Code: "mathematics", Mark: 55},
	)
	got := Check(marks, course(catalog.Requirements{Mathematics: 60}))
	want := []string{"Mathematics: Need 60%, have 55%"}
	if !slices.Equal(got.Missing, want) {
		t.Errorf("Missing = %q, want %q", got.Missing, want)
	}
}

func TestCheck_UnsetLevelDefaultsToHL(t *testing.T) {
	marks := subjects.NewMarks(subjects.Entry{Code: "english", Mark: 80})

	if got := Check(marks, course(catalog.Requirements{English: 60, EnglishLevel: subjects.LevelHL})); !got.Meets {
		t.Errorf("HL requirement: missing %q", got.Missing)
	}

	got := Check(marks, course(catalog.Requirements{English: 60, EnglishLevel: subjects.LevelFAL}))
	want := []string{"English level: Need FAL, have HL"}
	if !slices.Equal(got.Missing, want) {
		t.Errorf("FAL requirement: Missing = %q, want %q", got.Missing, want)
	}
}

func TestCheck_AbsentLanguageHasNoLevelMessage(t *testing.T) {
	got := Check(subjects.Marks{}, course(catalog.Requirements{English: 60, EnglishLevel: subjects.LevelHL}))
	want := []string{"English: Need 60%, have 0%"}
	if !slices.Equal(got.Missing, want) {
		t.Errorf("Missing = %q, want %q", got.Missing, want)
	}
}

func TestCheck_ThresholdBoundaryIsInclusive(t *testing.T) {
	marks := subjects.NewMarks(subjects.Entry{Code: "physicalSciences", Mark: 70})
	if got := Check(marks, course(catalog.Requirements{PhysicalSciences: 70})); !got.Meets {
		t.Errorf("mark equal to threshold should pass, missing %q", got.Missing)
	}
}

func TestCheck_NoRequirements(t *testing.T) {
	got := Check(subjects.Marks{}, course(catalog.Requirements{Additional: []string{"Interview"}}))
	if !got.Meets || len(got.Missing) != 0 {
		t.Errorf("Check() = %+v, want meets with nothing missing", got)
	}
	if got.Missing == nil {
		t.Error("Missing should be empty, not nil")
	}
}

func TestCheck_SeedMedicine(t *testing.T) {
	medicine, err := catalog.Default().Course("medicine-uct")
	if err != nil {
		t.Fatal(err)
	}
	marks := subjects.NewMarks(
		subjects.Entry{Code: "lifeOrientation", Mark: 80},
		subjects.Entry{Code: "mathematics", Mark: 75},
		subjects.Entry{Code: "physicalSciences", Mark: 75},
		subjects.Entry{Code: "english", Mark: 65, Level: subjects.LevelHL},
		subjects.Entry{Code: "lifeSciences", Mark: 65},
	)
	if got := Check(marks, medicine); !got.Meets {
		t.Errorf("Missing = %q, want none", got.Missing)
	}
}
