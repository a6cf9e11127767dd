package advice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/coursefit/internal/aps"
	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/llm"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/recommend"
	"github.com/abhisek/coursefit/internal/subjects"
)

func scienceStudent() profile.Student {
	return profile.Student{
		Subjects: subjects.NewMarks(
			subjects.Entry{Code: subjects.LifeOrientation, Mark: 80},
			subjects.Entry{Code: subjects.Mathematics, Mark: 85},
			subjects.Entry{Code: subjects.PhysicalSciences, Mark: 85},
			subjects.Entry{Code: subjects.English, Mark: 80, Level: subjects.LevelHL},
			subjects.Entry{Code: subjects.LifeSciences, Mark: 80},
			subjects.Entry{Code: "geography", Mark: 80},
			subjects.Entry{Code: "history", Mark: 70},
		),
		Interests:         []string{"medicine", "science"},
		PhysicalTalents:   "steady hands",
		PreferredLanguage: catalog.LanguageEnglish,
	}
}

func rankedInput(t *testing.T) Input {
	t.Helper()
	s := scienceStudent()
	return Input{
		Student: s,
		APS:     aps.Compute(s.Subjects),
		Results: recommend.Rank(s, catalog.Default().Courses()),
	}
}

func TestAdvise(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(`{
		"summary": "Strong marks across the sciences put every health course within reach.",
		"picks": [
			{"courseId": "medicine-uct", "rationale": "Meets every requirement and matches the medicine interest."},
			{"courseId": "nursing-wits", "rationale": "A shorter route into healthcare."}
		],
		"nextSteps": ["Book the NBT", "Apply before the end of June"]
	}`))
	svc := NewService(mock, DefaultConfig())
	in := rankedInput(t)

	got, err := svc.Advise(t.Context(), in)
	require.NoError(t, err)

	assert.Equal(t, "mock", got.Model)
	require.Len(t, got.Picks, 2)
	assert.Equal(t, "Bachelor of Medicine and Bachelor of Surgery (MBChB)", got.Picks[0].CourseName)
	assert.Equal(t, "University of Cape Town", got.Picks[0].University)
	assert.Len(t, got.NextSteps, 2)
	assert.False(t, got.GeneratedAt.IsZero())

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	require.NotNil(t, req.Schema)
	assert.Equal(t, "course-advice", req.Schema.Name)
	assert.Equal(t, systemPrompt, req.System)

	msg := req.Messages[0].Content
	assert.Contains(t, msg, "APS: 45")
	assert.Contains(t, msg, "Interests: medicine, science")
	assert.Contains(t, msg, "English Home Language: 80% HL")
	assert.Contains(t, msg, "[medicine-uct]")
}

func TestAdvise_OnlyTopCoursesShown(t *testing.T) {
	in := rankedInput(t)
	last := in.Results[len(in.Results)-1].Course.ID

	mock := llm.NewMockProvider(llm.MockJSON(`{"summary":"s","picks":[{"courseId":"` + last + `","rationale":"r"}],"nextSteps":[]}`))
	cfg := DefaultConfig()
	cfg.MaxCourses = 3
	_, err := NewService(mock, cfg).Advise(t.Context(), in)

	assert.ErrorIs(t, err, ErrUnknownCourse)
	assert.NotContains(t, mock.Calls[0].Messages[0].Content, "["+last+"]")
}

func TestAdvise_NoResults(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := NewService(mock, DefaultConfig()).Advise(t.Context(), Input{Student: scienceStudent()})
	assert.ErrorIs(t, err, ErrNoResults)
	assert.Zero(t, mock.CallCount())
}

func TestAdvise_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := NewService(mock, DefaultConfig()).Advise(t.Context(), rankedInput(t))

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestAdvise_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(`{"summary":"s","picks":[]}`))
	_, err := NewService(mock, DefaultConfig()).Advise(t.Context(), rankedInput(t))

	var inv *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}
