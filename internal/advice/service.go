// Package advice asks a language model to explain a student's ranked
// courses the way a school counselor would.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/coursefit/internal/llm"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/recommend"
)

var (
	// ErrNoResults is returned when there is nothing to advise on.
	ErrNoResults = errors.New("no ranked courses to advise on")

	// ErrUnknownCourse is returned when the model picks a course that was
	// not among the ranked results it was shown.
	ErrUnknownCourse = errors.New("advice references a course that was not ranked")
)

// Input is a ranked run for one student.
type Input struct {
	Student profile.Student
	APS     int
	Results []recommend.Result
}

// Pick is one course the model recommends.
type Pick struct {
	CourseID   string `json:"courseId"`
	CourseName string `json:"courseName"`
	University string `json:"university"`
	Rationale  string `json:"rationale"`
}

// Advice is the counselor narrative for one student.
type Advice struct {
	Summary     string    `json:"summary"`
	Picks       []Pick    `json:"picks"`
	NextSteps   []string  `json:"nextSteps"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Service generates Advice.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advice service.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.MaxCourses <= 0 {
		cfg.MaxCourses = DefaultConfig().MaxCourses
	}
	return &Service{provider: provider, cfg: cfg}
}

type adviceOutput struct {
	Summary string `json:"summary"`
	Picks   []struct {
		CourseID  string `json:"courseId"`
		Rationale string `json:"rationale"`
	} `json:"picks"`
	NextSteps []string `json:"nextSteps"`
}

// Advise sends the top ranked results to the model. Only the first
// Config.MaxCourses results are shown, and every pick must refer to one
// of them.
func (s *Service) Advise(ctx context.Context, in Input) (*Advice, error) {
	if len(in.Results) == 0 {
		return nil, ErrNoResults
	}
	shown := in.Results
	if len(shown) > s.cfg.MaxCourses {
		shown = shown[:s.cfg.MaxCourses]
	}

	ctx = llm.WithPurpose(ctx, "advice")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in, shown)}},
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	byID := make(map[string]recommend.Result, len(shown))
	for _, r := range shown {
		byID[r.Course.ID] = r
	}
	advice := &Advice{
		Summary:     out.Summary,
		Picks:       make([]Pick, 0, len(out.Picks)),
		NextSteps:   out.NextSteps,
		Model:       resp.Model,
		GeneratedAt: time.Now().UTC(),
	}
	for _, p := range out.Picks {
		r, ok := byID[p.CourseID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, p.CourseID)
		}
		advice.Picks = append(advice.Picks, Pick{
			CourseID:   p.CourseID,
			CourseName: r.Course.Name,
			University: r.Course.University,
			Rationale:  p.Rationale,
		})
	}
	return advice, nil
}
