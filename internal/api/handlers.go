package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/coursefit/internal/advice"
	"github.com/abhisek/coursefit/internal/aps"
	"github.com/abhisek/coursefit/internal/catalog"
	"github.com/abhisek/coursefit/internal/profile"
	"github.com/abhisek/coursefit/internal/report"
	"github.com/abhisek/coursefit/internal/requirements"
	"github.com/abhisek/coursefit/internal/subjects"
)

// maxBody caps request documents.
const maxBody = 1 << 20

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"catalogVersion": s.catalog.Version(),
		"courses":        s.catalog.Len(),
	})
}

func (s *Server) listSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, subjects.All())
}

func (s *Server) listInterests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.InterestGroups())
}

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	courses := s.catalog.Courses()
	if lang := r.URL.Query().Get("language"); lang != "" {
		courses = s.catalog.ForLanguage(lang)
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := s.course(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// course resolves {courseID} or writes a 404.
func (s *Server) course(w http.ResponseWriter, r *http.Request) (catalog.Course, bool) {
	course, err := s.catalog.Course(chi.URLParam(r, "courseID"))
	if errors.Is(err, catalog.ErrCourseNotFound) {
		writeErr(w, http.StatusNotFound, err.Error())
		return catalog.Course{}, false
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return catalog.Course{}, false
	}
	return course, true
}

func (s *Server) computeAPS(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Subjects subjects.Marks `json:"subjects"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	b := aps.Explain(body.Subjects)
	writeJSON(w, http.StatusOK, map[string]any{"aps": b.Total, "breakdown": b})
}

func (s *Server) checkCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := s.course(w, r)
	if !ok {
		return
	}
	student, ok := decodeStudent(w, r, false)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, requirements.Check(student.Subjects, course))
}

func (s *Server) recommend(w http.ResponseWriter, r *http.Request) {
	student, ok := decodeStudent(w, r, true)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report.New(student, s.catalog, reportOptions(r)))
}

func (s *Server) advise(w http.ResponseWriter, r *http.Request) {
	if s.advisor == nil {
		writeErr(w, http.StatusServiceUnavailable, "advice is not configured on this server")
		return
	}
	student, ok := decodeStudent(w, r, true)
	if !ok {
		return
	}

	rep := report.New(student, s.catalog, reportOptions(r))
	adv, err := s.advisor.Advise(r.Context(), advice.Input{Student: student, APS: rep.APS, Results: rep.Results})
	switch {
	case errors.Is(err, advice.ErrNoResults):
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeErr(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"report": rep, "advice": adv})
}

// decodeStudent reads a profile document. With validate set, profiles
// that fail the ranking preconditions get a 422 listing every problem.
func decodeStudent(w http.ResponseWriter, r *http.Request, validate bool) (profile.Student, bool) {
	student, err := profile.Decode(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return profile.Student{}, false
	}
	if !validate {
		return student, true
	}
	var verr *profile.ValidationError
	if err := student.Validate(); errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errResp{Error: "invalid student profile", Problems: verr.Problems})
		return profile.Student{}, false
	}
	return student, true
}

// reportOptions reads ?top=&eligibleOnly=&matchLanguage=. Unparseable
// values are ignored.
func reportOptions(r *http.Request) report.Options {
	q := r.URL.Query()
	var opts report.Options
	if n, err := strconv.Atoi(q.Get("top")); err == nil && n > 0 {
		opts.Top = n
	}
	opts.EligibleOnly, _ = strconv.ParseBool(q.Get("eligibleOnly"))
	opts.MatchLanguage, _ = strconv.ParseBool(q.Get("matchLanguage"))
	return opts
}
