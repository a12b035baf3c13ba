package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/eduadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// RecordedRequest is one call the fake backend received.
type RecordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   string
}

type failure struct {
	status  int
	message string
}

// FakeBackend is an in-memory stand-in for the REST backend. It implements
// the list/get/create/update/delete endpoints for every resource, records
// each request, and can be told to fail specific routes.
type FakeBackend struct {
	Server *httptest.Server

	mu        sync.Mutex
	nextID    int
	students  map[int]models.Student
	cohorts   map[int]models.Cohort
	faculties map[int]models.Faculty
	courses   map[int]models.Course
	results   map[models.ResultID]models.Result
	requests  []RecordedRequest
	failures  map[string]failure
}

// NewFakeBackend starts a fake backend that is closed when the test ends.
func NewFakeBackend(t testing.TB) *FakeBackend {
	t.Helper()
	f := &FakeBackend{
		nextID:    100,
		students:  map[int]models.Student{},
		cohorts:   map[int]models.Cohort{},
		faculties: map[int]models.Faculty{},
		courses:   map[int]models.Course{},
		results:   map[models.ResultID]models.Result{},
		failures:  map[string]failure{},
	}
	f.Server = httptest.NewServer(f.routes())
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the fake backend origin.
func (f *FakeBackend) URL() string { return f.Server.URL }

// Fail makes every request matching method and path respond with status and
// an ErrorResponse carrying message.
func (f *FakeBackend) Fail(method, path string, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[method+" "+path] = failure{status: status, message: message}
}

// Requests returns a copy of the recorded requests.
func (f *FakeBackend) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Count returns how many requests matched method and path.
func (f *FakeBackend) Count(method, path string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Reset clears the request log.
func (f *FakeBackend) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Seeding                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (f *FakeBackend) AddFaculty(name string) models.Faculty {
	f.mu.Lock()
	defer f.mu.Unlock()
	fac := models.Faculty{ID: f.id(), Name: name}
	f.faculties[fac.ID] = fac
	return fac
}

func (f *FakeBackend) AddCohort(name string, facultyID int) models.Cohort {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := models.Cohort{ID: f.id(), Name: name}
	if fac, ok := f.faculties[facultyID]; ok {
		c.Faculty = &fac
	}
	f.cohorts[c.ID] = c
	return c
}

func (f *FakeBackend) AddCourse(name string, facultyID int) models.Course {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := models.Course{ID: f.id(), Name: name}
	if fac, ok := f.faculties[facultyID]; ok {
		c.Faculty = &fac
	}
	f.courses[c.ID] = c
	return c
}

func (f *FakeBackend) AddStudent(s models.Student, cohortID int) models.Student {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.id()
	if c, ok := f.cohorts[cohortID]; ok {
		s.Cohort = &c
	}
	f.students[s.ID] = s
	return s
}

func (f *FakeBackend) AddResult(studentID, courseID, grade int) models.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.buildResult(studentID, courseID, grade)
	f.results[r.ID] = r
	return r
}

// Student returns the stored student with id.
func (f *FakeBackend) Student(id int) (models.Student, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	return s, ok
}

func (f *FakeBackend) Cohort(id int) (models.Cohort, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cohorts[id]
	return c, ok
}

func (f *FakeBackend) Faculty(id int) (models.Faculty, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fac, ok := f.faculties[id]
	return fac, ok
}

func (f *FakeBackend) Course(id int) (models.Course, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[id]
	return c, ok
}

func (f *FakeBackend) Result(k models.ResultID) (models.Result, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.results[k]
	return r, ok
}

func (f *FakeBackend) id() int {
	f.nextID++
	return f.nextID
}

func (f *FakeBackend) buildResult(studentID, courseID, grade int) models.Result {
	r := models.Result{ID: models.ResultID{StudentID: studentID, CourseID: courseID}, Grade: grade}
	if s, ok := f.students[studentID]; ok {
		r.Student = &s
	}
	if c, ok := f.courses[courseID]; ok {
		r.Course = &c
	}
	return r
}

/*─────────────────────────────────────────────────────────────────────────────*
| HTTP                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (f *FakeBackend) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(f.record)

	r.Route("/api/v1/students", func(r chi.Router) {
		r.Get("/", f.listStudents)
		r.Post("/", f.createStudent)
		r.Get("/{id}", f.getStudent)
		r.Put("/{id}", f.updateStudent)
		r.Delete("/{id}", f.deleteStudent)
	})
	r.Route("/api/v1/cohorts", func(r chi.Router) {
		r.Get("/", f.listCohorts)
		r.Post("/", f.createCohort)
		r.Get("/{id}", f.getCohort)
		r.Put("/{id}", f.updateCohort)
		r.Delete("/{id}", f.deleteCohort)
	})
	r.Route("/api/v1/faculties", func(r chi.Router) {
		r.Get("/", f.listFaculties)
		r.Post("/", f.createFaculty)
		r.Get("/{id}", f.getFaculty)
		r.Put("/{id}", f.updateFaculty)
		r.Delete("/{id}", f.deleteFaculty)
	})
	r.Route("/api/v1/courses", func(r chi.Router) {
		r.Get("/", f.listCourses)
		r.Post("/", f.createCourse)
		r.Get("/{id}", f.getCourse)
		r.Put("/{id}", f.updateCourse)
		r.Delete("/{id}", f.deleteCourse)
	})
	r.Route("/api/v1/results", func(r chi.Router) {
		r.Get("/", f.listResults)
		r.Post("/", f.createResult)
		r.Get("/grade/{grade}", f.resultsAtLeast)
		r.Put("/student/{sid}/course/{cid}", f.updateResult)
		r.Delete("/student/{sid}/course/{cid}", f.deleteResult)
	})
	return r
}

func (f *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		path := strings.TrimRight(r.URL.Path, "/")

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: r.Method,
			Path:   path,
			Query:  r.URL.Query(),
			Body:   string(body),
		})
		fail, failing := f.failures[r.Method+" "+path]
		f.mu.Unlock()

		if failing {
			writeError(w, fail.status, fail.message)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"status":    status,
		"message":   message,
		"timestamp": "2024-01-01 00:00:00",
	})
}

func intParam(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	return n, err == nil
}

func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// students

func (f *FakeBackend) listStudents(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := make([]models.Student, 0, len(f.students))
	for _, k := range sortedKeys(f.students) {
		out = append(out, f.students[k])
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getStudent(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	s, ok := f.students[id]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "student with id "+strconv.Itoa(id)+" was not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (f *FakeBackend) createStudent(w http.ResponseWriter, r *http.Request) {
	var s models.Student
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON request")
		return
	}
	cohortID := queryInt(r, "cohortId")

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.students {
		if strings.EqualFold(existing.Email, s.Email) {
			writeError(w, http.StatusBadRequest, "Email already exist in database")
			return
		}
	}
	c, ok := f.cohorts[cohortID]
	if !ok {
		writeError(w, http.StatusNotFound, "Cohort with id "+strconv.Itoa(cohortID)+" was not found")
		return
	}
	s.ID = f.id()
	s.Cohort = &c
	f.students[s.ID] = s
	w.WriteHeader(http.StatusCreated)
}

func (f *FakeBackend) updateStudent(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	q := r.URL.Query()

	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[id]
	if !ok {
		writeError(w, http.StatusNotFound, "student with id "+strconv.Itoa(id)+" does not exist")
		return
	}
	if v := q.Get("name"); v != "" {
		s.Name = v
	}
	if v := q.Get("email"); v != "" {
		s.Email = v
	}
	if v := q.Get("gender"); v != "" {
		s.Gender = models.Gender(v)
	}
	if v := q.Get("dob"); v != "" {
		if d, err := models.ParseDate(v); err == nil {
			s.DOB = d
		}
	}
	if cid := queryInt(r, "cohortId"); cid != 0 {
		if c, ok := f.cohorts[cid]; ok {
			s.Cohort = &c
		}
	}
	f.students[id] = s
	w.WriteHeader(http.StatusOK)
}

func (f *FakeBackend) deleteStudent(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		writeError(w, http.StatusNotFound, "student with id = "+strconv.Itoa(id)+" does not exist in database")
		return
	}
	delete(f.students, id)
	w.WriteHeader(http.StatusNoContent)
}

// cohorts

func (f *FakeBackend) listCohorts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := make([]models.Cohort, 0, len(f.cohorts))
	for _, k := range sortedKeys(f.cohorts) {
		out = append(out, f.cohorts[k])
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getCohort(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	c, ok := f.cohorts[id]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Cohort with id "+strconv.Itoa(id)+" was not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (f *FakeBackend) createCohort(w http.ResponseWriter, r *http.Request) {
	var c models.Cohort
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON request")
		return
	}
	facultyID := queryInt(r, "facultyId")

	f.mu.Lock()
	defer f.mu.Unlock()
	fac, ok := f.faculties[facultyID]
	if !ok {
		writeError(w, http.StatusNotFound, "Faculty with id "+strconv.Itoa(facultyID)+" was not found")
		return
	}
	c.ID = f.id()
	c.Faculty = &fac
	f.cohorts[c.ID] = c
	w.WriteHeader(http.StatusCreated)
}

func (f *FakeBackend) updateCohort(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cohorts[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Cohort with id "+strconv.Itoa(id)+" was not found")
		return
	}
	if v := r.URL.Query().Get("name"); v != "" {
		c.Name = v
	}
	if fid := queryInt(r, "facultyId"); fid != 0 {
		if fac, ok := f.faculties[fid]; ok {
			c.Faculty = &fac
		}
	}
	f.cohorts[id] = c
	w.WriteHeader(http.StatusOK)
}

func (f *FakeBackend) deleteCohort(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cohorts[id]; !ok {
		writeError(w, http.StatusNotFound, "Cohort with id "+strconv.Itoa(id)+" was not found")
		return
	}
	delete(f.cohorts, id)
	w.WriteHeader(http.StatusNoContent)
}

// faculties

func (f *FakeBackend) listFaculties(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := make([]models.Faculty, 0, len(f.faculties))
	for _, k := range sortedKeys(f.faculties) {
		out = append(out, f.faculties[k])
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getFaculty(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	fac, ok := f.faculties[id]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Faculty with id "+strconv.Itoa(id)+" was not found")
		return
	}
	writeJSON(w, http.StatusOK, fac)
}

func (f *FakeBackend) createFaculty(w http.ResponseWriter, r *http.Request) {
	var fac models.Faculty
	if err := json.NewDecoder(r.Body).Decode(&fac); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON request")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.faculties {
		if strings.EqualFold(existing.Name, fac.Name) {
			writeError(w, http.StatusBadRequest, "Faculty name already exists")
			return
		}
	}
	fac.ID = f.id()
	f.faculties[fac.ID] = fac
	writeJSON(w, http.StatusCreated, fac)
}

func (f *FakeBackend) updateFaculty(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	var fac models.Faculty
	if err := json.NewDecoder(r.Body).Decode(&fac); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON request")
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.faculties[id]; !ok {
		writeError(w, http.StatusNotFound, "Faculty with id "+strconv.Itoa(id)+" was not found")
		return
	}
	fac.ID = id
	f.faculties[id] = fac
	writeJSON(w, http.StatusOK, fac)
}

func (f *FakeBackend) deleteFaculty(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.faculties[id]; !ok {
		writeError(w, http.StatusNotFound, "Faculty with id "+strconv.Itoa(id)+" was not found")
		return
	}
	delete(f.faculties, id)
	w.WriteHeader(http.StatusNoContent)
}

// courses

func (f *FakeBackend) listCourses(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := make([]models.Course, 0, len(f.courses))
	for _, k := range sortedKeys(f.courses) {
		out = append(out, f.courses[k])
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) getCourse(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	c, ok := f.courses[id]
	f.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Course with id "+strconv.Itoa(id)+" was not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (f *FakeBackend) createCourse(w http.ResponseWriter, r *http.Request) {
	var c models.Course
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON request")
		return
	}
	facultyID := queryInt(r, "facultyId")

	f.mu.Lock()
	defer f.mu.Unlock()
	fac, ok := f.faculties[facultyID]
	if !ok {
		writeError(w, http.StatusNotFound, "Faculty with id "+strconv.Itoa(facultyID)+" was not found")
		return
	}
	c.ID = f.id()
	c.Faculty = &fac
	f.courses[c.ID] = c
	w.WriteHeader(http.StatusCreated)
}

func (f *FakeBackend) updateCourse(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.courses[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Course with id "+strconv.Itoa(id)+" was not found")
		return
	}
	if v := r.URL.Query().Get("name"); v != "" {
		c.Name = v
	}
	if fid := queryInt(r, "facultyId"); fid != 0 {
		if fac, ok := f.faculties[fid]; ok {
			c.Faculty = &fac
		}
	}
	f.courses[id] = c
	w.WriteHeader(http.StatusOK)
}

func (f *FakeBackend) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id, _ := intParam(r, "id")
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.courses[id]; !ok {
		writeError(w, http.StatusNotFound, "Course with id "+strconv.Itoa(id)+" was not found")
		return
	}
	delete(f.courses, id)
	w.WriteHeader(http.StatusNoContent)
}

// results

func (f *FakeBackend) sortedResults(minGrade int) []models.Result {
	out := make([]models.Result, 0, len(f.results))
	for _, res := range f.results {
		if res.Grade >= minGrade {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID.StudentID != out[j].ID.StudentID {
			return out[i].ID.StudentID < out[j].ID.StudentID
		}
		return out[i].ID.CourseID < out[j].ID.CourseID
	})
	return out
}

func (f *FakeBackend) listResults(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	out := f.sortedResults(-1 << 31)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) resultsAtLeast(w http.ResponseWriter, r *http.Request) {
	grade, ok := intParam(r, "grade")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid value for parameter 'grade'")
		return
	}
	f.mu.Lock()
	out := f.sortedResults(grade)
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeBackend) createResult(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Grade int `json:"grade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON request")
		return
	}
	sid, cid := queryInt(r, "studentId"), queryInt(r, "courseId")

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[sid]; !ok {
		writeError(w, http.StatusNotFound, "student with id "+strconv.Itoa(sid)+" was not found")
		return
	}
	if _, ok := f.courses[cid]; !ok {
		writeError(w, http.StatusNotFound, "Course with id "+strconv.Itoa(cid)+" was not found")
		return
	}
	res := f.buildResult(sid, cid, body.Grade)
	f.results[res.ID] = res
	w.WriteHeader(http.StatusOK)
}

func (f *FakeBackend) updateResult(w http.ResponseWriter, r *http.Request) {
	sid, _ := intParam(r, "sid")
	cid, _ := intParam(r, "cid")
	k := models.ResultID{StudentID: sid, CourseID: cid}

	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.results[k]
	if !ok {
		writeError(w, http.StatusNotFound, "Result was not found")
		return
	}
	if v := r.URL.Query().Get("grade"); v != "" {
		g, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid value for parameter 'grade'")
			return
		}
		res.Grade = g
	}
	f.results[k] = res
	w.WriteHeader(http.StatusOK)
}

func (f *FakeBackend) deleteResult(w http.ResponseWriter, r *http.Request) {
	sid, _ := intParam(r, "sid")
	cid, _ := intParam(r, "cid")
	k := models.ResultID{StudentID: sid, CourseID: cid}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.results[k]; !ok {
		writeError(w, http.StatusNotFound, "Result was not found")
		return
	}
	delete(f.results, k)
	w.WriteHeader(http.StatusOK)
}
