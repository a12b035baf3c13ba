package models_test

import (
	"encoding/json"
	"testing"

	"github.com/dalemusser/eduadmin/internal/domain/models"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Gender
		wantErr bool
	}{
		{"MALE", models.GenderMale, false},
		{"female", models.GenderFemale, false},
		{"  Other ", models.GenderOther, false},
		{"", "", true},
		{"unknown", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := models.ParseGender(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGender(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenderLabel(t *testing.T) {
	if got := models.GenderFemale.Label(); got != "Female" {
		t.Errorf("Label() = %q, want %q", got, "Female")
	}
	if got := models.Gender("").Label(); got != "" {
		t.Errorf("empty Label() = %q, want empty", got)
	}
}

func TestStudentJSON_DecodesBackendShape(t *testing.T) {
	raw := `{
		"id": 7,
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"gender": "FEMALE",
		"dob": "1815-12-10",
		"cohort": {"id": 2, "name": "CS-2024", "faculty": {"id": 1, "name": "Engineering"}}
	}`

	var s models.Student
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.DOB.String() != "1815-12-10" {
		t.Errorf("DOB = %q, want 1815-12-10", s.DOB.String())
	}
	if s.CohortName() != "CS-2024" {
		t.Errorf("CohortName() = %q", s.CohortName())
	}
	if s.Cohort.FacultyName() != "Engineering" {
		t.Errorf("FacultyName() = %q", s.Cohort.FacultyName())
	}
}

func TestDate_NullAndDateTime(t *testing.T) {
	var s models.Student
	if err := json.Unmarshal([]byte(`{"name":"x","dob":null}`), &s); err != nil {
		t.Fatalf("Unmarshal null dob: %v", err)
	}
	if !s.DOB.IsZero() {
		t.Errorf("expected zero DOB for null")
	}

	if err := json.Unmarshal([]byte(`{"name":"x","dob":"2001-02-03T00:00:00"}`), &s); err != nil {
		t.Fatalf("Unmarshal datetime dob: %v", err)
	}
	if s.DOB.String() != "2001-02-03" {
		t.Errorf("DOB = %q, want 2001-02-03", s.DOB.String())
	}

	out, err := json.Marshal(models.Student{Name: "y"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(out, &m)
	if m["dob"] != nil {
		t.Errorf("zero DOB should encode as null, got %v", m["dob"])
	}
}

func TestNestedNamesWhenMissing(t *testing.T) {
	if (models.Student{}).CohortName() != "" {
		t.Error("student without cohort should have empty cohort name")
	}
	if (models.Cohort{}).FacultyName() != "" {
		t.Error("cohort without faculty should have empty faculty name")
	}
	if (models.Course{}).FacultyName() != "" {
		t.Error("course without faculty should have empty faculty name")
	}
	r := models.Result{}
	if r.StudentName() != "" || r.CourseName() != "" {
		t.Error("result without relations should have empty names")
	}
}

func TestResultKey_FallsBackToNestedIDs(t *testing.T) {
	r := models.Result{
		Student: &models.Student{ID: 4},
		Course:  &models.Course{ID: 9},
		Grade:   80,
	}
	k := r.Key()
	if k.StudentID != 4 || k.CourseID != 9 {
		t.Errorf("Key() = %+v, want {4 9}", k)
	}

	r.ID = models.ResultID{StudentID: 1, CourseID: 2}
	if k := r.Key(); k.StudentID != 1 || k.CourseID != 2 {
		t.Errorf("Key() = %+v, want embedded id {1 2}", k)
	}
}
