package inputval_test

import (
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/system/inputval"
)

type studentInput struct {
	Name   string `validate:"required,max=10" label:"Name"`
	Email  string `validate:"required,email" label:"Email"`
	Gender string `validate:"required,gender" label:"Gender"`
	DOB    string `validate:"omitempty,isodate" label:"Date of birth"`
}

type gradeInput struct {
	Grade int `validate:"gte=0,lte=100" label:"Grade"`
}

type gradeText struct {
	Grade string `validate:"required,wholenumber" label:"Grade"`
}

func TestValidate_OK(t *testing.T) {
	res := inputval.Validate(studentInput{Name: "Ada", Email: "ada@example.com", Gender: "female", DOB: "1815-12-10"})
	if res.HasErrors() {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if res.First() != "" {
		t.Errorf("First() = %q, want empty", res.First())
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"required uses label", studentInput{Email: "a@b.co", Gender: "MALE"}, "Name is required."},
		{"max", studentInput{Name: "Bartholomew Q", Email: "a@b.co", Gender: "MALE"}, "Name must be at most 10 characters."},
		{"email", studentInput{Name: "Ada", Email: "nope", Gender: "MALE"}, "Email must be a valid email address."},
		{"gender", studentInput{Name: "Ada", Email: "a@b.co", Gender: "robot"}, "Gender must be Male, Female or Other."},
		{"date", studentInput{Name: "Ada", Email: "a@b.co", Gender: "OTHER", DOB: "10/12/1815"}, "Date of birth must be a date (YYYY-MM-DD)."},
		{"upper bound", gradeInput{Grade: 101}, "Grade must be at most 100."},
		{"lower bound", gradeInput{Grade: -1}, "Grade must be at least 0."},
		{"negative text", gradeText{Grade: "-3"}, "Grade must be a whole number from 0 to 2147483647."},
		{"overflowing text", gradeText{Grade: "99999999999999999999"}, "Grade must be a whole number from 0 to 2147483647."},
		{"decimal text", gradeText{Grade: "7.5"}, "Grade must be a whole number from 0 to 2147483647."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := inputval.Validate(tt.input)
			if !res.HasErrors() {
				t.Fatal("expected errors")
			}
			if got := res.First(); got != tt.want {
				t.Errorf("First() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate_WholeNumberAcceptsInRange(t *testing.T) {
	for _, g := range []string{"0", "88", "2147483647"} {
		if res := inputval.Validate(gradeText{Grade: g}); res.HasErrors() {
			t.Errorf("grade %q: unexpected errors %+v", g, res.Errors)
		}
	}
}

func TestValidate_AllCollectsEveryField(t *testing.T) {
	res := inputval.Validate(studentInput{})
	if len(res.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %+v", len(res.Errors), res.Errors)
	}
	want := "Name is required. Email is required. Gender is required."
	if got := res.All(); got != want {
		t.Errorf("All() = %q, want %q", got, want)
	}
	if res.Errors[1].Field != "Email" {
		t.Errorf("Errors[1].Field = %q, want Email", res.Errors[1].Field)
	}
}
