package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/system/htmlsanitize"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain message unchanged", "Email already exist in database", "Email already exist in database"},
		{"trims", "  Update successfully \n", "Update successfully"},
		{"strips tags keeps text", "<b>Cohort</b> not found", "Cohort not found"},
		{"keeps apostrophes readable", "Student's email is taken", "Student's email is taken"},
		{"drops script", "oops<script>alert('x')</script>", "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
