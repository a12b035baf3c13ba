package navigation_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/system/navigation"
)

func TestSafeBackURL(t *testing.T) {
	opts := navigation.ForResource("/students")
	tests := []struct {
		name string
		ret  string
		want string
	}{
		{"no return", "", "/students"},
		{"list with query kept", "/students?q=ada", "/students?q=ada"},
		{"other resource rejected", "/cohorts", "/students"},
		{"edit page rejected", "/students/5/edit", "/students"},
		{"absolute url rejected", "https://evil.example/students", "/students"},
		{"protocol relative rejected", "//evil.example/students", "/students"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/students/5/edit"
			if tt.ret != "" {
				target += "?return=" + url.QueryEscape(tt.ret)
			}
			r := httptest.NewRequest("GET", target, nil)
			if got := navigation.SafeBackURL(r, opts); got != tt.want {
				t.Errorf("SafeBackURL(return=%q) = %q, want %q", tt.ret, got, tt.want)
			}
		})
	}
}

func TestSafeBackURL_FormValue(t *testing.T) {
	form := url.Values{"return": {"/students?q=grace"}}
	r := httptest.NewRequest("POST", "/students/5/edit", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if got := navigation.SafeBackURL(r, navigation.ForResource("/students")); got != "/students?q=grace" {
		t.Errorf("SafeBackURL = %q, want /students?q=grace", got)
	}
}
