package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/system/viewdata"
)

func TestNewBaseVM_MarksActiveSection(t *testing.T) {
	r := httptest.NewRequest("GET", "/cohorts/4/edit", nil)
	vm := viewdata.NewBaseVM(r, "Edit Cohort", "/cohorts")

	if vm.Title != "Edit Cohort" {
		t.Errorf("Title = %q", vm.Title)
	}
	if vm.SiteName == "" {
		t.Error("SiteName should default")
	}
	active := ""
	for _, n := range vm.Nav {
		if n.Active {
			if active != "" {
				t.Fatalf("more than one active section: %q and %q", active, n.Label)
			}
			active = n.Label
		}
	}
	if active != "Cohorts" {
		t.Errorf("active section = %q, want Cohorts", active)
	}
}

func TestAddAlerts_SanitizesAndSkipsBlank(t *testing.T) {
	var vm viewdata.BaseVM
	vm.AddAlerts("", "<i>Update successfully</i>", "   ", "Cohort with id 9 was not found")

	want := []string{"Update successfully", "Cohort with id 9 was not found"}
	if len(vm.Alerts) != len(want) {
		t.Fatalf("Alerts = %q, want %q", vm.Alerts, want)
	}
	for i := range want {
		if vm.Alerts[i] != want[i] {
			t.Errorf("Alerts[%d] = %q, want %q", i, vm.Alerts[i], want[i])
		}
	}
}
