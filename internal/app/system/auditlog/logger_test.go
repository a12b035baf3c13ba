package auditlog_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/auditlog"
	"github.com/dalemusser/eduadmin/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("POST", "/students", nil)

	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.Created(ctx, req, audit.ResourceStudent, "1", nil, nil)
	logger.Deleted(ctx, req, audit.ResourceStudent, "1", errors.New("boom"))
}

func TestLogger_LogModeWritesZapOnly(t *testing.T) {
	zl, logs := observed()
	logger := auditlog.New(nil, zl, auditlog.Config{Admin: auditlog.ModeLog})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := httptest.NewRequest("POST", "/cohorts", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.9")
	logger.Created(ctx, req, audit.ResourceCohort, "105", nil, map[string]string{"name": "CS-2024"})

	entries := logs.FilterMessage("audit event").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.InfoLevel {
		t.Errorf("level = %v, want info", e.Level)
	}
	fields := e.ContextMap()
	if fields["event_type"] != audit.EventCohortCreated {
		t.Errorf("event_type = %v, want %s", fields["event_type"], audit.EventCohortCreated)
	}
	if fields["target_id"] != "105" {
		t.Errorf("target_id = %v, want 105", fields["target_id"])
	}
	if fields["ip"] != "10.0.0.9" {
		t.Errorf("ip = %v, want 10.0.0.9", fields["ip"])
	}
	if fields["detail_name"] != "CS-2024" {
		t.Errorf("detail_name = %v, want CS-2024", fields["detail_name"])
	}
}

func TestLogger_FailureUsesServerMessage(t *testing.T) {
	zl, logs := observed()
	logger := auditlog.New(nil, zl, auditlog.Config{Admin: auditlog.ModeAll})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := &backend.APIError{StatusCode: 400, Message: "Email already exist in database"}
	logger.Updated(ctx, httptest.NewRequest("POST", "/students/3/edit", nil), audit.ResourceStudent, "3", err, nil)

	entries := logs.FilterMessage("audit event").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
	if got := entries[0].ContextMap()["failure_reason"]; got != "Email already exist in database" {
		t.Errorf("failure_reason = %v", got)
	}
}

func TestLogger_OffLogsNothing(t *testing.T) {
	zl, logs := observed()
	logger := auditlog.New(nil, zl, auditlog.Config{Admin: auditlog.ModeOff})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger.Deleted(ctx, httptest.NewRequest("POST", "/faculties/2/delete", nil), audit.ResourceFaculty, "2", nil)
	if logs.Len() != 0 {
		t.Errorf("expected no log entries, got %d", logs.Len())
	}
}

func TestLogger_DBMode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zl, logs := observed()
	logger := auditlog.New(store, zl, auditlog.Config{Admin: auditlog.ModeDB})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger.Deleted(ctx, httptest.NewRequest("POST", "/results/3/7/delete", nil), audit.ResourceResult, "3/7", nil)

	events, err := store.GetForTarget(ctx, audit.ResourceResult, "3/7", 10)
	if err != nil {
		t.Fatalf("GetForTarget failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(events))
	}
	if events[0].EventType != audit.EventResultDeleted {
		t.Errorf("event_type = %q", events[0].EventType)
	}
	if logs.FilterMessage("audit event").Len() != 0 {
		t.Error("db mode must not write audit entries to zap")
	}
}

func TestValidMode(t *testing.T) {
	for _, m := range []string{"all", "db", "log", "off"} {
		if !auditlog.ValidMode(m) {
			t.Errorf("ValidMode(%q) = false", m)
		}
	}
	if auditlog.ValidMode("verbose") {
		t.Error("ValidMode(verbose) = true")
	}
}
