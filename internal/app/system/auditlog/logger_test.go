package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"github.com/dalemusser/mentorhub/internal/app/system/auditlog"
	"github.com/dalemusser/mentorhub/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("POST", "/schedule/generate", nil)

	// These should all be no-ops, not panic
	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.ScheduleGenerated(ctx, req, "run", 1, 2, 3, 4)
	logger.AdminKeyRejected(ctx, req, "missing")
}

func TestLogger_LogOnly_NoStore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := auditlog.New(nil, zap.New(core), auditlog.Config{Roster: "log", Schedule: "off"})
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("POST", "/roster/students", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.9")

	logger.RosterUploaded(ctx, req, "students", 42)
	logger.ScheduleRejected(ctx, req, "no mentors uploaded")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["event_type"] != audit.EventStudentsUploaded {
		t.Errorf("event_type = %v", fields["event_type"])
	}
	if fields["ip"] != "10.0.0.9" {
		t.Errorf("ip = %v, want 10.0.0.9", fields["ip"])
	}
	if fields["detail_count"] != "42" {
		t.Errorf("detail_count = %v, want 42", fields["detail_count"])
	}
}

func TestLogger_Log_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Roster: "off", Schedule: "off"})
	req := httptest.NewRequest("POST", "/", nil)
	logger.RosterUploaded(ctx, req, "mentors", 3)
	logger.ScheduleGenerated(ctx, req, "run-1", 1, 10, 2, 0)

	n, err := store.CountByFilter(ctx, audit.QueryFilter{})
	if err != nil {
		t.Fatalf("CountByFilter failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no events when config is 'off', got %d", n)
	}
}

func TestLogger_Log_ConfigDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Roster: "db", Schedule: "db"})
	req := httptest.NewRequest("POST", "/", nil)
	logger.ScheduleGenerated(ctx, req, "run-7", 99, 10, 2, 1)

	events, err := store.Query(ctx, audit.QueryFilter{RunID: "run-7"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Details["seed"] != "99" {
		t.Errorf("seed detail = %q, want 99", events[0].Details["seed"])
	}
}

func TestLogger_SecurityAlwaysLogged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Roster: "off", Schedule: "off"})
	logger.AdminKeyRejected(ctx, httptest.NewRequest("POST", "/schedule/generate", nil), "wrong key")

	n, err := store.CountByFilter(ctx, audit.QueryFilter{Category: audit.CategorySecurity})
	if err != nil {
		t.Fatalf("CountByFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("security events = %d, want 1", n)
	}
}
