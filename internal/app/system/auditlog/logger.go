// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"github.com/dalemusser/mentorhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Config holds audit logging configuration. Each field takes one of
// "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only) or "off".
// Security events are always logged everywhere.
type Config struct {
	// Roster controls student and mentor upload events.
	Roster string
	// Schedule controls generation and edit events.
	Schedule string
}

// Logger writes audit events to MongoDB (via audit.Store) and zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.RunID != "" {
		fields = append(fields, zap.String("run_id", event.RunID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// A nil Logger is a no-op so handlers can be built without auditing.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryRoster:
		setting = l.config.Roster
	case audit.CategorySchedule:
		setting = l.config.Schedule
	default:
		setting = "all"
	}
	if setting == "" {
		setting = "all"
	}
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}
	if (setting == "all" || setting == "db") && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func base(r *http.Request, category, eventType string, success bool) audit.Event {
	return audit.Event{
		Category:  category,
		EventType: eventType,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   success,
	}
}

// --- Roster events ---

// RosterUploaded logs an accepted upload. kind is "students" or "mentors".
func (l *Logger) RosterUploaded(ctx context.Context, r *http.Request, kind string, count int) {
	typ := audit.EventStudentsUploaded
	if kind == "mentors" {
		typ = audit.EventMentorsUploaded
	}
	e := base(r, audit.CategoryRoster, typ, true)
	e.Details = map[string]string{"count": strconv.Itoa(count)}
	l.Log(ctx, e)
}

// RosterRejected logs an upload refused for bad rows or limits.
func (l *Logger) RosterRejected(ctx context.Context, r *http.Request, kind, reason string, badRows int) {
	typ := audit.EventStudentsUploadRejected
	if kind == "mentors" {
		typ = audit.EventMentorsUploadRejected
	}
	e := base(r, audit.CategoryRoster, typ, false)
	e.FailureReason = reason
	e.Details = map[string]string{"bad_rows": strconv.Itoa(badRows)}
	l.Log(ctx, e)
}

// --- Schedule events ---

// ScheduleGenerated logs a completed run.
func (l *Logger) ScheduleGenerated(ctx context.Context, r *http.Request, runID string, seed int64, piCount, groups, shortfall int) {
	e := base(r, audit.CategorySchedule, audit.EventScheduleGenerated, true)
	e.RunID = runID
	e.Details = map[string]string{
		"seed":      strconv.FormatInt(seed, 10),
		"pi_count":  strconv.Itoa(piCount),
		"gd_groups": strconv.Itoa(groups),
		"shortfall": strconv.Itoa(shortfall),
	}
	l.Log(ctx, e)
}

// ScheduleRejected logs a generation refused before it started.
func (l *Logger) ScheduleRejected(ctx context.Context, r *http.Request, reason string) {
	e := base(r, audit.CategorySchedule, audit.EventScheduleGenerateRejected, false)
	e.FailureReason = reason
	l.Log(ctx, e)
}

// LinkUpdated logs a session link edit.
func (l *Logger) LinkUpdated(ctx context.Context, r *http.Request, runID, assignmentID string, cleared bool) {
	e := base(r, audit.CategorySchedule, audit.EventLinkUpdated, true)
	e.RunID = runID
	e.Details = map[string]string{"assignment_id": assignmentID, "cleared": boolToString(cleared)}
	l.Log(ctx, e)
}

// AttendanceUpdated logs a GD member status change.
func (l *Logger) AttendanceUpdated(ctx context.Context, r *http.Request, runID, groupID, studentID, status string) {
	e := base(r, audit.CategorySchedule, audit.EventAttendanceUpdated, true)
	e.RunID = runID
	e.Details = map[string]string{"group_id": groupID, "student_id": studentID, "status": status}
	l.Log(ctx, e)
}

// --- Security events ---

// AdminKeyRejected logs a request carrying a missing or wrong admin key.
func (l *Logger) AdminKeyRejected(ctx context.Context, r *http.Request, reason string) {
	e := base(r, audit.CategorySecurity, audit.EventAdminKeyRejected, false)
	e.FailureReason = reason
	e.Details = map[string]string{"path": r.URL.Path}
	l.Log(ctx, e)
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
