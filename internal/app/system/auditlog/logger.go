// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Destinations for a category of events.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off" // disabled
)

// ValidMode reports whether s is a recognised destination setting.
func ValidMode(s string) bool {
	switch s {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for create/update/delete events.
	// Values: "all", "db", "log", "off".
	Admin string
}

// Logger provides convenience methods for logging audit events.
// It logs to MongoDB (via audit.Store) and/or structured logs (via zap).
// A nil store disables the MongoDB destination.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.String("resource", event.Resource),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.TargetID != "" {
		fields = append(fields, zap.String("target_id", event.TargetID))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
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
// A nil Logger is a no-op so handlers and tests can run without auditing.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := ModeAll
	if event.Category == audit.CategoryAdmin && l.config.Admin != "" {
		setting = l.config.Admin
	}
	if setting == ModeOff {
		return
	}

	if setting == ModeAll || setting == ModeLog {
		l.logToZap(event)
	}

	if (setting == ModeAll || setting == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// Mutation records the outcome of one create, update or delete call against
// the backend. err is the call's result; its server message becomes the
// failure reason.
func (l *Logger) Mutation(ctx context.Context, r *http.Request, resource, action, targetID string, err error, details map[string]string) {
	if l == nil {
		return
	}
	event := audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: audit.EventType(resource, action),
		Resource:  resource,
		TargetID:  targetID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		RequestID: middleware.GetReqID(r.Context()),
		Success:   err == nil,
		Details:   details,
	}
	if err != nil {
		event.FailureReason = backend.Message(err)
	}
	l.Log(ctx, event)
}

// Created logs a create call.
func (l *Logger) Created(ctx context.Context, r *http.Request, resource, targetID string, err error, details map[string]string) {
	l.Mutation(ctx, r, resource, audit.ActionCreated, targetID, err, details)
}

// Updated logs an update call.
func (l *Logger) Updated(ctx context.Context, r *http.Request, resource, targetID string, err error, details map[string]string) {
	l.Mutation(ctx, r, resource, audit.ActionUpdated, targetID, err, details)
}

// Deleted logs a delete call.
func (l *Logger) Deleted(ctx context.Context, r *http.Request, resource, targetID string, err error) {
	l.Mutation(ctx, r, resource, audit.ActionDeleted, targetID, err, nil)
}
