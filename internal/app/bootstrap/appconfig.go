// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (EDUADMIN_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers ports, TLS, logging and the other framework-level settings.
type AppConfig struct {
	// REST backend that owns students, cohorts, faculties, courses and results
	BackendURL     string        // e.g. http://localhost:8080
	BackendTimeout time.Duration // per-request bound on the backend HTTP client

	// Flash alert cookie
	SessionKey  string // signing key for the flash cookie
	SessionName string // cookie name

	// MongoDB for the audit trail. A blank URI disables audit storage.
	MongoURI      string
	MongoDatabase string

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogAdmin string
}
