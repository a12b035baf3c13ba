// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/system/alerts"
	"github.com/dalemusser/eduadmin/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EduAdmin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_url, session_name, etc.
//   - Environment variables: EDUADMIN_BACKEND_URL, EDUADMIN_SESSION_NAME, etc.
//   - Command-line flags: --backend_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_url", Default: "http://localhost:8080", Desc: "Base URL of the REST backend"},
	{Name: "backend_timeout", Default: "10s", Desc: "Timeout for a single backend request (e.g., 5s, 1m)"},

	{Name: "session_key", Default: "", Desc: "Flash cookie signing key (random per process when blank outside prod)"},
	{Name: "session_name", Default: alerts.DefaultSessionName, Desc: "Flash cookie name"},

	{Name: "mongo_uri", Default: "", Desc: "MongoDB URI for the audit trail (blank disables audit storage)"},
	{Name: "mongo_database", Default: "eduadmin", Desc: "MongoDB database name"},

	{Name: "audit_log_admin", Default: auditlog.ModeLog, Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// Precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "EDUADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendURL:     strings.TrimSpace(appValues.String("backend_url")),
		BackendTimeout: appValues.Duration("backend_timeout", backend.DefaultTimeout),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),

		MongoURI:      strings.TrimSpace(appValues.String("mongo_uri")),
		MongoDatabase: appValues.String("mongo_database"),

		AuditLogAdmin: strings.ToLower(strings.TrimSpace(appValues.String("audit_log_admin"))),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// It rejects a backend URL that is not absolute http(s), an unknown audit
// mode, and an audit mode that needs MongoDB when no mongo_uri is set.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateBackendURL(appCfg.BackendURL); err != nil {
		logger.Error("invalid backend URL", zap.String("backend_url", appCfg.BackendURL), zap.Error(err))
		return err
	}
	if appCfg.BackendTimeout <= 0 {
		return fmt.Errorf("backend_timeout must be positive, got %s", appCfg.BackendTimeout)
	}

	if !auditlog.ValidMode(appCfg.AuditLogAdmin) {
		return fmt.Errorf("audit_log_admin must be one of all, db, log, off; got %q", appCfg.AuditLogAdmin)
	}
	needsDB := appCfg.AuditLogAdmin == auditlog.ModeAll || appCfg.AuditLogAdmin == auditlog.ModeDB
	if needsDB && appCfg.MongoURI == "" {
		logger.Warn("audit_log_admin wants MongoDB but mongo_uri is blank; audit events go to the log only",
			zap.String("audit_log_admin", appCfg.AuditLogAdmin))
	}

	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == "" {
		return fmt.Errorf("session_key is required in prod")
	}
	return nil
}

func validateBackendURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid backend_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend_url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("backend_url %q has no host", raw)
	}
	return nil
}
