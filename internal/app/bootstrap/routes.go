// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	auditlogfeature "github.com/dalemusser/eduadmin/internal/app/features/auditlog"
	cohortsfeature "github.com/dalemusser/eduadmin/internal/app/features/cohorts"
	coursesfeature "github.com/dalemusser/eduadmin/internal/app/features/courses"
	errorsfeature "github.com/dalemusser/eduadmin/internal/app/features/errors"
	facultiesfeature "github.com/dalemusser/eduadmin/internal/app/features/faculties"
	healthfeature "github.com/dalemusser/eduadmin/internal/app/features/health"
	homefeature "github.com/dalemusser/eduadmin/internal/app/features/home"
	resultsfeature "github.com/dalemusser/eduadmin/internal/app/features/results"
	studentsfeature "github.com/dalemusser/eduadmin/internal/app/features/students"
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"github.com/dalemusser/eduadmin/internal/app/system/alerts"
	"github.com/dalemusser/eduadmin/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// It boots the template engine, builds the backend client shared by every
// feature, and mounts one feature router per resource.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	api, err := backend.New(backend.Config{
		BaseURL: appCfg.BackendURL,
		Timeout: appCfg.BackendTimeout,
	}, logger)
	if err != nil {
		logger.Error("backend client init failed", zap.Error(err))
		return nil, err
	}

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	flash, err := alerts.NewFlash(appCfg.SessionKey, appCfg.SessionName, secure, logger)
	if err != nil {
		logger.Error("flash store init failed", zap.Error(err))
		return nil, err
	}

	var auditStore *audit.Store
	if deps.MongoDatabase != nil {
		auditStore = audit.New(deps.MongoDatabase)
	}
	auditLog := auditlog.New(auditStore, logger, auditlog.Config{Admin: appCfg.AuditLogAdmin})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(api, deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	studentsHandler := studentsfeature.NewHandler(api, auditLog, flash, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler))

	cohortsHandler := cohortsfeature.NewHandler(api, auditLog, flash, logger)
	r.Mount("/cohorts", cohortsfeature.Routes(cohortsHandler))

	facultiesHandler := facultiesfeature.NewHandler(api, auditLog, flash, logger)
	r.Mount("/faculties", facultiesfeature.Routes(facultiesHandler))

	coursesHandler := coursesfeature.NewHandler(api, auditLog, flash, logger)
	r.Mount("/courses", coursesfeature.Routes(coursesHandler))

	resultsHandler := resultsfeature.NewHandler(api, auditLog, flash, logger)
	r.Mount("/results", resultsfeature.Routes(resultsHandler))

	auditHandler := auditlogfeature.NewHandler(auditStore, logger)
	r.Mount("/audit", auditlogfeature.Routes(auditHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	return r, nil
}
