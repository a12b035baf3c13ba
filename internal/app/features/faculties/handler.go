// internal/app/features/faculties/handler.go
package faculties

import (
	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/system/alerts"
	"github.com/dalemusser/eduadmin/internal/app/system/auditlog"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Faculties.
type Handler struct {
	API   *backend.Client
	Audit *auditlog.Logger
	Flash *alerts.Flash
	Log   *zap.Logger
}

// NewHandler constructs a Faculties handler. audit and flash may be nil.
func NewHandler(api *backend.Client, audit *auditlog.Logger, flash *alerts.Flash, logger *zap.Logger) *Handler {
	return &Handler{
		API:   api,
		Audit: audit,
		Flash: flash,
		Log:   logger,
	}
}
