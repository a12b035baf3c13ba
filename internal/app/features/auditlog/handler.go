// internal/app/features/auditlog/handler.go
package auditlog

import (
	"github.com/dalemusser/eduadmin/internal/app/store/audit"
	"go.uber.org/zap"
)

type Handler struct {
	Store *audit.Store // nil when audit storage is disabled
	Log   *zap.Logger
}

// NewHandler constructs an Audit Log feature handler. store may be nil.
func NewHandler(store *audit.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store: store,
		Log:   logger,
	}
}
