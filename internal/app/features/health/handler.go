package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/eduadmin/internal/app/backend"
	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	API    *backend.Client
	Client *mongo.Client // nil when audit storage is disabled
	Log    *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(api *backend.Client, client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Backend  string `json:"backend"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"reachable", "database":"connected" }
//
// "database" is "disabled" when no Mongo client is configured. If any
// checked dependency fails: 503 with "status":"error" and the first error.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Backend:  "reachable",
		Database: "disabled",
	}

	if _, err := h.API.Faculties.List(ctx); err != nil {
		h.Log.Error("health-check: backend unreachable", zap.Error(err), zap.String("backend", h.API.BaseURL()))
		resp.Status = "error"
		resp.Backend = "unreachable"
		resp.Message = "Backend unavailable"
		resp.Error = err.Error()
	}

	if h.Client != nil {
		resp.Database = "connected"
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			resp.Database = "disconnected"
			if resp.Status == "ok" {
				resp.Message = "Database unavailable"
				resp.Error = err.Error()
			}
			resp.Status = "error"
		}
	}

	if resp.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
