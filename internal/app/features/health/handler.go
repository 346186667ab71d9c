package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/mentorhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client  *mongo.Client
	Catalog catalog.Catalog
	Log     *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client, the active
// scheduling catalog and logger.
func NewHandler(client *mongo.Client, cat catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Catalog: cat,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Message  string         `json:"message,omitempty"`
	Error    string         `json:"error,omitempty"`
	Catalog  *catalogStatus `json:"catalog,omitempty"`
}

// catalogStatus summarises the session calendar the scheduler is using.
type catalogStatus struct {
	Dates  []string `json:"dates"`
	SPOCs  int      `json:"spocs"`
	Topics int      `json:"topics"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "catalog":{"dates":[...],"spocs":15,"topics":15} }
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	// Check database
	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	resp.Catalog = &catalogStatus{
		Dates:  h.Catalog.Dates,
		SPOCs:  len(h.Catalog.SPOCs),
		Topics: len(h.Catalog.Topics),
	}

	_ = json.NewEncoder(w).Encode(resp)
}
