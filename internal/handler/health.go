package handler

import (
	"net/http"
	"time"

	"github.com/javimartin54-cpu/arbitraje-inteligente/pkg/response"
)

// StartTime tracks when the server started for uptime calculation
var StartTime = time.Now()

// Handler contains shared HTTP handlers.
type Handler struct {
	appName string
	version string
}

// New creates a new handler.
func New(appName, version string) *Handler {
	return &Handler{appName: appName, version: version}
}

// RootResponse is the service banner at GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, RootResponse{
		Message: "Arbitraje Inteligente API",
		Version: h.version,
	})
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Version       string    `json:"version"`
}

// Health handles GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		UptimeSeconds: int64(time.Since(StartTime).Seconds()),
		Version:       h.version,
	})
}
