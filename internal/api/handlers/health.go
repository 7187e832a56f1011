package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"entry-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const databaseProbeTimeout = 2 * time.Second

var errDatabaseNotConfigured = errors.New("database not configured")

// Pinger reports whether a backing service is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler serves the unauthenticated probe endpoints
type HealthHandler struct {
	db      Pinger
	version string
}

// NewHealthHandler creates a new health handler. A nil db reports the database as unavailable.
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// LivenessResponse represents the liveness check response
type LivenessResponse struct {
	Alive     bool      `json:"alive"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// probe pings every dependency and returns per-service state keyed by name
func (h *HealthHandler) probe(c *gin.Context, up, down string) (map[string]string, bool) {
	err := errDatabaseNotConfigured
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), databaseProbeTimeout)
		err = h.db.PingContext(ctx)
		cancel()
	}
	if err != nil {
		logger.WithContext(c).WithError(err).Warn("Database probe failed")
		return map[string]string{"database": down + ": " + err.Error()}, false
	}
	return map[string]string{"database": up}, true
}

func probeStatus(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, ok := h.probe(c, "healthy", "error")
	status := "healthy"
	if !ok {
		status = "unhealthy"
	}
	c.JSON(probeStatus(ok), HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  services,
	})
}

// Ready reports whether the database can serve requests
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse "Application is ready"
// @Failure 503 {object} ReadinessResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ok := h.probe(c, "ready", "not ready")
	c.JSON(probeStatus(ok), ReadinessResponse{
		Ready:     ok,
		Timestamp: time.Now(),
		Services:  services,
	})
}

// Live always answers while the process can serve HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} LivenessResponse "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, LivenessResponse{Alive: true, Timestamp: time.Now()})
}
