package handlers

import (
	"net/http"
	"time"

	"stepup-tasks/internal/config"
	"stepup-tasks/internal/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	db    *mongo.Database
	cfg   config.MongoConfig
	start time.Time
}

func NewHealthHandler(db *mongo.Database, cfg config.MongoConfig) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg, start: time.Now()}
}

// Health reports process liveness and store reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	overall := "ok"
	storeStatus := "ok"
	status := http.StatusOK

	if h.db == nil {
		overall = "degraded"
		storeStatus = "not configured"
		status = http.StatusServiceUnavailable
	} else if err := database.Ping(c.Request.Context(), h.db, h.cfg); err != nil {
		overall = "degraded"
		storeStatus = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": overall,
		"store":  storeStatus,
		"uptime": time.Since(h.start).String(),
	})
}
