package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler reports process liveness with a small system snapshot.
func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":         "ok",
		"time":           time.Now().UTC().Format(time.RFC3339),
		"uptime_seconds": int64(time.Since(startTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
