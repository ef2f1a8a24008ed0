package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports liveness plus the state of the two backing stores. It sits
// outside the authenticated /api group.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
		}
		if rdb == nil || rdb.Ping(c.Request.Context()).Err() != nil {
			checks["redis"] = "down"
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
	}
}
