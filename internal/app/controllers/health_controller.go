package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/middleware"
)

// HealthController reports server and database health.
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new health controller.
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Health pings the database and reports the result as JSON or as the
// health page.
func (ctl *HealthController) Health(c *gin.Context) {
	now := time.Now().Format(time.RFC3339)
	pingErr := ctl.db.Ping(c)

	if middleware.WantsJSON(c) {
		if pingErr != nil {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Database connection failed", pingErr.Error()))
			return
		}
		c.JSON(http.StatusOK, dto.NewDataResponse("Server is healthy", gin.H{
			"status":    "ok",
			"database":  "connected",
			"timestamp": now,
		}))
		return
	}

	data := gin.H{
		"Title":     "Health Check",
		"Active":    "",
		"Healthy":   pingErr == nil,
		"Timestamp": now,
	}
	status := http.StatusOK
	if pingErr != nil {
		data["Error"] = pingErr.Error()
		status = http.StatusInternalServerError
	}
	c.HTML(status, "health.tmpl", data)
}
