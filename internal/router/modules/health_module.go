package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinybigcorp/backend/internal/container"
	"github.com/tinybigcorp/backend/pkg/response"
)

// HealthModule exposes GET /healthz with app identity and a database
// ping, rate-limited per IP.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		cfg := container.GetConfig()

		dbStatus := "ok"
		if pool := container.GetPGPool(); pool != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				dbStatus = "unreachable"
			}
		} else {
			dbStatus = "not configured"
		}

		body := gin.H{"database": dbStatus}
		if cfg != nil {
			body["app"] = cfg.AppName
			body["version"] = cfg.AppVersion
			body["env"] = cfg.Env
		}
		status := http.StatusOK
		if dbStatus == "unreachable" {
			status = http.StatusServiceUnavailable
			response.Error[any](c, status, "degraded", body)
			return
		}
		response.Success(c, status, body, "healthy", nil)
	})
}
