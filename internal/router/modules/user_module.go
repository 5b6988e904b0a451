package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinybigcorp/backend/internal/container"
	handlers "github.com/tinybigcorp/backend/internal/interface/http"
	"github.com/tinybigcorp/backend/internal/interface/middleware"
)

// UserModule wires the user CRUD handlers into routes:
//
//	POST   /users              create
//	GET    /users              list (skip/limit)
//	GET    /users/:id          fetch
//	PATCH  /users/:id          update profile
//	POST   /users/:id/deactivate
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	perMin := 120
	if cfg := container.GetConfig(); cfg != nil && cfg.RateLimitPerMinute > 0 {
		perMin = cfg.RateLimitPerMinute
	}
	// Write endpoints share a per-IP limiter; private/loopback clients bypass it.
	writeLimiter := middleware.RateLimit(container.GetRedis(), perMin, time.Minute,
		middleware.KeyByIP(), middleware.AllowPrivateIP())

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.Create)
		users.GET("", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.PATCH("/:id", writeLimiter, m.Handler.Update)
		users.POST("/:id/deactivate", writeLimiter, m.Handler.Deactivate)
	}
}
