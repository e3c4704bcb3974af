package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"taskboard/internal/core/auth"
	"taskboard/internal/core/config"
	"taskboard/internal/transport/http/handler"
	mdw "taskboard/internal/transport/http/middleware"
	"taskboard/internal/transport/http/response"
)

// NewAPIEngine wires middleware and mounts the three route groups. Auth
// middleware covers /api/users and /api/tasks only; register, login and
// health stay public.
func NewAPIEngine(
	l *zap.Logger,
	cfg config.HTTP,
	jwter *auth.JWTer,
	authH *handler.AuthHandler,
	taskH *handler.TaskHandler,
	userH *handler.UserHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(rate.Limit(cfg.RateRPS), cfg.RateBurst),
		mdw.ConcurrencyLimit(cfg.MaxConcurrent),
		mdw.MaxBodyBytes(cfg.MaxBodyBytes),
		mdw.Timeout(time.Duration(cfg.RequestTimeout)*time.Second),
		mdw.Recovery(l),
		corsFor(cfg.CORSOrigin),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/", handler.Welcome)

	api := r.Group("/api")
	api.GET("/health", handler.Health)

	authH.Mount(api.Group("/auth"))

	users := api.Group("/users")
	users.Use(mdw.AuthJWT(jwter))
	userH.Mount(users)

	tasks := api.Group("/tasks")
	tasks.Use(mdw.AuthJWT(jwter))
	taskH.Mount(tasks)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Route not found")
	})

	return r
}

func corsFor(origin string) gin.HandlerFunc {
	if origin == "" {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowOrigins = []string{origin}
	cc.AllowCredentials = true
	cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
	return cors.New(cc)
}
