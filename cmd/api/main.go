package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-calendar/internal/cache"
	"github.com/BruksfildServices01/salon-calendar/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-calendar/internal/db"
	"github.com/BruksfildServices01/salon-calendar/internal/logger"
	"github.com/BruksfildServices01/salon-calendar/internal/metrics"
	"github.com/BruksfildServices01/salon-calendar/internal/routes"
	"github.com/BruksfildServices01/salon-calendar/internal/validators"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validators.RegisterGin(); err != nil {
		zl.Fatal("failed to register validators", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		zl.Warn("layout cache disabled", zap.Error(err))
	}
	layoutCache := cache.NewLayoutCache(redisClient, cfg.Redis.TTL)
	defer func() { _ = layoutCache.Close() }()

	m := metrics.New()

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	routes.RegisterRoutes(r, db, cfg, zl, m, layoutCache)

	zl.Info("server running", zap.String("addr", cfg.Addr()), zap.Bool("layout_cache", redisClient != nil))
	if err := r.Run(cfg.Addr()); err != nil {
		zl.Fatal("failed to start server", zap.Error(err))
	}
}
