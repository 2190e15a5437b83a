package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-calendar/internal/cache"
	"github.com/BruksfildServices01/salon-calendar/internal/config"
	"github.com/BruksfildServices01/salon-calendar/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-calendar/internal/infra/repository"
	"github.com/BruksfildServices01/salon-calendar/internal/logger"
	"github.com/BruksfildServices01/salon-calendar/internal/metrics"
	"github.com/BruksfildServices01/salon-calendar/internal/middleware"
	ucCalendar "github.com/BruksfildServices01/salon-calendar/internal/usecase/calendar"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	layoutCache *cache.LayoutCache,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		middleware.Metrics(m),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	calendarRepo := infraRepo.NewCalendarGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	getLayoutUC := ucCalendar.NewGetCalendarLayout(
		calendarRepo,
		layoutCache,
		m,
		log,
		cfg.Calendar,
	)

	getBoundsUC := ucCalendar.NewGetWorkingBounds(
		calendarRepo,
		cfg.Calendar,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	calendarHandler := handlers.NewCalendarHandler(
		getLayoutUC,
		getBoundsUC,
		log,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/calendar", calendarHandler.Layout)
			secured.GET("/me/calendar/bounds", calendarHandler.Bounds)
		}
	}
}
