package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-cleanup/internal/audit"
	"github.com/BruksfildServices01/barber-cleanup/internal/cleanup"
	"github.com/BruksfildServices01/barber-cleanup/internal/config"
	"github.com/BruksfildServices01/barber-cleanup/internal/dedup"
	"github.com/BruksfildServices01/barber-cleanup/internal/handlers"
	"github.com/BruksfildServices01/barber-cleanup/internal/middleware"
	"github.com/BruksfildServices01/barber-cleanup/internal/store"
)

func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config, log *slog.Logger) {

	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cleaner := cleanup.New(st, log, auditDispatcher)
	guard := dedup.New(cfg.RedisAddr, log)

	cleanupHandler := handlers.NewCleanupHandler(cleaner, guard, log)

	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware(cfg))
	{
		events.POST("/user-deleted", cleanupHandler.HandleUserDeleted)
	}
}
