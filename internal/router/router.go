package router

import (
	"net/http"

	"github.com/michellecaii/Mood-tracker/internal/config"
	"github.com/michellecaii/Mood-tracker/internal/handler"
	"github.com/michellecaii/Mood-tracker/internal/insight"
	"github.com/michellecaii/Mood-tracker/internal/middleware"
	"github.com/michellecaii/Mood-tracker/internal/store"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine and mounts the API.
func SetupRouter(cfg *config.Config, st *store.Store, gen insight.Generator) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ====== API ======
	api := r.Group("/api")

	entryHandler := handler.NewEntryHandler(st, gen)
	api.POST("/entries", entryHandler.CreateEntry)
	api.GET("/entries", entryHandler.ListEntries)
	api.GET("/entries/:id", entryHandler.GetEntry)
	api.DELETE("/entries/:id", entryHandler.DeleteEntry)

	patternsHandler := handler.NewPatternsHandler(st, cfg.App.RecentDays, cfg.App.TopThemes)
	api.GET("/themes", patternsHandler.GetThemes)
	api.GET("/patterns", patternsHandler.GetPatterns)

	exportHandler := handler.NewExportHandler(st)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
