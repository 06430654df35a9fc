package api

import (
	"gbd-extract/internal/api/handler"
	"gbd-extract/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router, h *handler.ExtractionHandler) {
	r.POST("/api/v1/extractions", h.CreateExtraction)
	r.GET("/api/v1/extractions", h.ListExtractions)
	// More specific routes first
	r.GET("/api/v1/extractions/*/errors", h.GetExtractionErrors)
	r.GET("/api/v1/extractions/*/logs", h.GetExtractionLogs)
	r.GET("/api/v1/extractions/*/files", h.GetExtractionFiles)
	r.GET("/api/v1/download/*/*", h.DownloadFile)
	// Generic extraction route last
	r.GET("/api/v1/extractions/*", h.GetExtraction)

	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
