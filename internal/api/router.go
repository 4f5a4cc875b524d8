package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eva-analytics/docs"
	"eva-analytics/internal/api/handler"
	"eva-analytics/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	r.GET("/api/v1/health", handler.Health)
	r.GET("/api/v1/options", handler.GetOptions)
	r.GET("/api/v1/dashboard", handler.GetDashboard)
	r.GET("/api/v1/records", handler.GetRecords)
	r.GET("/api/v1/snapshots", handler.ListSnapshots)
	r.POST("/api/v1/exports", handler.CreateExport)
	r.GET("/api/v1/exports", handler.ListExports)
	r.GET("/api/v1/exports/*", handler.GetExportInfo)
	r.GET("/api/v1/download/*", handler.DownloadFile)
	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		httpSwagger.WrapHandler(w, req)
	})
}
