package http

import (
	"fluency-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("/fetch-all-reports", h.FetchAllReports)
	r.POST("/upload-details", h.UploadDetails)
	r.POST("/upload-audio", h.UploadAudio)
	r.POST("/generate-report", h.GenerateReport)
}
