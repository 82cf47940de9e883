package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API on the router
func RegisterRoutes(r *gin.Engine, templates *TemplateHandler, briefs *BriefHandler, exports *ExportHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		// Template catalog
		api.GET("/templates", templates.ListTemplates)
		api.GET("/templates/:id", templates.GetTemplate)

		// Brief generation and export
		api.POST("/cases/:id/briefs", briefs.GenerateBrief)
		api.POST("/cases/:id/briefs/export", briefs.ExportBrief)

		// Archived exports
		api.GET("/cases/:id/exports", exports.ListCaseExports)
		api.GET("/exports/:id", exports.GetExport)
	}
}
