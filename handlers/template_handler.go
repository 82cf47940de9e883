package handlers

import (
	"errors"
	"net/http"

	"legalbrief-backend/models"
	"legalbrief-backend/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler serves the read-only template catalog
type TemplateHandler struct {
	briefService *service.BriefService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(briefService *service.BriefService) *TemplateHandler {
	return &TemplateHandler{briefService: briefService}
}

// ListTemplates handles GET /api/templates[?case_type=tag]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	var list []models.Template
	if caseType := c.Query("case_type"); caseType != "" {
		list = h.briefService.TemplatesForCaseType(models.CaseType(caseType))
	} else {
		list = h.briefService.ListTemplates()
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
	})
}

// GetTemplate handles GET /api/templates/:id
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tmpl, err := h.briefService.GetTemplate(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			errorResponse(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "Template not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "RETRIEVAL_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tmpl,
	})
}

// errorResponse writes the standard error envelope
func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
