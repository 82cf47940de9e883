package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"legalbrief-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler serves archived export artifacts
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// GetExport handles GET /api/exports/:id
func (h *ExportHandler) GetExport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid export ID format")
		return
	}

	record, reader, err := h.exportService.OpenArchivedExport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExportNotFound) {
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Export not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", fmt.Sprintf("Failed to download export: %v", err))
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, record.Size, record.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=\"%s\"", record.Filename),
	})
}

// ListCaseExports handles GET /api/cases/:id/exports
func (h *ExportHandler) ListCaseExports(c *gin.Context) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid case ID format")
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.exportService.ListExports(c.Request.Context(), caseID, limit)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "RETRIEVAL_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
	})
}
