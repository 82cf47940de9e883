package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"legalbrief-backend/export"
	"legalbrief-backend/models"
	"legalbrief-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BriefHandler handles HTTP requests for brief generation and export
type BriefHandler struct {
	briefService  *service.BriefService
	exportService *service.ExportService
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(briefService *service.BriefService, exportService *service.ExportService) *BriefHandler {
	return &BriefHandler{
		briefService:  briefService,
		exportService: exportService,
	}
}

// GenerateBriefRequest represents the request body for generating a brief
type GenerateBriefRequest struct {
	TemplateID         string              `json:"template_id" binding:"required"`
	SectionOverrides   map[string]string   `json:"section_overrides"`
	SectionCitations   map[string][]string `json:"section_citations"`
	IncludeTimeline    bool                `json:"include_timeline"`
	IncludeDocuments   bool                `json:"include_documents"`
	IncludeLegalIssues bool                `json:"include_legal_issues"`
	IncludeAnalysis    bool                `json:"include_analysis"`
	ChronologyCutoff   string              `json:"chronology_cutoff"` // YYYY-MM-DD
	AttorneyName       string              `json:"attorney_name"`
	AttorneyBar        string              `json:"attorney_bar"`
	ClientName         string              `json:"client_name"`
	CourtName          string              `json:"court_name"`
	HTML               *HTMLExportOptions  `json:"html"`
}

// HTMLExportOptions represents the layout options of the HTML export
type HTMLExportOptions struct {
	IncludeHeader *bool  `json:"include_header"`
	IncludeFooter *bool  `json:"include_footer"`
	PageNumbers   *bool  `json:"page_numbers"`
	FontFamily    string `json:"font_family"`
	FontSize      string `json:"font_size"`
}

func (r *GenerateBriefRequest) generationOptions(caseID uuid.UUID) (models.GenerationOptions, error) {
	opts := models.GenerationOptions{
		TemplateID:         r.TemplateID,
		CaseID:             caseID,
		SectionOverrides:   r.SectionOverrides,
		SectionCitations:   r.SectionCitations,
		IncludeTimeline:    r.IncludeTimeline,
		IncludeDocuments:   r.IncludeDocuments,
		IncludeLegalIssues: r.IncludeLegalIssues,
		IncludeAnalysis:    r.IncludeAnalysis,
		AttorneyName:       r.AttorneyName,
		AttorneyBar:        r.AttorneyBar,
		ClientName:         r.ClientName,
		CourtName:          r.CourtName,
	}

	if r.ChronologyCutoff != "" {
		cutoff, err := time.Parse("2006-01-02", r.ChronologyCutoff)
		if err != nil {
			return opts, fmt.Errorf("chronology_cutoff must be YYYY-MM-DD: %w", err)
		}
		opts.ChronologyCutoff = &cutoff
	}

	return opts, nil
}

func (r *GenerateBriefRequest) htmlOptions() []export.HTMLOption {
	if r.HTML == nil {
		return nil
	}
	opts := make([]export.HTMLOption, 0, 5)
	if r.HTML.IncludeHeader != nil {
		opts = append(opts, export.WithHeader(*r.HTML.IncludeHeader))
	}
	if r.HTML.IncludeFooter != nil {
		opts = append(opts, export.WithFooter(*r.HTML.IncludeFooter))
	}
	if r.HTML.PageNumbers != nil {
		opts = append(opts, export.WithPageNumbers(*r.HTML.PageNumbers))
	}
	opts = append(opts, export.WithFontFamily(r.HTML.FontFamily), export.WithFontSize(r.HTML.FontSize))
	return opts
}

// bindGenerateRequest parses the case id and body shared by generate and export
func bindGenerateRequest(c *gin.Context) (uuid.UUID, *GenerateBriefRequest, models.GenerationOptions, bool) {
	caseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_ID", "Invalid case ID format")
		return uuid.Nil, nil, models.GenerationOptions{}, false
	}

	var req GenerateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return uuid.Nil, nil, models.GenerationOptions{}, false
	}

	opts, err := req.generationOptions(caseID)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return uuid.Nil, nil, models.GenerationOptions{}, false
	}

	return caseID, &req, opts, true
}

// handleGenerationError maps service errors to responses
func handleGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		errorResponse(c, http.StatusNotFound, "TEMPLATE_NOT_FOUND", "Error generating brief: Template not found")
	case errors.Is(err, service.ErrCaseNotFound):
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Case not found")
	case errors.Is(err, export.ErrUnsupportedFormat):
		errorResponse(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error())
	default:
		errorResponse(c, http.StatusInternalServerError, "GENERATION_FAILED", "Error generating brief: "+err.Error())
	}
}

// GenerateBrief handles POST /api/cases/:id/briefs
func (h *BriefHandler) GenerateBrief(c *gin.Context) {
	caseID, _, opts, ok := bindGenerateRequest(c)
	if !ok {
		return
	}

	result, err := h.briefService.GenerateBrief(c.Request.Context(), service.GenerateBriefRequest{
		CaseID:  caseID,
		Options: opts,
	})
	if err != nil {
		handleGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Document,
	})
}

// ExportBrief handles POST /api/cases/:id/briefs/export?format=text|html|word|print
func (h *BriefHandler) ExportBrief(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatText)))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error())
		return
	}

	caseID, req, opts, ok := bindGenerateRequest(c)
	if !ok {
		return
	}

	result, err := h.exportService.Export(c.Request.Context(), service.ExportRequest{
		CaseID:      caseID,
		Options:     opts,
		Format:      format,
		HTMLOptions: req.htmlOptions(),
	})
	if err != nil {
		handleGenerationError(c, err)
		return
	}

	artifact := result.Artifact
	disposition := "attachment"
	if artifact.Inline {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=\"%s\"", disposition, artifact.Filename))
	if result.Record != nil {
		c.Header("X-Export-ID", result.Record.ID.String())
	}
	c.Data(http.StatusOK, artifact.MimeType+"; charset=utf-8", artifact.Content)
}
