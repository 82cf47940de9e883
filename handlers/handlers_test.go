package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"legalbrief-backend/models"
	"legalbrief-backend/repository"
	"legalbrief-backend/service"
	"legalbrief-backend/storage"
	"legalbrief-backend/templates"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCaseID = uuid.MustParse("6f1c2b1e-4d2a-4c3b-9f6e-2a1b3c4d5e6f")

type stubCaseSource struct{}

func (stubCaseSource) GetCaseData(ctx context.Context, caseID uuid.UUID) (*models.CaseData, error) {
	if caseID != testCaseID {
		return nil, repository.ErrNotFound
	}
	return &models.CaseData{
		Case: models.CaseRecord{
			ID:            testCaseID,
			Title:         "Doe v. City",
			CaseNumber:    "1:24-cv-01234",
			CaseType:      models.CaseTypeCivilRights,
			OpposingParty: "City of Example",
		},
		Timeline: []models.TimelineEvent{
			{Date: "2023-11-02", Title: "Prior complaint"},
			{Date: "2024-03-14", Title: "Plaintiff detained"},
		},
	}, nil
}

type memoryExportStore struct {
	mu      sync.Mutex
	records []*models.ExportRecord
}

func (m *memoryExportStore) Create(ctx context.Context, record *models.ExportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *record
	m.records = append(m.records, &stored)
	return nil
}

func (m *memoryExportStore) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			out := *r
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryExportStore) ListByCaseID(ctx context.Context, caseID uuid.UUID, limit int) ([]*models.ExportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.ExportRecord, 0)
	for _, r := range m.records {
		if r.CaseID == caseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assembler := service.NewBriefAssembler(templates.DefaultRegistry(),
		service.AssembleWithClock(func() time.Time {
			return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
		}))
	briefs := service.NewBriefService(
		service.BriefWithCaseSource(stubCaseSource{}),
		service.BriefWithAssembler(assembler),
	)
	exports := service.NewExportService(
		service.ExportWithBriefService(briefs),
		service.ExportWithStorage(local),
		service.ExportWithExportStore(&memoryExportStore{}),
		service.ExportWithArchiving(true),
	)

	r := gin.New()
	RegisterRoutes(r, NewTemplateHandler(briefs), NewBriefHandler(briefs, exports), NewExportHandler(exports))
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTemplates(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []models.Template `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 6)

	w = doJSON(r, http.MethodGet, "/api/templates?case_type=criminal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, tmpl := range resp.Data {
		assert.True(t, tmpl.AppliesTo(models.CaseTypeCriminal), tmpl.ID)
	}
}

func TestGetTemplate(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/templates/motion-to-dismiss", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Motion to Dismiss"`)

	w = doJSON(r, http.MethodGet, "/api/templates/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeError(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "TEMPLATE_NOT_FOUND", env.Error.Code)
}

func TestGenerateBrief(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/cases/"+testCaseID.String()+"/briefs", gin.H{
		"template_id":       "civil-rights-complaint",
		"include_timeline":  true,
		"chronology_cutoff": "2024-01-01",
		"attorney_name":     "A. Lawyer",
		"attorney_bar":      "12345",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool                     `json:"success"`
		Data    models.GeneratedDocument `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Sections, 6)

	facts := resp.Data.Sections[3].Content
	assert.Contains(t, facts, "1. March 14, 2024: Plaintiff detained")
	assert.NotContains(t, facts, "Prior complaint")
	assert.Contains(t, resp.Data.SignatureBlock, "Bar No. 12345")
}

func TestGenerateBrief_Errors(t *testing.T) {
	r := setupRouter(t)

	t.Run("unknown template", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cases/"+testCaseID.String()+"/briefs", gin.H{"template_id": "missing"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeError(t, w)
		assert.Equal(t, "TEMPLATE_NOT_FOUND", env.Error.Code)
		assert.Equal(t, "Error generating brief: Template not found", env.Error.Message)
	})

	t.Run("unknown case", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cases/"+uuid.New().String()+"/briefs", gin.H{"template_id": "civil-rights-complaint"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, w).Error.Code)
	})

	t.Run("invalid case id", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cases/not-a-uuid/briefs", gin.H{"template_id": "civil-rights-complaint"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, w).Error.Code)
	})

	t.Run("missing template id", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cases/"+testCaseID.String()+"/briefs", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Error.Code)
	})

	t.Run("bad cutoff", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cases/"+testCaseID.String()+"/briefs", gin.H{
			"template_id":       "civil-rights-complaint",
			"chronology_cutoff": "03/14/2024",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportBrief(t *testing.T) {
	r := setupRouter(t)
	path := "/api/cases/" + testCaseID.String() + "/briefs/export"

	t.Run("word download is archived", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, path+"?format=word", gin.H{"template_id": "civil-rights-complaint"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		assert.Equal(t, "application/msword; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t,
			`attachment; filename="1_24_cv_01234_Civil_Rights_Complaint___Doe_v__City_2026-10-19.doc"`,
			w.Header().Get("Content-Disposition"))
		exportID := w.Header().Get("X-Export-ID")
		require.NotEmpty(t, exportID)

		archived := doJSON(r, http.MethodGet, "/api/exports/"+exportID, nil)
		require.Equal(t, http.StatusOK, archived.Code)
		assert.Equal(t, w.Body.String(), archived.Body.String())

		list := doJSON(r, http.MethodGet, "/api/cases/"+testCaseID.String()+"/exports", nil)
		require.Equal(t, http.StatusOK, list.Code)
		assert.Contains(t, list.Body.String(), exportID)
	})

	t.Run("default format is text", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, path, gin.H{"template_id": "civil-rights-complaint"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "Civil Rights Complaint - Doe v. City\n"))
	})

	t.Run("print is inline", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, path+"?format=print", gin.H{"template_id": "civil-rights-complaint"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline;"))
		assert.Empty(t, w.Header().Get("X-Export-ID"))
		assert.Contains(t, w.Body.String(), "window.print()")
	})

	t.Run("html options", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, path+"?format=html", gin.H{
			"template_id": "civil-rights-complaint",
			"html":        gin.H{"include_header": false, "font_size": "14pt"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `<div class="header">`)
		assert.Contains(t, w.Body.String(), "font-size: 14pt;")
	})

	t.Run("unsupported format", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, path+"?format=pdf", gin.H{"template_id": "civil-rights-complaint"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "UNSUPPORTED_FORMAT", decodeError(t, w).Error.Code)
	})

	t.Run("unknown template", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, path+"?format=html", gin.H{"template_id": "missing"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Error generating brief: Template not found", decodeError(t, w).Error.Message)
	})
}

func TestGetExport_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/exports/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/exports/bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
