package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"legalbrief-backend/export"
	"legalbrief-backend/models"
	"legalbrief-backend/repository"
	"legalbrief-backend/storage"

	"github.com/google/uuid"
)

var ErrExportNotFound = errors.New("export not found")

// ExportStore persists records of archived exports
type ExportStore interface {
	Create(ctx context.Context, record *models.ExportRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error)
	ListByCaseID(ctx context.Context, caseID uuid.UUID, limit int) ([]*models.ExportRecord, error)
}

// ExportService turns generated briefs into downloadable or printable artifacts
type ExportService struct {
	briefs  *BriefService
	storage storage.Storage
	exports ExportStore
	archive bool
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithBriefService sets the brief service
func ExportWithBriefService(briefs *BriefService) ExportServiceOption {
	return func(s *ExportService) {
		s.briefs = briefs
	}
}

// ExportWithStorage sets the artifact archive
func ExportWithStorage(store storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.storage = store
	}
}

// ExportWithExportStore sets the export record store
func ExportWithExportStore(exports ExportStore) ExportServiceOption {
	return func(s *ExportService) {
		s.exports = exports
	}
}

// ExportWithArchiving archives every downloadable artifact when enabled
func ExportWithArchiving(enabled bool) ExportServiceOption {
	return func(s *ExportService) {
		s.archive = enabled
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Artifact is a serialized brief ready for delivery
type Artifact struct {
	Filename string
	MimeType string
	Inline   bool
	Content  []byte
}

// ExportRequest represents a request to export a brief
type ExportRequest struct {
	CaseID      uuid.UUID
	Options     models.GenerationOptions
	Format      export.Format
	HTMLOptions []export.HTMLOption
}

// ExportResult represents an exported brief
type ExportResult struct {
	Artifact Artifact
	Document *models.GeneratedDocument
	Record   *models.ExportRecord // nil unless archived
}

// Export generates the brief and serializes it into the requested format
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if s.briefs == nil {
		return nil, errors.New("brief service not set")
	}

	generated, err := s.briefs.GenerateBrief(ctx, GenerateBriefRequest{
		CaseID:  req.CaseID,
		Options: req.Options,
	})
	if err != nil {
		return nil, err
	}

	body, err := export.Render(generated.Document, req.Format, req.HTMLOptions...)
	if err != nil {
		return nil, err
	}

	artifact := Artifact{
		Filename: export.Filename(generated.Document.Title, generated.Case.CaseNumber, generated.Document.GeneratedAt, req.Format),
		MimeType: req.Format.MimeType(),
		Inline:   req.Format.Inline(),
		Content:  []byte(body),
	}

	result := &ExportResult{
		Artifact: artifact,
		Document: generated.Document,
	}

	if s.archive && !artifact.Inline {
		record, err := s.archiveArtifact(ctx, req, artifact)
		if err != nil {
			log.Printf("Warning: Failed to archive export for case %s: %v", req.CaseID, err)
		} else {
			result.Record = record
		}
	}

	return result, nil
}

// archiveArtifact uploads the artifact and records it
func (s *ExportService) archiveArtifact(ctx context.Context, req ExportRequest, artifact Artifact) (*models.ExportRecord, error) {
	if s.storage == nil || s.exports == nil {
		return nil, errors.New("export archive not configured")
	}

	exportID := uuid.New()
	storagePath, err := s.storage.Upload(ctx, exportID, artifact.Filename, bytes.NewReader(artifact.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to upload artifact: %w", err)
	}

	record := &models.ExportRecord{
		ID:          exportID,
		CaseID:      req.CaseID,
		TemplateID:  req.Options.TemplateID,
		Format:      string(req.Format),
		Filename:    artifact.Filename,
		MimeType:    artifact.MimeType,
		Size:        int64(len(artifact.Content)),
		StoragePath: storagePath,
	}

	if err := s.exports.Create(ctx, record); err != nil {
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			log.Printf("Warning: Failed to clean up artifact %s: %v", storagePath, delErr)
		}
		return nil, fmt.Errorf("failed to save export record: %w", err)
	}

	return record, nil
}

// OpenArchivedExport returns an archived export record and a reader over its content
func (s *ExportService) OpenArchivedExport(ctx context.Context, id uuid.UUID) (*models.ExportRecord, io.ReadCloser, error) {
	if s.storage == nil || s.exports == nil {
		return nil, nil, errors.New("export archive not configured")
	}

	record, err := s.exports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrExportNotFound
		}
		return nil, nil, err
	}

	reader, err := s.storage.Download(ctx, record.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrArtifactNotFound) {
			return nil, nil, ErrExportNotFound
		}
		return nil, nil, err
	}

	return record, reader, nil
}

// ListExports returns the archived exports of a case, newest first
func (s *ExportService) ListExports(ctx context.Context, caseID uuid.UUID, limit int) ([]*models.ExportRecord, error) {
	if s.exports == nil {
		return nil, errors.New("export archive not configured")
	}
	return s.exports.ListByCaseID(ctx, caseID, limit)
}
