package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"legalbrief-backend/models"
	"legalbrief-backend/repository"
	"legalbrief-backend/templates"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound = templates.ErrTemplateNotFound
	ErrCaseNotFound     = errors.New("case not found")
)

// CaseSource loads a read-only snapshot of a case and its supporting data
type CaseSource interface {
	GetCaseData(ctx context.Context, caseID uuid.UUID) (*models.CaseData, error)
}

// NarrativeAnalyzer is the text-analysis collaborator consulted for narrative content
type NarrativeAnalyzer interface {
	AnalyzeCase(ctx context.Context, data *models.CaseData) (string, error)
}

// BriefService loads case data and runs the brief assembler
type BriefService struct {
	cases     CaseSource
	assembler *BriefAssembler
	analyzer  NarrativeAnalyzer
}

// BriefServiceOption is a functional option for BriefService
type BriefServiceOption func(*BriefService)

// BriefWithCaseSource sets the case data source
func BriefWithCaseSource(cases CaseSource) BriefServiceOption {
	return func(s *BriefService) {
		s.cases = cases
	}
}

// BriefWithAssembler sets the brief assembler
func BriefWithAssembler(assembler *BriefAssembler) BriefServiceOption {
	return func(s *BriefService) {
		s.assembler = assembler
	}
}

// BriefWithAnalyzer sets the narrative analyzer. Without one, analysis is skipped.
func BriefWithAnalyzer(analyzer NarrativeAnalyzer) BriefServiceOption {
	return func(s *BriefService) {
		s.analyzer = analyzer
	}
}

// NewBriefService creates a new brief service
func NewBriefService(opts ...BriefServiceOption) *BriefService {
	s := &BriefService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateBriefRequest represents a request to generate a brief
type GenerateBriefRequest struct {
	CaseID  uuid.UUID
	Options models.GenerationOptions
}

// GenerateBriefResult represents a generated brief
type GenerateBriefResult struct {
	Document *models.GeneratedDocument
	Case     models.CaseRecord
}

// GenerateBrief validates the template, loads the case and assembles the brief
func (s *BriefService) GenerateBrief(ctx context.Context, req GenerateBriefRequest) (*GenerateBriefResult, error) {
	if s.assembler == nil {
		return nil, errors.New("brief assembler not set")
	}
	if s.cases == nil {
		return nil, errors.New("case source not set")
	}

	// Fail fast on an unknown template before touching case data
	if _, err := s.assembler.Registry().GetTemplate(req.Options.TemplateID); err != nil {
		return nil, err
	}

	data, err := s.cases.GetCaseData(ctx, req.CaseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to load case data: %w", err)
	}

	opts := req.Options
	opts.CaseID = req.CaseID

	if opts.IncludeAnalysis && s.analyzer != nil {
		analysis, err := s.analyzer.AnalyzeCase(ctx, data)
		if err != nil {
			log.Printf("Warning: Narrative analysis failed for case %s: %v. Continuing without analysis.", req.CaseID, err)
		} else {
			data.Analysis = analysis
		}
	}

	doc, err := s.assembler.Generate(opts, *data)
	if err != nil {
		return nil, err
	}

	return &GenerateBriefResult{
		Document: doc,
		Case:     data.Case,
	}, nil
}

// ListTemplates returns the whole template catalog
func (s *BriefService) ListTemplates() []models.Template {
	return s.assembler.Registry().ListTemplates()
}

// GetTemplate returns one template or ErrTemplateNotFound
func (s *BriefService) GetTemplate(id string) (models.Template, error) {
	return s.assembler.Registry().GetTemplate(id)
}

// TemplatesForCaseType returns templates valid for the case type
func (s *BriefService) TemplatesForCaseType(caseType models.CaseType) []models.Template {
	return s.assembler.Registry().TemplatesForCaseType(caseType)
}
