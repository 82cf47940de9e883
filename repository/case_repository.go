package repository

import (
	"context"
	"errors"
	"fmt"

	"legalbrief-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("record not found")

// CaseRepository reads cases and their supporting data
type CaseRepository struct {
	db *pgxpool.Pool
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{db: db}
}

// GetByID retrieves a case record by ID
func (r *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CaseRecord, error) {
	record := &models.CaseRecord{}
	query := `
		SELECT id, user_id, title, case_number, description, case_type, status,
			opposing_party, court, jurisdiction, created_at, updated_at
		FROM cases
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.UserID,
		&record.Title,
		&record.CaseNumber,
		&record.Description,
		&record.CaseType,
		&record.Status,
		&record.OpposingParty,
		&record.Court,
		&record.Jurisdiction,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return record, nil
}

// ListTimelineEvents retrieves the timeline for a case in stored order
func (r *CaseRepository) ListTimelineEvents(ctx context.Context, caseID uuid.UUID) ([]models.TimelineEvent, error) {
	query := `
		SELECT id, event_date::text, title, summary, document_refs, tags
		FROM timeline_events
		WHERE case_id = $1
		ORDER BY event_date ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.TimelineEvent, 0)
	for rows.Next() {
		var event models.TimelineEvent
		err := rows.Scan(
			&event.ID,
			&event.Date,
			&event.Title,
			&event.Summary,
			&event.DocumentRefs,
			&event.Tags,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// ListDocuments retrieves the documents attached to a case
func (r *CaseRepository) ListDocuments(ctx context.Context, caseID uuid.UUID) ([]models.CaseDocument, error) {
	query := `
		SELECT id, title, document_date::text, summary, tags
		FROM case_documents
		WHERE case_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]models.CaseDocument, 0)
	for rows.Next() {
		var document models.CaseDocument
		err := rows.Scan(
			&document.ID,
			&document.Title,
			&document.Date,
			&document.Summary,
			&document.Tags,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	return documents, rows.Err()
}

// ListLegalIssues retrieves the legal issues identified for a case
func (r *CaseRepository) ListLegalIssues(ctx context.Context, caseID uuid.UUID) ([]models.LegalIssue, error) {
	query := `
		SELECT id, title, description, priority, category
		FROM legal_issues
		WHERE case_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	issues := make([]models.LegalIssue, 0)
	for rows.Next() {
		var issue models.LegalIssue
		err := rows.Scan(
			&issue.ID,
			&issue.Title,
			&issue.Description,
			&issue.Priority,
			&issue.Category,
		)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}

	return issues, rows.Err()
}

// GetCaseData loads the case and all of its supporting lists as one snapshot
func (r *CaseRepository) GetCaseData(ctx context.Context, caseID uuid.UUID) (*models.CaseData, error) {
	record, err := r.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	timeline, err := r.ListTimelineEvents(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline: %w", err)
	}

	documents, err := r.ListDocuments(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	issues, err := r.ListLegalIssues(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load legal issues: %w", err)
	}

	return &models.CaseData{
		Case:        *record,
		Timeline:    timeline,
		Documents:   documents,
		LegalIssues: issues,
	}, nil
}
