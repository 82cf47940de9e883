package repository

import (
	"context"
	"errors"

	"legalbrief-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportRepository handles database operations for archived exports
type ExportRepository struct {
	db *pgxpool.Pool
}

// NewExportRepository creates a new export repository
func NewExportRepository(db *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{db: db}
}

// Create creates a new export record
func (r *ExportRepository) Create(ctx context.Context, record *models.ExportRecord) error {
	query := `
		INSERT INTO exports (
			id, case_id, template_id, format, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		record.ID,
		record.CaseID,
		record.TemplateID,
		record.Format,
		record.Filename,
		record.MimeType,
		record.Size,
		record.StoragePath,
	).Scan(&record.CreatedAt)
}

// GetByID retrieves an export record by ID
func (r *ExportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExportRecord, error) {
	record := &models.ExportRecord{}
	query := `
		SELECT id, case_id, template_id, format, filename, mime_type, size, storage_path, created_at
		FROM exports
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.CaseID,
		&record.TemplateID,
		&record.Format,
		&record.Filename,
		&record.MimeType,
		&record.Size,
		&record.StoragePath,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return record, nil
}

// ListByCaseID retrieves the export history of a case, newest first
func (r *ExportRepository) ListByCaseID(ctx context.Context, caseID uuid.UUID, limit int) ([]*models.ExportRecord, error) {
	query := `
		SELECT id, case_id, template_id, format, filename, mime_type, size, storage_path, created_at
		FROM exports
		WHERE case_id = $1
		ORDER BY created_at DESC`

	args := []interface{}{caseID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*models.ExportRecord, 0)
	for rows.Next() {
		record := &models.ExportRecord{}
		err := rows.Scan(
			&record.ID,
			&record.CaseID,
			&record.TemplateID,
			&record.Format,
			&record.Filename,
			&record.MimeType,
			&record.Size,
			&record.StoragePath,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
