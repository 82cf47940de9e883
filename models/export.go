package models

import (
	"time"

	"github.com/google/uuid"
)

// ExportRecord describes an archived export artifact
type ExportRecord struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"case_id"`
	TemplateID  string    `json:"template_id"`
	Format      string    `json:"format"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
