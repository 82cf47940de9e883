package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseType tags which kind of matter a case is. Templates declare the case
// types they apply to using the same tags.
type CaseType string

const (
	CaseTypeCivilRights    CaseType = "civil_rights"
	CaseTypeCriminal       CaseType = "criminal"
	CaseTypeCivil          CaseType = "civil"
	CaseTypeEmployment     CaseType = "employment"
	CaseTypeFamily         CaseType = "family"
	CaseTypeImmigration    CaseType = "immigration"
	CaseTypePersonalInjury CaseType = "personal_injury"

	// CaseTypeAll is the wildcard tag: a template carrying it applies to every case type.
	CaseTypeAll CaseType = "all"
)

// CaseStatus represents the status of a case
type CaseStatus string

const (
	CaseStatusOpen    CaseStatus = "open"
	CaseStatusPending CaseStatus = "pending"
	CaseStatusClosed  CaseStatus = "closed"
)

// CaseRecord is the read-only case the brief engine drafts against
type CaseRecord struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Title         string     `json:"title"`
	CaseNumber    string     `json:"case_number"`
	Description   string     `json:"description"`
	CaseType      CaseType   `json:"case_type"`
	Status        CaseStatus `json:"status"`
	OpposingParty string     `json:"opposing_party"`
	Court         string     `json:"court"`
	Jurisdiction  *string    `json:"jurisdiction,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsCriminal reports whether the case is a criminal matter
func (c *CaseRecord) IsCriminal() bool {
	return c.CaseType == CaseTypeCriminal
}

// TimelineEvent is a dated event in the case chronology
type TimelineEvent struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"` // ISO date (YYYY-MM-DD or RFC 3339)
	Title        string    `json:"title"`
	Summary      *string   `json:"summary,omitempty"`
	DocumentRefs []string  `json:"document_refs,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
}

// CaseDocument is a piece of evidence or filing attached to a case
type CaseDocument struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Date    *string   `json:"date,omitempty"`
	Summary *string   `json:"summary,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
}

// Priority ranks a legal issue
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank orders priorities critical < high < medium < low. Unknown priorities
// sort after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// LegalIssue is an issue identified for the case
type LegalIssue struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category"`
}

// CaseData is a loaded, read-only snapshot of everything the brief engine
// consumes for one case.
type CaseData struct {
	Case        CaseRecord      `json:"case"`
	Timeline    []TimelineEvent `json:"timeline"`
	Documents   []CaseDocument  `json:"documents"`
	LegalIssues []LegalIssue    `json:"legal_issues"`

	// Analysis is narrative text returned by the text-analysis collaborator,
	// empty when it was not consulted.
	Analysis string `json:"analysis,omitempty"`
}
