package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerationOptions carries the caller's choices for one brief generation
type GenerationOptions struct {
	TemplateID string    `json:"template_id"`
	CaseID     uuid.UUID `json:"case_id"`

	// SectionOverrides maps a section heading to replacement content
	SectionOverrides map[string]string `json:"section_overrides,omitempty"`

	// SectionCitations maps a section heading to extra citations appended
	// after the template's own authorities
	SectionCitations map[string][]string `json:"section_citations,omitempty"`

	IncludeTimeline    bool `json:"include_timeline"`
	IncludeDocuments   bool `json:"include_documents"`
	IncludeLegalIssues bool `json:"include_legal_issues"`
	IncludeAnalysis    bool `json:"include_analysis"`

	// ChronologyCutoff drops timeline events dated before it. Nil falls back
	// to the assembler's configured default.
	ChronologyCutoff *time.Time `json:"chronology_cutoff,omitempty"`

	AttorneyName string `json:"attorney_name"`
	AttorneyBar  string `json:"attorney_bar"`
	ClientName   string `json:"client_name"`
	CourtName    string `json:"court_name"`
}

// GeneratedSection is one rendered section of a brief
type GeneratedSection struct {
	Heading   string   `json:"heading"`
	Content   string   `json:"content"`
	Citations []string `json:"citations,omitempty"`
}

// TOCEntry is a table of contents line. Page is a display approximation.
type TOCEntry struct {
	Section string `json:"section"`
	Page    int    `json:"page"`
}

// GeneratedDocument is the format-independent result of brief assembly.
// It is produced once and only read afterwards.
type GeneratedDocument struct {
	Title           string             `json:"title"`
	Sections        []GeneratedSection `json:"sections"`
	TableOfContents []TOCEntry         `json:"table_of_contents"`
	SignatureBlock  string             `json:"signature_block"`
	WordCount       int                `json:"word_count"`
	GeneratedAt     time.Time          `json:"generated_at"`
}

// AssembledText renders the document as one plain body: title, each section
// as an upper-cased heading line followed by its content, then the signature
// block. Word counts are taken over this text.
func (d *GeneratedDocument) AssembledText() string {
	var builder strings.Builder

	builder.WriteString(d.Title)
	builder.WriteString("\n\n")
	for _, section := range d.Sections {
		builder.WriteString(strings.ToUpper(section.Heading))
		builder.WriteString("\n\n")
		if section.Content != "" {
			builder.WriteString(section.Content)
			builder.WriteString("\n\n")
		}
	}
	builder.WriteString(d.SignatureBlock)

	return strings.TrimSpace(builder.String())
}

// CountWords counts whitespace-delimited tokens
func CountWords(text string) int {
	return len(strings.Fields(text))
}
