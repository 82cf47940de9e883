package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"legalbrief-backend/models"
	"legalbrief-backend/templates"
)

// BriefAssembler composes a GeneratedDocument from a template, a case snapshot
// and generation options. It performs no I/O and keeps no per-call state.
type BriefAssembler struct {
	registry         *templates.Registry
	now              func() time.Time
	chronologyCutoff time.Time
}

// AssemblerOption is a functional option for BriefAssembler
type AssemblerOption func(*BriefAssembler)

// AssembleWithClock sets the time source used for the generation timestamp and signature date
func AssembleWithClock(now func() time.Time) AssemblerOption {
	return func(a *BriefAssembler) {
		a.now = now
	}
}

// AssembleWithChronologyCutoff sets the default chronology cutoff
func AssembleWithChronologyCutoff(cutoff time.Time) AssemblerOption {
	return func(a *BriefAssembler) {
		a.chronologyCutoff = cutoff
	}
}

// NewBriefAssembler creates an assembler over the given registry
func NewBriefAssembler(registry *templates.Registry, opts ...AssemblerOption) *BriefAssembler {
	a := &BriefAssembler{
		registry: registry,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry returns the template catalog the assembler draws from
func (a *BriefAssembler) Registry() *templates.Registry {
	return a.registry
}

// Generate assembles a brief. It fails with templates.ErrTemplateNotFound
// before processing any section when the template id is unknown.
func (a *BriefAssembler) Generate(opts models.GenerationOptions, data models.CaseData) (*models.GeneratedDocument, error) {
	tmpl, err := a.registry.GetTemplate(opts.TemplateID)
	if err != nil {
		return nil, err
	}

	now := a.now()
	input := ResolveInput{
		Options:          &opts,
		Data:             &data,
		ChronologyCutoff: a.chronologyCutoff,
	}
	if opts.ChronologyCutoff != nil {
		input.ChronologyCutoff = *opts.ChronologyCutoff
	}

	doc := &models.GeneratedDocument{
		Title:           documentTitle(tmpl, data.Case),
		Sections:        make([]models.GeneratedSection, 0, len(tmpl.Sections)),
		TableOfContents: make([]models.TOCEntry, 0, len(tmpl.Sections)),
		GeneratedAt:     now,
	}

	for i, def := range tmpl.OrderedSections() {
		content := ResolveSection(def, input)

		if IsInjectionPoint(def.Heading) {
			blocks := []string{strings.TrimSpace(content)}
			if opts.IncludeDocuments {
				blocks = append(blocks, documentReferencesBlock(data.Documents))
			}
			if opts.IncludeLegalIssues {
				blocks = append(blocks, legalIssuesBlock(data.LegalIssues))
			}
			content = joinBlocks(blocks...)
		}

		doc.Sections = append(doc.Sections, models.GeneratedSection{
			Heading:   def.Heading,
			Content:   strings.TrimSpace(content),
			Citations: sectionCitations(def, opts),
		})
		doc.TableOfContents = append(doc.TableOfContents, models.TOCEntry{
			Section: def.Heading,
			Page:    i + 1,
		})
	}

	doc.SignatureBlock = signatureBlock(opts, data.Case.CaseType, now)
	doc.WordCount = models.CountWords(doc.AssembledText())

	return doc, nil
}

func documentTitle(tmpl models.Template, record models.CaseRecord) string {
	if strings.TrimSpace(record.Title) == "" {
		return tmpl.Name
	}
	return fmt.Sprintf("%s - %s", tmpl.Name, strings.TrimSpace(record.Title))
}

func sectionCitations(def models.SectionDefinition, opts models.GenerationOptions) []string {
	extra := opts.SectionCitations[def.Heading]
	if len(def.Citations) == 0 && len(extra) == 0 {
		return nil
	}
	citations := make([]string, 0, len(def.Citations)+len(extra))
	citations = append(citations, def.Citations...)
	citations = append(citations, extra...)
	return citations
}

// documentReferencesBlock lists case documents, one numbered line each
func documentReferencesBlock(documents []models.CaseDocument) string {
	if len(documents) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("SUPPORTING DOCUMENTS\n")
	for i, document := range documents {
		builder.WriteString(fmt.Sprintf("\n%d. %s", i+1, document.Title))
		if document.Date != nil && strings.TrimSpace(*document.Date) != "" {
			builder.WriteString(fmt.Sprintf(" (%s)", formatISODate(*document.Date)))
		}
		if document.Summary != nil && strings.TrimSpace(*document.Summary) != "" {
			builder.WriteString(" - ")
			builder.WriteString(strings.TrimSpace(*document.Summary))
		}
	}
	return builder.String()
}

// legalIssuesBlock lists issues from critical to low; equal priorities keep input order
func legalIssuesBlock(issues []models.LegalIssue) string {
	if len(issues) == 0 {
		return ""
	}

	sorted := SortIssuesByPriority(issues)

	var builder strings.Builder
	builder.WriteString("LEGAL ISSUES\n")
	for i, issue := range sorted {
		builder.WriteString(fmt.Sprintf("\n%d. %s (%s)", i+1, issue.Title, strings.ToUpper(string(issue.Priority))))
		if issue.Category != "" {
			builder.WriteString("\n   Category: ")
			builder.WriteString(issue.Category)
		}
		if strings.TrimSpace(issue.Description) != "" {
			builder.WriteString("\n   ")
			builder.WriteString(strings.TrimSpace(issue.Description))
		}
	}
	return builder.String()
}

// SortIssuesByPriority returns a copy of issues stably ordered critical, high, medium, low
func SortIssuesByPriority(issues []models.LegalIssue) []models.LegalIssue {
	sorted := make([]models.LegalIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}

func signatureBlock(opts models.GenerationOptions, caseType models.CaseType, now time.Time) string {
	attorney := firstNonEmpty(opts.AttorneyName, placeholderAttorney)

	lines := []string{
		"Respectfully submitted,",
		"",
		"/s/ " + attorney,
		attorney,
	}
	if bar := strings.TrimSpace(opts.AttorneyBar); bar != "" {
		lines = append(lines, "Bar No. "+bar)
	}
	lines = append(lines,
		"Attorney for "+ClientRole(caseType),
		"",
		"Date: "+now.Format(displayDateLayout),
	)
	return strings.Join(lines, "\n")
}

// joinBlocks joins the non-empty blocks with a blank line
func joinBlocks(blocks ...string) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			parts = append(parts, block)
		}
	}
	return strings.Join(parts, "\n\n")
}
