package service

import (
	"strings"
	"testing"
	"time"

	"legalbrief-backend/export"
	"legalbrief-backend/models"
	"legalbrief-backend/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssembler(opts ...AssemblerOption) *BriefAssembler {
	opts = append([]AssemblerOption{AssembleWithClock(fixedClock)}, opts...)
	return NewBriefAssembler(templates.DefaultRegistry(), opts...)
}

func TestGenerate_CivilRightsScenario(t *testing.T) {
	a := newTestAssembler()

	doc, err := a.Generate(scenarioOptions(), doeCase())
	require.NoError(t, err)

	headings := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{
		"Caption",
		"Introduction",
		"Parties",
		"Factual Background",
		"Claims for Relief",
		"Prayer for Relief",
	}, headings)

	assert.Equal(t, "Civil Rights Complaint - Doe v. City", doc.Title)
	assert.Contains(t, doc.Sections[2].Content, "acted under color of state law")

	lines := strings.Split(doc.SignatureBlock, "\n")
	signed := -1
	for i, line := range lines {
		if line == "/s/ A. Lawyer" {
			signed = i
		}
	}
	require.NotEqual(t, -1, signed)
	assert.Contains(t, lines[signed+1:], "Bar No. 12345")
	assert.Contains(t, lines, "Attorney for Plaintiff")
	assert.Equal(t, "Date: October 19, 2026", lines[len(lines)-1])

	assert.Equal(t, fixedNow, doc.GeneratedAt)
	assert.Equal(t, []string{"42 U.S.C. § 1983", "28 U.S.C. §§ 1331, 1343"}, doc.Sections[1].Citations)
	assert.Nil(t, doc.Sections[0].Citations)
}

func TestGenerate_TableOfContents(t *testing.T) {
	a := newTestAssembler()

	doc, err := a.Generate(scenarioOptions(), doeCase())
	require.NoError(t, err)

	require.Len(t, doc.TableOfContents, len(doc.Sections))
	for i, entry := range doc.TableOfContents {
		assert.Equal(t, doc.Sections[i].Heading, entry.Section)
		assert.Equal(t, i+1, entry.Page)
	}
}

func TestGenerate_TemplateNotFound(t *testing.T) {
	a := newTestAssembler()

	opts := scenarioOptions()
	opts.TemplateID = "missing"

	doc, err := a.Generate(opts, doeCase())
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	assert.Nil(t, doc)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := newTestAssembler()
	data := doeCase()
	data.Timeline = []models.TimelineEvent{
		{Date: "2024-03-15", Title: "Released"},
		{Date: "2024-03-14", Title: "Detained"},
	}
	opts := scenarioOptions()
	opts.IncludeTimeline = true

	first, err := a.Generate(opts, data)
	require.NoError(t, err)
	second, err := a.Generate(opts, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, format := range []export.Format{export.FormatText, export.FormatHTML, export.FormatWord, export.FormatPrint} {
		one, err := export.Render(first, format)
		require.NoError(t, err)
		two, err := export.Render(second, format)
		require.NoError(t, err)
		assert.Equal(t, one, two, "format %s", format)
	}
}

func TestGenerate_WordCountMatchesAssembledText(t *testing.T) {
	a := newTestAssembler()
	data := doeCase()
	data.Case.Description = "Plaintiff was detained without cause."
	data.Timeline = []models.TimelineEvent{{Date: "2024-03-14", Title: "Detained"}}
	data.Documents = []models.CaseDocument{{Title: "Arrest report", Date: strPtr("2024-03-14")}}
	data.LegalIssues = []models.LegalIssue{{Title: "Unlawful seizure", Priority: models.PriorityCritical}}

	opts := scenarioOptions()
	opts.IncludeTimeline = true
	opts.IncludeDocuments = true
	opts.IncludeLegalIssues = true

	for _, tmpl := range a.Registry().ListTemplates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			opts.TemplateID = tmpl.ID
			doc, err := a.Generate(opts, data)
			require.NoError(t, err)
			assert.Equal(t, len(strings.Fields(doc.AssembledText())), doc.WordCount)
			assert.Positive(t, doc.WordCount)
		})
	}
}

func TestGenerate_SectionOrderMatchesTemplate(t *testing.T) {
	a := newTestAssembler()

	for _, tmpl := range a.Registry().ListTemplates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			opts := scenarioOptions()
			opts.TemplateID = tmpl.ID
			doc, err := a.Generate(opts, doeCase())
			require.NoError(t, err)

			ordered := tmpl.OrderedSections()
			require.Len(t, doc.Sections, len(ordered))
			for i := range ordered {
				assert.Equal(t, ordered[i].Heading, doc.Sections[i].Heading)
			}
		})
	}
}

func TestGenerate_InjectsSupportingBlocks(t *testing.T) {
	a := newTestAssembler()
	data := doeCase()
	data.Documents = []models.CaseDocument{
		{Title: "Arrest report", Date: strPtr("2024-03-14"), Summary: strPtr("Prepared by officers.")},
		{Title: "Booking record"},
	}
	data.LegalIssues = []models.LegalIssue{
		{Title: "Qualified immunity", Priority: models.PriorityMedium, Category: "Defenses"},
		{Title: "Unlawful seizure", Priority: models.PriorityCritical, Description: "No probable cause."},
	}

	opts := scenarioOptions()
	opts.IncludeDocuments = true
	opts.IncludeLegalIssues = true

	doc, err := a.Generate(opts, data)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 6)

	facts := doc.Sections[3]
	require.Equal(t, "Factual Background", facts.Heading)
	assert.Contains(t, facts.Content, "SUPPORTING DOCUMENTS\n\n1. Arrest report (March 14, 2024) - Prepared by officers.\n2. Booking record")
	assert.Contains(t, facts.Content, "LEGAL ISSUES\n\n1. Unlawful seizure (CRITICAL)\n   No probable cause.\n2. Qualified immunity (MEDIUM)\n   Category: Defenses")
	assert.Less(t, strings.Index(facts.Content, "SUPPORTING DOCUMENTS"), strings.Index(facts.Content, "LEGAL ISSUES"))

	for i, s := range doc.Sections {
		if i == 3 {
			continue
		}
		assert.NotContains(t, s.Content, "SUPPORTING DOCUMENTS")
		assert.NotContains(t, s.Content, "LEGAL ISSUES")
	}
}

func TestGenerate_EmptySupportingDataOmitsBlocks(t *testing.T) {
	a := newTestAssembler()
	opts := scenarioOptions()
	opts.IncludeTimeline = true
	opts.IncludeDocuments = true
	opts.IncludeLegalIssues = true

	doc, err := a.Generate(opts, doeCase())
	require.NoError(t, err)
	assert.Equal(t, "The relevant facts of this matter are set forth below.", doc.Sections[3].Content)
}

func TestSortIssuesByPriority_Stable(t *testing.T) {
	issues := []models.LegalIssue{
		{Title: "first low", Priority: models.PriorityLow},
		{Title: "first critical", Priority: models.PriorityCritical},
		{Title: "medium", Priority: models.PriorityMedium},
		{Title: "high", Priority: models.PriorityHigh},
		{Title: "second critical", Priority: models.PriorityCritical},
	}

	sorted := SortIssuesByPriority(issues)

	titles := make([]string, 0, len(sorted))
	for _, issue := range sorted {
		titles = append(titles, issue.Title)
	}
	assert.Equal(t, []string{"first critical", "second critical", "high", "medium", "first low"}, titles)
	assert.Equal(t, "first low", issues[0].Title, "input must not be reordered")

	block := legalIssuesBlock(issues)
	assert.Less(t, strings.Index(block, "1. first critical"), strings.Index(block, "2. second critical"))
	assert.Contains(t, block, "5. first low (LOW)")
}

func TestGenerate_ChronologyCutoff(t *testing.T) {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := doeCase()
	data.Timeline = []models.TimelineEvent{
		{Date: "2023-11-02", Title: "Before cutoff"},
		{Date: "2024-03-14", Title: "After cutoff"},
	}
	opts := scenarioOptions()
	opts.IncludeTimeline = true

	t.Run("assembler default", func(t *testing.T) {
		a := newTestAssembler(AssembleWithChronologyCutoff(cutoff))
		doc, err := a.Generate(opts, data)
		require.NoError(t, err)

		facts := doc.Sections[3].Content
		assert.Len(t, numberedEntry.FindAllString(facts, -1), 1)
		assert.Contains(t, facts, "1. March 14, 2024: After cutoff")
		assert.NotContains(t, facts, "Before cutoff")
	})

	t.Run("request overrides default", func(t *testing.T) {
		a := newTestAssembler(AssembleWithChronologyCutoff(cutoff))
		early := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		withCutoff := opts
		withCutoff.ChronologyCutoff = &early

		doc, err := a.Generate(withCutoff, data)
		require.NoError(t, err)
		assert.Len(t, numberedEntry.FindAllString(doc.Sections[3].Content, -1), 2)
	})

	t.Run("no cutoff keeps all events", func(t *testing.T) {
		a := newTestAssembler()
		doc, err := a.Generate(opts, data)
		require.NoError(t, err)
		assert.Len(t, numberedEntry.FindAllString(doc.Sections[3].Content, -1), 2)
	})
}

func TestGenerate_SectionCitations(t *testing.T) {
	a := newTestAssembler()
	opts := scenarioOptions()
	opts.SectionCitations = map[string][]string{
		"Introduction": {"Graham v. Connor, 490 U.S. 386 (1989)"},
		"Parties":      {"Fed. R. Civ. P. 10(a)"},
	}

	doc, err := a.Generate(opts, doeCase())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"42 U.S.C. § 1983",
		"28 U.S.C. §§ 1331, 1343",
		"Graham v. Connor, 490 U.S. 386 (1989)",
	}, doc.Sections[1].Citations)
	assert.Equal(t, []string{"Fed. R. Civ. P. 10(a)"}, doc.Sections[2].Citations)
}

func TestGenerate_CriminalSignatureRole(t *testing.T) {
	a := newTestAssembler()
	data := doeCase()
	data.Case.CaseType = models.CaseTypeCriminal
	opts := models.GenerationOptions{TemplateID: templates.MotionToSuppressID}

	doc, err := a.Generate(opts, data)
	require.NoError(t, err)

	assert.Contains(t, doc.SignatureBlock, "/s/ [ATTORNEY NAME]")
	assert.Contains(t, doc.SignatureBlock, "Attorney for Defendant")
	assert.NotContains(t, doc.SignatureBlock, "Bar No.")
}

func TestGenerate_SyntheticRegistry(t *testing.T) {
	registry := templates.MustNewRegistry(models.Template{
		ID:        "synthetic",
		Name:      "Synthetic",
		CaseTypes: []models.CaseType{models.CaseTypeAll},
		Sections: []models.SectionDefinition{
			{Heading: "Closing", Order: 3, Content: "Closing words."},
			{Heading: "Opening", Order: 1},
			{Heading: "Statement of Facts", Order: 2},
		},
	})
	a := NewBriefAssembler(registry, AssembleWithClock(fixedClock))

	doc, err := a.Generate(models.GenerationOptions{TemplateID: "synthetic"}, doeCase())
	require.NoError(t, err)

	require.Len(t, doc.Sections, 3)
	assert.Equal(t, "Opening", doc.Sections[0].Heading)
	assert.Equal(t, "", doc.Sections[0].Content)
	assert.Equal(t, "Statement of Facts", doc.Sections[1].Heading)
	assert.Equal(t, "Closing words.", doc.Sections[2].Content)
}
