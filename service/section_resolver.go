package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"legalbrief-backend/models"
)

// SectionKind classifies a template heading into the generator that fills it
type SectionKind int

const (
	SectionGeneric SectionKind = iota
	SectionCaption
	SectionFactualNarrative
	SectionParties
)

func (k SectionKind) String() string {
	switch k {
	case SectionCaption:
		return "caption"
	case SectionFactualNarrative:
		return "factual_narrative"
	case SectionParties:
		return "parties"
	default:
		return "generic"
	}
}

// sectionAliases is the allow-list of headings with a built-in generator
var sectionAliases = map[string]SectionKind{
	"Caption":             SectionCaption,
	"Factual Background":  SectionFactualNarrative,
	"Statement of Facts":  SectionFactualNarrative,
	"Factual Allegations": SectionFactualNarrative,
	"Parties":             SectionParties,
}

// ClassifySection maps a heading to its kind by exact match. Unknown headings
// are generic: override or boilerplate only.
func ClassifySection(heading string) SectionKind {
	if kind, ok := sectionAliases[heading]; ok {
		return kind
	}
	return SectionGeneric
}

// IsInjectionPoint reports whether supporting blocks (documents, legal issues)
// are appended after the section with this heading.
func IsInjectionPoint(heading string) bool {
	return heading == "Factual Background" || heading == "Statement of Facts"
}

const (
	defaultCourtName     = "UNITED STATES DISTRICT COURT"
	placeholderClient    = "[CLIENT NAME]"
	placeholderDefendant = "[DEFENDANT NAME]"
	placeholderAttorney  = "[ATTORNEY NAME]"
	displayDateLayout    = "January 2, 2006"
)

// ResolveInput is everything a section generator may read
type ResolveInput struct {
	Options          *models.GenerationOptions
	Data             *models.CaseData
	ChronologyCutoff time.Time // zero keeps every event
}

// ResolveSection produces the content of one section. Precedence: caller
// override, built-in generator, template boilerplate. An unmatched heading
// with empty boilerplate resolves to "".
func ResolveSection(section models.SectionDefinition, in ResolveInput) string {
	if override, ok := in.Options.SectionOverrides[section.Heading]; ok {
		return override
	}

	switch ClassifySection(section.Heading) {
	case SectionCaption:
		return generateCaption(in)
	case SectionFactualNarrative:
		return generateFactualNarrative(in)
	case SectionParties:
		return generateParties(in)
	default:
		return section.Content
	}
}

// ClientRole is the party the attorney represents, derived from case type
func ClientRole(caseType models.CaseType) string {
	if caseType == models.CaseTypeCriminal {
		return "Defendant"
	}
	return "Plaintiff"
}

func generateCaption(in ResolveInput) string {
	record := &in.Data.Case

	court := firstNonEmpty(in.Options.CourtName, record.Court, defaultCourtName)
	courtLine := strings.ToUpper(court)
	if !strings.HasPrefix(courtLine, "IN THE ") {
		courtLine = "IN THE " + courtLine
	}

	caseNumberLine := ""
	if record.CaseNumber != "" {
		caseNumberLine = "Case No. " + record.CaseNumber
	}

	var parties string
	if record.IsCriminal() {
		parties = fmt.Sprintf("%s,\n          Defendant.", criminalDefendant(record))
	} else {
		parties = fmt.Sprintf("%s,\n          Plaintiff,\n\n     v.\n\n%s,\n          Defendant.",
			firstNonEmpty(in.Options.ClientName, placeholderClient),
			firstNonEmpty(record.OpposingParty, placeholderDefendant))
	}

	lines := []string{
		courtLine,
		"",
		record.Title,
		caseNumberLine,
		"",
		parties,
		"",
		fmt.Sprintf("Counsel for %s: %s",
			ClientRole(record.CaseType),
			firstNonEmpty(in.Options.AttorneyName, placeholderAttorney)),
	}
	return strings.Join(lines, "\n")
}

func generateFactualNarrative(in ResolveInput) string {
	record := &in.Data.Case
	var builder strings.Builder

	if description := strings.TrimSpace(record.Description); description != "" {
		builder.WriteString(fmt.Sprintf("The facts giving rise to %s are as follows. %s",
			firstNonEmpty(record.Title, "this matter"), description))
	} else {
		builder.WriteString("The relevant facts of this matter are set forth below.")
	}

	if analysis := strings.TrimSpace(in.Data.Analysis); analysis != "" {
		builder.WriteString("\n\nANALYSIS\n\n")
		builder.WriteString(analysis)
	}

	if in.Options.IncludeTimeline {
		if chronology := chronologyBlock(in.Data.Timeline, in.ChronologyCutoff); chronology != "" {
			builder.WriteString("\n\n")
			builder.WriteString(chronology)
		}
	}

	return builder.String()
}

type datedEvent struct {
	event  models.TimelineEvent
	date   time.Time
	parsed bool
}

// chronologyBlock lists events dated on or after the cutoff's calendar day in
// ascending order. Timestamps are compared by the date written in them.
// Undated events are dropped when a cutoff is set and listed last otherwise.
func chronologyBlock(events []models.TimelineEvent, cutoff time.Time) string {
	selected := make([]datedEvent, 0, len(events))
	for _, event := range events {
		date, ok := parseISODate(event.Date)
		if !cutoff.IsZero() && (!ok || calendarDay(date).Before(calendarDay(cutoff))) {
			continue
		}
		selected = append(selected, datedEvent{event: event, date: date, parsed: ok})
	}
	if len(selected) == 0 {
		return ""
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.parsed != b.parsed {
			return a.parsed
		}
		return a.date.Before(b.date)
	})

	var builder strings.Builder
	builder.WriteString("CHRONOLOGY OF EVENTS\n")
	for i, item := range selected {
		dateText := item.event.Date
		if item.parsed {
			dateText = item.date.Format(displayDateLayout)
		}
		builder.WriteString(fmt.Sprintf("\n%d. %s: %s", i+1, dateText, item.event.Title))
		if item.event.Summary != nil && strings.TrimSpace(*item.event.Summary) != "" {
			builder.WriteString("\n   ")
			builder.WriteString(strings.TrimSpace(*item.event.Summary))
		}
	}
	return builder.String()
}

func generateParties(in ResolveInput) string {
	record := &in.Data.Case

	if record.IsCriminal() {
		return fmt.Sprintf(
			"Defendant %s is the accused in this matter and appears through undersigned counsel.\n\n"+
				"This prosecution is brought by %s.",
			criminalDefendant(record), prosecutingEntity(record))
	}

	plaintiff := fmt.Sprintf(
		"Plaintiff %s is the party bringing this action and is represented by undersigned counsel.",
		firstNonEmpty(in.Options.ClientName, placeholderClient))

	defendant := fmt.Sprintf("Defendant %s is named as a defendant in this action.",
		firstNonEmpty(record.OpposingParty, placeholderDefendant))
	if record.CaseType == models.CaseTypeCivilRights {
		defendant += " At all times relevant to this Complaint, Defendant acted under color of state law " +
			"and is responsible for the deprivation of Plaintiff's constitutional rights."
	} else {
		defendant += " Defendant is responsible for the acts and omissions alleged herein."
	}

	return plaintiff + "\n\n" + defendant
}

// criminalDefendant names the accused. Criminal case records carry the
// defendant in the opposing party field.
func criminalDefendant(record *models.CaseRecord) string {
	return firstNonEmpty(record.OpposingParty, placeholderDefendant)
}

func prosecutingEntity(record *models.CaseRecord) string {
	if record.Jurisdiction != nil && strings.TrimSpace(*record.Jurisdiction) != "" {
		return "the State of " + strings.TrimSpace(*record.Jurisdiction)
	}
	return "the United States of America"
}

// parseISODate accepts YYYY-MM-DD or RFC 3339 timestamps
func parseISODate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// calendarDay drops the time of day and offset, keeping the date as written
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// formatISODate renders a parseable ISO date for display, or returns the input unchanged
func formatISODate(value string) string {
	if t, ok := parseISODate(value); ok {
		return t.Format(displayDateLayout)
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
