package models

import "sort"

// Template is a catalog entry describing the sections a document type contains
type Template struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Sections    []SectionDefinition `json:"sections"`
	CaseTypes   []CaseType          `json:"case_types"`
}

// SectionDefinition is one section of a template. An empty Content means the
// section is expected to be generated or supplied by the caller.
type SectionDefinition struct {
	Heading   string   `json:"heading"`
	Content   string   `json:"content"`
	Required  bool     `json:"required"`
	Order     int      `json:"order"`
	Citations []string `json:"citations,omitempty"`
}

// OrderedSections returns a copy of the sections sorted by order key.
// Ties keep declaration order.
func (t *Template) OrderedSections() []SectionDefinition {
	sections := make([]SectionDefinition, len(t.Sections))
	copy(sections, t.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	return sections
}

// AppliesTo reports whether the template is valid for the given case type
func (t *Template) AppliesTo(caseType CaseType) bool {
	for _, tag := range t.CaseTypes {
		if tag == CaseTypeAll || tag == caseType {
			return true
		}
	}
	return false
}
