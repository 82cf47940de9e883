package templates

import (
	"errors"
	"fmt"

	"legalbrief-backend/models"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrDuplicateTemplate = errors.New("duplicate template id")
	ErrDuplicateOrderKey = errors.New("duplicate section order key")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Registry is an immutable catalog of document templates. It is built once at
// startup and is safe to share between goroutines.
type Registry struct {
	templates []models.Template
	byID      map[string]int
}

// NewRegistry validates and freezes the given templates. Section definitions
// are stored sorted by order key.
func NewRegistry(templates ...models.Template) (*Registry, error) {
	r := &Registry{
		templates: make([]models.Template, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}

	for _, tmpl := range templates {
		if tmpl.ID == "" {
			return nil, fmt.Errorf("%w: missing id", ErrInvalidTemplate)
		}
		if _, exists := r.byID[tmpl.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTemplate, tmpl.ID)
		}

		seen := make(map[int]string, len(tmpl.Sections))
		for _, section := range tmpl.Sections {
			if other, dup := seen[section.Order]; dup {
				return nil, fmt.Errorf("%w: template %s, order %d used by %q and %q",
					ErrDuplicateOrderKey, tmpl.ID, section.Order, other, section.Heading)
			}
			seen[section.Order] = section.Heading
		}

		frozen := cloneTemplate(tmpl)
		frozen.Sections = frozen.OrderedSections()

		r.byID[tmpl.ID] = len(r.templates)
		r.templates = append(r.templates, frozen)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid catalog
func MustNewRegistry(templates ...models.Template) *Registry {
	r, err := NewRegistry(templates...)
	if err != nil {
		panic(err)
	}
	return r
}

// ListTemplates returns every template in registration order
func (r *Registry) ListTemplates() []models.Template {
	out := make([]models.Template, 0, len(r.templates))
	for _, tmpl := range r.templates {
		out = append(out, cloneTemplate(tmpl))
	}
	return out
}

// GetTemplate returns the template with the given id or ErrTemplateNotFound
func (r *Registry) GetTemplate(id string) (models.Template, error) {
	idx, ok := r.byID[id]
	if !ok {
		return models.Template{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return cloneTemplate(r.templates[idx]), nil
}

// TemplatesForCaseType returns templates tagged with caseType or the "all" wildcard
func (r *Registry) TemplatesForCaseType(caseType models.CaseType) []models.Template {
	out := make([]models.Template, 0)
	for _, tmpl := range r.templates {
		if tmpl.AppliesTo(caseType) {
			out = append(out, cloneTemplate(tmpl))
		}
	}
	return out
}

// cloneTemplate copies the slices so callers cannot mutate the catalog
func cloneTemplate(tmpl models.Template) models.Template {
	out := tmpl
	out.Sections = make([]models.SectionDefinition, len(tmpl.Sections))
	for i, section := range tmpl.Sections {
		section.Citations = append([]string(nil), section.Citations...)
		out.Sections[i] = section
	}
	out.CaseTypes = append([]models.CaseType(nil), tmpl.CaseTypes...)
	return out
}
