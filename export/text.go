package export

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"legalbrief-backend/models"
)

const tocLineWidth = 60

// ToText renders the document as plain text with underlined headings and a
// dotted-leader table of contents.
func ToText(doc *models.GeneratedDocument) string {
	var builder strings.Builder

	builder.WriteString(doc.Title)
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("=", utf8.RuneCountInString(doc.Title)))
	builder.WriteString("\n\n")

	if len(doc.TableOfContents) > 0 {
		builder.WriteString("TABLE OF CONTENTS\n\n")
		for _, entry := range doc.TableOfContents {
			builder.WriteString(tocLine(entry))
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	for i, section := range doc.Sections {
		heading := fmt.Sprintf("%d. %s", i+1, section.Heading)
		builder.WriteString(heading)
		builder.WriteString("\n")
		builder.WriteString(strings.Repeat("-", utf8.RuneCountInString(heading)))
		builder.WriteString("\n\n")

		if section.Content != "" {
			builder.WriteString(section.Content)
			builder.WriteString("\n\n")
		}

		if len(section.Citations) > 0 {
			builder.WriteString("Citations:\n")
			for _, citation := range section.Citations {
				builder.WriteString("- ")
				builder.WriteString(citation)
				builder.WriteString("\n")
			}
			builder.WriteString("\n")
		}
	}

	if doc.SignatureBlock != "" {
		builder.WriteString(doc.SignatureBlock)
		builder.WriteString("\n\n")
	}

	builder.WriteString("---\n")
	builder.WriteString(fmt.Sprintf("Generated: %s\n", doc.GeneratedAt.Format(displayDateLayout)))
	builder.WriteString(fmt.Sprintf("Word Count: %d\n", doc.WordCount))

	return builder.String()
}

// tocLine pads the gap between name and page number with dots
func tocLine(entry models.TOCEntry) string {
	page := strconv.Itoa(entry.Page)
	dots := tocLineWidth - utf8.RuneCountInString(entry.Section) - len(page) - 2
	if dots < 3 {
		dots = 3
	}
	return entry.Section + " " + strings.Repeat(".", dots) + " " + page
}
