package export

import (
	"fmt"
	"regexp"
	"strings"

	"legalbrief-backend/models"
)

const (
	displayDateLayout = "January 2, 2006"
	timestampLayout   = "January 2, 2006 at 3:04 PM"

	DefaultFontFamily = `"Times New Roman", Times, serif`
	DefaultFontSize   = "12pt"
)

var (
	fontFamilyPattern = regexp.MustCompile(`^[A-Za-z0-9 ,"'-]+$`)
	fontSizePattern   = regexp.MustCompile(`^\d+(\.\d+)?(pt|px|em|rem|%)$`)
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeText escapes a string for use in an HTML text node
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// contentToHTML escapes content and turns newlines into line breaks
func contentToHTML(content string) string {
	return strings.ReplaceAll(escapeText(content), "\n", "<br>\n")
}

type htmlConfig struct {
	includeHeader bool
	includeFooter bool
	pageNumbers   bool
	fontFamily    string
	fontSize      string
}

// HTMLOption configures the HTML serializer
type HTMLOption func(*htmlConfig)

// WithHeader toggles the title and generation date header (default on)
func WithHeader(include bool) HTMLOption {
	return func(c *htmlConfig) {
		c.includeHeader = include
	}
}

// WithFooter toggles the word count and timestamp footer (default on)
func WithFooter(include bool) HTMLOption {
	return func(c *htmlConfig) {
		c.includeFooter = include
	}
}

// WithPageNumbers toggles page numbers in the table of contents and page margins (default on)
func WithPageNumbers(include bool) HTMLOption {
	return func(c *htmlConfig) {
		c.pageNumbers = include
	}
}

// WithFontFamily sets the body font stack. Values outside the font-name
// character set are ignored and the default stays in place.
func WithFontFamily(family string) HTMLOption {
	return func(c *htmlConfig) {
		if fontFamilyPattern.MatchString(family) {
			c.fontFamily = family
		}
	}
}

// WithFontSize sets the body font size, e.g. "12pt". Anything but a plain
// CSS length is ignored.
func WithFontSize(size string) HTMLOption {
	return func(c *htmlConfig) {
		if fontSizePattern.MatchString(size) {
			c.fontSize = size
		}
	}
}

func newHTMLConfig(opts []HTMLOption) htmlConfig {
	cfg := htmlConfig{
		includeHeader: true,
		includeFooter: true,
		pageNumbers:   true,
		fontFamily:    DefaultFontFamily,
		fontSize:      DefaultFontSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ToHTML renders the document as a standalone, print-aware HTML page
func ToHTML(doc *models.GeneratedDocument, opts ...HTMLOption) string {
	cfg := newHTMLConfig(opts)
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", escapeText(doc.Title)))
	b.WriteString("<style>\n")
	b.WriteString(htmlStyles(cfg))
	b.WriteString("</style>\n</head>\n<body>\n")

	if cfg.includeHeader {
		b.WriteString("<div class=\"header\">\n")
		b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", escapeText(doc.Title)))
		b.WriteString(fmt.Sprintf("<p class=\"generated-date\">Generated on %s</p>\n",
			doc.GeneratedAt.Format(displayDateLayout)))
		b.WriteString("</div>\n")
	}

	writeTableOfContents(&b, doc, cfg.pageNumbers)
	writeSections(&b, doc)
	writeSignature(&b, doc)

	if cfg.includeFooter {
		b.WriteString("<div class=\"footer\">\n")
		b.WriteString(fmt.Sprintf("<p>Word count: %d</p>\n", doc.WordCount))
		b.WriteString(fmt.Sprintf("<p>Generated: %s</p>\n", doc.GeneratedAt.Format(timestampLayout)))
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func htmlStyles(cfg htmlConfig) string {
	var css strings.Builder

	if cfg.pageNumbers {
		css.WriteString("@page { margin: 1in; @bottom-center { content: counter(page); } }\n")
	} else {
		css.WriteString("@page { margin: 1in; }\n")
	}
	css.WriteString(fmt.Sprintf("body { font-family: %s; font-size: %s; line-height: 1.6; "+
		"text-align: justify; max-width: 8.5in; margin: 0 auto; padding: 1in; color: #000; }\n",
		cfg.fontFamily, cfg.fontSize))
	css.WriteString(".header { text-align: center; margin-bottom: 2em; padding-bottom: 1em; border-bottom: 2px solid #000; }\n")
	css.WriteString(".header h1 { font-size: 1.5em; text-transform: uppercase; margin: 0 0 0.5em 0; }\n")
	css.WriteString(".generated-date { font-size: 0.9em; color: #555; margin: 0; }\n")
	css.WriteString(".toc { margin-bottom: 2em; page-break-after: always; }\n")
	css.WriteString(".toc h2 { text-align: center; font-size: 1.2em; }\n")
	css.WriteString(".toc-entry { display: flex; justify-content: space-between; border-bottom: 1px dotted #999; padding: 0.2em 0; }\n")
	css.WriteString(".section { margin-bottom: 2em; page-break-inside: avoid; }\n")
	css.WriteString(".section h2 { font-size: 1.1em; text-transform: uppercase; page-break-after: avoid; }\n")
	css.WriteString(".section-content { text-align: justify; }\n")
	css.WriteString(".citations { margin-top: 1em; padding: 0.75em 1em; border-left: 3px solid #333; background: #f5f5f5; font-size: 0.9em; }\n")
	css.WriteString(".citation { margin: 0.25em 0; font-style: italic; }\n")
	css.WriteString(".signature { margin-top: 3em; page-break-inside: avoid; }\n")
	css.WriteString(".footer { margin-top: 3em; padding-top: 1em; border-top: 1px solid #ccc; font-size: 0.8em; color: #666; text-align: center; }\n")
	css.WriteString("@media print { body { padding: 0; max-width: none; } .section { page-break-inside: avoid; } }\n")

	return css.String()
}

func writeTableOfContents(b *strings.Builder, doc *models.GeneratedDocument, pageNumbers bool) {
	if len(doc.TableOfContents) == 0 {
		return
	}
	b.WriteString("<div class=\"toc\">\n<h2>Table of Contents</h2>\n")
	for _, entry := range doc.TableOfContents {
		b.WriteString("<div class=\"toc-entry\">")
		b.WriteString(fmt.Sprintf("<span>%s</span>", escapeText(entry.Section)))
		if pageNumbers {
			b.WriteString(fmt.Sprintf("<span>%d</span>", entry.Page))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func writeSections(b *strings.Builder, doc *models.GeneratedDocument) {
	for _, section := range doc.Sections {
		b.WriteString("<div class=\"section\">\n")
		b.WriteString(fmt.Sprintf("<h2>%s</h2>\n", escapeText(section.Heading)))
		b.WriteString(fmt.Sprintf("<div class=\"section-content\">%s</div>\n", contentToHTML(section.Content)))
		if len(section.Citations) > 0 {
			b.WriteString("<div class=\"citations\">\n<strong>Citations:</strong>\n")
			for _, citation := range section.Citations {
				b.WriteString(fmt.Sprintf("<div class=\"citation\">%s</div>\n", escapeText(citation)))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}
}

func writeSignature(b *strings.Builder, doc *models.GeneratedDocument) {
	if doc.SignatureBlock == "" {
		return
	}
	b.WriteString(fmt.Sprintf("<div class=\"signature\">%s</div>\n", contentToHTML(doc.SignatureBlock)))
}
