package export

import (
	"fmt"
	"strings"

	"legalbrief-backend/models"
)

const wordStyles = `@page WordSection1 { size: 8.5in 11.0in; margin: 72pt 72pt 72pt 72pt; mso-header-margin: 36pt; mso-footer-margin: 36pt; mso-paper-source: 0; }
div.WordSection1 { page: WordSection1; }
body { font-family: "Times New Roman", serif; font-size: 12pt; }
p.MsoTitle { text-align: center; font-size: 14pt; font-weight: bold; text-transform: uppercase; margin: 0pt 0pt 24pt 0pt; }
p.MsoTocHeading { text-align: center; font-weight: bold; margin: 0pt 0pt 12pt 0pt; }
p.MsoToc1 { margin: 0pt 0pt 6pt 0pt; tab-stops: right dotted 468pt; }
h1 { font-size: 12pt; font-weight: bold; text-transform: uppercase; margin: 24pt 0pt 12pt 0pt; page-break-after: avoid; mso-outline-level: 1; }
p.MsoNormal { margin: 0pt 0pt 12pt 0pt; text-align: justify; line-height: 200%; }
p.Citations { font-weight: bold; margin: 12pt 0pt 6pt 0pt; }
ul.Citations { margin: 0pt 0pt 12pt 36pt; }
p.Signature { margin: 0pt; }
`

// ToWord renders the document as HTML annotated with Word namespaces and
// metadata so word processors open it as a native document.
func ToWord(doc *models.GeneratedDocument) string {
	var b strings.Builder

	b.WriteString("<html xmlns:o=\"urn:schemas-microsoft-com:office:office\" ")
	b.WriteString("xmlns:w=\"urn:schemas-microsoft-com:office:word\" ")
	b.WriteString("xmlns=\"http://www.w3.org/TR/REC-html40\">\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta http-equiv=\"Content-Type\" content=\"text/html; charset=utf-8\">\n")
	b.WriteString("<meta name=\"ProgId\" content=\"Word.Document\">\n")
	b.WriteString("<meta name=\"Generator\" content=\"Microsoft Word 15\">\n")
	b.WriteString("<meta name=\"Originator\" content=\"Microsoft Word 15\">\n")
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", escapeText(doc.Title)))
	b.WriteString("<!--[if gte mso 9]>\n<xml>\n<w:WordDocument>\n")
	b.WriteString("<w:View>Print</w:View>\n<w:Zoom>100</w:Zoom>\n<w:DoNotOptimizeForBrowser/>\n")
	b.WriteString("</w:WordDocument>\n</xml>\n<![endif]-->\n")
	b.WriteString("<style>\n")
	b.WriteString(wordStyles)
	b.WriteString("</style>\n</head>\n")
	b.WriteString("<body lang=\"EN-US\">\n<div class=\"WordSection1\">\n")

	b.WriteString(fmt.Sprintf("<p class=\"MsoTitle\">%s</p>\n", escapeText(strings.ToUpper(doc.Title))))

	if len(doc.TableOfContents) > 0 {
		b.WriteString("<p class=\"MsoTocHeading\">TABLE OF CONTENTS</p>\n")
		for _, entry := range doc.TableOfContents {
			b.WriteString(fmt.Sprintf("<p class=\"MsoToc1\">%s<span style=\"mso-tab-count:1 dotted\"> </span>%d</p>\n",
				escapeText(entry.Section), entry.Page))
		}
		b.WriteString("<br clear=\"all\" style=\"page-break-before:always\">\n")
	}

	for i, section := range doc.Sections {
		b.WriteString(fmt.Sprintf("<h1>%d. %s</h1>\n", i+1, escapeText(section.Heading)))
		b.WriteString(contentToParagraphs(section.Content, "MsoNormal"))
		if len(section.Citations) > 0 {
			b.WriteString("<p class=\"Citations\">Citations:</p>\n<ul class=\"Citations\">\n")
			for _, citation := range section.Citations {
				b.WriteString(fmt.Sprintf("<li>%s</li>\n", escapeText(citation)))
			}
			b.WriteString("</ul>\n")
		}
	}

	if doc.SignatureBlock != "" {
		b.WriteString("<br>\n")
		b.WriteString(contentToParagraphs(doc.SignatureBlock, "Signature"))
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// contentToParagraphs emits one paragraph per non-blank line
func contentToParagraphs(content, class string) string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("<p class=\"%s\">%s</p>\n", class, indentedText(line)))
	}
	return b.String()
}

// indentedText escapes a line and keeps its leading spaces, which Word would
// otherwise collapse inside a paragraph.
func indentedText(line string) string {
	body := strings.TrimLeft(line, " ")
	return strings.Repeat("&nbsp;", len(line)-len(body)) + escapeText(body)
}
