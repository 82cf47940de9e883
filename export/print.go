package export

import (
	"fmt"
	"strings"

	"legalbrief-backend/models"
)

const printStyles = `@page { size: letter; margin: 1in; @bottom-center { content: "Page " counter(page); font-size: 10pt; } }
body { font-family: "Times New Roman", Times, serif; font-size: 12pt; line-height: 1.6; text-align: justify; max-width: 8.5in; margin: 0 auto; padding: 0.5in; }
.print-controls { position: fixed; top: 12px; right: 12px; display: flex; gap: 8px; }
.print-controls button { font-size: 14px; padding: 6px 16px; cursor: pointer; }
h1 { text-align: center; font-size: 16pt; text-transform: uppercase; }
.toc { page-break-after: always; }
.toc-entry { display: flex; justify-content: space-between; border-bottom: 1px dotted #999; }
.section { page-break-inside: avoid; break-inside: avoid; margin-bottom: 1.5em; }
.section h2 { font-size: 13pt; text-transform: uppercase; page-break-after: avoid; break-after: avoid; }
.citations { margin-top: 0.75em; padding-left: 1em; border-left: 3px solid #333; font-size: 11pt; }
.citation { font-style: italic; }
.signature { margin-top: 3em; page-break-inside: avoid; break-inside: avoid; }
@media print { .print-controls { display: none; } body { padding: 0; max-width: none; } }
`

// ToPrintHTML renders a browser-printable page with Print and Close controls.
// It is shown to the user, who prints to paper or PDF from the browser.
func ToPrintHTML(doc *models.GeneratedDocument) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", escapeText(doc.Title)))
	b.WriteString("<style>\n")
	b.WriteString(printStyles)
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString("<div class=\"print-controls\">\n")
	b.WriteString("<button type=\"button\" onclick=\"window.print()\">Print</button>\n")
	b.WriteString("<button type=\"button\" onclick=\"window.close()\">Close</button>\n")
	b.WriteString("</div>\n")

	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", escapeText(doc.Title)))
	writeTableOfContents(&b, doc, true)
	writeSections(&b, doc)
	writeSignature(&b, doc)

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
