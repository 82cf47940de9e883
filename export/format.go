package export

import (
	"errors"
	"fmt"
	"strings"

	"legalbrief-backend/models"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an export target
type Format string

const (
	FormatText  Format = "text"
	FormatHTML  Format = "html"
	FormatWord  Format = "word"
	FormatPrint Format = "print"
)

// ParseFormat parses a format name, accepting common file extensions as aliases
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "word", "doc":
		return FormatWord, nil
	case "print":
		return FormatPrint, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// MimeType returns the content type an artifact of this format is delivered with
func (f Format) MimeType() string {
	switch f {
	case FormatText:
		return "text/plain"
	case FormatWord:
		return "application/msword"
	default:
		return "text/html"
	}
}

// Extension returns the file extension without the dot
func (f Format) Extension() string {
	switch f {
	case FormatText:
		return "txt"
	case FormatWord:
		return "doc"
	default:
		return "html"
	}
}

// Inline reports whether the artifact is rendered for the user rather than downloaded
func (f Format) Inline() bool {
	return f == FormatPrint
}

// Render serializes doc into the given format. HTML options apply to FormatHTML only.
func Render(doc *models.GeneratedDocument, format Format, opts ...HTMLOption) (string, error) {
	switch format {
	case FormatText:
		return ToText(doc), nil
	case FormatHTML:
		return ToHTML(doc, opts...), nil
	case FormatWord:
		return ToWord(doc), nil
	case FormatPrint:
		return ToPrintHTML(doc), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
