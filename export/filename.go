package export

import (
	"regexp"
	"time"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeFilename replaces every non-alphanumeric character with an underscore
func SanitizeFilename(name string) string {
	return nonAlphanumeric.ReplaceAllString(name, "_")
}

// Filename builds "<case number>_<title>_<YYYY-MM-DD>.<ext>". The case number
// prefix is dropped when empty. Names are not guaranteed unique.
func Filename(title, caseNumber string, date time.Time, format Format) string {
	name := SanitizeFilename(title)
	if caseNumber != "" {
		name = SanitizeFilename(caseNumber) + "_" + name
	}
	return name + "_" + date.Format("2006-01-02") + "." + format.Extension()
}
