// Package export renders reports into downloadable files. Each encoder takes
// a fully built report and returns bytes; nothing here touches storage or the
// network, so a failed encode never leaves a half-written download behind.
package export

import (
	"strings"
	"unicode"

	"github.com/pressroom-erp/pressroom/internal/reports"
)

// File is a finished download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Organization labels report headers.
type Organization struct {
	Name    string
	Contact string
}

// Filename builds the canonical download name for a report and extension.
func Filename(rep *reports.Report, ext string) string {
	return Slug(rep.FileBase) + "_report." + ext
}

// Slug lowercases s and collapses every run of non-alphanumeric characters
// into a single underscore.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	if b.Len() == 0 {
		return "report"
	}
	return b.String()
}
