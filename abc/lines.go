package abc

import (
	"regexp"
	"strings"
)

const commentPrefix = "%"

var headerLine = regexp.MustCompile(`^[A-Z]:`)

// Document is ABC text split into its header and music lines. Both keep
// the order they had in the source; blank and comment lines are dropped.
type Document struct {
	Headers []string
	Music   []string
}

// IsHeader reports whether the (trimmed) line is a header field.
func IsHeader(line string) bool {
	return headerLine.MatchString(line)
}

// ClassifyLines splits the text into header and music lines. Every line is
// trimmed and then either lands in exactly one bucket or is dropped.
func ClassifyLines(text string) Document {
	var doc Document
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		switch {
		case IsHeader(trimmed):
			doc.Headers = append(doc.Headers, trimmed)
		case trimmed == "", strings.HasPrefix(trimmed, commentPrefix):
			continue
		default:
			doc.Music = append(doc.Music, trimmed)
		}
	}
	return doc
}

// Header returns the value of the first header with the given field letter.
func (d Document) Header(field byte) (string, bool) {
	for _, h := range d.Headers {
		if h[0] == field {
			return strings.TrimSpace(h[2:]), true
		}
	}
	return "", false
}

// WellFormed holds when the document has an index header, a key header and
// some music to render.
func (d Document) WellFormed() bool {
	_, hasX := d.Header('X')
	_, hasK := d.Header('K')
	return hasX && hasK && len(d.Music) > 0
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
