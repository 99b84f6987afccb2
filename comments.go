package main

import "strings"

const commentPrefix = "%"

// deleteComments drops comment lines and trailing comments. Stylesheet
// directives ("%%") are dropped with them and an escaped "\%" is kept.
func deleteComments(lines []string) (out []string) {
LOOP:
	for _, line := range lines {
		switch {
		// do not include this line
		case strings.HasPrefix(strings.TrimSpace(line), commentPrefix):
			continue LOOP

		// take everything before the comment
		case strings.Contains(line, commentPrefix):
			out = append(out, strings.TrimRight(beforeComment(line), " \t"))
			continue LOOP
		default:
			out = append(out, line)
		}
	}
	return out
}

func beforeComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}
