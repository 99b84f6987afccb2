package abc

import (
	"strings"
)

// DefaultPreviewBars is the usual length of a preview phrase.
const DefaultPreviewBars = 4

// SplitBars splits the music of the document into bars. A bar ends at a '|'
// outside any bracket and keeps its bar line, including adjacent repeat
// colons and a closing ']' ("|:", ":|", "||", "|]"). Material before the
// first bar line is a bar of its own (a pickup). Ending brackets ("[1",
// "[2") belong to the bar they open and do not nest. A bar line with nothing
// in front of it is carried over onto the next bar.
func SplitBars(doc Document) []string {
	stream := strings.Join(doc.Music, " ")

	var (
		bars    []string
		current strings.Builder
		carry   string
		depth   int
	)
	closeBar := func(line string) {
		content := strings.TrimSpace(current.String())
		current.Reset()
		if content == "" {
			carry += line
			return
		}
		bars = append(bars, carry+content+line)
		carry = ""
	}
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		switch {
		case depth == 0 && (c == '|' ||
			(c == '[' && i+1 < len(stream) && stream[i+1] == '|')):
			j := i + 1
			for j < len(stream) && strings.IndexByte("|:]", stream[j]) >= 0 {
				j++
			}
			closeBar(stream[i:j])
			i = j - 1
		case c == '[' && (i+1 >= len(stream) || !isDigit(stream[i+1])):
			depth++
			current.WriteByte(c)
		case c == ']':
			if depth > 0 {
				depth--
			}
			current.WriteByte(c)
		default:
			current.WriteByte(c)
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		bars = append(bars, carry+rest)
	} else if carry != "" && len(bars) > 0 {
		bars[len(bars)-1] += carry
	}
	return bars
}

// ExtractPreview returns the header lines of the text followed by its
// first numBars bars. The pickup, when present, counts as the first bar.
// Fewer bars than asked for returns them all; text without music is
// returned unchanged.
func ExtractPreview(text string, numBars int) string {
	if text == "" {
		return ""
	}
	if numBars < 1 {
		numBars = 1
	}
	doc := ClassifyLines(text)
	bars := SplitBars(doc)
	if len(bars) == 0 {
		return text
	}
	if len(bars) > numBars {
		bars = bars[:numBars]
	}
	music := strings.Join(bars, " ")
	if len(doc.Headers) == 0 {
		return music
	}
	return strings.Join(doc.Headers, "\n") + "\n" + music
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
