package abc

import (
	"strings"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokOther tokenKind = iota
	tokNote
	tokBar
	tokChordSymbol
	tokField
)

// token is one lexical unit of a music line. Concatenating the text of
// every token of a line gives back the line.
type token struct {
	kind tokenKind
	text string
	col  int

	// notes only
	letter     byte // uppercase A-G
	octave     int  // 0 for C-B, 1 for c-b, plus ' and minus ,
	hasAcc     bool
	accidental int
}

var accidentalOffsets = map[string]int{
	"^^": 2, "^": 1, "=": 0, "_": -1, "__": -2,
}

var ErrMalformedNote = errors.New("malformed note")

// tokenize lexes a music line. Quoted strings, decorations, inline fields
// and comments are kept whole; everything that is not a note or bar line
// is carried through as-is.
func tokenize(line string) ([]token, error) {
	var toks []token
	other := func(start, end int) {
		if n := len(toks); n > 0 && toks[n-1].kind == tokOther &&
			toks[n-1].col+len(toks[n-1].text) == start {
			toks[n-1].text += line[start:end]
			return
		}
		toks = append(toks, token{kind: tokOther, text: line[start:end], col: start})
	}

	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '%':
			other(i, len(line))
			i = len(line)

		case c == '"':
			end := strings.IndexByte(line[i+1:], '"')
			if end < 0 {
				other(i, len(line))
				i = len(line)
				continue
			}
			end += i + 2
			toks = append(toks, token{kind: tokChordSymbol, text: line[i:end], col: i})
			i = end

		case c == '!' || c == '+':
			// only known names are decorations, a lone '!' is a line break
			end := strings.IndexByte(line[i+1:], c)
			if end <= 0 || !decorations[line[i+1:i+1+end]] {
				other(i, i+1)
				i++
				continue
			}
			end += i + 2
			other(i, end)
			i = end

		case c == '[' && i+2 < len(line) && isAlpha(line[i+1]) && line[i+2] == ':':
			end := strings.IndexByte(line[i:], ']')
			if end < 0 {
				other(i, len(line))
				i = len(line)
				continue
			}
			end += i + 1
			toks = append(toks, token{kind: tokField, text: line[i:end], col: i})
			i = end

		case c == '|':
			toks = append(toks, token{kind: tokBar, text: "|", col: i})
			i++

		case c == '^' || c == '_' || c == '=':
			j := i
			for j < len(line) && strings.IndexByte("^_=", line[j]) >= 0 {
				j++
			}
			acc, ok := accidentalOffsets[line[i:j]]
			if !ok {
				return nil, errors.Wrapf(ErrMalformedNote,
					"accidental %q at col %d", line[i:j], i+1)
			}
			if j >= len(line) || !isNoteLetter(line[j]) {
				return nil, errors.Wrapf(ErrMalformedNote,
					"accidental %q at col %d not followed by a note", line[i:j], i+1)
			}
			tok, end := lexNote(line, j)
			tok.text, tok.col = line[i:end], i
			tok.hasAcc, tok.accidental = true, acc
			toks = append(toks, tok)
			i = end

		case isNoteLetter(c):
			tok, end := lexNote(line, i)
			toks = append(toks, tok)
			i = end

		default:
			other(i, i+1)
			i++
		}
	}
	return toks, nil
}

// lexNote reads a note letter and its octave marks starting at i.
func lexNote(line string, i int) (token, int) {
	c := line[i]
	tok := token{kind: tokNote, letter: upper(c), col: i}
	if c >= 'a' {
		tok.octave = 1
	}
	j := i + 1
	for ; j < len(line); j++ {
		switch line[j] {
		case '\'':
			tok.octave++
			continue
		case ',':
			tok.octave--
			continue
		}
		break
	}
	tok.text = line[i:j]
	return tok, j
}

func isNoteLetter(c byte) bool {
	return (c >= 'A' && c <= 'G') || (c >= 'a' && c <= 'g')
}

// renderNote writes a note in ABC: accidental, letter in the case of its
// octave, then octave marks.
func renderNote(acc string, letter byte, octave int) string {
	var sb strings.Builder
	sb.WriteString(acc)
	switch {
	case octave >= 1:
		sb.WriteByte(letter - 'A' + 'a')
		sb.WriteString(strings.Repeat("'", octave-1))
	case octave == 0:
		sb.WriteByte(letter)
	default:
		sb.WriteByte(letter)
		sb.WriteString(strings.Repeat(",", -octave))
	}
	return sb.String()
}

func accidentalSymbol(offset int) string {
	switch offset {
	case 2:
		return "^^"
	case 1:
		return "^"
	case -1:
		return "_"
	case -2:
		return "__"
	}
	return "="
}
