package abc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrTransposeFailed = errors.New("transposition failed")
	ErrUnknownKey      = errors.New("unknown key")
)

// TransposeError reports where a transposition was abandoned. It matches
// ErrTransposeFailed as well as its underlying cause under errors.Is.
type TransposeError struct {
	Line int
	Err  error
}

func (e *TransposeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d: %v", ErrTransposeFailed, e.Line, e.Err)
	}
	return fmt.Sprintf("%v: %v", ErrTransposeFailed, e.Err)
}

func (e *TransposeError) Unwrap() error { return e.Err }

func (e *TransposeError) Is(target error) bool { return target == ErrTransposeFailed }

// lyric, symbol and continuation lines
var lowerFieldLine = regexp.MustCompile(`^[a-z+]:`)

// pitchKey identifies a note for bar-scoped accidentals
type pitchKey struct {
	letter byte
	octave int
}

// transposer carries the state of one pass over a document.
type transposer struct {
	steps     int
	targetKey string

	keyLines int // K: fields seen so far
	inSig    Signature
	outSig   Signature
	sharps   bool
	inBar    map[pitchKey]int
	outBar   map[pitchKey]int
}

// Transpose shifts every note of the text by steps semitones (negative is
// down) and rewrites the K: header to targetKey. An empty targetKey is
// derived from the source key. Zero steps returns the text unchanged.
//
// Notes are read under the source key signature and any accidentals
// earlier in the same bar, and written with explicit accidentals for every
// altered pitch, sharps or flats by the target key's preference. On error
// no output is returned and the caller should keep the original text.
func Transpose(text string, steps int, targetKey string) (string, error) {
	if steps == 0 || text == "" {
		return text, nil
	}
	if targetKey != "" {
		if _, ok := ParseKey(targetKey); !ok {
			return "", &TransposeError{Err: errors.Wrapf(ErrUnknownKey, "%q", targetKey)}
		}
	}

	t := &transposer{
		steps:     steps,
		targetKey: targetKey,
		inSig:     Signature{},
		outSig:    Signature{},
		sharps:    PreferSharps(targetKey),
		inBar:     make(map[pitchKey]int),
		outBar:    make(map[pitchKey]int),
	}
	if targetKey == "" {
		t.sharps = PreferSharps(t.shiftedKeyName(firstKey(text)))
	}

	lines := splitLines(text)
	for i, line := range lines {
		out, err := t.line(line)
		if err != nil {
			return "", &TransposeError{Line: i + 1, Err: err}
		}
		lines[i] = out
	}
	return strings.Join(lines, "\n"), nil
}

func firstKey(text string) string {
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "K:") {
			return line[2:]
		}
	}
	return ""
}

func (t *transposer) line(line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "K:"):
		indent := line[:strings.Index(line, "K:")]
		return indent + "K:" + t.keyChange(trimmed[2:]), nil
	case trimmed == "",
		strings.HasPrefix(trimmed, commentPrefix),
		IsHeader(trimmed),
		lowerFieldLine.MatchString(trimmed):
		return line, nil
	}

	toks, err := tokenize(line)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, tok := range toks {
		switch tok.kind {
		case tokNote:
			sb.WriteString(t.note(tok))
		case tokBar:
			t.inBar = make(map[pitchKey]int)
			t.outBar = make(map[pitchKey]int)
			sb.WriteString(tok.text)
		case tokChordSymbol:
			sb.WriteString(t.chordSymbol(tok.text))
		case tokField:
			sb.WriteString(t.inlineField(tok.text))
		default:
			sb.WriteString(tok.text)
		}
	}
	return sb.String(), nil
}

// keyChange switches the reading and writing signatures to a new K: value
// and returns the value to write. The first key of the tune becomes the
// requested target key; later key changes are shifted along with the notes.
func (t *transposer) keyChange(value string) string {
	t.keyLines++
	t.inSig = KeySignature(value)

	out := strings.TrimSpace(value)
	src, ok := ParseKey(value)
	switch {
	case t.keyLines == 1 && t.targetKey != "":
		out = t.targetKey
		if ok {
			out += src.Rest
		}
	case ok:
		out = t.shiftedKeyName(value)
	}
	t.outSig = KeySignature(out)
	t.sharps = PreferSharps(out)
	return out
}

func (t *transposer) shiftedKeyName(value string) string {
	k, ok := ShiftKey(value, t.steps)
	if !ok {
		return strings.TrimSpace(value)
	}
	return k.Name() + k.Rest
}

func (t *transposer) inlineField(text string) string {
	if len(text) < 4 || text[1] != 'K' {
		return text
	}
	return "[K:" + t.keyChange(text[3:len(text)-1]) + "]"
}

func (t *transposer) note(tok token) string {
	pk := pitchKey{tok.letter, tok.octave}
	offset, inBar := t.inBar[pk]
	switch {
	case tok.hasAcc:
		offset = tok.accidental
		t.inBar[pk] = offset
	case !inBar:
		offset = t.inSig.Offset(tok.letter)
	}

	abs := tok.octave*12 + letterSemitones[tok.letter] + offset + t.steps
	octave := floorDiv(abs, 12)
	letter, acc := spell(abs-octave*12, t.sharps)

	out := pitchKey{letter, octave}
	symbol := ""
	if acc != 0 {
		symbol = accidentalSymbol(acc)
		t.outBar[out] = acc
	} else {
		current, ok := t.outBar[out]
		if !ok {
			current = t.outSig.Offset(letter)
		}
		if current != 0 {
			symbol = "="
			t.outBar[out] = 0
		}
	}
	return renderNote(symbol, letter, octave)
}

// chordSymbol transposes the root and bass of a quoted chord such as
// "F#m7/C#". Other annotations are returned untouched.
func (t *transposer) chordSymbol(text string) string {
	inner := text[1 : len(text)-1]
	if inner == "" || !isNoteLetter(inner[0]) || inner[0] >= 'a' {
		return text
	}
	var sb strings.Builder
	sb.WriteByte('"')
	i := t.chordNote(&sb, inner, 0)
	for i < len(inner) {
		if inner[i] == '/' && i+1 < len(inner) && inner[i+1] >= 'A' && inner[i+1] <= 'G' {
			sb.WriteByte('/')
			i = t.chordNote(&sb, inner, i+1)
			continue
		}
		sb.WriteByte(inner[i])
		i++
	}
	sb.WriteByte('"')
	return sb.String()
}

func (t *transposer) chordNote(sb *strings.Builder, s string, i int) int {
	letter := s[i]
	pc := letterSemitones[letter]
	i++
	if i < len(s) {
		switch s[i] {
		case '#':
			pc++
			i++
		case 'b':
			pc--
			i++
		}
	}
	l, acc := spell(mod12(pc+t.steps), t.sharps)
	sb.WriteByte(l)
	switch acc {
	case 1:
		sb.WriteByte('#')
	case -1:
		sb.WriteByte('b')
	}
	return i
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
