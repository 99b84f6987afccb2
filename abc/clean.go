package abc

import (
	"strings"
)

// DefaultUnitLength is written as the L: header of synthesized documents.
const DefaultUnitLength = "1/8"

const lineBreakMarker = '!'

// Meta is the tune metadata used to synthesize a header block for a
// headerless fragment. Empty fields are omitted.
type Meta struct {
	Title string
	Key   string
	Meter string
}

// decorations that are written between a pair of '!' and so must not be
// mistaken for line break markers
var decorations = map[string]bool{
	"trill": true, "trill(": true, "trill)": true, "lowermordent": true,
	"uppermordent": true, "mordent": true, "pralltriller": true, "roll": true,
	"turn": true, "turnx": true, "invertedturn": true, "invertedturnx": true,
	"arpeggio": true, ">": true, "accent": true, "emphasis": true,
	"fermata": true, "invertedfermata": true, "tenuto": true, "0": true,
	"1": true, "2": true, "3": true, "4": true, "5": true, "+": true,
	"plus": true, "snap": true, "slide": true, "wedge": true, "upbow": true,
	"downbow": true, "open": true, "thumb": true, "breath": true, "pppp": true,
	"ppp": true, "pp": true, "p": true, "mp": true, "mf": true, "f": true,
	"ff": true, "fff": true, "ffff": true, "sfz": true, "crescendo(": true,
	"<(": true, "crescendo)": true, "<)": true, "diminuendo(": true,
	">(": true, "diminuendo)": true, ">)": true, "segno": true, "coda": true,
	"D.S.": true, "D.C.": true, "dacoda": true, "dacapo": true, "fine": true,
	"shortphrase": true, "mediumphrase": true, "longphrase": true,
	"trem1": true, "trem2": true, "trem3": true, "trem4": true,
}

// CleanAndComplete turns a fragment as delivered by an external tune
// database into renderable ABC. A fragment without an X: header gets a
// minimal header block (X, T, M, L, K in that order); embedded '!' line
// break markers become real line breaks. Malformed input is passed
// through as well as possible.
func CleanAndComplete(fragment string, meta Meta) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	var out strings.Builder
	doc := ClassifyLines(fragment)
	if _, ok := doc.Header('X'); !ok {
		writeHeader := func(field byte, value string) {
			if value == "" {
				return
			}
			if _, dup := doc.Header(field); dup {
				return
			}
			out.WriteByte(field)
			out.WriteByte(':')
			out.WriteString(value)
			out.WriteByte('\n')
		}
		out.WriteString("X:1\n")
		writeHeader('T', meta.Title)
		writeHeader('M', meta.Meter)
		writeHeader('L', DefaultUnitLength)
		writeHeader('K', meta.Key)
	}
	out.WriteString(normalizeLineBreaks(fragment))
	return out.String()
}

// normalizeLineBreaks expands '!' markers into newlines, drops the lines
// this leaves empty and collapses runs of blank lines.
func normalizeLineBreaks(text string) string {
	var lines []string
	blank := false
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(lines) > 0 && !blank {
				lines = append(lines, "")
				blank = true
			}
			continue
		}
		for _, piece := range splitMarkers(line) {
			if piece = strings.TrimSpace(piece); piece != "" {
				lines = append(lines, piece)
				blank = false
			}
		}
	}
	if blank {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func splitMarkers(line string) (pieces []string) {
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] != lineBreakMarker {
			continue
		}
		if end := strings.IndexByte(line[i+1:], lineBreakMarker); end >= 0 &&
			decorations[line[i+1:i+1+end]] {
			i += end + 1
			continue
		}
		pieces = append(pieces, line[start:i])
		start = i + 1
	}
	return append(pieces, line[start:])
}
