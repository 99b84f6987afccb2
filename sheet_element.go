package main

import (
	"fmt"
	"strings"

	"github.com/rigelrozanski/tunetrack/abc"
)

// size of the music text, set once per sheet from the longest line
var musicFontPt = maxMusicFontPt

// size of words and field lines relative to the music
const smallSizeMul = 0.65

// a printable piece of a tune sheet
type sheetElement interface {
	printPDF(Pdf, bounds) (reduced bounds)
	parseText(lines []string) (reducedLines []string, elem sheetElement, err error)
}

// ---------------------------------------------------------

// blank line in the music
type spacer struct{}

var _ sheetElement = spacer{}

func (s spacer) parseText(lines []string) (reduced []string, elem sheetElement, err error) {
	if len(lines) < 1 || strings.TrimSpace(lines[0]) != "" {
		return lines, elem, fmt.Errorf("not a blank line")
	}
	return lines[1:], spacer{}, nil
}

func (s spacer) printPDF(pdf Pdf, bnd bounds) (reduced bounds) {
	return bounds{bnd.top + 0.5*GetFontHeight(musicFontPt), bnd.left, bnd.bottom, bnd.right}
}

// ---------------------------------------------------------

// part label such as "P:A", printed bold ahead of the part's music
type partLabel struct {
	label string
}

var _ sheetElement = partLabel{}

func (p partLabel) parseText(lines []string) (reduced []string, elem sheetElement, err error) {
	if len(lines) < 1 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "P:") {
		return lines, elem, fmt.Errorf("not a part label")
	}
	label := strings.TrimSpace(strings.TrimSpace(lines[0])[2:])
	return lines[1:], partLabel{label}, nil
}

func (p partLabel) printPDF(pdf Pdf, bnd bounds) (reduced bounds) {
	pdf.SetFont("courier", "B", musicFontPt)
	fontH := GetFontHeight(musicFontPt)
	pdf.Text(bnd.left, bnd.top+1.3*fontH, p.label)
	return bounds{bnd.top + 1.3*fontH, bnd.left, bnd.bottom, bnd.right}
}

// ---------------------------------------------------------

// words ("w:" and "W:") and mid-tune fields ("K:", "M:", "L:"), printed
// small under the music they follow
type fieldLine struct {
	text string
}

var _ sheetElement = fieldLine{}

func (f fieldLine) parseText(lines []string) (reduced []string, elem sheetElement, err error) {
	if len(lines) < 1 {
		return lines, elem, fmt.Errorf("no lines")
	}
	line := strings.TrimSpace(lines[0])
	switch {
	case strings.HasPrefix(line, "w:"), strings.HasPrefix(line, "W:"):
		return lines[1:], fieldLine{strings.TrimSpace(line[2:])}, nil
	case abc.IsHeader(line):
		return lines[1:], fieldLine{line}, nil
	}
	return lines, elem, fmt.Errorf("not a field line")
}

func (f fieldLine) printPDF(pdf Pdf, bnd bounds) (reduced bounds) {
	fontPt := smallSizeMul * musicFontPt
	pdf.SetFont("courier", "I", fontPt)
	fontH := GetFontHeight(fontPt)
	pdf.Text(bnd.left, bnd.top+1.2*fontH, f.text)
	return bounds{bnd.top + 1.4*fontH, bnd.left, bnd.bottom, bnd.right}
}

// ---------------------------------------------------------

// one line of music notation
type musicLine struct {
	notes string
}

var _ sheetElement = musicLine{}

func (m musicLine) parseText(lines []string) (reduced []string, elem sheetElement, err error) {
	if len(lines) < 1 {
		return lines, elem,
			fmt.Errorf("improper number of input lines,"+
				" want 1 have %v", len(lines))
	}
	return lines[1:], musicLine{strings.TrimSpace(lines[0])}, nil
}

func (m musicLine) printPDF(pdf Pdf, bnd bounds) (reduced bounds) {
	pdf.SetFont("courier", "", musicFontPt)
	fontH := GetFontHeight(musicFontPt)
	fontW := GetCourierFontWidthFromHeight(fontH)
	yLine := bnd.top + 1.3*fontH

	// printed char by char, the measured courier width is more reliable
	// than the one gofpdf uses for whole strings
	for i, ch := range m.notes {
		pdf.Text(bnd.left+float64(i)*fontW, yLine, string(ch))
	}
	pdf.SetLineWidth(thinestLW)
	yRule := yLine + 0.3*fontH
	pdf.Line(bnd.left, yRule, bnd.left+float64(len(m.notes))*fontW, yRule)
	return bounds{bnd.top + 1.6*fontH, bnd.left, bnd.bottom, bnd.right}
}

// musicLines are the lines the font is sized from
func musicLines(lines []string) (out []string) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || abc.IsHeader(line) || strings.HasPrefix(line, "w:") {
			continue
		}
		out = append(out, line)
	}
	return out
}
