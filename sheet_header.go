package main

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/rigelrozanski/tunetrack/abc"
)

type headerContent struct {
	title      string
	titleLine2 string
	composer   string
	origin     string
	rhythm     string
	key        string
	meter      string
	tempo      string
}

// parseHeader takes the header fields up to and including the first K:
// line. Blank lines before the music are skipped.
func parseHeader(lines []string) (reduced []string, hc headerContent, err error) {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !abc.IsHeader(line) {
			break
		}
		value := strings.TrimSpace(line[2:])
		switch line[0] {
		case 'T':
			if hc.title == "" {
				hc.title = value
			} else if hc.titleLine2 == "" {
				hc.titleLine2 = value
			}
		case 'C':
			hc.composer = value
		case 'O':
			hc.origin = value
		case 'R':
			hc.rhythm = value
		case 'M':
			hc.meter = value
		case 'Q':
			hc.tempo = value
		case 'K':
			hc.key = value
			if hc.title == "" {
				hc.title = "untitled"
			}
			return lines[i+1:], hc, nil
		}
	}
	return lines, hc, errors.New("must include a K: header before the music")
}

// keyLabel spells the key out in full when it can be parsed.
func (hc headerContent) keyLabel() string {
	if k, ok := abc.ParseKey(hc.key); ok {
		return k.LongName()
	}
	return hc.key
}

// bpm is the beats per minute of a Q: field such as "1/4=120" or "120".
func (hc headerContent) bpm() string {
	if i := strings.LastIndex(hc.tempo, "="); i >= 0 {
		return strings.TrimSpace(hc.tempo[i+1:])
	}
	return strings.TrimSpace(hc.tempo)
}

func (hc headerContent) infoLine() string {
	var parts []string
	for _, s := range []string{hc.rhythm, hc.composer, hc.origin} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " / ")
}

func printHeader(pdf Pdf, bnd bounds, hc headerContent) (reducedBounds bounds) {
	infoRightOffset := 2.3

	// key, meter and tempo block on the right
	pdf.SetFont("courier", "", 14)
	fontH := GetFontHeight(14)
	fontW := GetCourierFontWidthFromHeight(fontH)
	xInfo := bnd.right - infoRightOffset
	pdf.Text(xInfo, bnd.top+padding-0.5*fontH, "KEY:"+hc.keyLabel())

	if splt := strings.SplitN(hc.meter, "/", 2); len(splt) == 2 {
		pdf.Text(xInfo, bnd.top+padding+1.3*fontH, splt[0])
		pdf.Text(xInfo, bnd.top+padding+2.5*fontH, splt[1])
		frX2 := xInfo + fontW*float64(maxInt(len(splt[0]), len(splt[1])))
		frY := bnd.top + padding + 1.5*fontH
		pdf.SetLineWidth(thinLW)
		pdf.Line(xInfo, frY, frX2, frY) // fraction line
	} else if hc.meter != "" {
		pdf.Text(xInfo, bnd.top+padding+1.9*fontH, hc.meter)
	}

	if bpm := hc.bpm(); bpm != "" {
		pdf.Text(xInfo, bnd.top+padding+1.3*fontH, "    "+bpm)
		pdf.Text(xInfo, bnd.top+padding+2.5*fontH, "    BPM")
	}
	blockBottom := bnd.top + padding + 3*fontH

	// smaller rhythm, composer and origin line under the block
	info := hc.infoLine()
	if info != "" {
		pdf.SetFont("courier", "", 9)
		infoFontH := GetFontHeight(9)
		pdf.Text(bnd.left, blockBottom+infoFontH, info)
		blockBottom += 1.5 * infoFontH
	}

	////////////////////////
	// print title
	// determine title font
	titleFont := 40.0
	titleFontH, titleFontW, usedHeight := 0.0, 0.0, 0.0
	availableWidth := bnd.right - infoRightOffset - bnd.left - padding/2
	availableHeight := bnd.top + padding + 3*fontH - (bnd.top + padding/2)
	for titleFont > 1 {
		titleFontH = 1.1 * GetFontHeight(titleFont)
		titleFontW = GetCourierFontWidthFromHeight(titleFontH)
		usedWidth1 := float64(len(hc.title)) * titleFontW
		usedWidth2 := float64(len(hc.titleLine2)) * titleFontW
		usedHeight = titleFontH
		if len(hc.titleLine2) > 0 {
			usedHeight += usedHeight
		}
		if usedWidth1 > availableWidth ||
			usedWidth2 > availableWidth ||
			usedHeight > availableHeight {
			titleFont -= 1
			continue
		}
		break
	}

	pdf.SetFont("courier", "", titleFont)
	excess := availableHeight - usedHeight
	if len(hc.titleLine2) == 0 {
		pdf.Text(bnd.left, bnd.top+usedHeight+excess/2, hc.title)
	} else {
		pdf.Text(bnd.left, bnd.top+titleFontH+excess/2, hc.title)
		pdf.Text(bnd.left, bnd.top+2*titleFontH+excess/2, hc.titleLine2)
	}

	pdf.SetLineWidth(thickerLW)
	pdf.Line(bnd.left, blockBottom+padding/2, bnd.right-padding, blockBottom+padding/2)
	return bounds{blockBottom + padding, bnd.left, bnd.bottom, bnd.right}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
