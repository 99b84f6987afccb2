package main

import (
	"math"
	"strings"
	"testing"
)

// recordingPdf keeps every string drawn
type recordingPdf struct {
	dummyPdf
	texts []string
}

func (r *recordingPdf) Text(x, y float64, txtStr string) {
	r.texts = append(r.texts, txtStr)
}

func (r *recordingPdf) has(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func TestParseHeader(t *testing.T) {
	lines := []string{
		"X:1", "T:The Kesh", "T:Kesh Jig", "R:jig", "C:Trad", "M:6/8",
		"Q:3/8=110", "K:Gmaj", "|:GAG GAB|", "K:D",
	}
	reduced, hc, err := parseHeader(lines)
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if len(reduced) != 2 || reduced[0] != "|:GAG GAB|" {
		t.Errorf("reduced = %q", reduced)
	}
	want := headerContent{
		title:      "The Kesh",
		titleLine2: "Kesh Jig",
		composer:   "Trad",
		rhythm:     "jig",
		key:        "Gmaj",
		meter:      "6/8",
		tempo:      "3/8=110",
	}
	if hc != want {
		t.Errorf("got %+v, want %+v", hc, want)
	}
	if got := hc.bpm(); got != "110" {
		t.Errorf("bpm = %q", got)
	}
	if got := hc.keyLabel(); got != "G Major" {
		t.Errorf("keyLabel = %q", got)
	}
	if got := hc.infoLine(); got != "jig / Trad" {
		t.Errorf("infoLine = %q", got)
	}
}

func TestParseHeaderDefaults(t *testing.T) {
	_, hc, err := parseHeader([]string{"", "X:1", "K:Ador"})
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if hc.title != "untitled" || hc.keyLabel() != "A Dorian" || hc.bpm() != "" {
		t.Errorf("got %+v", hc)
	}
}

func TestParseHeaderNoKey(t *testing.T) {
	for _, lines := range [][]string{
		{"X:1", "T:No key", "ABc|"},
		{},
	} {
		if _, _, err := parseHeader(lines); err == nil {
			t.Errorf("%q: expected an error", lines)
		}
	}
}

func TestSplitBoundsIntoColumns(t *testing.T) {
	cols := splitBoundsIntoColumns(bounds{1, 0, 11, 8}, 2)
	if len(cols) != 2 {
		t.Fatalf("got %d columns", len(cols))
	}
	if cols[0] != (bounds{1, 0, 11, 4}) || cols[1] != (bounds{1, 4, 11, 8}) {
		t.Errorf("got %+v", cols)
	}
	if w := cols[1].Width(); w != 4 {
		t.Errorf("width = %v", w)
	}
	if h := cols[0].Height(); h != 10 {
		t.Errorf("height = %v", h)
	}
}

func TestDetermineMusicFontPt(t *testing.T) {
	bnd := bounds{0, 0, 11, 8.25} // 8 inches once padded
	cases := []struct {
		name    string
		lines   []string
		want    float64
		wantErr bool
	}{
		{"short lines are capped", []string{"abc"}, maxMusicFontPt, false},
		{"longest line decides", []string{"abc", strings.Repeat("a", 80)}, 12.195, false},
		{"too long", []string{strings.Repeat("a", 200)}, 0, true},
		{"no music", nil, 0, true},
	}
	for _, c := range cases {
		got, err := determineMusicFontPt(c.lines, bnd)
		if (err != nil) != c.wantErr {
			t.Errorf("%s: err = %v", c.name, err)
			continue
		}
		if math.Abs(got-c.want) > 0.01 {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSheetElements(t *testing.T) {
	cases := []struct {
		elem sheetElement
		line string
		ok   bool
	}{
		{spacer{}, "", true},
		{spacer{}, "ABc", false},
		{partLabel{}, "P:A", true},
		{partLabel{}, "K:G", false},
		{fieldLine{}, "w:la la", true},
		{fieldLine{}, "K:G", true},
		{fieldLine{}, "ABc|", false},
		{musicLine{}, "ABc|", true},
	}
	for _, c := range cases {
		reduced, elem, err := c.elem.parseText([]string{c.line, "next"})
		if (err == nil) != c.ok {
			t.Errorf("%T %q: err = %v", c.elem, c.line, err)
			continue
		}
		if !c.ok {
			continue
		}
		if len(reduced) != 1 || elem == nil {
			t.Errorf("%T %q: reduced %q elem %v", c.elem, c.line, reduced, elem)
		}
	}
}

func TestRenderSheet(t *testing.T) {
	content := "X:1\nT:Tune\nM:4/4\nQ:1/4=96\nK:D\n" +
		"P:A\n|:ABcd|efga:| % first part\nw:la la\n\nK:G\nGABc|\n"
	pdf := &recordingPdf{}
	hc, err := renderSheet(pdf, content, 1)
	if err != nil {
		t.Fatalf("renderSheet: %v", err)
	}
	if hc.title != "Tune" {
		t.Errorf("title = %q", hc.title)
	}
	for _, want := range []string{"Tune", "KEY:D Major", "4", "    96", "A", "la la", "K:G", "|", "e"} {
		if !pdf.has(want) {
			t.Errorf("%q was not drawn, got %q", want, pdf.texts)
		}
	}
	for _, text := range pdf.texts {
		if strings.Contains(text, "first part") || text == "%" {
			t.Errorf("comment drawn: %q", text)
		}
	}
}

func TestRenderSheetColumns(t *testing.T) {
	content := "X:1\nT:Long\nK:D\n" + strings.Repeat("ABcd|efga|\n", 60)
	if _, err := renderSheet(dummyPdf{}, content, 1); err == nil {
		t.Errorf("expected 60 lines not to fit one column")
	}
	if _, err := renderSheet(dummyPdf{}, content, 2); err != nil {
		t.Errorf("two columns: %v", err)
	}
	long := "X:1\nT:Longer\nK:D\n" + strings.Repeat("ABcd|efga|\n", 300)
	if _, err := renderSheet(dummyPdf{}, long, 2); err == nil {
		t.Errorf("expected 300 lines not to fit the page")
	}
}
