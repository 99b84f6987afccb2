package abc

import (
	"strings"
	"testing"
)

func TestCleanAndCompleteSynthesizesHeaders(t *testing.T) {
	got := CleanAndComplete("GAB AGE|GAB AGE|", Meta{Title: "Test", Key: "Gmajor", Meter: "6/8"})
	want := "X:1\nT:Test\nM:6/8\nL:1/8\nK:Gmajor\nGAB AGE|GAB AGE|"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanAndComplete(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		meta     Meta
		want     string
	}{
		{
			name:     "empty",
			fragment: "  \n ",
			meta:     Meta{Title: "Ignored"},
			want:     "",
		},
		{
			name:     "no metadata",
			fragment: "abc|",
			want:     "X:1\nL:1/8\nabc|",
		},
		{
			name:     "existing headers kept",
			fragment: "X:5\nT:Foo\nK:D\nABc|! def|!gfe|",
			meta:     Meta{Title: "Bar", Key: "G"},
			want:     "X:5\nT:Foo\nK:D\nABc|\ndef|\ngfe|",
		},
		{
			name:     "declared key not duplicated",
			fragment: "K:D\nabc|",
			meta:     Meta{Key: "D"},
			want:     "X:1\nL:1/8\nK:D\nabc|",
		},
		{
			name:     "standalone markers dropped",
			fragment: "X:1\nK:G\nAB|\n!\ncd|",
			want:     "X:1\nK:G\nAB|\ncd|",
		},
		{
			name:     "blank runs collapsed",
			fragment: "X:1\nK:G\nAB|\n\n\n\ncd|\n\n",
			want:     "X:1\nK:G\nAB|\n\ncd|",
		},
		{
			name:     "decorations kept",
			fragment: "X:1\nK:G\nA!trill!B c|!d2 !fermata!e|",
			want:     "X:1\nK:G\nA!trill!B c|\nd2 !fermata!e|",
		},
		{
			name:     "crlf",
			fragment: "X:1\r\nK:D\r\nabc|\r\n",
			want:     "X:1\nK:D\nabc|",
		},
	}
	for _, tt := range tests {
		if got := CleanAndComplete(tt.fragment, tt.meta); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCleanAndCompleteNoDuplicateIndex(t *testing.T) {
	got := CleanAndComplete("X:1\nT:Reel\nK:D\n|:ABc!def:|", Meta{Title: "Reel"})
	if n := strings.Count(got, "X:"); n != 1 {
		t.Fatalf("found %d X: headers in %q", n, got)
	}
	if strings.Contains(got, "!") {
		t.Fatalf("line break marker left in %q", got)
	}
}

func TestCleanAndCompleteNeverEmpty(t *testing.T) {
	for _, in := range []string{"!", "!!!", "x", "%"} {
		if got := CleanAndComplete(in, Meta{}); got == "" {
			t.Errorf("CleanAndComplete(%q) returned nothing", in)
		}
	}
}
