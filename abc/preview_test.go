package abc

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitBars(t *testing.T) {
	tests := []struct {
		music string
		want  []string
	}{
		{"A B [C|D] E|F", []string{"A B [C|D] E|", "F"}},
		{"|:ABc def|gfe dcB:|", []string{"|:ABc def|", "gfe dcB:|"}},
		{"D|GAB|cBA|", []string{"D|", "GAB|", "cBA|"}},
		{"ab||cd|]", []string{"ab||", "cd|]"}},
		{"[CE]G|[DF]A|", []string{"[CE]G|", "[DF]A|"}},
		{"ab [|cd", []string{"ab[|", "cd"}},
		{"ab| |", []string{"ab||"}},
		{"|:AB|cd|[1 ef:|[2 ga|bc|de|fg|", []string{"|:AB|", "cd|", "[1 ef:|", "[2 ga|", "bc|", "de|", "fg|"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := SplitBars(Document{Music: []string{tt.music}})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitBars(%q) = %q, want %q", tt.music, got, tt.want)
		}
	}
}

func TestExtractPreviewBracketedBarLine(t *testing.T) {
	got := ExtractPreview("A B [C|D] E|F", 1)
	if got != "A B [C|D] E|" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractPreview(t *testing.T) {
	tune := "X:1\nT:The Kesh\nM:6/8\nK:G\n|:GAG GAB|ABA ABd|\nedd gdd|edB dBA:|\n"
	tests := []struct {
		name    string
		text    string
		numBars int
		want    string
	}{
		{
			name:    "first two bars",
			text:    tune,
			numBars: 2,
			want:    "X:1\nT:The Kesh\nM:6/8\nK:G\n|:GAG GAB| ABA ABd|",
		},
		{
			name:    "bars span lines",
			text:    tune,
			numBars: 3,
			want:    "X:1\nT:The Kesh\nM:6/8\nK:G\n|:GAG GAB| ABA ABd| edd gdd|",
		},
		{
			name:    "fewer bars than asked",
			text:    tune,
			numBars: 10,
			want:    "X:1\nT:The Kesh\nM:6/8\nK:G\n|:GAG GAB| ABA ABd| edd gdd| edB dBA:|",
		},
		{
			name:    "pickup counts",
			text:    "K:G\nD|GAB|cBA|",
			numBars: 2,
			want:    "K:G\nD| GAB|",
		},
		{
			name:    "endings count as bars",
			text:    "K:D\nAB|[1 cd:|[2 ef|ga|bc|de|",
			numBars: 4,
			want:    "K:D\nAB| [1 cd:| [2 ef| ga|",
		},
		{
			name:    "no music",
			text:    "X:1\nT:Only headers",
			numBars: 4,
			want:    "X:1\nT:Only headers",
		},
		{
			name:    "zero bars means one",
			text:    "K:D\nab|cd|",
			numBars: 0,
			want:    "K:D\nab|",
		},
		{
			name:    "empty",
			text:    "",
			numBars: 4,
			want:    "",
		},
	}
	for _, tt := range tests {
		if got := ExtractPreview(tt.text, tt.numBars); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExtractPreviewBarCount(t *testing.T) {
	text := "X:1\nK:D\nA|B|C|D|E|F|G"
	for n := 1; n <= 9; n++ {
		got := ExtractPreview(text, n)
		music := strings.TrimPrefix(got, "X:1\nK:D\n")
		bars := SplitBars(Document{Music: []string{music}})
		want := n
		if want > 7 {
			want = 7
		}
		if len(bars) != want {
			t.Errorf("ExtractPreview(_, %d) has %d bars (%q), want %d", n, len(bars), music, want)
		}
	}
}
