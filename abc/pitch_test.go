package abc

import "testing"

func TestSemitoneOf(t *testing.T) {
	tests := []struct {
		letter byte
		want   int
		ok     bool
	}{
		{'C', 0, true},
		{'d', 2, true},
		{'E', 4, true},
		{'F', 5, true},
		{'g', 7, true},
		{'A', 9, true},
		{'B', 11, true},
		{'H', 0, false},
		{'z', 0, false},
	}
	for _, tt := range tests {
		got, ok := SemitoneOf(tt.letter)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SemitoneOf(%q) = %d, %v, want %d, %v", tt.letter, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeySignature(t *testing.T) {
	tests := []struct {
		name string
		want map[byte]int // altered letters only
	}{
		{"C", nil},
		{"D", map[byte]int{'F': 1, 'C': 1}},
		{"Gmajor", map[byte]int{'F': 1}},
		{"G Mixolydian", nil},
		{"Dmixolydian", map[byte]int{'F': 1}},
		{"A Min", nil},
		{"Ador", map[byte]int{'F': 1}},
		{"E minor", map[byte]int{'F': 1}},
		{"F#m", map[byte]int{'F': 1, 'C': 1, 'G': 1}},
		{"Bb", map[byte]int{'B': -1, 'E': -1}},
		{"F", map[byte]int{'B': -1}},
		{"C#", map[byte]int{'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'A': 1, 'B': 1}},
		{"G#", map[byte]int{'F': 2, 'C': 1, 'D': 1, 'E': 1, 'G': 1, 'A': 1, 'B': 1}},
		{"HP", nil},
		{"none", nil},
		{"", nil},
	}
	for _, tt := range tests {
		sig := KeySignature(tt.name)
		for _, l := range []byte("CDEFGAB") {
			if got := sig.Offset(l); got != tt.want[l] {
				t.Errorf("KeySignature(%q) offset of %c = %d, want %d", tt.name, l, got, tt.want[l])
			}
		}
	}
}

func TestKeySignatureIsACopy(t *testing.T) {
	sig := KeySignature("D")
	sig['B'] = -1
	sig['F'] = 0
	fresh := KeySignature("D")
	if len(fresh) != 2 || fresh['F'] != 1 || fresh['C'] != 1 {
		t.Fatalf("signature table changed by a caller: %v", fresh)
	}
}

func TestKeySignatureUnrecognised(t *testing.T) {
	for _, name := range []string{"Bogus", "Hp", "Capo"} {
		if sig := KeySignature(name); len(sig) != 0 {
			t.Errorf("KeySignature(%q) = %v, want empty", name, sig)
		}
	}
}

func TestSignatureOffsetLowercase(t *testing.T) {
	sig := KeySignature("D")
	if sig.Offset('f') != 1 || sig.Offset('c') != 1 {
		t.Fatalf("lowercase letters should share the signature of uppercase ones")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"D", Key{Root: 'D'}, true},
		{"A Min", Key{Root: 'A', Mode: Minor}, true},
		{"Dmixolydian", Key{Root: 'D', Mode: Mixolydian}, true},
		{"Bbm", Key{Root: 'B', Accidental: -1, Mode: Minor}, true},
		{"F# dorian", Key{Root: 'F', Accidental: 1, Mode: Dorian}, true},
		{"Em clef=bass", Key{Root: 'E', Mode: Minor, Rest: " clef=bass"}, true},
		{"D clef=bass", Key{Root: 'D', Rest: " clef=bass"}, true},
		{"Eb Lydian", Key{Root: 'E', Accidental: -1, Mode: Lydian}, true},
		{"xyz", Key{}, false},
		{"Bogus", Key{}, false},
		{"Gmajor", Key{Root: 'G'}, true},
		{"  ", Key{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseKey(%q) = %+v, %v, want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyNames(t *testing.T) {
	k, _ := ParseKey("dmixolydian")
	if k.Name() != "Dmix" {
		t.Errorf("Name() = %q, want %q", k.Name(), "Dmix")
	}
	if k.LongName() != "D Mixolydian" {
		t.Errorf("LongName() = %q, want %q", k.LongName(), "D Mixolydian")
	}
}

func TestPreferSharps(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"D", true},
		{"G Mixolydian", true},
		{"E minor", true},
		{"F#m", true},
		{"C#", true},
		{"C", false},
		{"F", false},
		{"Bb", false},
		{"Eb", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		if got := PreferSharps(tt.name); got != tt.want {
			t.Errorf("PreferSharps(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestShiftKey(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		want  string
	}{
		{"C", 2, "D"},
		{"D", -2, "C"},
		{"G", 1, "Ab"},
		{"Em", 1, "Fm"},
		{"Ador", 2, "Bdor"},
		{"G", 12, "G"},
		{"D Mixolydian", 5, "Gmix"},
	}
	for _, tt := range tests {
		k, ok := ShiftKey(tt.name, tt.steps)
		if !ok || k.Name() != tt.want {
			t.Errorf("ShiftKey(%q, %d) = %q, %v, want %q", tt.name, tt.steps, k.Name(), ok, tt.want)
		}
	}
	if _, ok := ShiftKey("nothing", 2); ok {
		t.Errorf("ShiftKey of an unknown key should fail")
	}
	k, _ := ShiftKey("D clef=bass", 2)
	if k.Rest != " clef=bass" {
		t.Errorf("ShiftKey dropped the trailing clef: %q", k.Rest)
	}
}
