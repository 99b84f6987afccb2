package abc

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// semitone of each natural letter above C
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// SemitoneOf returns the pitch class of a natural note letter (either case).
// The second return is false for anything other than A-G.
func SemitoneOf(letter byte) (int, bool) {
	st, ok := letterSemitones[upper(letter)]
	return st, ok
}

// Mode is a diatonic mode of a key signature
type Mode int

const (
	Major Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Minor
	Locrian
)

var modeNames = []struct {
	mode   Mode
	abbrev string // canonical ABC suffix
	long   string
	shift  int // fifths relative to major on the same tonic
}{
	{Major, "", "major", 0},
	{Dorian, "dor", "dorian", -2},
	{Phrygian, "phr", "phrygian", -4},
	{Lydian, "lyd", "lydian", 1},
	{Mixolydian, "mix", "mixolydian", -1},
	{Minor, "m", "minor", -3},
	{Locrian, "loc", "locrian", -5},
}

func (m Mode) String() string { return modeNames[m].long }

// fifths of the natural-letter major keys around the circle
var rootFifths = map[byte]int{
	'F': -1, 'C': 0, 'G': 1, 'D': 2, 'A': 3, 'E': 4, 'B': 5,
}

const (
	orderOfSharps = "FCGDAEB"
	orderOfFlats  = "BEADGCF"
)

// Signature maps a note letter (uppercase) to the semitone offset the key
// applies to it. Letters absent from the map are natural.
type Signature map[byte]int

// Offset of the letter (either case) under the signature.
func (s Signature) Offset(letter byte) int {
	return s[upper(letter)]
}

// Key is a parsed key name such as "G", "F#m", "A Dorian" or "Dmixolydian".
type Key struct {
	Root       byte // uppercase A-G
	Accidental int  // -1 flat, +1 sharp
	Mode       Mode
	Rest       string // anything trailing the mode, e.g. " clef=bass"
}

// Tonic is the pitch class of the key's root.
func (k Key) Tonic() int {
	return mod12(letterSemitones[k.Root] + k.Accidental)
}

// Fifths is the number of sharps (positive) or flats (negative) in the key.
func (k Key) Fifths() int {
	return rootFifths[k.Root] + 7*k.Accidental + modeNames[k.Mode].shift
}

// Name renders the key in canonical ABC spelling, e.g. "Bbm" or "Emix".
func (k Key) Name() string {
	return k.root() + modeNames[k.Mode].abbrev
}

// LongName renders the key for display, e.g. "D Mixolydian".
func (k Key) LongName() string {
	return k.root() + " " + titleCaser.String(modeNames[k.Mode].long)
}

func (k Key) root() string {
	s := string(k.Root)
	switch k.Accidental {
	case 1:
		s += "#"
	case -1:
		s += "b"
	}
	return s
}

func (k Key) normalized() string {
	return k.root() + " " + modeNames[k.Mode].abbrev
}

var (
	foldCaser  = cases.Fold()
	titleCaser = cases.Title(language.English)
)

// ParseKey reads a key name. Mode words are matched on their first three
// letters case-insensitively, with or without a separating space. Text
// after the root that is not a mode must be set off by a space; it is left
// in Rest and the key is taken as major.
func ParseKey(name string) (Key, bool) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Key{}, false
	}
	root := upper(s[0])
	if _, ok := rootFifths[root]; !ok {
		return Key{}, false
	}
	k := Key{Root: root}
	i := 1
	if i < len(s) {
		switch s[i] {
		case '#':
			k.Accidental = 1
			i++
		case 'b':
			k.Accidental = -1
			i++
		}
	}
	rest := s[i:]
	trimmed := strings.TrimLeft(rest, " ")
	j := 0
	for j < len(trimmed) && isAlpha(trimmed[j]) {
		j++
	}
	word := foldCaser.String(trimmed[:j])
	if mode, ok := lookupMode(word); ok {
		k.Mode = mode
		k.Rest = trimmed[j:]
		return k, true
	}
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return Key{}, false
	}
	k.Rest = rest
	return k, true
}

func lookupMode(word string) (Mode, bool) {
	switch {
	case word == "m":
		return Minor, true
	case len(word) < 3:
		return Major, false
	}
	switch word[:3] {
	case "maj", "ion":
		return Major, true
	case "min", "aeo":
		return Minor, true
	case "dor":
		return Dorian, true
	case "phr":
		return Phrygian, true
	case "lyd":
		return Lydian, true
	case "mix":
		return Mixolydian, true
	case "loc":
		return Locrian, true
	}
	return Major, false
}

// keySignatures holds every spelled root in every mode, keyed by
// normalized name. It is filled once and never written afterwards.
var keySignatures = buildKeySignatures()

func buildKeySignatures() map[string]Signature {
	sigs := make(map[string]Signature)
	for _, root := range []byte("CDEFGAB") {
		for acc := -1; acc <= 1; acc++ {
			for _, mn := range modeNames {
				k := Key{Root: root, Accidental: acc, Mode: mn.mode}
				sigs[k.normalized()] = signatureFromFifths(k.Fifths())
			}
		}
	}
	return sigs
}

func signatureFromFifths(n int) Signature {
	sig := make(Signature)
	for i := 0; i < n; i++ {
		sig[orderOfSharps[i%7]]++
	}
	for i := 0; i < -n; i++ {
		sig[orderOfFlats[i%7]]--
	}
	return sig
}

// KeySignature returns the per-letter offsets of the named key. Unknown or
// empty names resolve to an empty signature (C major).
func KeySignature(name string) Signature {
	k, ok := ParseKey(name)
	if !ok {
		return Signature{}
	}
	return k.Signature()
}

// Signature returns a copy of the key's offsets.
func (k Key) Signature() Signature {
	sig := Signature{}
	for letter, offset := range keySignatures[k.normalized()] {
		sig[letter] = offset
	}
	return sig
}

var sharpRoots = "GDAEB"

// PreferSharps reports whether a transposed note should be spelled with a
// sharp rather than a flat under the named key.
func PreferSharps(name string) bool {
	if strings.Contains(name, "#") {
		return true
	}
	k, ok := ParseKey(name)
	if !ok || k.Accidental < 0 {
		return false
	}
	return strings.IndexByte(sharpRoots, k.Root) >= 0
}

// ShiftKey moves the key's tonic by steps semitones keeping its mode, and
// spells the new tonic with the fewest accidentals in the signature.
func ShiftKey(name string, steps int) (Key, bool) {
	k, ok := ParseKey(name)
	if !ok {
		return Key{}, false
	}
	tonic := mod12(k.Tonic() + steps)
	var best Key
	found := false
	for _, root := range []byte("CDEFGAB") {
		for acc := -1; acc <= 1; acc++ {
			cand := Key{Root: root, Accidental: acc, Mode: k.Mode, Rest: k.Rest}
			if cand.Tonic() != tonic {
				continue
			}
			if !found || abs(cand.Fifths()) < abs(best.Fifths()) ||
				(abs(cand.Fifths()) == abs(best.Fifths()) && cand.Accidental == 0) {
				best, found = cand, true
			}
		}
	}
	return best, found
}

// spell returns the letter and accidental offset used to write the pitch
// class: a natural letter when one exists, otherwise the sharp or flat of
// a neighbour.
func spell(pc int, sharps bool) (letter byte, acc int) {
	for _, l := range []byte("CDEFGAB") {
		if letterSemitones[l] == pc {
			return l, 0
		}
	}
	if sharps {
		l, _ := spell(mod12(pc-1), sharps)
		return l, 1
	}
	l, _ := spell(mod12(pc+1), sharps)
	return l, -1
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
