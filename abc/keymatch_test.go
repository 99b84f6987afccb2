package abc

import "testing"

func TestMatchKey(t *testing.T) {
	catalogue := []string{"C", "D", "G", "A", "E Minor", "B Minor", "A Dorian", "D Mixolydian"}
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"D", "D", true},
		{"d", "D", true},
		{"Dmixolydian", "D Mixolydian", true},
		{"Eminor", "E Minor", true},
		{"Bm", "B Minor", true},
		{"Gmajor", "G", true},
		{"Ador", "A Dorian", true},
		{"Ddorian", "D", true},
		{"D Mixolydain", "D Mixolydian", true},
		{"zzzzzzzz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchKey(tt.name, catalogue)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MatchKey(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
