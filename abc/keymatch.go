package abc

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxKeyDistance bounds the edit distance accepted by MatchKey's last resort
const maxKeyDistance = 3

// MatchKey finds the catalogue entry naming the same key as the free-text
// key name, e.g. "Dmixolydian" against "D Mixolydian". Matching is best
// effort: an exact case-folded match wins, then the same tonic and mode,
// then the plain major key on the same root, then the closest spelling.
func MatchKey(name string, catalogue []string) (string, bool) {
	folded := foldCaser.String(strings.TrimSpace(name))
	if folded == "" {
		return "", false
	}
	for _, c := range catalogue {
		if foldCaser.String(strings.TrimSpace(c)) == folded {
			return c, true
		}
	}

	if k, ok := ParseKey(name); ok {
		for _, c := range catalogue {
			ck, ok := ParseKey(c)
			if ok && ck.Tonic() == k.Tonic() && ck.Mode == k.Mode &&
				strings.TrimSpace(ck.Rest) == "" {
				return c, true
			}
		}
		for _, c := range catalogue {
			ck, ok := ParseKey(c)
			if ok && ck.Root == k.Root && ck.Accidental == k.Accidental &&
				ck.Mode == Major && strings.TrimSpace(ck.Rest) == "" {
				return c, true
			}
		}
	}

	best, bestDist := "", maxKeyDistance+1
	for _, c := range catalogue {
		d := levenshtein.ComputeDistance(folded, foldCaser.String(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}
