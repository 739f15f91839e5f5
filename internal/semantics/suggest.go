package semantics

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"
)

const (
	suggestThreshold = 2
	suggestLimit     = 2
)

// Suggest proposes at most two vocabulary entries within Damerau-Levenshtein distance 2 of
// the word, closest first. Comparison ignores case.
func Suggest(word string, vocabulary []string) []string {
	type candidate struct {
		value    string
		distance int
	}

	w := strings.ToUpper(word)
	var cands []candidate
	for _, v := range vocabulary {
		d := edlib.DamerauLevenshteinDistance(w, strings.ToUpper(v))
		if d <= suggestThreshold {
			cands = append(cands, candidate{value: v, distance: d})
		}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return cmp.Compare(a.distance, b.distance)
	})

	var res []string
	for _, c := range cands[:min(len(cands), suggestLimit)] {
		res = append(res, c.value)
	}
	return res
}
