package tagger

import (
	"strings"
	"unicode"
)

// punctuation is the set of symbols that collapse to a single placeholder under
// fuzzy normalization, so "TNF-alpha", "TNF/alpha" and "TNF.alpha" share one
// trie path.
const punctuation = `/|-.\:,;+()`

// punctPlaceholder is the canonical form every punctuation rune folds to.
const punctPlaceholder = '.'

// boundary is the sentinel rune wrapped around whole-word dictionary paths and
// around scanned lines, standing in for word and line edges.
const boundary = ' '

// maxFoldVariants caps insertion-side fold expansion for pathological entries.
const maxFoldVariants = 16

// IsPunct reports whether r belongs to the collapsible punctuation set.
func IsPunct(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// FoldRune maps a rune to its canonical fuzzy form: punctuation collapses to
// the placeholder, everything else folds to lower case. Applying it twice
// yields the same result as applying it once.
func FoldRune(r rune) rune {
	if IsPunct(r) {
		return punctPlaceholder
	}
	return unicode.ToLower(r)
}

// FoldRunes returns a fresh slice with FoldRune applied to every rune. The
// same fold is used for fuzzy dictionary paths and for scan-time substitution
// decisions, so the two sides always agree on canonical forms.
func FoldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = FoldRune(r)
	}
	return out
}

// Expand returns the alternate forms of r a scan may try after a strict
// advance fails: the placeholder for punctuation, the simple-fold orbit for
// cased letters, nothing for everything else. Each returned form spawns its
// own non-strict candidate.
func Expand(r rune) []rune {
	if IsPunct(r) {
		return []rune{punctPlaceholder}
	}
	var out []rune
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		out = append(out, f)
	}
	return out
}

// foldVariants returns every folded rendering of rs for dictionary insertion.
// Almost always this is the single canonical fold; it grows only when a rune's
// fold orbit carries more than one folded form (Greek sigma is the usual
// case). Inserting each variant as its own path keeps every folding reachable
// while scans only ever substitute through one expansion step.
func foldVariants(rs []rune) [][]rune {
	variants := [][]rune{FoldRunes(rs)}
	for i, r := range rs {
		extra := foldedForms(r)
		if len(extra) == 0 {
			continue
		}
		base := len(variants)
		for _, alt := range extra {
			for j := 0; j < base; j++ {
				if len(variants) >= maxFoldVariants {
					return variants
				}
				v := make([]rune, len(rs))
				copy(v, variants[j])
				v[i] = alt
				variants = append(variants, v)
			}
		}
	}
	return variants
}

// foldedForms lists the folded forms of r other than its canonical fold:
// non-uppercase members of the canonical form's simple-fold orbit.
func foldedForms(r rune) []rune {
	if IsPunct(r) {
		return nil
	}
	canon := FoldRune(r)
	var out []rune
	for f := unicode.SimpleFold(canon); f != canon; f = unicode.SimpleFold(f) {
		if unicode.IsUpper(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
