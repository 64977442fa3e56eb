package tagger

// ExpandFunc supplies the alternate symbols a candidate may substitute for an
// input rune after its strict advance fails. A nil ExpandFunc disables
// substitution entirely.
type ExpandFunc func(r rune) []rune

// Match is one tagged occurrence of a dictionary entry inside a scanned
// sequence. Start and End are rune positions, End exclusive. Strict is true
// when every symbol on the path was consumed literally, false when at least
// one fuzzy substitution was needed.
type Match struct {
	Start  int
	End    int
	Text   string
	Strict bool
	Value  Value
}

// candidate is one live partial match: a cursor into the trie plus whether its
// path so far consumed only unmodified input symbols.
type candidate struct {
	cursor Cursor
	strict bool
}

// step advances the candidate by r. The literal continuation always wins and
// keeps the strictness; only when it does not exist are the expanded forms
// tried, each surviving one yielding a non-strict successor. An empty result
// prunes the candidate, there is no backtracking.
func (c candidate) step(r rune, expand ExpandFunc) []candidate {
	if next, ok := c.cursor.Advance(r); ok {
		return []candidate{{cursor: next, strict: c.strict}}
	}
	if expand == nil {
		return nil
	}
	var out []candidate
	for _, alt := range expand(r) {
		if next, ok := c.cursor.Advance(alt); ok {
			out = append(out, candidate{cursor: next, strict: false})
		}
	}
	return out
}

// FindMatches runs the cursor-set scan over symbols: every position spawns a
// fresh root candidate, every live candidate is advanced by the current rune,
// and every candidate landing on a terminal node emits a match. Overlapping
// and nested matches are all reported; nothing is deduplicated or ranked.
// Emission order is non-decreasing by End, then by candidate spawn order,
// which is ascending Start.
func FindMatches(trie *Trie, expand ExpandFunc, symbols []rune) []Match {
	var (
		cands   []candidate
		matches []Match
	)
	for offset, r := range symbols {
		cands = append(cands, candidate{cursor: trie.Root(), strict: true})

		next := make([]candidate, 0, len(cands))
		for _, cand := range cands {
			next = append(next, cand.step(r, expand)...)
		}
		cands = next

		for _, cand := range cands {
			v, ok := cand.cursor.Value()
			if !ok {
				continue
			}
			matches = append(matches, Match{
				Start:  offset + 1 - cand.cursor.Depth(),
				End:    offset + 1,
				Text:   string(cand.cursor.Path()),
				Strict: cand.strict,
				Value:  v,
			})
		}
	}
	return matches
}
