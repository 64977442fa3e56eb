package tagger

import "errors"

// ErrEmptyTerm is returned by Add for dictionary entries with an empty term.
var ErrEmptyTerm = errors.New("empty dictionary term")

// Options fix the two normalization axes for the lifetime of one Tagger. They
// control both which variant paths the dictionary build inserts and which
// substitutions a scan may make, so builder and scanner can never disagree.
type Options struct {
	// Fuzzy permits matches that differ from the entry in case and
	// punctuation.
	Fuzzy bool
	// WholeWord forbids matches that are substrings of longer words.
	WholeWord bool
}

// Tagger owns the read-only dictionary trie and tags occurrences of its
// entries inside lines. Build it with Add calls, then call TagLine per input
// line; the trie is never mutated after tagging starts.
type Tagger struct {
	opts  Options
	trie  *Trie
	terms int
}

// New returns an empty Tagger with the given normalization options.
func New(opts Options) *Tagger {
	return &Tagger{opts: opts, trie: NewTrie()}
}

// Options returns the normalization options the tagger was built with.
func (tg *Tagger) Options() Options {
	return tg.opts
}

// Terms reports how many dictionary entries have been added.
func (tg *Tagger) Terms() int {
	return tg.terms
}

// Add inserts one dictionary entry under every variant path the enabled
// normalization axes call for: the literal path when whole-word matching is
// off, folded paths when fuzzy is on, and sentinel-wrapped counterparts when
// whole-word is on. Identical paths are last-write-wins, so an entry whose
// folded form equals its literal form keeps only the later variant's type.
func (tg *Tagger) Add(label, term string) error {
	if term == "" {
		return ErrEmptyTerm
	}
	runes := []rune(term)

	if tg.opts.Fuzzy {
		for _, v := range foldVariants(runes) {
			tg.trie.Insert(v, Value{Type: Fuzzy, Label: label})
		}
	}
	if tg.opts.WholeWord {
		tg.trie.Insert(wrap(runes), Value{Type: WholeWord, Label: label})
		if tg.opts.Fuzzy {
			for _, v := range foldVariants(runes) {
				tg.trie.Insert(wrap(v), Value{Type: FuzzyWholeWord, Label: label})
			}
		}
	} else {
		tg.trie.Insert(runes, Value{Type: Exact, Label: label})
	}
	tg.terms++
	return nil
}

// TagLine scans one newline-stripped line and returns every match, in the
// scan order FindMatches documents: first the plain pass over the raw runes,
// then the sentinel-wrapped pass that recognizes whole-word paths. Each pass
// keeps only the variant types it exists for, so a span is never reported
// twice by the same variant; a span matched by several variants is reported
// once per variant, undeduplicated.
func (tg *Tagger) TagLine(line string) []Match {
	runes := []rune(line)
	expand := tg.expandFunc()

	var matches []Match
	for _, m := range FindMatches(tg.trie, expand, runes) {
		if m.Value.Type == Exact || m.Value.Type == Fuzzy {
			matches = append(matches, m)
		}
	}

	if tg.opts.WholeWord {
		wrapped := wrap(runes)
		for _, m := range FindMatches(tg.trie, expand, wrapped) {
			if m.Value.Type != WholeWord && m.Value.Type != FuzzyWholeWord {
				continue
			}
			matches = append(matches, unwrapMatch(m))
		}
	}
	return matches
}

// expandFunc returns the scan-time substitution function, nil when fuzzy
// matching is off.
func (tg *Tagger) expandFunc() ExpandFunc {
	if !tg.opts.Fuzzy {
		return nil
	}
	return Expand
}

// wrap surrounds rs with one boundary sentinel on each side.
func wrap(rs []rune) []rune {
	out := make([]rune, 0, len(rs)+2)
	out = append(out, boundary)
	out = append(out, rs...)
	out = append(out, boundary)
	return out
}

// unwrapMatch translates a match from the sentinel-wrapped pass back into
// caller coordinates: the prepended sentinel's width comes off the offsets and
// the sentinel runes come off both ends of the span, so the match covers
// exactly the word it found.
func unwrapMatch(m Match) Match {
	text := []rune(m.Text)
	return Match{
		Start:  m.Start, // -1 for the prepended sentinel, +1 past the leading boundary
		End:    m.End - 2,
		Text:   string(text[1 : len(text)-1]),
		Strict: m.Strict,
		Value:  m.Value,
	}
}
