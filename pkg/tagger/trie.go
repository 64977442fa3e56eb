// Package tagger is the core, providing the dictionary trie, the traversal cursors
// and the cursor-set scanner that tags term occurrences inside text lines.
package tagger

// MatchType records which normalization variant of a dictionary entry produced
// a given trie path.
type MatchType int

const (
	Exact MatchType = iota
	Fuzzy
	WholeWord
	FuzzyWholeWord
)

// String returns the output name of the match type, used verbatim in the TSV
// and IPC renderings.
func (t MatchType) String() string {
	switch t {
	case Exact:
		return "Exact"
	case Fuzzy:
		return "Fuzzy"
	case WholeWord:
		return "WholeWord"
	case FuzzyWholeWord:
		return "FuzzyWholeWord"
	default:
		return "Unknown"
	}
}

// Value is the payload attached to a terminal trie node: the dictionary label
// to report plus the variant the path was inserted under.
type Value struct {
	Type  MatchType
	Label string
}

type node struct {
	children map[rune]*node
	value    *Value
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie maps rune sequences to Values. It is built once from the dictionary and
// read-only afterwards, which makes it safe to share between scans.
type Trie struct {
	root *node
	size int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert walks from the root, creating a child for every rune not yet present,
// and sets the terminal value of the final node. Inserting a second value at an
// identical path overwrites the first (last write wins).
func (t *Trie) Insert(key []rune, value Value) {
	n := t.root
	for _, r := range key {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
		}
		n = child
	}
	if n.value == nil {
		t.size++
	}
	v := value
	n.value = &v
}

// Len reports the number of terminal paths in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Root returns a cursor positioned at the root with an empty path.
func (t *Trie) Root() Cursor {
	return Cursor{node: t.root}
}
