package dict

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Inventory indexes loaded entries by term for prefix listings and duplicate
// detection. Two entries with the same term and different labels are a
// shadowing hazard (the later insert silently wins in the matcher), so Add
// flags them.
type Inventory struct {
	trie *patricia.Trie
	size int
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{trie: patricia.NewTrie()}
}

// BuildInventory indexes entries in order, logging a warning for every
// duplicate term that changes its label.
func BuildInventory(entries []Entry) *Inventory {
	inv := NewInventory()
	for _, e := range entries {
		if !inv.Add(e) {
			log.Warnf("Duplicate term %q relabeled to %q (last write wins)", e.Term, e.Label)
		}
	}
	return inv
}

// Add records one entry. It returns false when the term was already present
// with a different label; the new label still replaces the old one.
func (inv *Inventory) Add(e Entry) bool {
	prefix := patricia.Prefix(e.Term)
	prev := inv.trie.Get(prefix)
	inv.trie.Set(prefix, e.Label)
	if prev == nil {
		inv.size++
		return true
	}
	return prev.(string) == e.Label
}

// Len reports the number of distinct terms indexed.
func (inv *Inventory) Len() int {
	return inv.size
}

// VisitPrefix calls fn for every indexed term starting with prefix, in the
// trie's traversal order.
func (inv *Inventory) VisitPrefix(prefix string, fn func(term, label string)) {
	err := inv.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		fn(string(p), item.(string))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting inventory subtree: %v", err)
	}
}
