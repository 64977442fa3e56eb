package tagger

// Cursor is a read-only traversal handle into a Trie: the node reached so far
// plus the runes consumed to reach it from the root. Advancing a cursor yields
// a new cursor and never mutates the trie, so cursors can be duplicated freely
// while a scan explores divergent continuations.
type Cursor struct {
	node *node
	path []rune
}

// Advance returns the cursor at the child reached by r. ok is false when no
// such edge exists; that is the normal pruning outcome for a dead candidate,
// not an error.
func (c Cursor) Advance(r rune) (Cursor, bool) {
	next, ok := c.node.children[r]
	if !ok {
		return Cursor{}, false
	}
	path := make([]rune, len(c.path)+1)
	copy(path, c.path)
	path[len(c.path)] = r
	return Cursor{node: next, path: path}, true
}

// Terminal reports whether the current node carries a value.
func (c Cursor) Terminal() bool {
	return c.node.value != nil
}

// Value returns the terminal value at the current node, if any.
func (c Cursor) Value() (Value, bool) {
	if c.node.value == nil {
		return Value{}, false
	}
	return *c.node.value, true
}

// Path returns the runes consumed since the root. The slice is owned by the
// cursor; callers must not modify it.
func (c Cursor) Path() []rune {
	return c.path
}

// Depth reports how many runes the cursor has consumed.
func (c Cursor) Depth() int {
	return len(c.path)
}
