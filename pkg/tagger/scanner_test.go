package tagger

import "testing"

func buildTrie(entries map[string]string) *Trie {
	trie := NewTrie()
	for term, label := range entries {
		trie.Insert([]rune(term), Value{Type: Exact, Label: label})
	}
	return trie
}

// neither of two overlapping entries may suppress the other
func TestOverlapPreservation(t *testing.T) {
	trie := buildTrie(map[string]string{"ab": "A", "abc": "B"})

	matches := FindMatches(trie, nil, []rune("xabcx"))
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}

	if matches[0].Text != "ab" || matches[0].Start != 1 || matches[0].End != 3 {
		t.Errorf("first match = %+v, want ab at [1,3)", matches[0])
	}
	if matches[1].Text != "abc" || matches[1].Start != 1 || matches[1].End != 4 {
		t.Errorf("second match = %+v, want abc at [1,4)", matches[1])
	}
}

// every occurrence of an entry as a contiguous substring must be found
func TestNoFalseNegatives(t *testing.T) {
	testCases := []struct {
		term  string
		line  string
		start int
	}{
		{"cat", "cat", 0},
		{"cat", "the cat sat", 4},
		{"cat", "concatenate", 3},
		{"cat", "educate a cat", 10},
		{"a", "bca", 2},
	}

	for _, tc := range testCases {
		trie := buildTrie(map[string]string{tc.term: "x"})
		matches := FindMatches(trie, nil, []rune(tc.line))

		found := false
		for _, m := range matches {
			if m.Start == tc.start && m.End == tc.start+len([]rune(tc.term)) {
				found = true
			}
		}
		if !found {
			t.Errorf("term %q in %q: no match at [%d,%d), got %+v",
				tc.term, tc.line, tc.start, tc.start+len(tc.term), matches)
		}
	}
}

func TestRepeatedOccurrences(t *testing.T) {
	trie := buildTrie(map[string]string{"ab": "x"})
	matches := FindMatches(trie, nil, []rune("ababab"))

	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i, m := range matches {
		if m.Start != i*2 || m.End != i*2+2 {
			t.Errorf("match %d = [%d,%d), want [%d,%d)", i, m.Start, m.End, i*2, i*2+2)
		}
	}
}

// emission order: non-decreasing end offset, ascending start for equal ends
func TestEmissionOrder(t *testing.T) {
	trie := buildTrie(map[string]string{"abc": "1", "bc": "2", "c": "3"})
	matches := FindMatches(trie, nil, []rune("abc"))

	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].End < matches[i-1].End {
			t.Errorf("End decreased between matches %d and %d: %+v", i-1, i, matches)
		}
		if matches[i].End == matches[i-1].End && matches[i].Start < matches[i-1].Start {
			t.Errorf("Start decreased for equal End: %+v", matches)
		}
	}
	// all three end at offset 3
	for _, m := range matches {
		if m.End != 3 {
			t.Errorf("match %+v should end at 3", m)
		}
	}
}

func TestStrictFlagWithExpansion(t *testing.T) {
	trie := buildTrie(map[string]string{"cat": "x"})

	matches := FindMatches(trie, Expand, []rune("CAT"))
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Strict {
		t.Error("case-substituted match must not be strict")
	}
	if matches[0].Text != "cat" {
		t.Errorf("matched text = %q, want the dictionary path cat", matches[0].Text)
	}

	matches = FindMatches(trie, Expand, []rune("cat"))
	if len(matches) != 1 || !matches[0].Strict {
		t.Errorf("literal match must stay strict: %+v", matches)
	}
}

// the strict continuation wins over expansion when both exist
func TestStrictAdvancePreferred(t *testing.T) {
	trie := NewTrie()
	trie.Insert([]rune("a-b"), Value{Type: Exact, Label: "dash"})

	matches := FindMatches(trie, Expand, []rune("a-b"))
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	if !matches[0].Strict {
		t.Error("literal punctuation advance must keep the candidate strict")
	}
}

func TestScanEmptyInput(t *testing.T) {
	trie := buildTrie(map[string]string{"cat": "x"})
	if matches := FindMatches(trie, nil, nil); len(matches) != 0 {
		t.Errorf("empty input produced matches: %+v", matches)
	}
}

func TestScanEmptyTrie(t *testing.T) {
	trie := NewTrie()
	if matches := FindMatches(trie, nil, []rune("anything")); len(matches) != 0 {
		t.Errorf("empty trie produced matches: %+v", matches)
	}
}
