package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/nametag/pkg/tagger"
)

func newTestHandler(t *testing.T, input string, showType bool) (*LineHandler, *bytes.Buffer) {
	t.Helper()
	tg := tagger.New(tagger.Options{})
	if err := tg.Add("Johnson Corp", "johnson"); err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	return &LineHandler{
		tagger:   tg,
		reader:   strings.NewReader(input),
		writer:   out,
		color:    false,
		showType: showType,
	}, out
}

func TestLineHandlerOutput(t *testing.T) {
	h, out := newTestHandler(t, "ask johnson now\nno hits\n", true)

	if err := h.Start(); err != nil {
		t.Fatal(err)
	}

	want := "4\t11\tjohnson\ttrue\tExact\tJohnson Corp\n\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

// every input line closes its result group with a blank line, hits or not
func TestLineHandlerSeparators(t *testing.T) {
	h, out := newTestHandler(t, "a\nb\nc\n", true)

	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "\n"); got != 3 {
		t.Errorf("got %d separators, want 3", got)
	}
}

func TestLineHandlerHidesType(t *testing.T) {
	h, out := newTestHandler(t, "johnson\n", false)

	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	want := "0\t7\tjohnson\ttrue\tJohnson Corp\n\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
