// Package cli handles the line-oriented stdin loop: each input line is tagged
// against the dictionary and its matches are written as TSV records.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/nametag/internal/logger"
	"github.com/bastiangx/nametag/pkg/dict"
	"github.com/bastiangx/nametag/pkg/tagger"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var matchStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#9ccfd8"})

// LineHandler tags every line read from its reader and writes one TSV record
// per match, terminating each input line's output with a blank line so
// downstream consumers can split per-line result groups.
type LineHandler struct {
	tagger    *tagger.Tagger
	reader    io.Reader
	writer    io.Writer
	color     bool
	showType  bool
	lineCount int
}

// NewLineHandler wires a handler to stdin/stdout with the given rendering
// options.
func NewLineHandler(tg *tagger.Tagger, color, showType bool) *LineHandler {
	return &LineHandler{
		tagger:   tg,
		reader:   os.Stdin,
		writer:   os.Stdout,
		color:    color,
		showType: showType,
	}
}

// Start consumes lines until EOF. Each line is scanned independently; no
// state crosses line boundaries except the read-only dictionary.
func (h *LineHandler) Start() error {
	scanner := bufio.NewScanner(h.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		h.lineCount++
		h.handleLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	log.Debugf("Tagged %d lines", h.lineCount)
	return nil
}

// handleLine tags one newline-stripped line and renders its matches.
func (h *LineHandler) handleLine(line string) {
	matches := h.tagger.TagLine(line)
	for _, m := range matches {
		h.writeMatch(m)
	}
	// blank separator closes this line's result group
	fmt.Fprintln(h.writer)
}

// writeMatch renders one match as start, end, text, strict, type, label,
// tab separated.
func (h *LineHandler) writeMatch(m tagger.Match) {
	text := m.Text
	if h.color {
		text = matchStyle.Render(text)
	}
	if h.showType {
		fmt.Fprintf(h.writer, "%d\t%d\t%s\t%t\t%s\t%s\n",
			m.Start, m.End, text, m.Strict, m.Value.Type, m.Value.Label)
		return
	}
	fmt.Fprintf(h.writer, "%d\t%d\t%s\t%t\t%s\n",
		m.Start, m.End, text, m.Strict, m.Value.Label)
}

// Inspect lists dictionary entries starting with prefix, one per line. Mainly
// for debugging which terms a dictionary actually loaded.
func Inspect(inv *dict.Inventory, prefix string) {
	l := logger.New("dict")
	count := 0
	inv.VisitPrefix(prefix, func(term, label string) {
		count++
		l.Printf("%3d. %-32s -> %s", count, term, label)
	})
	if count == 0 {
		l.Warnf("No dictionary entries with prefix %q", prefix)
		return
	}
	l.Printf("%d entries with prefix %q", count, prefix)
}
