// Package dict loads dictionary entries from tab separated text files or from
// compiled msgpack caches, and keeps a prefix inventory of loaded terms for
// duplicate detection and debug listings.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Entry is one dictionary line: the label reported on a match and the term
// text scanned for.
type Entry struct {
	Label string `msgpack:"l"`
	Term  string `msgpack:"t"`
}

// Open loads entries from path, choosing the loader by extension: compiled
// caches by CompiledExt, anything else as tab separated text.
func Open(path string) ([]Entry, error) {
	if strings.EqualFold(filepath.Ext(path), CompiledExt) {
		return LoadCompiled(path)
	}
	return LoadFile(path)
}

// LoadFile reads a text dictionary: one "term<TAB>label" per line, in file
// order. Malformed lines (no tab, empty term or label) are skipped with a
// debug log line rather than failing the load, so one bad row cannot take
// down the whole dictionary.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		term, label, ok := strings.Cut(line, "\t")
		if !ok || term == "" || label == "" {
			log.Debugf("Skipping malformed dictionary line %d in %s", lineNo, path)
			continue
		}
		entries = append(entries, Entry{Label: label, Term: term})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", path, err)
	}

	log.Debugf("Loaded %d entries from %s", len(entries), path)
	return entries, nil
}
