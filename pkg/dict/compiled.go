package dict

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// CompiledExt is the extension compiled dictionary caches are saved under.
const CompiledExt = ".npk"

// compiledVersion guards against loading caches written by an incompatible
// layout.
const compiledVersion = 1

type compiledFile struct {
	Version int     `msgpack:"v"`
	Entries []Entry `msgpack:"e"`
}

// SaveCompiled writes entries to a msgpack cache at path. Compiled caches skip
// the per-line parsing and validation of text dictionaries, which matters for
// large dictionaries loaded on every invocation.
func SaveCompiled(path string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating compiled dictionary %s: %w", path, err)
	}
	defer file.Close()

	enc := msgpack.NewEncoder(file)
	if err := enc.Encode(compiledFile{Version: compiledVersion, Entries: entries}); err != nil {
		return fmt.Errorf("encoding compiled dictionary: %w", err)
	}
	log.Debugf("Wrote %d entries to %s", len(entries), path)
	return nil
}

// LoadCompiled reads a msgpack cache written by SaveCompiled.
func LoadCompiled(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening compiled dictionary %s: %w", path, err)
	}
	defer file.Close()

	var cf compiledFile
	if err := msgpack.NewDecoder(file).Decode(&cf); err != nil {
		return nil, fmt.Errorf("decoding compiled dictionary %s: %w", path, err)
	}
	if cf.Version != compiledVersion {
		return nil, fmt.Errorf("compiled dictionary %s has version %d, want %d", path, cf.Version, compiledVersion)
	}
	log.Debugf("Loaded %d entries from compiled cache %s", len(cf.Entries), path)
	return cf.Entries, nil
}
