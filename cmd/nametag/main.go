// Copyright 2026 The Nametag Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the nametag dictionary term tagger CLI.

Nametag reads a dictionary of labeled terms once, then tags every occurrence
of those terms in lines streamed through stdin. Matching runs over an
in-memory trie with a cursor-set scanner, so a line is scanned once no matter
how many dictionary entries exist, and overlapping matches are all reported.

# Usage

Tag stdin against a tab separated dictionary:

	nametag names.tsv < corpus.txt

Enable whole-word boundaries and case/punctuation insensitive matching:

	nametag -w -i names.tsv < corpus.txt

Each input line produces one TSV record per match followed by a blank line:

	4	11	johnson	true	Exact	Johnson Corp

The fields are start offset, end offset (exclusive, both in rune positions),
matched text, whether the match used only literal input symbols, the variant
that matched, and the dictionary label.

# Dictionary format

One entry per line, "term<TAB>label". Malformed lines are skipped. Large
dictionaries can be compiled to a msgpack cache that skips text parsing:

	nametag -compile names.npk names.tsv
	nametag names.npk < corpus.txt

# Server mode

With -serve, nametag speaks line-oriented JSON over stdin/stdout instead:

	{"command": "tag", "line": "ask johnson now"}
	{"matches": [{"start": 4, "end": 11, ...}], "count": 1, "time_us": 42}

Server limits reload from the TOML config file when it changes on disk; the
dictionary and the matcher switches stay fixed for the session.

# Configuration

Runtime defaults live in a TOML file, created with defaults if missing:

	[matcher]
	fuzzy = false
	whole_word = false

	[dict]
	path = ""
	compiled_cache = true

	[output]
	color = true
	show_type = true

	[server]
	max_line_len = 8192

Command line flags always win over config values.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/nametag/internal/cli"
	"github.com/bastiangx/nametag/pkg/config"
	"github.com/bastiangx/nametag/pkg/dict"
	"github.com/bastiangx/nametag/pkg/server"
	"github.com/bastiangx/nametag/pkg/tagger"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "nametag"
	gh      = "https://github.com/bastiangx/nametag"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, dictionary and mode selection together. The
// actual tagging logic lives in pkg/tagger; main only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file (term<TAB>label per line, or a compiled .npk cache)")
	wholeWord := flag.Bool("w", false, "Forbid matches of substrings of names")
	insensitive := flag.Bool("i", false, "Permit matches to differ from name in case and punctuation")
	serveMode := flag.Bool("serve", false, "Run the JSON IPC server instead of the line tagger")
	compileOut := flag.String("compile", "", "Compile the dictionary to a msgpack cache at this path and exit")
	inspectPrefix := flag.String("inspect", "", "List dictionary entries with this prefix and exit (DBG)")
	noColor := flag.Bool("no-color", false, "Disable colored match text in CLI output")
	configPath := flag.String("config", "", "Path to TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	resolvedConfigPath := *configPath
	if resolvedConfigPath == "" {
		if defaultPath, err := config.GetDefaultConfigPath(); err == nil {
			resolvedConfigPath = defaultPath
		} else {
			log.Warnf("Failed to determine config path: %v. Using built-in defaults...", err)
		}
	}

	var appConfig *config.Config
	if resolvedConfigPath != "" {
		var err error
		appConfig, err = config.InitConfig(resolvedConfigPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Debugf("Using config file: (%s)", resolvedConfigPath)
	} else {
		appConfig = config.DefaultConfig()
	}

	// flags win over config
	opts := tagger.Options{
		Fuzzy:     appConfig.Matcher.Fuzzy || *insensitive,
		WholeWord: appConfig.Matcher.WholeWord || *wholeWord,
	}

	// dictionary path: -dict flag, then positional DICT, then config
	path := *dictPath
	if path == "" {
		path = flag.Arg(0)
	}
	if path == "" {
		path = appConfig.Dict.Path
	}
	if path == "" {
		log.Fatal("No dictionary given (use -dict, a positional DICT argument, or dict.path in config)")
	}

	entries, err := dict.Open(path)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if len(entries) == 0 {
		log.Warnf("Dictionary %s has no usable entries", path)
	}

	if *compileOut != "" {
		if err := dict.SaveCompiled(*compileOut, entries); err != nil {
			log.Fatalf("Failed to compile dictionary: %v", err)
		}
		log.Printf("Compiled %d entries to %s", len(entries), *compileOut)
		return
	}

	inventory := dict.BuildInventory(entries)
	log.Debugf("Dictionary: %d entries, %d distinct terms", len(entries), inventory.Len())

	if *inspectPrefix != "" {
		cli.Inspect(inventory, *inspectPrefix)
		return
	}

	tg := tagger.New(opts)
	for _, e := range entries {
		if err := tg.Add(e.Label, e.Term); err != nil {
			log.Debugf("Skipping entry %q: %v", e.Label, err)
		}
	}
	log.Debugf("Built trie: %d terms, fuzzy=%t wholeWord=%t", tg.Terms(), opts.Fuzzy, opts.WholeWord)

	if *serveMode {
		srv := server.NewServer(tg, appConfig, resolvedConfigPath)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	color := appConfig.Output.Color && !*noColor
	handler := cli.NewLineHandler(tg, color, appConfig.Output.ShowType)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Nametag ] tags dictionary terms in streamed text")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
