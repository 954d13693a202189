// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling correction server and CLI application.

SpellServe finds corrections for misspelled words against a training corpus.
It builds a frequency-annotated prefix trie from the corpus, then answers
each query with the corpus word reachable within a small bounded number of
edits -- deletion, insertion, replacement, or transposition of neighboring
letters -- preferring fewer edits and, among ties, higher corpus frequency.

# Usage

Run the batch pipeline against a corpus file, reading query words from stdin
(one per line) and writing one result line per query:

	spellserve corpus.txt < queries.txt

Each output line is the word alone when it is spelled correctly, the word
plus its best correction, or the word plus "-" when nothing lies within the
edit budget:

	hello
	hell, hello
	wordl, world
	w, -

Run interactively for testing and debugging:

	spellserve -i corpus.txt

Interactive completion mode looks up prefix completions instead:

	spellserve -i -p corpus.txt

Run as a msgpack IPC server over stdin/stdout for editor integration:

	spellserve -s corpus.txt

# Corpus Format

The corpus is free ASCII text. Lines are split on whitespace and each token
is lowercased with surrounding punctuation stripped before counting:

	hello world,
	bye world

Repeated occurrences raise a word's frequency, which breaks ties between
corrections at the same edit distance.

# Configuration

Runtime configuration is managed through a TOML file that supports corrector,
server, and CLI settings:

	[corrector]
	max_edits = 2
	enable_filter = true

	[server]
	max_limit = 64

The config file is automatically created with defaults if it doesn't exist.

# Command Line Flags

The following flags control application behavior:

	-d  Enable debug mode with detailed logging
	-i  Run in interactive mode instead of batch mode
	-p  Interactive mode serves prefix completions instead of corrections
	-s  Run as a msgpack IPC server
	-edits int
	    Maximum edit distance for corrections (default from config)
	-limit int
	    Number of completions to return in completion mode
	-no-filter
	    Disable input filtering in interactive and server modes
	-config string
	    Custom config file path
	-version
	    Show current version

Exactly one positional argument is required: the path to the corpus file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/correct"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
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

// main calls other packages to build the dictionary and run the selected
// mode. main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	log.SetOutput(os.Stderr)
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	interactive := flag.Bool("i", false, "Run interactive mode -- useful for testing and debugging")
	completions := flag.Bool("p", false, "Interactive mode serves prefix completions instead of corrections")
	serverMode := flag.Bool("s", false, "Run as a msgpack IPC server over stdin/stdout")
	maxEdits := flag.Int("edits", defaultConfig.Corrector.MaxEdits, "Maximum edit distance for corrections")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of completions to return (completion mode)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering in interactive and server modes")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <corpus file>\n", AppName)
		os.Exit(2)
	}
	corpusPath := flag.Arg(0)

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	// Flags override config values when given explicitly.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "edits":
			appConfig.Corrector.MaxEdits = *maxEdits
		case "no-filter":
			appConfig.Corrector.EnableFilter = !*noFilter
		}
	})

	log.Debugf("Loading corpus from: %s", corpusPath)
	completer := suggest.NewCompleter()
	trie, err := dictionary.LoadCorpusFile(corpusPath, completer)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	corrector := correct.NewCorrector(trie, appConfig.Corrector.MaxEdits)
	log.Debugf("Dictionary ready: %v, maxEdits=[%d]", trie.Stats(), corrector.MaxEdits())

	switch {
	case *interactive || *completions:
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(corrector, completer,
			appConfig.CLI.DefaultMaxLen, *limit, !appConfig.Corrector.EnableFilter, *completions)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	case *serverMode:
		log.Debug("spawning IPC")
		srv := server.NewServer(corrector, completer, trie, appConfig, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	default:
		if err := cli.RunBatch(corrector, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Batch error: %v", err)
		}
	}
}

// showVersionInfo displays some basic info about the build.
func showVersionInfo() {
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
	logger.Print("[ SpellServe ] Bounded-edit spelling correction!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
