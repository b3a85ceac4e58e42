// Copyright 2026 The Congkit Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the congkit lookup server and CLI application.

Congkit answers queries against a Cangjie-style input method code table:
character to code, wildcard code pattern to characters, code prefix
completion, and mnemonic radical rendering. It can operate as a
MessagePack IPC server for integration with input method frontends, or as
a CLI application for testing and debugging.

# Usage

Start the server with default settings:

	congkit

Use a custom table and enable debug mode:

	congkit -table /path/to/table.txt -d

Run in CLI mode for interactive testing:

	congkit -c -limit 10

Produce a binary table artifact from a text table:

	congkit -table data/table.txt -build data/table.dat -filter all

# Configuration

Runtime configuration is managed through a TOML file:

	[table]
	path = "data/table.txt"
	binary = "data/table.dat"
	scheme = "v3"
	preset = "chinese"

	[cli]
	default_limit = 24
	show_radicals = true

	[server]
	max_limit = 64
	max_patterns = 32

The config file is automatically created with defaults if it doesn't
exist. Flags override config values for the current run.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests carry
an id, an op selector and the op arguments; see the server package docs
for the full message catalogue.

	{"id": "req1", "op": "codes", "q": "我你"}
	{"id": "req2", "op": "match", "q": "hqi*"}

# Command Line Flags

The following flags control application behavior:

	-table string
	    Path to the table file (.txt table or .dat/.bin artifact)
	-build string
	    Write a binary artifact to this path and exit
	-scheme string
	    Code scheme to bind, "v3" or "v5"
	-filter string
	    Category preset: "chinese", "japanese", "all" or "custom"
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of candidates to display in CLI mode
	-config string
	    Custom config file path
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lokchuen/congkit/internal/cli"
	"github.com/lokchuen/congkit/internal/utils"
	"github.com/lokchuen/congkit/pkg/config"
	"github.com/lokchuen/congkit/pkg/congkit"
	"github.com/lokchuen/congkit/pkg/dictionary"
	"github.com/lokchuen/congkit/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "congkit"
	gh      = "https://github.com/lokchuen/congkit"
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

// main wires flags, config, table loading and the chosen mode together.
// Query logic lives in the congkit package; main only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	tablePath := flag.String("table", "", "Path to the code table file (.txt, .dat or .bin)")
	buildPath := flag.String("build", "", "Write a binary artifact to this path and exit")
	scheme := flag.String("scheme", "", "Code scheme to bind: v3 or v5")
	filterName := flag.String("filter", "", "Category preset: chinese, japanese, all or custom")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of candidates to display in CLI mode")
	configFlag := flag.String("config", "", "Custom config file path")

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

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	configPath := *configFlag
	if configPath == "" {
		configPath, err = pathResolver.GetConfigPath("congkit.toml")
		if err != nil {
			log.Fatalf("Failed to determine config path: (%v)", err)
		}
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	appConfig, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override config for this run.
	if *scheme != "" {
		appConfig.Table.Scheme = *scheme
	}
	if *filterName != "" {
		appConfig.Table.Preset = *filterName
	}

	version, err := appConfig.Version()
	if err != nil {
		log.Fatalf("Bad scheme: %v", err)
	}
	filter, err := appConfig.TableFilter()
	if err != nil {
		log.Fatalf("Bad filter: %v", err)
	}

	requested := *tablePath
	if requested == "" {
		requested = appConfig.Table.Path
		// Outside build mode, prefer the precomputed artifact when it exists.
		if *buildPath == "" {
			if resolved, err := pathResolver.FindTable(appConfig.Table.Binary); err == nil {
				requested = resolved
			}
		}
	}
	resolvedTable, err := pathResolver.FindTable(requested)
	if err != nil {
		log.Fatalf("Table file not found: (%s)", requested)
	}
	log.Debugf("Using table at: %s", resolvedTable)

	if *buildPath != "" {
		count, err := dictionary.BuildArtifact(resolvedTable, *buildPath, filter)
		if err != nil {
			log.Fatalf("Failed to build artifact: %v", err)
		}
		log.SetLevel(log.InfoLevel)
		log.Infof("Wrote %d entries to %s", count, *buildPath)
		return
	}

	db, err := dictionary.LoadFile(resolvedTable, version, filter)
	if err != nil {
		log.Fatalf("Failed to load table: %v", err)
	}
	log.Debugf("Table ready: %d entries, scheme %s", db.Len(), db.Version())

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(db, *limit, appConfig.CLI.ShowRadicals)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(resolvedTable, db)

	srv := server.NewServer(db, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

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
	logger.Print("[ Congkit ] Cangjie code table lookups!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(tablePath string, db *congkit.DB) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" Congkit ")
	println("=========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("table: ( %s )", tablePath)
	log.Infof("entries: %d, scheme: %s", db.Len(), db.Version())
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
