// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordlearn interactive completer and IPC server.

wordlearn learns words from passages as they are typed and completes
partial words from what it has learned, ranking completions by how often
each word was seen. Nothing is persisted: every run starts empty unless
seeded from a corpus file.

# Usage

Start the interactive loop:

	wordlearn

Each line is either a passage (two or more words) that is learned, or a
single partial word that is completed:

	Enter a passage or partial word (type "exit!" to quit):
	Asymmetrik is the best
	Enter a passage or partial word (type "exit!" to quit):
	a
	Suggestion(s): "asymmetrik" (1)

Seed the session from a text file with one passage per line and enable
debug logging:

	wordlearn --seed corpus.txt -d

Serve msgpack requests on stdin/stdout for editor integrations:

	wordlearn serve

# Configuration

Runtime configuration is read from a TOML file, ~/.config/wordlearn/config.toml
by default, created with defaults when missing:

	[cli]
	prompt = "Enter a passage or partial word (type \"exit!\" to quit): "
	exit_sentinel = "exit!"

	[server]
	max_limit = 64
	max_fragment = 60

	[log]
	level = "warn"
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
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

func main() {
	sigHandler()
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
