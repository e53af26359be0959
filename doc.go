// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Elect console.

Quickly Elect is a single-process election simulation: it registers a roster
of voters, takes votes one at a time from a prompt, and prints the final
tally, the winner, and text charts of the results.

# Starting

	go run .

Or with flags:

	go run . -c "Obama,Robert,Kiiza,Aliwo" -w 50 -log-level info

# Configuration

All settings are optional:

  - CANDIDATES (-c): comma-separated candidate names
  - CHART_WIDTH (-w): chart bar width (default: 40)
  - NO_COLOR (-no-color): disable colored output
  - LOG_LEVEL (-log-level): slog level, logs go to stderr (default: warn)

Settings may also come from a .env file (-env-file).

# Architecture

  - ledger: voter registry and tallies (the core)
  - console: prompt loop and single-vote requests
  - middleware: logging and error mapping around each vote
  - results: ranked result snapshots
  - chart: text charts of a snapshot
  - roster: default candidates and voters
  - models: shared request, response and result types
  - cliparse: configuration parsing

Ctrl-C ends the prompt loop early; the summary and charts are still printed.
*/
package main
