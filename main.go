package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/quickly-elect/chart"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/console"
	"github.com/danielhkuo/quickly-elect/ledger"
	"github.com/danielhkuo/quickly-elect/results"
	"github.com/danielhkuo/quickly-elect/roster"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Create the ledger and load the roster
	election, err := ledger.NewElection(cfg.Candidates, ledger.WithLogger(logger))
	if err != nil {
		slog.Error("election setup failed", "error", err)
		os.Exit(1)
	}
	if err := roster.Register(election, roster.DefaultVoters()); err != nil {
		slog.Error("roster registration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Election ready",
		"candidates", strings.Join(election.Candidates(), ","),
		"voters", election.RegisteredVoters(),
	)

	useColor := !cfg.NoColor && isTerminal(os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
	}()

	session := console.NewSession(election, os.Stdin, os.Stdout, logger)
	session.SetColor(useColor)
	err = session.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("voting session failed", "error", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, election)

	if cfg.NoChart {
		return
	}
	renderer := chart.NewRenderer(os.Stdout, cfg.ChartWidth, useColor)
	fmt.Println()
	if err := renderer.Render(results.Compute(election)); err != nil {
		slog.Error("chart rendering failed", "error", err)
		os.Exit(1)
	}
}

func printSummary(w io.Writer, election *ledger.Election) {
	tally := election.TallyVotes()
	parts := make([]string, 0, len(tally))
	for _, c := range election.Candidates() {
		parts = append(parts, fmt.Sprintf("%s: %d", c, tally[c]))
	}
	fmt.Fprintln(w, "Votes tally:", strings.Join(parts, ", "))
	fmt.Fprintln(w, "The winner is:", election.DeclareWinner())
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
