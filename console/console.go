// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/danielhkuo/quickly-elect/ledger"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

// Prompts and messages shown to the operator
const (
	PromptVoterID   = "Enter your voter ID: "
	PromptCandidate = "Enter the candidate you wish to vote for: "
	PromptMore      = "Are there more voters? (yes/no): "
	MessageSuccess  = "Vote cast successfully!"
)

type Session struct {
	election *ledger.Election
	in       io.Reader
	out      io.Writer
	logger   *slog.Logger
	submit   middleware.CastFunc

	readerOnce sync.Once
	input      <-chan inputLine

	success *color.Color
	failure *color.Color
}

func NewSession(e *ledger.Election, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		election: e,
		in:       in,
		out:      out,
		logger:   logger,
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
	s.submit = middleware.WithLogging(logger, s.cast)
	s.SetColor(false)
	return s
}

// SetColor turns colored success and error messages on or off
func (s *Session) SetColor(enabled bool) {
	for _, c := range []*color.Color{s.success, s.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Submit casts one vote and reports the outcome
func (s *Session) Submit(req models.CastVoteRequest) models.CastVoteResponse {
	return s.submit(req)
}

func (s *Session) cast(req models.CastVoteRequest) models.CastVoteResponse {
	receipt, err := s.election.CastVote(strings.TrimSpace(req.VoterID), req.Candidate)
	if err != nil {
		return middleware.ErrorResponse(err)
	}
	return models.CastVoteResponse{
		OK:      true,
		Message: MessageSuccess,
		Receipt: &receipt,
		Tally:   s.election.TallyVotes(),
	}
}

// Run prompts for votes until the operator answers anything but "yes",
// input ends, or ctx is cancelled. A read error ends the loop and is returned.
// Run may be called again on the same session; it resumes with the next
// unread line.
func (s *Session) Run(ctx context.Context) error {
	lines := s.lines()
	attempts := 0

	for {
		voterID, ok, err := s.ask(ctx, lines, PromptVoterID)
		if err != nil || !ok {
			return s.finish(attempts, err)
		}
		candidate, ok, err := s.ask(ctx, lines, PromptCandidate)
		if err != nil || !ok {
			return s.finish(attempts, err)
		}

		attempts++
		resp := s.Submit(models.CastVoteRequest{VoterID: voterID, Candidate: candidate})
		if resp.OK {
			fmt.Fprintln(s.out, s.success.Sprint(resp.Message))
			s.PrintTally()
		} else {
			fmt.Fprintln(s.out, s.failure.Sprint(resp.Message))
		}

		more, ok, err := s.ask(ctx, lines, PromptMore)
		if err != nil || !ok {
			return s.finish(attempts, err)
		}
		if !strings.EqualFold(strings.TrimSpace(more), "yes") {
			return s.finish(attempts, nil)
		}
	}
}

// PrintTally writes the current tally in candidate order
func (s *Session) PrintTally() {
	tally := s.election.TallyVotes()
	fmt.Fprintln(s.out, "Current Votes Tally:")
	for _, c := range s.election.Candidates() {
		fmt.Fprintf(s.out, "%s: %s\n", c, humanize.Comma(int64(tally[c])))
	}
}

func (s *Session) finish(attempts int, err error) error {
	if err != nil {
		s.logger.Info("voting session interrupted", "attempts", attempts, "error", err)
		return err
	}
	s.logger.Info("voting session finished", "attempts", attempts, "total_votes", s.election.TotalVotes())
	return nil
}

// ask writes a prompt and waits for the next line.
// ok is false when input is exhausted.
func (s *Session) ask(ctx context.Context, lines <-chan inputLine, prompt string) (string, bool, error) {
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", false, ctx.Err()
	case line, ok := <-lines:
		if !ok {
			fmt.Fprintln(s.out)
			return "", false, nil
		}
		if line.err != nil {
			fmt.Fprintln(s.out)
			return "", false, line.err
		}
		return strings.TrimSpace(line.text), true, nil
	}
}

type inputLine struct {
	text string
	err  error
}

// lines starts the session's reader on first use.
// The reader lives as long as the input: it holds at most one line that no
// Run has asked for yet, and exits after EOF or a read error.
func (s *Session) lines() <-chan inputLine {
	s.readerOnce.Do(func() {
		s.input = readLines(s.in)
	})
	return s.input
}

// readLines feeds lines from r into the returned channel. A read error is
// sent as the last item before the channel closes.
func readLines(r io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- inputLine{text: scanner.Text()}
		}
		if err := scanner.Err(); err != nil {
			lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
		}
	}()
	return lines
}
