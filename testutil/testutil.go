// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-elect/ledger"
)

// ScenarioCandidates are the candidates used by the two-candidate scenario
var ScenarioCandidates = []string{"Obama", "Robert"}

// FixedTime is the clock value used for receipts in tests
var FixedTime = time.Date(2024, time.November, 5, 9, 0, 0, 0, time.UTC)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestElection creates an election with a silent logger and a fixed clock
func NewTestElection(t *testing.T, candidates ...string) *ledger.Election {
	t.Helper()

	if len(candidates) == 0 {
		candidates = ScenarioCandidates
	}
	e, err := ledger.NewElection(candidates,
		ledger.WithLogger(DiscardLogger()),
		ledger.WithClock(func() time.Time { return FixedTime }),
	)
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}
	return e
}

// RegisterTestVoter registers a voter and returns the shared record
func RegisterTestVoter(t *testing.T, e *ledger.Election, voterID string, age int, district string) *ledger.Voter {
	t.Helper()

	v := ledger.NewVoter("Voter "+voterID, age, voterID, district)
	if err := e.RegisterVoter(v); err != nil {
		t.Fatalf("Failed to register test voter %s: %v", voterID, err)
	}
	return v
}

// ScenarioElection registers ID1..ID4 aged 30, 25, 16 and 26 in districts
// A, B, C and D for the candidates obama and robert. No votes are cast.
func ScenarioElection(t *testing.T) *ledger.Election {
	t.Helper()

	e := NewTestElection(t)
	RegisterTestVoter(t, e, "ID1", 30, "District A")
	RegisterTestVoter(t, e, "ID2", 25, "District B")
	RegisterTestVoter(t, e, "ID3", 16, "District C")
	RegisterTestVoter(t, e, "ID4", 26, "District D")
	return e
}

// MustCastVote casts a vote and fails the test on error
func MustCastVote(t *testing.T, e *ledger.Election, voterID, candidate string) {
	t.Helper()

	if _, err := e.CastVote(voterID, candidate); err != nil {
		t.Fatalf("CastVote(%s, %s) failed: %v", voterID, candidate, err)
	}
}
