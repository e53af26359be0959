package ledger_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-elect/ledger"
	"github.com/danielhkuo/quickly-elect/testutil"
)

// TestConcurrentVotesSameVoter verifies that when many goroutines cast a vote
// for the same voter, exactly one is counted
func TestConcurrentVotesSameVoter(t *testing.T) {
	e := testutil.NewTestElection(t)
	testutil.RegisterTestVoter(t, e, "ID1", 30, "District A")

	numAttempts := 20
	var successCount, alreadyVotedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(attempt int) {
			defer wg.Done()

			candidate := "obama"
			if attempt%2 == 1 {
				candidate = "robert"
			}
			_, err := e.CastVote("ID1", candidate)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, ledger.ErrAlreadyVoted):
				alreadyVotedCount.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 counted vote, got %d", successCount.Load())
	}
	if int(alreadyVotedCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d already-voted rejections, got %d", numAttempts-1, alreadyVotedCount.Load())
	}
	if e.TotalVotes() != 1 {
		t.Errorf("Expected total of 1 vote, got %d", e.TotalVotes())
	}
}

// TestConcurrentVotesManyVoters verifies that global and district tallies
// stay consistent under simultaneous votes from different voters
func TestConcurrentVotesManyVoters(t *testing.T) {
	e := testutil.NewTestElection(t)

	numVoters := 50
	for i := 0; i < numVoters; i++ {
		district := fmt.Sprintf("District %d", i%4)
		testutil.RegisterTestVoter(t, e, fmt.Sprintf("ID%03d", i), 18+i, district)
	}

	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			candidate := "obama"
			if voterIdx%3 == 0 {
				candidate = "robert"
			}
			if _, err := e.CastVote(fmt.Sprintf("ID%03d", voterIdx), candidate); err != nil {
				t.Errorf("vote %d failed: %v", voterIdx, err)
			}
		}(i)
	}

	wg.Wait()

	tally := e.TallyVotes()
	if tally["robert"] != 17 || tally["obama"] != 33 {
		t.Errorf("unexpected tally %v", tally)
	}

	districtTotal := 0
	for _, districtTally := range e.VotesByDistrict() {
		for _, n := range districtTally {
			districtTotal += n
		}
	}
	if districtTotal != numVoters {
		t.Errorf("Expected %d votes across districts, got %d", numVoters, districtTotal)
	}
}
