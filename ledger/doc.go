// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger holds the election ledger: the voter registry, the global
tally, and the per-district tally.

# Creating an Election

Candidate names are trimmed and lower-cased into tally keys:

	e, err := ledger.NewElection([]string{"Obama", "Robert"}, ledger.WithLogger(logger))

# Registering Voters

	v := ledger.NewVoter("Alicia Maya", 30, "ID001", "District A")
	if err := e.RegisterVoter(v); err != nil {
		// ErrInvalidVoter or ErrDuplicateVoter
	}

A district gets a zero tally the first time one of its voters registers.
Registering the same voter ID twice is rejected; the first record stays.

# Casting Votes

	receipt, err := e.CastVote("ID001", "OBAMA")

Checks run in this order, and the first failure is returned:

  - ErrUnknownVoter: ID not in the registry
  - ErrAlreadyVoted: voter already has a counted vote
  - ErrUnderage: voter is younger than MinimumVotingAge
  - ErrUnknownCandidate: case-folded name is not a candidate

On success the global tally, the district tally, and the voter's Voted flag
change together under one lock. A rejected vote changes nothing.

# Reading Results

TallyVotes and VotesByDistrict return copies. DeclareWinner breaks ties in
favor of the candidate listed first at construction.
*/
package ledger
