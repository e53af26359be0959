// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and result types shared by the
ledger, the console driver, and reporting.

# Request Types

  - CastVoteRequest: voter_id, candidate

# Response Types

  - Receipt: ballot_id, voter_id, candidate, district, cast_at
  - CastVoteResponse: ok, message, error kind, receipt, running tally

# Result Types

  - CandidateResult: votes, share and rank for one candidate
  - DistrictResult: per-candidate counts for one district
  - ResultSnapshot: full ranked results at a point in time

# Error Kinds

	KindUnknownVoter     = "unknown_voter"
	KindAlreadyVoted     = "already_voted"
	KindUnderage         = "underage"
	KindUnknownCandidate = "unknown_candidate"
	KindInternal         = "internal"
*/
package models
