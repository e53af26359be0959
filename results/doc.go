// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results computes ranked result snapshots from an election ledger.

	snap := results.Compute(election)

Rankings are ordered by votes, highest first. Candidates with equal votes
keep the order they were given to the election, which matches the tie-break
used by DeclareWinner, so snap.Rankings[0].Candidate == snap.Winner.

District results are listed in the order districts were first registered,
and each district's counts follow the ranking order.
*/
package results
